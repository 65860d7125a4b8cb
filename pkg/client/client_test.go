package client

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/timestamppb"

	functionpb "github.com/udflow/udflow-go/pkg/apis/proto/function/v1"
	sdkerror "github.com/udflow/udflow-go/pkg/client/error"
	"github.com/udflow/udflow-go/pkg/function"
)

const bufSize = 1 << 20

// newTestClient wires a client to a real Service over an in-memory
// connection.
func newTestClient(t *testing.T, h function.MapHandler) Client {
	t.Helper()
	lis := bufconn.Listen(bufSize)
	grpcServer := grpc.NewServer()
	functionpb.RegisterUserDefinedFunctionServer(grpcServer, function.NewService(h))
	go func() { _ = grpcServer.Serve(lis) }()
	t.Cleanup(grpcServer.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, s string) (net.Conn, error) { return lis.Dial() }),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	c, err := NewFromClient(functionpb.NewUserDefinedFunctionClient(conn))
	require.NoError(t, err)
	return c
}

func testDatum(value []byte) *functionpb.Datum {
	now := timestamppb.Now()
	return &functionpb.Datum{
		Value:     value,
		EventTime: &functionpb.EventTime{EventTime: now},
		Watermark: &functionpb.Watermark{Watermark: now},
	}
}

func TestClient_IsReady(t *testing.T) {
	c := newTestClient(t, function.MapFunc(
		func(ctx context.Context, key string, datum function.Datum) function.Messages {
			return function.MessagesBuilder()
		}))

	ready, err := c.IsReady(context.Background(), &emptypb.Empty{})
	require.NoError(t, err)
	assert.True(t, ready)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	assert.NoError(t, c.WaitUntilReady(ctx))
}

func TestClient_MapFn(t *testing.T) {
	c := newTestClient(t, function.MapFunc(
		func(ctx context.Context, key string, datum function.Datum) function.Messages {
			return function.MessagesBuilder().Append(function.MessageTo(key, datum.Value()))
		}))

	resp, err := c.MapFn(context.Background(), "X", testDatum([]byte("hello")))
	require.NoError(t, err)
	require.Len(t, resp.GetElements(), 1)
	// the key travels as call metadata and comes back on the result
	assert.Equal(t, "X", resp.GetElements()[0].GetKey())
	assert.Equal(t, []byte("hello"), resp.GetElements()[0].GetValue())
}

func TestClient_MapFnBatch(t *testing.T) {
	c := newTestClient(t, function.MapFunc(
		func(ctx context.Context, key string, datum function.Datum) function.Messages {
			return function.MessagesBuilder().Append(function.MessageTo(key, datum.Value()))
		}))

	var datums []*functionpb.Datum
	for i := 0; i < 10; i++ {
		datums = append(datums, testDatum([]byte(fmt.Sprintf("msg-%d", i))))
	}
	results, err := c.MapFnBatch(context.Background(), "batch", datums)
	require.NoError(t, err)
	require.Len(t, results, 10)
	for i, r := range results {
		require.Len(t, r.GetElements(), 1)
		assert.Equal(t, fmt.Sprintf("msg-%d", i), string(r.GetElements()[0].GetValue()))
	}
}

func TestClient_ReduceFn(t *testing.T) {
	c := newTestClient(t, function.MapFunc(
		func(ctx context.Context, key string, datum function.Datum) function.Messages {
			return function.MessagesBuilder()
		}))

	_, err := c.ReduceFn(context.Background(), []*functionpb.Datum{testDatum([]byte("a"))})
	require.Error(t, err)
	udfErr, _ := sdkerror.FromError(err)
	assert.Equal(t, sdkerror.NonRetryable, udfErr.ErrorKind())
	assert.Contains(t, udfErr.ErrorMessage(), "Method not implemented!")
}
