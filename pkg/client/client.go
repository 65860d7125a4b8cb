// Package client provides a client to call a UDF server over its Unix
// domain socket. It is mainly used by the orchestrator side and by tests.
package client

import (
	"context"
	"fmt"
	"io"
	"time"

	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/types/known/emptypb"

	functionpb "github.com/udflow/udflow-go/pkg/apis/proto/function/v1"
	sdkerror "github.com/udflow/udflow-go/pkg/client/error"
	"github.com/udflow/udflow-go/pkg/function"
	"github.com/udflow/udflow-go/pkg/shared/logging"
)

// client contains the grpc connection and the grpc client.
type client struct {
	conn    *grpc.ClientConn
	grpcClt functionpb.UserDefinedFunctionClient
}

// New creates a new client object.
func New(inputOptions ...Option) (Client, error) {
	var opts = DefaultOptions()
	for _, inputOption := range inputOptions {
		inputOption(opts)
	}

	sockAddr := fmt.Sprintf("%s:%s", "unix", opts.UdsSockAddr())
	conn, err := grpc.NewClient(sockAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(
			grpc.MaxCallRecvMsgSize(opts.MaxMessageSize()),
			grpc.MaxCallSendMsgSize(opts.MaxMessageSize()),
		))
	if err != nil {
		return nil, fmt.Errorf("failed to execute grpc.NewClient(%q): %w", sockAddr, err)
	}

	c := new(client)
	c.conn = conn
	c.grpcClt = functionpb.NewUserDefinedFunctionClient(conn)
	return c, nil
}

// NewFromClient creates a new client object from a grpc client. This is used
// for testing.
func NewFromClient(c functionpb.UserDefinedFunctionClient) (Client, error) {
	return &client{grpcClt: c}, nil
}

// CloseConn closes the grpc client connection.
func (c *client) CloseConn(_ context.Context) error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// IsReady returns true if the grpc connection is ready to use.
func (c *client) IsReady(ctx context.Context, in *emptypb.Empty) (bool, error) {
	resp, err := c.grpcClt.IsReady(ctx, in)
	if err != nil {
		return false, err
	}
	return resp.GetReady(), nil
}

// WaitUntilReady polls IsReady until the server answers or the context is
// done.
func (c *client) WaitUntilReady(ctx context.Context) error {
	log := logging.FromContext(ctx)
	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("waiting for the UDF server to be ready: %w", ctx.Err())
		default:
			if _, err := c.IsReady(ctx, &emptypb.Empty{}); err == nil {
				return nil
			} else {
				log.Warnf("UDF server is not ready: %v", err)
			}
			time.Sleep(100 * time.Millisecond)
		}
	}
}

// MapFn applies the user defined function to one datum element. The routing
// key is attached as call metadata, not smuggled into the payload.
func (c *client) MapFn(ctx context.Context, key string, datum *functionpb.Datum) (*functionpb.DatumList, error) {
	mdCtx := metadata.AppendToOutgoingContext(ctx, function.DatumKey, key)
	datumList, err := c.grpcClt.MapFn(mdCtx, datum)
	if err != nil {
		return nil, sdkerror.ToUDFErr("c.grpcClt.MapFn", err)
	}
	return datumList, nil
}

// MapFnBatch issues one MapFn call per element concurrently. The i-th
// response corresponds to the i-th request; there is no ordering guarantee
// between the calls themselves.
func (c *client) MapFnBatch(ctx context.Context, key string, datums []*functionpb.Datum) ([]*functionpb.DatumList, error) {
	var eg errgroup.Group
	results := make([]*functionpb.DatumList, len(datums))
	for i, d := range datums {
		i, d := i, d
		eg.Go(func() error {
			resp, err := c.MapFn(ctx, key, d)
			if err != nil {
				return err
			}
			results[i] = resp
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// ReduceFn applies a reduce function to a datum stream. The current protocol
// rejects it with an Unimplemented status, which is surfaced as-is.
func (c *client) ReduceFn(ctx context.Context, datums []*functionpb.Datum) (*functionpb.DatumList, error) {
	stream, err := c.grpcClt.ReduceFn(ctx)
	if err != nil {
		return nil, sdkerror.ToUDFErr("c.grpcClt.ReduceFn", err)
	}
	for _, d := range datums {
		if err := stream.Send(d); err == io.EOF {
			// the server already terminated the call; the real status
			// comes from CloseAndRecv
			break
		} else if err != nil {
			return nil, sdkerror.ToUDFErr("c.grpcClt.ReduceFn stream.Send", err)
		}
	}
	datumList, err := stream.CloseAndRecv()
	if err != nil {
		return nil, sdkerror.ToUDFErr("c.grpcClt.ReduceFn stream.CloseAndRecv", err)
	}
	return datumList, nil
}
