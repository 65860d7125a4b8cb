package function

import (
	"context"
	"runtime/debug"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"

	functionpb "github.com/udflow/udflow-go/pkg/apis/proto/function/v1"
	"github.com/udflow/udflow-go/pkg/shared/logging"
)

const (
	// DatumKey is the gRPC metadata key under which the routing key of an
	// element travels, out of band of the payload.
	DatumKey = "x-udflow-datum-key"
)

// Service implements the proto gen server interface and contains the map
// operation handler.
type Service struct {
	functionpb.UnimplementedUserDefinedFunctionServer
	Handler MapHandler
}

// NewService creates a Service with the given map handler.
func NewService(h MapHandler) *Service {
	return &Service{Handler: h}
}

// MapFn applies the user defined function to each datum element. The routing
// key is read from the call metadata; if the entry is absent the key is the
// empty string, and if the transport delivered more than one value the first
// one wins.
func (s *Service) MapFn(ctx context.Context, d *functionpb.Datum) (*functionpb.DatumList, error) {
	var key string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if vals := md.Get(DatumKey); len(vals) > 0 {
			key = vals[0]
		}
	}

	hd := NewHandlerDatum(
		d.GetValue(),
		d.GetEventTime().GetEventTime().AsTime(),
		d.GetWatermark().GetWatermark().AsTime(),
	)
	messages := s.invokeHandler(ctx, key, hd)

	elements := make([]*functionpb.Datum, 0, len(messages))
	for _, m := range messages.Items() {
		elements = append(elements, &functionpb.Datum{Key: m.Key, Value: m.Value})
	}
	return &functionpb.DatumList{Elements: elements}, nil
}

// invokeHandler runs the user defined function inside a failure boundary.
// A panicking handler must never fail the RPC or take the server down; the
// element is dropped on the floor and the panic is logged with its stack.
func (s *Service) invokeHandler(ctx context.Context, key string, hd Datum) (messages Messages) {
	defer func() {
		if r := recover(); r != nil {
			logging.FromContext(ctx).Errorw("UDF handler panicked, dropping message on the floor",
				zap.Any("error", r), zap.String("stack", string(debug.Stack())))
			messages = MessagesBuilder()
		}
	}()
	return s.Handler.Map(ctx, key, hd)
}

// ReduceFn applies a reduce function to a datum stream.
// It is deliberately not implemented; the stream is never consumed, so a
// caller can always distinguish "not implemented" from "no output".
func (s *Service) ReduceFn(stream functionpb.UserDefinedFunction_ReduceFnServer) error {
	return status.Error(codes.Unimplemented, "Method not implemented!")
}

// IsReady returns true to indicate the server is up and serving.
func (s *Service) IsReady(_ context.Context, _ *emptypb.Empty) (*functionpb.ReadyResponse, error) {
	return &functionpb.ReadyResponse{Ready: true}, nil
}
