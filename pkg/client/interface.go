package client

import (
	"context"

	"google.golang.org/protobuf/types/known/emptypb"

	functionpb "github.com/udflow/udflow-go/pkg/apis/proto/function/v1"
)

// Client contains the methods to call a UDF server. It is the
// orchestrator-side half of the UserDefinedFunction contract.
type Client interface {
	// CloseConn closes the gRPC client connection.
	CloseConn(ctx context.Context) error
	// IsReady returns true if the UDF server is ready to accept calls.
	IsReady(ctx context.Context, in *emptypb.Empty) (bool, error)
	// WaitUntilReady blocks until the UDF server answers IsReady, or the
	// context is done.
	WaitUntilReady(ctx context.Context) error
	// MapFn applies the user defined function to one datum element, routing
	// it under the given key.
	MapFn(ctx context.Context, key string, datum *functionpb.Datum) (*functionpb.DatumList, error)
	// MapFnBatch applies the user defined function to each element of the
	// batch concurrently, preserving input order in the returned lists.
	MapFnBatch(ctx context.Context, key string, datums []*functionpb.Datum) ([]*functionpb.DatumList, error)
	// ReduceFn applies a reduce function to a datum stream.
	ReduceFn(ctx context.Context, datums []*functionpb.Datum) (*functionpb.DatumList, error)
}
