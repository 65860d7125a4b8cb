// Package function provides an interface to write a user defined function
// (UDF) in Go which will be exposed over gRPC on a Unix domain socket.
//
// A UDF receives one datum element per call together with its routing key,
// and returns zero or more messages:
//
//	func handle(ctx context.Context, key string, datum function.Datum) function.Messages {
//		return function.MessagesBuilder().Append(function.MessageTo(key, datum.Value()))
//	}
//
//	func main() {
//		_ = function.NewServer(function.MapFunc(handle)).Start(context.Background())
//	}
//
// A panicking handler never fails the call; the offending element is
// dropped and logged, and the server keeps serving.
package function
