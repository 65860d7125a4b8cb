package cat

import (
	"context"

	"github.com/udflow/udflow-go/pkg/function"
)

// New returns a map function that forwards every element unchanged.
func New() function.MapFunc {
	return func(ctx context.Context, key string, datum function.Datum) function.Messages {
		return function.MessagesBuilder().Append(function.MessageToAll(datum.Value()))
	}
}
