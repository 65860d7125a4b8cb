package filter

import (
	"context"
	"fmt"

	"github.com/udflow/udflow-go/pkg/function"
	"github.com/udflow/udflow-go/pkg/shared/expr"
	"github.com/udflow/udflow-go/pkg/shared/logging"
)

type filter struct {
	expression string
}

// New returns a map function that forwards an element when the configured
// expression evaluates to true against its payload and drops it otherwise.
func New(args map[string]string) (function.MapFunc, error) {
	expression, existing := args["expression"]
	if !existing {
		return nil, fmt.Errorf("missing \"expression\"")
	}
	f := filter{
		expression: expression,
	}

	return func(ctx context.Context, key string, datum function.Datum) function.Messages {
		log := logging.FromContext(ctx)
		resultMsg, err := f.apply(datum.Value())
		if err != nil {
			log.Errorf("Filter map function apply got an error: %v", err)
		}
		return function.MessagesBuilder().Append(resultMsg)
	}, nil
}

func (f filter) apply(msg []byte) (function.Message, error) {
	result, err := expr.EvalBool(f.expression, msg)
	if err != nil {
		return function.MessageToDrop(), err
	}
	if result {
		return function.MessageToAll(msg), nil
	}
	return function.MessageToDrop(), nil
}
