// Package builtin provides map functions that ship with the SDK and can be
// served without writing any user code.
package builtin

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/udflow/udflow-go/pkg/builtin/cat"
	"github.com/udflow/udflow-go/pkg/builtin/filter"
	"github.com/udflow/udflow-go/pkg/function"
	"github.com/udflow/udflow-go/pkg/shared/logging"
)

type Builtin struct {
	Name   string
	Args   []string
	KWArgs map[string]string
}

// Start serves the named builtin function until the context is done.
func (b *Builtin) Start(ctx context.Context) error {
	log := logging.FromContext(ctx)
	log.Infow("Start a builtin function", zap.Any("name", b.Name), zap.Strings("args", b.Args), zap.Any("kwargs", b.KWArgs))
	excutor, err := b.excutor()
	if err != nil {
		return err
	}
	return function.NewServer(excutor).Start(ctx)
}

func (b *Builtin) excutor() (function.MapFunc, error) {
	// TODO: deal with args later
	switch b.Name {
	case "cat":
		return cat.New(), nil
	case "filter":
		return filter.New(b.KWArgs)
	default:
		return nil, fmt.Errorf("unrecognized function %q", b.Name)
	}
}
