package builtin

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/udflow/udflow-go/pkg/function"
)

func TestGetExecutors(t *testing.T) {
	t.Run("test good", func(t *testing.T) {
		builtins := []Builtin{
			{
				Name: "cat",
			},
			{
				Name:   "filter",
				KWArgs: map[string]string{"expression": `json(payload).a=="b"`},
			},
		}
		for _, b := range builtins {
			e, err := b.excutor()
			assert.NoError(t, err)
			assert.NotNil(t, e)
		}
	})

	t.Run("test bad", func(t *testing.T) {
		b := &Builtin{
			Name: "catt",
		}
		_, err := b.excutor()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unrecognized function")
	})
}

func Test_Start(t *testing.T) {
	t.Setenv(function.EnvSockAddr, filepath.Join(t.TempDir(), "function.sock"))
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	b := &Builtin{Name: "cat"}
	assert.NoError(t, b.Start(ctx))
}
