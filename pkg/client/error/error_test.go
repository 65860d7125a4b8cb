package error

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestUDFError(t *testing.T) {
	e := New(NonRetryable, "not retryable")
	assert.Equal(t, "NonRetryable: not retryable", e.Error())
	assert.Equal(t, NonRetryable, e.ErrorKind())
	assert.Equal(t, "not retryable", e.ErrorMessage())
}

func TestFromError(t *testing.T) {
	udfErr, ok := FromError(nil)
	assert.Nil(t, udfErr)
	assert.True(t, ok)

	udfErr, ok = FromError(New(Retryable, "try again"))
	assert.True(t, ok)
	assert.Equal(t, Retryable, udfErr.ErrorKind())

	udfErr, ok = FromError(fmt.Errorf("some random error"))
	assert.False(t, ok)
	assert.Equal(t, Unknown, udfErr.ErrorKind())
	assert.Equal(t, "some random error", udfErr.ErrorMessage())
}

func TestToUDFErr(t *testing.T) {
	assert.NoError(t, ToUDFErr("op", nil))

	tests := []struct {
		name string
		code codes.Code
		want ErrKind
	}{
		{"unavailable is retryable", codes.Unavailable, Retryable},
		{"deadline exceeded is retryable", codes.DeadlineExceeded, Retryable},
		{"aborted is retryable", codes.Aborted, Retryable},
		{"canceled", codes.Canceled, Canceled},
		{"unimplemented is non-retryable", codes.Unimplemented, NonRetryable},
		{"internal is non-retryable", codes.Internal, NonRetryable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ToUDFErr("op", status.Error(tt.code, "boom"))
			udfErr, ok := FromError(err)
			assert.True(t, ok)
			assert.Equal(t, tt.want, udfErr.ErrorKind())
			assert.Contains(t, udfErr.ErrorMessage(), "op")
		})
	}
}
