// Package error classifies failures of UDF calls so the caller can decide
// whether re-issuing the call makes sense.
package error

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrKind represents if the error is retryable.
type ErrKind int16

const (
	Retryable    ErrKind = iota // The error is retryable
	NonRetryable                // The error is non-retryable
	Canceled                    // Request canceled
	Unknown                     // Unknown err kind
)

func (ek ErrKind) String() string {
	switch ek {
	case Retryable:
		return "Retryable"
	case NonRetryable:
		return "NonRetryable"
	case Canceled:
		return "Canceled"
	default:
		return "Unknown"
	}
}

// UDFError is returned to the caller and indicates how the UDF call failed.
type UDFError struct {
	errKind    ErrKind
	errMessage string
}

func New(kind ErrKind, msg string) *UDFError {
	return &UDFError{
		errKind:    kind,
		errMessage: msg,
	}
}

func (e *UDFError) Error() string {
	return fmt.Sprintf("%s: %s", e.errKind, e.errMessage)
}

func (e *UDFError) ErrorKind() ErrKind {
	return e.errKind
}

func (e *UDFError) ErrorMessage() string {
	return e.errMessage
}

// FromError gets error information from an UDFError.
func FromError(err error) (udfErr *UDFError, ok bool) {
	if err == nil {
		return nil, true
	}
	if se, ok := err.(interface {
		ErrorKind() ErrKind
		ErrorMessage() string
	}); ok {
		return &UDFError{se.ErrorKind(), se.ErrorMessage()}, true
	}
	return &UDFError{Unknown, err.Error()}, false
}

// ToUDFErr converts a gRPC call error into an UDFError, classifying the
// status code into an error kind.
func ToUDFErr(name string, err error) error {
	if err == nil {
		return nil
	}
	statusCode, ok := status.FromError(err)
	// If it is not a standard gRPC error, we classify it as unknown.
	if !ok {
		if errors.Is(err, context.Canceled) {
			return &UDFError{Canceled, fmt.Sprintf("%s: %v", name, err)}
		}
		return &UDFError{Unknown, fmt.Sprintf("%s: %v", name, err)}
	}
	switch statusCode.Code() {
	case codes.OK:
		return nil
	case codes.DeadlineExceeded, codes.Unavailable, codes.Aborted:
		return &UDFError{Retryable, fmt.Sprintf("%s: %s", name, statusCode.Message())}
	case codes.Canceled:
		return &UDFError{Canceled, fmt.Sprintf("%s: %s", name, statusCode.Message())}
	default:
		return &UDFError{NonRetryable, fmt.Sprintf("%s: %s", name, statusCode.Message())}
	}
}
