package reqline

import (
	"context"
	"errors"
	"fmt"

	"dqx0.com/go/framing/reqline/internal/http1"
)

var (
	ErrReadTimeout       = http1.ErrReadTimeout
	ErrWriteTimeout      = http1.ErrWriteTimeout
	ErrIO                = http1.ErrIO
	ErrConnectionClosed  = http1.ErrConnectionClosed
	ErrRequestTooLarge   = http1.ErrRequestTooLarge
	ErrMissingMethod     = errors.New("reqline: missing method")
	ErrMissingPath       = errors.New("reqline: missing path")
	ErrUnsupportedMethod = errors.New("reqline: unsupported method")
	ErrMalformedHeader   = errors.New("reqline: malformed header")
	ErrInvalidStatus     = errors.New("reqline: invalid status")
	ErrResponseConsumed  = errors.New("reqline: response already written")
	ErrServerClosed      = errors.New("reqline: server closed")
)

// IOError carries the underlying cause of a failed read or write.
type IOError = http1.IOError

// UnsupportedMethodError reports a method token outside the supported set.
type UnsupportedMethodError struct {
	Method string
}

func (e *UnsupportedMethodError) Error() string {
	return fmt.Sprintf("reqline: unsupported method: %q", e.Method)
}

func (e *UnsupportedMethodError) Is(target error) bool { return target == ErrUnsupportedMethod }

// Kind returns a stable label for err, used in logs and metrics.
func Kind(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrReadTimeout):
		return "read_timeout"
	case errors.Is(err, ErrWriteTimeout):
		return "write_timeout"
	case errors.Is(err, ErrConnectionClosed):
		return "connection_closed"
	case errors.Is(err, ErrRequestTooLarge):
		return "request_too_large"
	case errors.Is(err, ErrMissingMethod):
		return "missing_method"
	case errors.Is(err, ErrMissingPath):
		return "missing_path"
	case errors.Is(err, ErrUnsupportedMethod):
		return "unsupported_method"
	case errors.Is(err, ErrMalformedHeader):
		return "malformed_header"
	case errors.Is(err, ErrInvalidStatus):
		return "invalid_status"
	case errors.Is(err, ErrResponseConsumed):
		return "response_consumed"
	case errors.Is(err, ErrIO):
		return "io"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "handler"
	}
}
