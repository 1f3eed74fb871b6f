package http1

import (
	"errors"
	"fmt"
	"net"
	"os"
)

var (
	ErrReadTimeout      = errors.New("reqline: read timeout")
	ErrWriteTimeout     = errors.New("reqline: write timeout")
	ErrConnectionClosed = errors.New("reqline: connection closed")
	ErrRequestTooLarge  = errors.New("reqline: request too large")
	ErrIO               = errors.New("reqline: i/o error")
)

// IOError wraps a transport failure that is neither a deadline expiry nor
// an orderly close.
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("reqline: %s failed", e.Op)
	}
	return fmt.Sprintf("reqline: %s failed: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

func (e *IOError) Is(target error) bool { return target == ErrIO }

func isTimeout(err error) bool {
	if errors.Is(err, os.ErrDeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
