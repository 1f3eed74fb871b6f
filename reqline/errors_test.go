package reqline

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKind(t *testing.T) {
	tcs := []struct {
		err  error
		want string
	}{
		{nil, "ok"},
		{ErrReadTimeout, "read_timeout"},
		{ErrWriteTimeout, "write_timeout"},
		{ErrConnectionClosed, "connection_closed"},
		{ErrRequestTooLarge, "request_too_large"},
		{ErrMissingMethod, "missing_method"},
		{ErrMissingPath, "missing_path"},
		{&UnsupportedMethodError{Method: "POST"}, "unsupported_method"},
		{fmt.Errorf("%w: %q", ErrMalformedHeader, "x"), "malformed_header"},
		{ErrInvalidStatus, "invalid_status"},
		{ErrResponseConsumed, "response_consumed"},
		{&IOError{Op: "read", Err: errors.New("reset")}, "io"},
		{context.Canceled, "canceled"},
		{errors.New("anything else"), "handler"},
	}
	for _, tc := range tcs {
		require.Equal(t, tc.want, Kind(tc.err), "%v", tc.err)
	}
}

func TestIOError(t *testing.T) {
	cause := errors.New("connection reset by peer")
	err := error(&IOError{Op: "write", Err: cause})
	require.ErrorIs(t, err, ErrIO)
	require.ErrorIs(t, err, cause)
	require.NotErrorIs(t, err, ErrConnectionClosed)
	require.EqualError(t, err, "reqline: write failed: connection reset by peer")
}

func TestUnsupportedMethodError(t *testing.T) {
	err := error(&UnsupportedMethodError{Method: "POST"})
	require.ErrorIs(t, err, ErrUnsupportedMethod)
	require.NotErrorIs(t, err, ErrMissingMethod)
}
