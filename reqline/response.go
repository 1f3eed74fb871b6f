package reqline

import (
	"time"

	"dqx0.com/go/framing/reqline/internal/http1"
)

// DeadlineWriter is the write half of a connection.
type DeadlineWriter = http1.DeadlineWriter

// Response is a status line plus optional headers. It can be written once.
type Response struct {
	status Status
	header Header
	sent   bool
}

func NewResponse(status Status) *Response {
	return &Response{status: status, header: Header{}}
}

func (r *Response) Status() Status { return r.status }

// SetHeader sets a response header and returns the value it replaced.
func (r *Response) SetHeader(name, value string) (string, bool) {
	return r.header.Set(name, value)
}

// Emit writes the response to conn, bounded by timeout, and consumes it.
// Any later call fails with ErrResponseConsumed.
func (r *Response) Emit(conn DeadlineWriter, timeout time.Duration) error {
	if r.sent {
		return ErrResponseConsumed
	}
	if !r.status.Valid() {
		return ErrInvalidStatus
	}
	r.sent = true
	w := &http1.Writer{Conn: conn, Timeout: timeout}
	return w.WriteResponse(r.status.Text(), r.header)
}
