package http1

import (
	"errors"
	"io"
	"time"
)

// DeadlineReader is the read half of a connection.
type DeadlineReader interface {
	io.Reader
	SetReadDeadline(t time.Time) error
}

// Reader acquires request bytes into a fixed-capacity buffer. Buf is never
// grown; once it is full further reads fail with ErrRequestTooLarge.
type Reader struct {
	Conn    DeadlineReader
	Buf     []byte
	Timeout time.Duration

	n      int
	closed bool
}

// Buffered returns the bytes acquired so far.
func (r *Reader) Buffered() []byte { return r.Buf[:r.n] }

// Fill performs one deadline-bounded read into the unused part of Buf and
// returns the number of bytes added.
func (r *Reader) Fill() (int, error) {
	if r.closed {
		return 0, ErrConnectionClosed
	}
	if r.n >= len(r.Buf) {
		return 0, ErrRequestTooLarge
	}
	if r.Timeout > 0 {
		if err := r.Conn.SetReadDeadline(time.Now().Add(r.Timeout)); err != nil {
			return 0, &IOError{Op: "read", Err: err}
		}
	}
	n, err := r.Conn.Read(r.Buf[r.n:])
	r.n += n
	if err != nil && errors.Is(err, io.EOF) {
		// Deliver what came with the EOF; report the close on the next call.
		r.closed = true
		err = nil
	}
	if n > 0 {
		return n, nil
	}
	switch {
	case err == nil:
		r.closed = true
		return 0, ErrConnectionClosed
	case isTimeout(err):
		return 0, ErrReadTimeout
	default:
		return 0, &IOError{Op: "read", Err: err}
	}
}

// ReadHead reads until the buffered bytes hold a complete request head.
//
// Running out of buffer before the head is complete is ErrRequestTooLarge,
// except when the buffer holds exactly one terminated request line and
// requireHeaders is not set. If the peer closes or the deadline expires
// once the request line is complete, the bytes so far are returned unless
// requireHeaders is set.
func (r *Reader) ReadHead(requireHeaders bool) ([]byte, error) {
	for {
		buf := r.Buffered()
		if n := HeadLen(buf); n >= 0 {
			return buf[:n], nil
		}
		if _, err := r.Fill(); err != nil {
			if errors.Is(err, ErrRequestTooLarge) && !requireHeaders && RequestLineLen(buf) == len(buf) {
				return buf, nil
			}
			if requireHeaders || errors.Is(err, ErrRequestTooLarge) {
				return nil, err
			}
			if RequestLineLen(buf) < 0 {
				return nil, err
			}
			if errors.Is(err, ErrConnectionClosed) || errors.Is(err, ErrReadTimeout) {
				return buf, nil
			}
			return nil, err
		}
	}
}
