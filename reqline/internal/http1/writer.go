package http1

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"
)

// DeadlineWriter is the write half of a connection.
type DeadlineWriter interface {
	io.Writer
	SetWriteDeadline(t time.Time) error
}

// Writer emits a status line and optional headers under a write deadline.
type Writer struct {
	Conn    DeadlineWriter
	Timeout time.Duration

	bw *bufio.Writer
}

// WriteResponse writes "HTTP/1.1 <status>\r\n", any headers sorted by name,
// and the blank line, then flushes. status is the status text including the
// code, e.g. "200 OK".
func (w *Writer) WriteResponse(status string, hdr map[string]string) error {
	if w.Timeout > 0 {
		if err := w.Conn.SetWriteDeadline(time.Now().Add(w.Timeout)); err != nil {
			return &IOError{Op: "write", Err: err}
		}
	}
	if w.bw == nil {
		w.bw = bufio.NewWriter(w.Conn)
	}
	if err := writeHead(w.bw, status, hdr); err != nil {
		return writeErr(err)
	}
	if err := w.bw.Flush(); err != nil {
		return writeErr(err)
	}
	return nil
}

func writeHead(bw *bufio.Writer, status string, hdr map[string]string) error {
	if _, err := fmt.Fprintf(bw, "HTTP/1.1 %s\r\n", status); err != nil {
		return err
	}
	names := make([]string, 0, len(hdr))
	for name := range hdr {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		field, ok := headerField(name, hdr[name])
		if !ok {
			continue
		}
		if _, err := bw.WriteString(field); err != nil {
			return err
		}
	}
	_, err := bw.Write(crlf)
	return err
}

// headerField renders one "name: value" line. Fields whose name is not an
// RFC 9110 token are dropped; control bytes other than TAB are removed from
// the value so it cannot end the line early.
func headerField(name, value string) (string, bool) {
	if name == "" {
		return "", false
	}
	for i := 0; i < len(name); i++ {
		if !isTokenByte(name[i]) {
			return "", false
		}
	}
	var b strings.Builder
	b.Grow(len(name) + len(value) + 4)
	b.WriteString(name)
	b.WriteString(": ")
	for i := 0; i < len(value); i++ {
		if c := value[i]; c == '\t' || (c >= 0x20 && c != 0x7f) {
			b.WriteByte(c)
		}
	}
	b.WriteString("\r\n")
	return b.String(), true
}

func isTokenByte(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("!#$%&'*+-.^_`|~", c) >= 0
}

func writeErr(err error) error {
	if isTimeout(err) {
		return ErrWriteTimeout
	}
	return &IOError{Op: "write", Err: err}
}
