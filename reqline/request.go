package reqline

import "fmt"

// Request is a parsed request head. It is built once per connection and
// is read-only afterwards.
type Request struct {
	method Method
	path   string
	header Header
}

// NewRequest builds a Request with no headers. m must be a supported method.
func NewRequest(m Method, path string) (*Request, error) {
	if !m.Valid() {
		return nil, &UnsupportedMethodError{Method: string(m)}
	}
	if path == "" {
		return nil, ErrMissingPath
	}
	return newRequest(m, path), nil
}

func newRequest(m Method, path string) *Request {
	return &Request{method: m, path: path, header: Header{}}
}

// setHeader is only used while the request is being parsed.
func (r *Request) setHeader(name, value string) (string, bool) {
	return r.header.Set(name, value)
}

func (r *Request) Method() Method { return r.method }

func (r *Request) Path() string { return r.path }

// Header returns the value received for name. Lookup is case-sensitive.
func (r *Request) Header(name string) (string, bool) { return r.header.Get(name) }

// Headers returns a copy of all received headers.
func (r *Request) Headers() Header { return r.header.Clone() }

func (r *Request) String() string {
	return fmt.Sprintf("%s %s (%d headers)", r.method, r.path, len(r.header))
}
