package reqline

// Header maps header names to values. Names are kept exactly as received;
// a later value for the same name replaces the earlier one.
type Header map[string]string

func (h Header) Get(key string) (string, bool) {
	if h == nil {
		return "", false
	}
	v, ok := h[key]
	return v, ok
}

// Set stores value under key and returns the value it replaced, if any.
func (h Header) Set(key, value string) (string, bool) {
	prev, ok := h[key]
	h[key] = value
	return prev, ok
}

func (h Header) Del(key string) {
	if h == nil {
		return
	}
	delete(h, key)
}

// Clone returns a copy of h. The copy of a nil Header is an empty Header.
func (h Header) Clone() Header {
	c := make(Header, len(h))
	for k, v := range h {
		c[k] = v
	}
	return c
}
