package reqline

import (
	"fmt"
	"strings"

	"dqx0.com/go/framing/reqline/internal/http1"
)

// ParseRequestLine parses "METHOD SP PATH [SP VERSION]". Tokens are
// separated by runs of ASCII whitespace; tokens after the path are ignored
// and may be absent.
func ParseRequestLine(line string) (*Request, error) {
	fields := strings.FieldsFunc(line, isASCIISpace)
	if len(fields) == 0 {
		return nil, ErrMissingMethod
	}
	m, err := ParseMethod(fields[0])
	if err != nil {
		return nil, err
	}
	if len(fields) < 2 {
		return nil, ErrMissingPath
	}
	return newRequest(m, fields[1]), nil
}

func isASCIISpace(r rune) bool {
	switch r {
	case ' ', '\t', '\v', '\f', '\r', '\n':
		return true
	}
	return false
}

// ParseHeaderLine splits a header line at its first colon. The name is
// returned as received; the value is trimmed of surrounding whitespace.
func ParseHeaderLine(line string) (name, value string, err error) {
	i := strings.IndexByte(line, ':')
	if i < 0 {
		return "", "", fmt.Errorf("%w: %q", ErrMalformedHeader, line)
	}
	return line[:i], strings.TrimSpace(line[i+1:]), nil
}

// ParseRequest parses a request head: the request line, then header lines
// up to the first blank line. A head without any CRLF is taken as a bare
// request line, and an unterminated trailing header fragment is ignored.
func ParseRequest(head []byte) (*Request, error) {
	line, rest, ok := http1.NextLine(head)
	if !ok {
		line, rest = head, nil
	}
	req, err := ParseRequestLine(string(line))
	if err != nil {
		return nil, err
	}
	for {
		line, rest, ok = http1.NextLine(rest)
		if !ok || len(line) == 0 {
			return req, nil
		}
		name, value, err := ParseHeaderLine(string(line))
		if err != nil {
			return nil, err
		}
		req.setHeader(name, value)
	}
}
