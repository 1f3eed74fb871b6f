package http1

import "bytes"

var crlf = []byte("\r\n")

// IndexCRLF returns the offset of the first CR LF in b, or -1. Every
// position is considered, including a terminator in the final two bytes.
func IndexCRLF(b []byte) int {
	if len(b) < len(crlf) {
		return -1
	}
	return bytes.Index(b, crlf)
}

// NextLine splits off the first CRLF-terminated line. The terminator is
// dropped from line and rest starts right after it. ok is false when b
// holds no complete line.
func NextLine(b []byte) (line, rest []byte, ok bool) {
	i := IndexCRLF(b)
	if i < 0 {
		return nil, b, false
	}
	return b[:i], b[i+len(crlf):], true
}

// HeadLen returns the length of the request head in b (request line,
// header lines and the blank line ending them), or -1 if the blank line
// has not been seen yet.
func HeadLen(b []byte) int {
	rest := b
	first := true
	for {
		line, r, ok := NextLine(rest)
		if !ok {
			return -1
		}
		rest = r
		if len(line) == 0 && !first {
			return len(b) - len(rest)
		}
		first = false
	}
}

// RequestLineLen returns the length of the request line including its
// terminator, or -1 if it is incomplete.
func RequestLineLen(b []byte) int {
	i := IndexCRLF(b)
	if i < 0 {
		return -1
	}
	return i + len(crlf)
}
