package reqline

import "strconv"

// Status is the outcome reported on the status line.
type Status int

const (
	StatusOK                  Status = 200
	StatusNoContent           Status = 204
	StatusBadRequest          Status = 400
	StatusNotFound            Status = 404
	StatusMethodNotAllowed    Status = 405
	StatusInternalServerError Status = 500
)

var statusText = map[Status]string{
	StatusOK:                  "OK",
	StatusNoContent:           "No Content",
	StatusBadRequest:          "Bad Request",
	StatusNotFound:            "Not Found",
	StatusMethodNotAllowed:    "Method Not Allowed",
	StatusInternalServerError: "Internal Server Error",
}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	_, ok := statusText[s]
	return ok
}

// Code returns the numeric status code.
func (s Status) Code() int { return int(s) }

// Text returns the code and reason phrase, e.g. "404 Not Found". Unknown
// statuses return "".
func (s Status) Text() string {
	reason, ok := statusText[s]
	if !ok {
		return ""
	}
	return strconv.Itoa(int(s)) + " " + reason
}

// Line returns the full status line without its terminator.
func (s Status) Line() string {
	if !s.Valid() {
		return ""
	}
	return "HTTP/1.1 " + s.Text()
}

func (s Status) String() string {
	if t := s.Text(); t != "" {
		return t
	}
	return "Status(" + strconv.Itoa(int(s)) + ")"
}

// Statuses returns every known status in ascending order.
func Statuses() []Status {
	return []Status{
		StatusOK,
		StatusNoContent,
		StatusBadRequest,
		StatusNotFound,
		StatusMethodNotAllowed,
		StatusInternalServerError,
	}
}
