package reqline

// Method is a supported request method. The zero Method is not valid and
// is never produced by ParseMethod.
type Method string

const MethodGet Method = "GET"

// ParseMethod converts a request-line token into a Method. Tokens are
// matched case-sensitively.
func ParseMethod(token string) (Method, error) {
	switch Method(token) {
	case MethodGet:
		return MethodGet, nil
	default:
		return "", &UnsupportedMethodError{Method: token}
	}
}

// Valid reports whether m is one of the supported methods.
func (m Method) Valid() bool {
	_, err := ParseMethod(string(m))
	return err == nil
}

func (m Method) String() string { return string(m) }
