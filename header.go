package contentdisposition

import "net/http"

// ContentDisposition parses the Content-Disposition header from h
// with Parse. A missing header is an error wrapping ErrMissingInput.
// The header must not be repeated: more than one Content-Disposition
// line is an error wrapping ErrInvalidParameterFormat.
func ContentDisposition(h http.Header) (*Value, error) {
	lines := h.Values("Content-Disposition")
	switch len(lines) {
	case 0:
		return Parse("")
	case 1:
		return Parse(lines[0])
	default:
		return nil, newError(ErrInvalidParameterFormat, lines[1], -1)
	}
}

// SetContentDisposition replaces the Content-Disposition header in h
// with one built by Create. On error, h is left unchanged.
func SetContentDisposition(h http.Header, filename string, opts ...Option) error {
	v, err := Create(filename, opts...)
	if err != nil {
		return err
	}
	h.Set("Content-Disposition", v)
	return nil
}
