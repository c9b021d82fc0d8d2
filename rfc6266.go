package contentdisposition

import (
	"slices"
	"strings"
)

// A Value is a parsed Content-Disposition header (RFC 6266).
type Value struct {
	Type   string            // disposition type, lowercased
	Params map[string]string // keys are lowercased, without the asterisk of ext-parameters
}

// Filename returns the 'filename' parameter of v, if any.
func (v *Value) Filename() string {
	return v.Params["filename"]
}

// Parse parses the value of a Content-Disposition header.
//
// Any 'filename*' parameter is decoded from RFC 5987 encoding and stored
// under 'filename', overriding a plain 'filename' wherever it appears.
// Similarly for any other parameter whose name ends in an asterisk.
// RFC 2231 continuations such as 'filename*0' are kept as they are.
//
// Parse is strict. Anything that does not match the grammar,
// including duplicate parameters, is an error wrapping one of
// ErrMissingInput, ErrInvalidTypeFormat, ErrInvalidParameterFormat,
// ErrDuplicateParameter, ErrInvalidExtendedFieldValue or
// ErrUnsupportedCharset.
func Parse(v string) (*Value, error) {
	if v == "" {
		return nil, newError(ErrMissingInput, v, -1)
	}
	dtype, rest := consumeToken(v)
	rest = skipWS(rest)
	if dtype == "" || (rest != "" && rest[0] != ';') {
		return nil, newError(ErrInvalidTypeFormat, v, 0)
	}

	r := &Value{
		Type:   strings.ToLower(dtype),
		Params: make(map[string]string),
	}
	seen := make(map[string]bool)
	extended := make(map[string]bool)
	for rest != "" {
		offset := len(v) - len(rest)
		name, value, quoted, next, ok := consumeParam(rest)
		if !ok {
			return nil, newError(ErrInvalidParameterFormat, rest, offset)
		}
		rest = next

		name = strings.ToLower(name)
		if seen[name] {
			return nil, newError(ErrDuplicateParameter, name, offset)
		}
		seen[name] = true

		if base, ok := extendedName(name); ok {
			if quoted {
				return nil, newError(ErrInvalidExtendedFieldValue, value, offset)
			}
			text, _, err := decodeExtValue(value, offset)
			if err != nil {
				return nil, err
			}
			r.Params[base] = text
			extended[base] = true
			continue
		}
		if extended[name] {
			continue
		}
		if quoted {
			value = unquote(value)
		}
		r.Params[name] = value
	}
	return r, nil
}

// Create builds a Content-Disposition header for a file named filename.
// Only the last element of the slash-separated filename is used.
// If filename is empty, the header has no parameters.
//
// A filename of printable ISO-8859-1 characters is sent in a 'filename'
// parameter. Any other filename is sent in a 'filename*' parameter
// in RFC 5987 encoding, along with a 'filename' fallback for old clients
// as controlled by WithFallback and WithFallbackName. A filename that
// contains percent escapes gets a 'filename*' as well, so that clients
// that unescape 'filename' still see the right name.
//
// Errors wrap ErrInvalidType or ErrInvalidArgument.
func Create(filename string, opts ...Option) (string, error) {
	o := newOptions(opts)
	v := &Value{Type: o.dtype}
	if filename != "" {
		params, err := createParams(filename, o)
		if err != nil {
			return "", err
		}
		v.Params = params
	}
	return Format(v)
}

func createParams(filename string, o *options) (map[string]string, error) {
	if o.fallbackName != nil && !isLatin1(*o.fallbackName) {
		return nil, newError(ErrInvalidArgument, *o.fallbackName, -1)
	}

	name := basename(filename)
	quotable := isLatin1(name)
	var fallback string
	var hasFallback bool
	switch {
	case o.fallbackName != nil:
		fallback = basename(*o.fallbackName)
		hasFallback = fallback != name
	case o.fallback:
		fallback = toLatin1.String(name)
		hasFallback = fallback != name
	}

	params := make(map[string]string, 2)
	if name != "" && (hasFallback || !quotable || hasPctEscape(name)) {
		params["filename*"] = name
	}
	if hasFallback {
		params["filename"] = fallback
	} else if quotable {
		params["filename"] = name
	}
	return params, nil
}

// Format serializes v into a Content-Disposition header.
//
// Parameter names are lowercased and written in ascending order.
// A parameter whose name ends in an asterisk, like 'filename*', is written
// in RFC 5987 encoding; any other parameter is written as a quoted-string.
//
// An invalid disposition type is an error wrapping ErrInvalidType.
// A parameter name that is not a token or that is the same as another
// except for case, an empty value of an asterisk parameter, or a plain
// value with control characters, is an error wrapping ErrInvalidArgument.
func Format(v *Value) (string, error) {
	if v == nil || !isToken(v.Type) {
		var dtype string
		if v != nil {
			dtype = v.Type
		}
		return "", newError(ErrInvalidType, dtype, -1)
	}

	params := make(map[string]string, len(v.Params))
	names := make([]string, 0, len(v.Params))
	for name, value := range v.Params {
		if !isToken(name) {
			return "", newError(ErrInvalidArgument, name, -1)
		}
		lname := strings.ToLower(name)
		if _, dup := params[lname]; dup {
			return "", newError(ErrInvalidArgument, name, -1)
		}
		params[lname] = value
		names = append(names, lname)
	}
	slices.Sort(names)

	b := &strings.Builder{}
	write(b, strings.ToLower(v.Type))
	for _, name := range names {
		value := params[name]
		write(b, "; ", name, "=")
		if _, ok := extendedName(name); ok {
			if value == "" {
				return "", newError(ErrInvalidArgument, name, -1)
			}
			writeExtValue(b, value, "")
			continue
		}
		if hasCTL(value) {
			return "", newError(ErrInvalidArgument, value, -1)
		}
		writeQuoted(b, value)
	}
	return b.String(), nil
}

func hasCTL(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] == 0x7F {
			return true
		}
	}
	return false
}
