package contentdisposition

import (
	"fmt"
	"strconv"
)

// Error is the kind of failure reported by this package.
// Use errors.Is to test an error returned by Parse, Create or Format
// against one of the Err constants.
type Error string

func (e Error) Error() string { return string(e) }

// Parse errors.
const (
	ErrMissingInput              Error = "argument string is required"
	ErrInvalidTypeFormat         Error = "invalid type format"
	ErrInvalidParameterFormat    Error = "invalid parameter format"
	ErrDuplicateParameter        Error = "invalid duplicate parameter"
	ErrInvalidExtendedFieldValue Error = "invalid extended field value"
	ErrUnsupportedCharset        Error = "unsupported charset in extended field"
)

// Format errors.
const (
	ErrInvalidArgument Error = "invalid argument"
	ErrInvalidType     Error = "invalid type"
)

// A ValueError describes a failure and the value that caused it.
type ValueError struct {
	Err    Error  // kind of failure
	Value  string // offending value: remaining input, parameter name, charset...
	Offset int    // byte offset into the parsed header, or -1
}

func (e *ValueError) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("contentdisposition: %s: %s", e.Err, strconv.Quote(e.Value))
	}
	return fmt.Sprintf("contentdisposition: %s at offset %d: %s",
		e.Err, e.Offset, strconv.Quote(e.Value))
}

func (e *ValueError) Unwrap() error { return e.Err }

func newError(kind Error, value string, offset int) error {
	return &ValueError{Err: kind, Value: value, Offset: offset}
}
