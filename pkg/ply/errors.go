package ply

import "fmt"

// StructuralError reports a malformed magic marker or header: wrong
// format token, unknown property type, unknown directive, or a property
// declared before any element. Structural failures abort the whole
// parse; no partial schema is ever returned.
type StructuralError struct {
	Message string
}

func (e *StructuralError) Error() string {
	return e.Message
}

// TruncationError reports a stream that ended before the header
// terminator was found, or before the declared payload was complete.
type TruncationError struct {
	Message string
}

func (e *TruncationError) Error() string {
	return e.Message
}

func structuralf(format string, args ...interface{}) error {
	return &StructuralError{Message: fmt.Sprintf(format, args...)}
}
