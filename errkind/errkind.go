// Package errkind classifies pipeline failures into three kinds so that
// callers can branch on the category of an error instead of matching
// message text: Type (an argument of the wrong shape), Value (the right
// type carrying invalid content) and Index (a position outside allocated
// bounds).
package errkind

import (
	"errors"
	"fmt"
)

// Kind identifies the category of a failure.
type Kind int

const (
	// Type indicates an argument of the wrong shape or type.
	Type Kind = iota

	// Value indicates an argument of the right type with invalid content,
	// such as a non-table element or a malformed grid.
	Value

	// Index indicates a position outside allocated bounds.
	Index
)

func (k Kind) String() string {
	switch k {
	case Type:
		return "type"
	case Value:
		return "value"
	case Index:
		return "index"
	}
	return "unknown"
}

// Error is a classified failure. Op names the operation that failed,
// such as "htmltable.Extract".
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a classified error from a message.
func New(kind Kind, op, msg string) *Error {
	return &Error{Kind: kind, Op: op, Err: errors.New(msg)}
}

// Newf creates a classified error from a format string.
func Newf(kind Kind, op, format string, args ...any) *Error {
	return &Error{Kind: kind, Op: op, Err: fmt.Errorf(format, args...)}
}

// Wrap classifies an existing error.
func Wrap(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// KindOf returns the kind carried by err, unwrapping as needed. The
// second return value is false when err carries no classification.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
