package capi

import (
	"errors"
	"fmt"
)

// Boundary error messages are part of the foreign contract: callers compare
// the strings they read back through LastError. Every message that can cross
// the boundary is defined here and nowhere else (enforced by internalcheck).
var (
	// ErrInvalidPointer reports that a required object pointer was nil or did
	// not refer to a live owned value.
	ErrInvalidPointer = errors.New("Invalid pointer")

	// ErrInvalidStringPointer reports that a required string pointer was nil,
	// or that its bytes did not decode as text.
	ErrInvalidStringPointer = errors.New("Invalid string pointer")

	// ErrInvalidString reports that input bytes contained an embedded NUL and
	// cannot form a C string.
	ErrInvalidString = errors.New("Invalid string")

	// ErrIndexOutOfBounds reports an index outside [0, len).
	ErrIndexOutOfBounds = errors.New("Index out of bounds")
)

// Error unifies failures from composed layers that report distinct error
// kinds. FlattenMismatched converts whichever layer failed into this type so
// the boundary only ever funnels one error representation.
type Error struct {
	Op  string // operation whose boundary call failed
	Err error  // underlying error from whichever layer failed
}

func (e *Error) Error() string {
	return fmt.Sprintf("capi.%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
