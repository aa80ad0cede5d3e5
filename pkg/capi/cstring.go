package capi

// #include <stdlib.h>
import "C"

import (
	"strings"
	"unicode/utf8"
	"unsafe"
)

// Text constrains the inputs that can become a C string.
type Text interface {
	~string | ~[]byte
}

// StringToPtr allocates a NUL-terminated C copy of s and returns an owning
// pointer to it. If s contains an embedded NUL it cannot form a C string:
// ErrInvalidString is recorded under context and nil is returned.
func StringToPtr[S Text](context string, s S) unsafe.Pointer {
	str := string(s)
	if strings.IndexByte(str, 0) >= 0 {
		SetLastError(context, ErrInvalidString)
		return nil
	}
	return unsafe.Pointer(C.CString(str))
}

// ReclaimString exchanges a string pointer produced by StringToPtr for its
// contents and frees the C allocation, ending the pointer's validity. It
// fails with ErrInvalidStringPointer only on a nil pointer. Passing the same
// pointer twice is a double free on the C heap and cannot be detected here;
// the exactly-once contract is the caller's obligation.
func ReclaimString(ptr unsafe.Pointer) (string, error) {
	if ptr == nil {
		return "", ErrInvalidStringPointer
	}
	s := C.GoString((*C.char)(ptr))
	C.free(ptr)
	return s, nil
}

// WithString lends the text behind a borrowed, possibly-nil string pointer to
// f. A nil pointer is a valid empty-string input, not an error. Non-nil bytes
// are decoded as UTF-8; on invalid text ErrInvalidStringPointer is recorded
// under context and fallback is returned without invoking f. The pointer is
// neither retained nor freed.
func WithString[R any](context string, ptr unsafe.Pointer, fallback R, f func(string) R) R {
	if ptr == nil {
		return f("")
	}
	s := C.GoString((*C.char)(ptr))
	if !utf8.ValidString(s) {
		SetLastError(context, ErrInvalidStringPointer)
		return fallback
	}
	return f(s)
}
