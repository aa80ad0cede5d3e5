package capi

import "unsafe"

// HandleResult is the single funnel through which fallible operations report
// failure across the boundary: on success it returns value; on failure it
// records err under context and returns the caller-supplied fallback instead.
func HandleResult[T any](context string, fallback T, value T, err error) T {
	if err != nil {
		SetLastError(context, err)
		return fallback
	}
	return value
}

// ResultToPtr converts a (value, error) pair into a boundary pointer: the
// owned value's pointer on success, nil on failure with the error recorded
// under context.
func ResultToPtr[T any](context string, value T, err error) unsafe.Pointer {
	if err != nil {
		SetLastError(context, err)
		return nil
	}
	return Own(value)
}

// StringResultToPtr converts a (text, error) pair into a boundary string
// pointer. It returns nil both when err is non-nil and when the text itself
// cannot form a C string; either failure is recorded under context.
func StringResultToPtr[S Text](context string, value S, err error) unsafe.Pointer {
	if err != nil {
		SetLastError(context, err)
		return nil
	}
	return StringToPtr(context, value)
}

// Flatten collapses a nested result carrying a single error kind, so composed
// fallible layers reach the boundary as one (value, error) pair. The outer
// error wins when present; otherwise the inner layer decides.
func Flatten[T any](value T, inner, outer error) (T, error) {
	var zero T
	if outer != nil {
		return zero, outer
	}
	if inner != nil {
		return zero, inner
	}
	return value, nil
}

// FlattenMismatched collapses a nested result whose layers report distinct
// error kinds, converting whichever one is present into the unified *Error
// kind tagged with op. An outer failure is converted without inspecting the
// inner layer; an inner failure is converted only when the outer succeeded.
func FlattenMismatched[T any](op string, value T, inner, outer error) (T, error) {
	var zero T
	switch {
	case outer != nil:
		return zero, &Error{Op: op, Err: outer}
	case inner != nil:
		return zero, &Error{Op: op, Err: inner}
	}
	return value, nil
}

// SafeIndex returns a pointer to s[index] when index is within [0, len(s)),
// and ErrIndexOutOfBounds otherwise. It never panics.
func SafeIndex[T any](s []T, index int) (*T, error) {
	if index < 0 || index >= len(s) {
		return nil, ErrIndexOutOfBounds
	}
	return &s[index], nil
}
