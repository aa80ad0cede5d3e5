// Package capi provides the conversion and error-reporting helpers used to
// expose a Go library through a C-callable interface (c-shared or c-archive
// builds with //export functions).
//
// Only primitive values, raw pointers, and NUL-terminated strings cross the
// boundary. Because that calling convention cannot carry Go errors, every
// fallible boundary operation returns a sentinel value (nil pointer, or a
// caller-chosen fallback) and records the failure in a per-goroutine last-error
// slot, readable via LastError from the same goroutine that made the call.
//
// # Ownership
//
// Own hands a value to the foreign caller as an opaque pointer; the caller must
// pass it back to exactly one Reclaim-class call. Reclaiming the same pointer
// twice is detected and reported as ErrInvalidPointer rather than corrupting
// memory, but a pointer that is never reclaimed leaks its value for the life of
// the process. String pointers produced by StringToPtr are C heap allocations:
// they must be released through ReclaimString exactly once, and releasing one
// twice is undefined behavior on the C heap that this package cannot detect.
//
// All pointer-typed values in the public API are unsafe.Pointer; cgo's C types
// are package-scoped, so //export sites cast to and from *C.char themselves.
package capi
