package capi

// #include <stdlib.h>
import "C"

import (
	"sync"
	"unsafe"
)

// handles maps opaque boundary keys to boxed Go values. Keys are one-byte C
// allocations so every Own gets a unique, stable address that is legal to hand
// to foreign code under the cgo pointer-passing rules.
var handles sync.Map // unsafe.Pointer -> *T

// Own boxes value on the Go heap and returns an opaque owning pointer for it.
// Ownership transfers to the caller at return; the value stays registered
// until the pointer comes back through Reclaim. Own never fails.
func Own[T any](value T) unsafe.Pointer {
	key := C.malloc(1)
	if key == nil {
		panic("capi: allocation failed")
	}
	handles.Store(key, &value)
	return key
}

// Reclaim exchanges a pointer previously returned by Own for the owned value,
// ending the pointer's validity. The value is released to the garbage
// collector unless the caller keeps it. Reclaim fails with ErrInvalidPointer
// on a nil pointer, on a pointer this package never issued or already
// reclaimed, and on a stored value of a different type than T; a mismatched
// type still consumes the pointer.
func Reclaim[T any](ptr unsafe.Pointer) (T, error) {
	var zero T
	if ptr == nil {
		return zero, ErrInvalidPointer
	}
	boxed, loaded := handles.LoadAndDelete(ptr)
	if !loaded {
		return zero, ErrInvalidPointer
	}
	C.free(ptr)
	value, ok := boxed.(*T)
	if !ok {
		return zero, ErrInvalidPointer
	}
	return *value, nil
}

// With dispatches a boundary call onto an owned value without ending the
// pointer's validity: if ptr refers to a live owned T, f runs with mutable
// access to it and its result is returned. Otherwise ErrInvalidPointer is
// recorded under context and fallback is returned; f is not invoked.
func With[T any, R any](context string, ptr unsafe.Pointer, fallback R, f func(*T) R) R {
	if ptr != nil {
		if boxed, ok := handles.Load(ptr); ok {
			if value, ok := boxed.(*T); ok {
				return f(value)
			}
		}
	}
	SetLastError(context, ErrInvalidPointer)
	return fallback
}

// LiveHandles reports how many owned values are currently registered. Under
// the exactly-one-reclaim-per-own contract the count returns to its baseline
// once all outstanding pointers have been reclaimed, which makes it a cheap
// leak probe for tests and self-checks.
func LiveHandles() int {
	n := 0
	handles.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}
