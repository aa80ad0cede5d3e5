package capi

import (
	"fmt"

	"github.com/timandy/routine"
)

// lastError holds the most recent boundary failure message for each goroutine.
// Goroutine-local storage replaces an errno-style global: no two goroutines
// ever observe the same slot, so no locking discipline is imposed on callers.
// The trade-off is that LastError must be read on the goroutine that made the
// failing call.
var lastError = routine.NewThreadLocalWithInitial(func() string { return "" })

// SetLastError records err, formatted with the given context label, as the
// calling goroutine's last error. The previous message is overwritten. It
// never fails.
func SetLastError(context string, err error) {
	lastError.Set(fmt.Sprintf("Error %s: %v", context, err))
}

// LastError returns the calling goroutine's current last-error message, or ""
// if no boundary operation has failed on this goroutine. The slot is not
// cleared by reading it.
func LastError() string {
	return lastError.Get()
}
