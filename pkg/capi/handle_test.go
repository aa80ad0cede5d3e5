package capi_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Phasix-ESD/FFI-Utils/pkg/capi"
)

type account struct {
	owner   string
	balance int
}

func TestOwnReclaimRoundTrip(t *testing.T) {
	ptr := capi.Own(account{owner: "alice", balance: 100})
	require.NotNil(t, ptr)

	got, err := capi.Reclaim[account](ptr)
	require.NoError(t, err)
	require.Equal(t, account{owner: "alice", balance: 100}, got)
}

func TestReclaimNil(t *testing.T) {
	_, err := capi.Reclaim[account](nil)
	require.ErrorIs(t, err, capi.ErrInvalidPointer)
}

func TestReclaimTwice(t *testing.T) {
	// The second reclaim of the same pointer is reported as a recoverable
	// error rather than corrupting memory.
	ptr := capi.Own(42)
	_, err := capi.Reclaim[int](ptr)
	require.NoError(t, err)

	_, err = capi.Reclaim[int](ptr)
	require.ErrorIs(t, err, capi.ErrInvalidPointer)
}

func TestReclaimWrongType(t *testing.T) {
	ptr := capi.Own("not an account")
	_, err := capi.Reclaim[account](ptr)
	require.ErrorIs(t, err, capi.ErrInvalidPointer)
}

func TestWithMutatesOwnedValue(t *testing.T) {
	ptr := capi.Own(account{owner: "bob"})

	got := capi.With("Deposit", ptr, -1, func(a *account) int {
		a.balance += 25
		return a.balance
	})
	require.Equal(t, 25, got)

	// The mutation is visible to the next boundary call on the same pointer.
	final, err := capi.Reclaim[account](ptr)
	require.NoError(t, err)
	require.Equal(t, 25, final.balance)
}

func TestWithNilPointer(t *testing.T) {
	invoked := false
	got := capi.With("Deposit", nil, -1, func(a *account) int {
		invoked = true
		return a.balance
	})
	require.Equal(t, -1, got)
	require.False(t, invoked)
	require.True(t, strings.Contains(capi.LastError(), "Deposit"))
	require.Equal(t, "Error Deposit: Invalid pointer", capi.LastError())
}

func TestWithReclaimedPointer(t *testing.T) {
	ptr := capi.Own(account{})
	_, err := capi.Reclaim[account](ptr)
	require.NoError(t, err)

	got := capi.With("Deposit", ptr, -1, func(a *account) int { return a.balance })
	require.Equal(t, -1, got)
	require.Equal(t, "Error Deposit: Invalid pointer", capi.LastError())
}

func TestLiveHandlesReturnsToBaseline(t *testing.T) {
	baseline := capi.LiveHandles()

	a := capi.Own(1)
	b := capi.Own("two")
	c := capi.Own(account{owner: "carol"})
	require.Equal(t, baseline+3, capi.LiveHandles())

	_, err := capi.Reclaim[int](a)
	require.NoError(t, err)
	_, err = capi.Reclaim[string](b)
	require.NoError(t, err)
	_, err = capi.Reclaim[account](c)
	require.NoError(t, err)
	require.Equal(t, baseline, capi.LiveHandles())
}
