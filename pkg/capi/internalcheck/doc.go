// Package internalcheck holds source-level policy tests for the toolkit.
//
// The checks keep the boundary contract honest at the level the compiler
// cannot: error strings that foreign callers read back through LastError must
// stay canonical, so they may only be constructed in one place. The package is
// not intended for external use and the API may change without notice.
package internalcheck
