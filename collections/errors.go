package collections

import "errors"

// Sentinel errors returned by collection operations.
//
// Most operators degrade silently on malformed input (a nil collection walks
// nothing). The errors below mark the few real contract violations.
var (
	// ErrMethodNotFound is returned by [Invoke] when an element does not
	// provide the named capability.
	ErrMethodNotFound = errors.New("collections: method not found")

	// ErrResultType is returned by [Invoke] when a named capability returns
	// a value that is not of the requested result type.
	ErrResultType = errors.New("collections: unexpected result type")
)
