package argkey

import "errors"

// Sentinel errors returned by key derivation.
//
// Use [errors.Is] for comparisons:
//
//	_, err := keyer.Key(args)
//	if errors.Is(err, argkey.ErrUnserializable) {
//	    // call through without caching
//	}
var (
	// ErrUnserializable is returned when an argument list has no
	// deterministic encoding.
	ErrUnserializable = errors.New("argkey: arguments cannot be serialised")

	// ErrInvalidOption is returned when a constructor is called with a
	// parameter value outside the allowed range (e.g., a blake2b digest
	// size above 64 bytes).
	ErrInvalidOption = errors.New("argkey: invalid option value")

	// ErrDriverNotFound is returned by [Manager.Driver] or indirectly by
	// [Manager.Key] when the requested driver has not been registered.
	ErrDriverNotFound = errors.New("argkey: driver not found")

	// ErrEmptyDriverName is returned by [Manager.RegisterDriver] when the
	// supplied driver name is an empty string.
	ErrEmptyDriverName = errors.New("argkey: driver name must not be empty")

	// ErrNilKeyer is returned by [Manager.RegisterDriver] when a nil [Keyer]
	// is supplied.
	ErrNilKeyer = errors.New("argkey: keyer must not be nil")
)
