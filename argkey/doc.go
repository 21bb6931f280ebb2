// Package argkey derives deterministic string keys from argument lists. It
// is the key capability behind functions.Memoize: two argument lists that
// serialise identically share a key.
//
// # Architecture
//
// The central abstraction is the [Keyer] interface. Three drivers ship with
// this package: [JSONKeyer], [Blake2bKeyer] and [XXHashKeyer]. The digest
// drivers hash the JSON form, trading readability for a fixed key size.
//
// The [Manager] is a driver registry and dispatcher. Register named [Keyer]
// implementations, designate one as the default, then pass the Manager
// wherever a Keyer is expected.
//
// # Quick start
//
//	m := argkey.NewDefaultManager()        // json default, all drivers registered
//	k, _ := m.Key([]any{"user", 42})       // → `["user",42]`
//	_ = m.SetDefaultDriver(argkey.DriverXXHash)
//	k, _ = m.Key([]any{"user", 42})        // → 16 hex digits
//
// # Determinism
//
// Map arguments are encoded with sorted keys, so equal maps produce equal
// keys regardless of iteration order. Values that cannot be encoded (funcs,
// channels, NaN) make Key return an error wrapping [ErrUnserializable].
package argkey
