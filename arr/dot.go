package arr

import "strings"

// Lookup resolves a dot-notation path such as "user.address.city" against a
// nested map[string]any and reports whether every segment was present.
//
//	m := map[string]any{"user": map[string]any{"name": "Alice"}}
//	Lookup(m, "user.name")    // → "Alice", true
//	Lookup(m, "user.missing") // → nil, false
//
// A segment that lands on a non-map value before the last segment makes the
// path absent. A nil map has no paths.
func Lookup(m map[string]any, path string) (any, bool) {
	current := m
	for {
		seg, rest, nested := strings.Cut(path, ".")
		val, ok := current[seg]
		if !ok {
			return nil, false
		}
		if !nested {
			return val, true
		}
		next, ok := val.(map[string]any)
		if !ok {
			return nil, false
		}
		current, path = next, rest
	}
}
