// Package arr provides standalone sequence and set algorithms for plain Go
// slices, plus helpers for merging and reading map[string]any structures.
//
// # Sequence algorithms
//
// All helpers are generic and operate on plain []T values; none of them
// modify their input:
//
//	arr.SortBy(people, arr.ByProperty[string]("name")) // stable merge sort
//	arr.Flatten([]any{1, []any{2, []any{3}}})          // → [1 2 3]
//	arr.Zip([]any{"a", "b"}, []any{1})                 // → [[a 1] [b <nil>]]
//	arr.Intersection([]int{1, 2}, []int{2, 3})         // → [2]
//	arr.Shuffle([]int{1, 2, 3})                        // Fisher–Yates copy
//
// # Sort keys
//
// [SortBy] orders elements by a [Selector]: a key function, a map property
// name, a dot-notation path, or the element itself. Keys reported as absent
// are undefined and always sort last.
//
// # Maps
//
// [Extend] and [Defaults] merge maps in place and return the target.
// [Lookup] reads nested map[string]any values with dot notation:
//
//	m := map[string]any{"user": map[string]any{"name": "Alice"}}
//	arr.Lookup(m, "user.name") // → "Alice", true
package arr
