package arr

import (
	"math/rand/v2"
	"reflect"
)

// ─────────────────────────────────────────────────────────────────────────────
// Head & tail
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first element of items.
// Returns the zero value and false when items is empty.
func First[T any](items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[0], true
}

// FirstN returns a copy of the first n elements. n is clamped to
// [0, len(items)].
func FirstN[T any](items []T, n int) []T {
	n = clamp(n, len(items))
	out := make([]T, n)
	copy(out, items[:n])
	return out
}

// Last returns the last element of items.
// Returns the zero value and false when items is empty.
func Last[T any](items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[len(items)-1], true
}

// LastN returns a copy of the last n elements. When n exceeds len(items)
// the whole slice is copied.
func LastN[T any](items []T, n int) []T {
	n = clamp(n, len(items))
	out := make([]T, n)
	copy(out, items[len(items)-n:])
	return out
}

func clamp(n, size int) int {
	return max(0, min(n, size))
}

// ─────────────────────────────────────────────────────────────────────────────
// Shuffle
// ─────────────────────────────────────────────────────────────────────────────

// Shuffle returns a uniformly shuffled copy of items. items is not modified.
func Shuffle[T any](items []T) []T {
	return shuffle(items, rand.IntN)
}

// ShuffleWith is like [Shuffle] but draws from rng, which makes the result
// reproducible for a seeded source.
func ShuffleWith[T any](items []T, rng *rand.Rand) []T {
	return shuffle(items, rng.IntN)
}

// shuffle runs Fisher–Yates over a private copy: every position i is swapped
// with a uniformly drawn position in [i, n).
func shuffle[T any](items []T, intN func(int) int) []T {
	out := make([]T, len(items))
	copy(out, items)
	n := len(out)
	for i := range n {
		j := i + intN(n-i)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Zip & flatten
// ─────────────────────────────────────────────────────────────────────────────

// Zip groups the elements at the same index of every input into a tuple.
// The result has as many tuples as the longest input; where an input is
// shorter its slot holds the zero value of V (nil for V = any).
//
//	arr.Zip([]any{"a", "b", "c"}, []any{1, 2})
//	// → [[a 1] [b 2] [c <nil>]]
func Zip[V any](seqs ...[]V) [][]V {
	longest := 0
	for _, s := range seqs {
		longest = max(longest, len(s))
	}
	out := make([][]V, longest)
	for i := range out {
		tuple := make([]V, len(seqs))
		for j, s := range seqs {
			if i < len(s) {
				tuple[j] = s[i]
			}
		}
		out[i] = tuple
	}
	return out
}

// Flatten recursively flattens nested sequences into one flat slice,
// depth-first and left to right.
//
// Any slice or array value counts as a sequence, whatever its element type;
// strings and maps are leaves. A non-sequence root yields a one-element
// result and a nil root yields an empty one.
//
//	arr.Flatten([]any{1, []any{2, []int{3, 4}}, 5}) // → [1 2 3 4 5]
func Flatten(nested any) []any {
	out := make([]any, 0)
	if nested == nil {
		return out
	}
	var walk func(v any)
	walk = func(v any) {
		if items, ok := v.([]any); ok {
			for _, item := range items {
				walk(item)
			}
			return
		}
		rv := reflect.ValueOf(v)
		switch rv.Kind() {
		case reflect.Slice, reflect.Array:
			for i := range rv.Len() {
				walk(rv.Index(i).Interface())
			}
		default:
			out = append(out, v)
		}
	}
	walk(nested)
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Set operations
// ─────────────────────────────────────────────────────────────────────────────

// Intersection returns the distinct values present in every input.
//
// Each value is mapped to the set of input indices it was observed in; a
// value qualifies once that set holds every input. Results follow the order
// of first appearance in seqs[0]. No inputs yield an empty result.
//
//	arr.Intersection([]int{1, 2, 3}, []int{2, 3, 4}, []int{2, 3, 5}) // → [2 3]
func Intersection[V comparable](seqs ...[]V) []V {
	observed := make(map[V]map[int]struct{})
	order := make([]V, 0)
	for i, s := range seqs {
		for _, v := range s {
			seen, ok := observed[v]
			if !ok {
				seen = make(map[int]struct{}, len(seqs))
				observed[v] = seen
				order = append(order, v)
			}
			seen[i] = struct{}{}
		}
	}
	out := make([]V, 0)
	if len(seqs) == 0 {
		return out
	}
	for _, v := range order {
		if len(observed[v]) == len(seqs) {
			out = append(out, v)
		}
	}
	return out
}
