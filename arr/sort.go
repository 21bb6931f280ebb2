package arr

import "cmp"

// Selector extracts the sort key of an element for [SortBy]. A key reported
// as absent is undefined and sorts after every defined key.
//
// Build one with [ByKey], [ByProperty] or [ByPath]. The zero Selector uses
// the element itself as its key when V and K are the same type, and treats
// every element as undefined otherwise.
type Selector[V any, K cmp.Ordered] struct {
	key func(V) (K, bool)
}

// ByKey selects keys with fn. fn reports false for an undefined key.
func ByKey[V any, K cmp.Ordered](fn func(V) (K, bool)) Selector[V, K] {
	return Selector[V, K]{key: fn}
}

// ByProperty selects the value stored under name in map elements. Elements
// without name are undefined.
//
//	arr.SortBy(people, arr.ByProperty[int]("age"))
func ByProperty[K cmp.Ordered](name string) Selector[map[string]K, K] {
	return Selector[map[string]K, K]{key: func(m map[string]K) (K, bool) {
		k, ok := m[name]
		return k, ok
	}}
}

// ByPath selects the value at a dot-notation path in nested map[string]any
// elements (see [Lookup]). A missing path, or a value that is not a K, is
// undefined.
func ByPath[K cmp.Ordered](path string) Selector[map[string]any, K] {
	return Selector[map[string]any, K]{key: func(m map[string]any) (K, bool) {
		v, ok := Lookup(m, path)
		if !ok {
			var zero K
			return zero, false
		}
		k, ok := v.(K)
		return k, ok
	}}
}

func (s Selector[V, K]) extract(v V) (K, bool) {
	if s.key != nil {
		return s.key(v)
	}
	k, ok := any(v).(K)
	return k, ok
}

type keyed[V any, K cmp.Ordered] struct {
	item    V
	key     K
	defined bool
}

// lessOrEqual reports whether a may be emitted before b while merging.
// Undefined keys compare greater than every defined key.
func (a keyed[V, K]) lessOrEqual(b keyed[V, K]) bool {
	if !b.defined {
		return true
	}
	if !a.defined {
		return false
	}
	return cmp.Compare(a.key, b.key) <= 0
}

// SortBy returns a copy of items sorted in ascending key order.
//
// The sort is a stable merge sort: elements with equal keys keep their
// relative input order, and elements with undefined keys end up last in
// input order. Each key is extracted exactly once. items is not modified.
//
//	type row = map[string]int
//	arr.SortBy([]row{{"k": 2}, {}, {"k": 1}}, arr.ByProperty[int]("k"))
//	// → [{k:1} {k:2} {}]
func SortBy[V any, K cmp.Ordered](items []V, sel Selector[V, K]) []V {
	decorated := make([]keyed[V, K], len(items))
	for i, item := range items {
		k, ok := sel.extract(item)
		decorated[i] = keyed[V, K]{item: item, key: k, defined: ok}
	}
	sorted := mergeSort(decorated)
	out := make([]V, len(sorted))
	for i, d := range sorted {
		out[i] = d.item
	}
	return out
}

// mergeSort splits at len/2 (rounding down), sorts both halves and merges
// them. On ties the left head is taken first, which keeps the sort stable.
func mergeSort[V any, K cmp.Ordered](items []keyed[V, K]) []keyed[V, K] {
	if len(items) <= 1 {
		return items
	}
	mid := len(items) / 2
	left := mergeSort(items[:mid])
	right := mergeSort(items[mid:])

	out := make([]keyed[V, K], 0, len(items))
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		if left[i].lessOrEqual(right[j]) {
			out = append(out, left[i])
			i++
		} else {
			out = append(out, right[j])
			j++
		}
	}
	out = append(out, left[i:]...)
	return append(out, right[j:]...)
}
