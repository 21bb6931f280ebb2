// Package collections provides one iteration primitive over two container
// shapes, ordered sequences and keyed mappings, plus the combinators built
// on top of it.
//
// # Overview
//
// Every operator in this package is expressed through [Each], which walks a
// [Collection] and reports each element as a (value, position, collection)
// triple. A [Sequence] reports int indices in ascending order; a [Mapping]
// reports its keys in Go map order:
//
//	seq := collections.Of(1, 2, 3, 4, 5)
//	evens := collections.Filter(seq, func(n, _ int, _ collections.Collection[int, int]) bool {
//	    return n%2 == 0
//	}) // → [2 4]
//
//	m := collections.Mapping[string, int]{"a": 1, "b": 2}
//	total := collections.Reduce(m, func(acc, n int, _ string, _ collections.Collection[string, int]) int {
//	    return acc + n
//	}) // → 3
//
// # Operators
//
// [Filter], [Reject], [Uniq], [Map], [Pluck], [PluckPath], [Invoke],
// [Reduce], [Contains], [Every] and [Some]. Each of them makes a single pass
// and never mutates its input; results are fresh Sequences.
//
// # Context
//
// Callbacks carry no implicit receiver. Capture whatever context a callback
// needs in a closure or pass a method value.
//
// # Permissive input
//
// A nil collection is walked as empty and a nil predicate tests elements
// with [Truthy]. The only operator that reports a contract violation is
// [Invoke], when an element lacks a named capability.
package collections
