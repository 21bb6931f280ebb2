package collections

import (
	"iter"
	"maps"
	"slices"
)

// Collection is the single iteration surface shared by every operator in this
// package. It is satisfied by [Sequence] (positions are int indices) and
// [Mapping] (positions are keys).
//
// Accept Collection in your own helpers so that callers can pass either
// shape without converting.
type Collection[K comparable, V any] interface {
	// All yields every (position, value) pair exactly once.
	All() iter.Seq2[K, V]
}

// Visitor receives one element visit: the value, its position (index or key)
// and the collection being walked.
type Visitor[K comparable, V any] func(value V, position K, coll Collection[K, V])

// Predicate is a Visitor that reports a truth value.
type Predicate[K comparable, V any] func(value V, position K, coll Collection[K, V]) bool

// ─────────────────────────────────────────────────────────────────────────────
// Sequence
// ─────────────────────────────────────────────────────────────────────────────

// Sequence is an ordered, 0-indexed collection backed by a plain slice.
//
//	seq := collections.Sequence[int]{1, 2, 3}
//	collections.Each(seq, func(v, i int, _ collections.Collection[int, int]) { ... })
type Sequence[V any] []V

// Of creates a Sequence from a variadic list of items (copied).
func Of[V any](items ...V) Sequence[V] {
	return slices.Clone(Sequence[V](items))
}

// All yields (index, value) pairs in ascending index order.
func (s Sequence[V]) All() iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		for i, v := range s {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Len returns the number of elements.
func (s Sequence[V]) Len() int { return len(s) }

// ─────────────────────────────────────────────────────────────────────────────
// Mapping
// ─────────────────────────────────────────────────────────────────────────────

// Mapping is a key-addressable collection backed by a Go map.
//
// Enumeration order is whatever the runtime produces and is not stable
// between walks. Sort [Mapping.Keys] first when order matters.
type Mapping[K comparable, V any] map[K]V

// All yields (key, value) pairs in map iteration order.
func (m Mapping[K, V]) All() iter.Seq2[K, V] {
	return maps.All(m)
}

// Keys returns the keys of m in unspecified order.
func (m Mapping[K, V]) Keys() []K {
	return slices.Collect(maps.Keys(m))
}

// Len returns the number of entries.
func (m Mapping[K, V]) Len() int { return len(m) }

// ─────────────────────────────────────────────────────────────────────────────
// Iteration core
// ─────────────────────────────────────────────────────────────────────────────

// Each calls visit(value, position, coll) for every element of coll.
//
// A Sequence is walked from index 0 to Len()-1; a Mapping is walked over
// every key. A nil collection or a nil visit makes Each a no-op.
func Each[K comparable, V any](coll Collection[K, V], visit Visitor[K, V]) {
	if coll == nil || visit == nil {
		return
	}
	for k, v := range coll.All() {
		visit(v, k, coll)
	}
}

// IndexOf returns the index of the first element equal to target, or -1.
func IndexOf[V comparable](seq Sequence[V], target V) int {
	for i, v := range seq.All() {
		if v == target {
			return i
		}
	}
	return -1
}
