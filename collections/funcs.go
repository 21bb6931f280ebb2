package collections

import (
	"math"
	"reflect"

	"github.com/hasbyte1/go-fnutils/arr"
)

// This file holds the derived operators. Each of them walks its input
// exactly once through [Each]; the aggregations are expressed as a single
// [Reduce].

// Filter returns the values for which pred holds, in visit order. A nil
// pred keeps the [Truthy] values.
//
//	evens := collections.Filter(collections.Of(1, 2, 3, 4),
//	    func(n, _ int, _ collections.Collection[int, int]) bool { return n%2 == 0 })
func Filter[K comparable, V any](coll Collection[K, V], pred Predicate[K, V]) Sequence[V] {
	if pred == nil {
		pred = truthyPredicate[K, V]
	}
	out := Sequence[V]{}
	Each(coll, func(v V, k K, c Collection[K, V]) {
		if pred(v, k, c) {
			out = append(out, v)
		}
	})
	return out
}

// Reject returns the values for which pred does not hold.
// It is the complement of [Filter].
func Reject[K comparable, V any](coll Collection[K, V], pred Predicate[K, V]) Sequence[V] {
	if pred == nil {
		pred = truthyPredicate[K, V]
	}
	return Filter(coll, Not(pred))
}

// Not returns the logical negation of pred.
func Not[K comparable, V any](pred Predicate[K, V]) Predicate[K, V] {
	return func(v V, k K, c Collection[K, V]) bool { return !pred(v, k, c) }
}

// Uniq returns seq with later duplicates dropped, keeping first occurrences
// in their original order.
func Uniq[V comparable](seq Sequence[V]) Sequence[V] {
	seen := make(map[V]struct{}, len(seq))
	out := make(Sequence[V], 0, len(seq))
	Each[int, V](seq, func(v V, _ int, _ Collection[int, V]) {
		if _, ok := seen[v]; ok {
			return
		}
		seen[v] = struct{}{}
		out = append(out, v)
	})
	return out
}

// Map returns transform(value, position, coll) for every visited element.
//
//	labels := collections.Map(collections.Of(1, 2),
//	    func(n, _ int, _ collections.Collection[int, int]) string { return strconv.Itoa(n) })
func Map[K comparable, V, R any](coll Collection[K, V], transform func(V, K, Collection[K, V]) R) Sequence[R] {
	out := Sequence[R]{}
	Each(coll, func(v V, k K, c Collection[K, V]) {
		out = append(out, transform(v, k, c))
	})
	return out
}

// Pluck extracts the value stored under key from every map element.
// Elements without key contribute the zero value of V.
func Pluck[K comparable, V any](seq Sequence[map[K]V], key K) Sequence[V] {
	return Map[int, map[K]V, V](seq, func(item map[K]V, _ int, _ Collection[int, map[K]V]) V {
		return item[key]
	})
}

// PluckPath is like [Pluck] for nested map[string]any elements, addressing
// the value with a dot-notation path such as "user.address.city".
// Missing paths contribute nil.
func PluckPath(seq Sequence[map[string]any], path string) Sequence[any] {
	return Map[int, map[string]any, any](seq, func(item map[string]any, _ int, _ Collection[int, map[string]any]) any {
		v, _ := arr.Lookup(item, path)
		return v
	})
}

// Reduce folds coll from the left: the accumulator is threaded through
// combine(acc, value, position, coll) for every element.
//
// When initial is omitted the seed is 0 if A can hold an int (A is int or an
// interface type such as any); otherwise it is the zero value of A.
//
//	sum := collections.Reduce(collections.Of(1, 2, 3),
//	    func(acc, n, _ int, _ collections.Collection[int, int]) int { return acc + n })
//	// → 6
func Reduce[K comparable, V, A any](
	coll Collection[K, V],
	combine func(acc A, value V, position K, coll Collection[K, V]) A,
	initial ...A,
) A {
	acc := defaultSeed[A]()
	if len(initial) > 0 {
		acc = initial[0]
	}
	Each(coll, func(v V, k K, c Collection[K, V]) {
		acc = combine(acc, v, k, c)
	})
	return acc
}

func defaultSeed[A any]() A {
	if seed, ok := any(0).(A); ok {
		return seed
	}
	var zero A
	return zero
}

// Contains reports whether any element of coll equals target.
func Contains[K comparable, V comparable](coll Collection[K, V], target V) bool {
	return Reduce(coll, func(found bool, v V, _ K, _ Collection[K, V]) bool {
		if found {
			return true
		}
		return v == target
	}, false)
}

// Every reports whether pred holds for every element. A nil pred tests the
// elements themselves with [Truthy]. An empty collection yields true.
func Every[K comparable, V any](coll Collection[K, V], pred Predicate[K, V]) bool {
	if pred == nil {
		pred = truthyPredicate[K, V]
	}
	return Reduce(coll, func(match bool, v V, k K, c Collection[K, V]) bool {
		return pred(v, k, c) && match
	}, true)
}

// Some reports whether pred holds for at least one element. It is defined
// as the negation of [Every] over the negated predicate, so an empty
// collection yields false.
func Some[K comparable, V any](coll Collection[K, V], pred Predicate[K, V]) bool {
	if pred == nil {
		pred = truthyPredicate[K, V]
	}
	return !Every(coll, Not(pred))
}

func truthyPredicate[K comparable, V any](v V, _ K, _ Collection[K, V]) bool {
	return Truthy(v)
}

// Truthy reports whether v counts as true when no predicate is supplied.
// nil, false, NaN and zero values (0, "", zero structs, nil slices and maps)
// are falsy; everything else, including empty non-nil slices, is truthy.
func Truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case float64:
		return x != 0 && !math.IsNaN(x)
	case float32:
		return x != 0 && !math.IsNaN(float64(x))
	case string:
		return x != ""
	}
	return !reflect.ValueOf(v).IsZero()
}
