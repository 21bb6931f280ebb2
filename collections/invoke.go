package collections

import (
	"errors"
	"fmt"
)

// Method selects what [Invoke] calls on each element: either one shared
// callable that receives the element, or a named capability resolved on the
// element through [Invoker]. Build one with [Shared] or [Named].
type Method[V, R any] struct {
	shared func(elem V, args ...any) R
	name   string
}

// Shared selects fn as the callable applied to every element.
func Shared[V, R any](fn func(elem V, args ...any) R) Method[V, R] {
	return Method[V, R]{shared: fn}
}

// Named selects the capability registered under name on each element.
func Named[V, R any](name string) Method[V, R] {
	return Method[V, R]{name: name}
}

// String returns the capability name, or "shared" for a shared callable.
func (m Method[V, R]) String() string {
	if m.shared != nil {
		return "shared"
	}
	return m.name
}

func (m Method[V, R]) call(elem V, args []any) (R, error) {
	var zero R
	if m.shared != nil {
		return m.shared(elem, args...), nil
	}
	inv, ok := any(elem).(Invoker)
	if !ok {
		return zero, fmt.Errorf("%w: %q on %T", ErrMethodNotFound, m.name, elem)
	}
	out, err := inv.Invoke(m.name, args...)
	if err != nil {
		if errors.Is(err, ErrMethodNotFound) {
			return zero, err
		}
		return zero, fmt.Errorf("collections: invoke %q: %w", m.name, err)
	}
	if out == nil {
		return zero, nil
	}
	res, ok := out.(R)
	if !ok {
		return zero, fmt.Errorf("%w: %q returned %T", ErrResultType, m.name, out)
	}
	return res, nil
}

// Invoke calls method on every element of seq, forwarding args, and returns
// the results in order.
//
// Invoking a named capability that an element does not provide is a
// contract violation: Invoke stops and returns an error wrapping
// [ErrMethodNotFound] together with the results gathered so far.
//
//	upper, err := collections.Invoke(words,
//	    collections.Shared(func(w string, _ ...any) string { return strings.ToUpper(w) }))
func Invoke[V, R any](seq Sequence[V], method Method[V, R], args ...any) (Sequence[R], error) {
	out := make(Sequence[R], 0, len(seq))
	for _, elem := range seq.All() {
		res, err := method.call(elem, args)
		if err != nil {
			return out, err
		}
		out = append(out, res)
	}
	return out, nil
}
