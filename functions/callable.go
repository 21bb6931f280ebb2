package functions

// Callable is an invocable unit of behaviour. Receivers and context are
// bound by the implementation (a closure or a method value), never passed
// implicitly.
type Callable[R any] interface {
	Call(args ...any) R
}

// Func adapts a plain variadic function to [Callable].
type Func[R any] func(args ...any) R

// Call calls f(args...).
func (f Func[R]) Call(args ...any) R { return f(args...) }

// arg returns args[i] as a T, or the zero T when it is missing, nil or of
// another type.
func arg[T any](args []any, i int) T {
	var zero T
	if i >= len(args) {
		return zero
	}
	v, ok := args[i].(T)
	if !ok {
		return zero
	}
	return v
}
