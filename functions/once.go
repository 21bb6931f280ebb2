package functions

import "sync"

// OnceFunc is the [Callable] returned by [Once].
type OnceFunc[R any] struct {
	mu     sync.Mutex
	fn     Callable[R]
	done   bool
	result R
}

// Once wraps fn so that it runs at most once. The first Call computes and
// caches fn's result; every later Call returns it without invoking fn,
// whatever arguments it receives.
//
// If fn panics the call is not recorded and the next Call tries again.
func Once[R any](fn Callable[R]) *OnceFunc[R] {
	return &OnceFunc[R]{fn: fn}
}

// Call returns the cached result, computing it on the first call.
func (o *OnceFunc[R]) Call(args ...any) R {
	o.mu.Lock()
	defer o.mu.Unlock()
	if !o.done {
		o.result = o.fn.Call(args...)
		o.done = true
	}
	return o.result
}

// Done reports whether the wrapped callable has completed.
func (o *OnceFunc[R]) Done() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.done
}

// OnceI1O1 is [Once] for a single-argument function.
func OnceI1O1[I1, O1 any](fn func(I1) O1) func(I1) O1 {
	once := Once[O1](Func[O1](func(args ...any) O1 {
		return fn(arg[I1](args, 0))
	}))
	return func(i1 I1) O1 {
		return once.Call(i1)
	}
}
