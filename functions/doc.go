// Package functions provides decorators that wrap a callable and return a
// new callable with modified invocation behaviour.
//
// # Decorators
//
//   - [Once] runs the wrapped callable on the first call only and replays
//     that result forever after, whatever the arguments.
//   - [Memoize] caches one result per distinct argument list. Keys come
//     from an injectable [argkey.Keyer]; the default encodes the arguments
//     as canonical JSON.
//   - [Delay] hands one future invocation to a [schedule.Scheduler] and
//     returns immediately.
//
// Each decorator owns its state in an explicit struct created once per
// decoration:
//
//	fetch := functions.Memoize(functions.Func[string](func(args ...any) string {
//	    return load(args[0].(string))
//	}))
//	fetch.Call("a") // loads
//	fetch.Call("a") // cached
//
// Typed helpers such as [MemoizeI1O1] and [OnceI1O1] wrap ordinary Go
// functions without the variadic any signature.
//
// # Concurrency
//
// Decorator state is guarded by a mutex, so a decorated value may be shared
// between goroutines. [OnceFunc] holds its lock while the wrapped callable
// runs; [Memo] does not, which keeps recursive memoized functions working
// at the cost of possibly computing a key twice under contention.
package functions
