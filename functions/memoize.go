package functions

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/hasbyte1/go-fnutils/argkey"
)

// MemoOptions configures a [Memo].
type MemoOptions struct {
	// Keyer derives the cache key from the argument list.
	// nil selects the JSON driver.
	Keyer argkey.Keyer

	// MaxEntries bounds the table. When the current generation holds
	// MaxEntries keys, it becomes the old generation and the previous old
	// generation is dropped. 0 means unbounded.
	MaxEntries int

	// Logger receives a warning whenever a key cannot be derived.
	// nil disables logging.
	Logger *zap.Logger
}

// DefaultMemoOptions returns an unbounded JSON-keyed configuration with
// logging disabled.
func DefaultMemoOptions() MemoOptions {
	return MemoOptions{
		Keyer:  argkey.NewJSONKeyer(),
		Logger: zap.NewNop(),
	}
}

// Memo is the [Callable] returned by [Memoize] and [NewMemo].
type Memo[R any] struct {
	mu         sync.Mutex
	fn         Callable[R]
	keyer      argkey.Keyer
	logger     *zap.Logger
	maxEntries int
	tables     [2]map[string]R
	head       int
}

// Memoize wraps fn with an unbounded, JSON-keyed result cache.
//
//	square := functions.Memoize(functions.Func[int](func(args ...any) int {
//	    n := args[0].(int)
//	    return n * n
//	}))
//	square.Call(4) // computes 16
//	square.Call(4) // returns the stored 16
func Memoize[R any](fn Callable[R]) *Memo[R] {
	m, _ := NewMemo(fn, DefaultMemoOptions())
	return m
}

// NewMemo wraps fn with a result cache configured by opts.
// Returns [ErrInvalidOption] if opts.MaxEntries is negative.
func NewMemo[R any](fn Callable[R], opts MemoOptions) (*Memo[R], error) {
	if opts.MaxEntries < 0 {
		return nil, fmt.Errorf("%w: MaxEntries must be >= 0, got %d", ErrInvalidOption, opts.MaxEntries)
	}
	keyer := opts.Keyer
	if keyer == nil {
		keyer = argkey.NewJSONKeyer()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Memo[R]{
		fn:         fn,
		keyer:      keyer,
		logger:     logger,
		maxEntries: opts.MaxEntries,
		tables:     [2]map[string]R{make(map[string]R), make(map[string]R)},
	}, nil
}

// Call returns the stored result for args, computing and storing it on the
// first call with an equal-serialising argument list. Zero results are
// stored like any other.
//
// When the keyer fails the call goes straight to the wrapped callable and
// nothing is stored.
func (m *Memo[R]) Call(args ...any) R {
	key, err := m.keyer.Key(args)
	if err != nil {
		m.logger.Warn("memoize: calling through without cache",
			zap.String("driver", string(m.keyer.Driver())),
			zap.Error(err),
		)
		return m.fn.Call(args...)
	}
	if v, ok := m.load(key); ok {
		return v
	}
	v := m.fn.Call(args...)
	m.store(key, v)
	return v
}

// Len returns the number of stored results.
func (m *Memo[R]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tables[0]) + len(m.tables[1])
}

func (m *Memo[R]) load(key string) (R, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if v, ok := m.tables[m.head][key]; ok {
		return v, true
	}
	v, ok := m.tables[1-m.head][key]
	return v, ok
}

func (m *Memo[R]) store(key string, v R) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.maxEntries > 0 && len(m.tables[m.head]) >= m.maxEntries {
		m.head = 1 - m.head
		clear(m.tables[m.head])
	}
	m.tables[m.head][key] = v
}

// MemoizeI1O1 is [Memoize] for a single-argument function.
func MemoizeI1O1[I1, O1 any](fn func(I1) O1) func(I1) O1 {
	memo := Memoize[O1](Func[O1](func(args ...any) O1 {
		return fn(arg[I1](args, 0))
	}))
	return func(i1 I1) O1 {
		return memo.Call(i1)
	}
}

// MemoizeI2O1 is [Memoize] for a two-argument function.
func MemoizeI2O1[I1, I2, O1 any](fn func(I1, I2) O1) func(I1, I2) O1 {
	memo := Memoize[O1](Func[O1](func(args ...any) O1 {
		return fn(arg[I1](args, 0), arg[I2](args, 1))
	}))
	return func(i1 I1, i2 I2) O1 {
		return memo.Call(i1, i2)
	}
}
