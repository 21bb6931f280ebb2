package functions_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/go-fnutils/functions"
)

func TestOnce_RunsExactlyOnce(t *testing.T) {
	calls := 0
	once := functions.Once[int](functions.Func[int](func(args ...any) int {
		calls++
		return args[0].(int) * 10
	}))

	assert.False(t, once.Done())
	assert.Equal(t, 10, once.Call(1))
	assert.Equal(t, 10, once.Call(2), "later calls return the first result")
	assert.Equal(t, 10, once.Call())
	assert.Equal(t, 1, calls)
	assert.True(t, once.Done())
}

func TestOnce_CachesZeroResult(t *testing.T) {
	calls := 0
	once := functions.Once[error](functions.Func[error](func(...any) error {
		calls++
		return nil
	}))
	assert.NoError(t, once.Call())
	assert.NoError(t, once.Call())
	assert.Equal(t, 1, calls)
}

func TestOnce_RetriesAfterPanic(t *testing.T) {
	attempt := 0
	once := functions.Once[string](functions.Func[string](func(...any) string {
		attempt++
		if attempt == 1 {
			panic("first attempt")
		}
		return "ok"
	}))

	assert.Panics(t, func() { once.Call() })
	assert.False(t, once.Done())
	assert.Equal(t, "ok", once.Call())
	assert.Equal(t, "ok", once.Call())
	assert.Equal(t, 2, attempt)
}

func TestOnce_Concurrent(t *testing.T) {
	var calls atomic.Int32
	once := functions.Once[int](functions.Func[int](func(...any) int {
		return int(calls.Add(1))
	}))

	var wg sync.WaitGroup
	results := make([]int, 64)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = once.Call()
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for _, r := range results {
		assert.Equal(t, 1, r)
	}
}

func TestOnceI1O1(t *testing.T) {
	calls := 0
	initConfig := functions.OnceI1O1(func(path string) string {
		calls++
		return "loaded " + path
	})
	assert.Equal(t, "loaded a.yaml", initConfig("a.yaml"))
	assert.Equal(t, "loaded a.yaml", initConfig("b.yaml"))
	assert.Equal(t, 1, calls)
}
