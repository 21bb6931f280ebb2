package collections_test

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-fnutils/collections"
)

type counter struct {
	*collections.MethodSet
	n int
}

func newCounter(n int) *counter {
	c := &counter{MethodSet: collections.NewMethodSet(), n: n}
	c.Register("add", func(args ...any) any { return c.n + args[0].(int) })
	c.Register("label", func(args ...any) any { return "counter" })
	return c
}

func TestInvoke_Shared(t *testing.T) {
	words := collections.Of("go", "fn", "utils")
	got, err := collections.Invoke(words, collections.Shared(func(w string, args ...any) string {
		return strings.Repeat(w, args[0].(int))
	}), 2)
	require.NoError(t, err)
	assert.Equal(t, collections.Sequence[string]{"gogo", "fnfn", "utilsutils"}, got)
}

func TestInvoke_Named(t *testing.T) {
	counters := collections.Of(newCounter(1), newCounter(10))
	got, err := collections.Invoke(counters, collections.Named[*counter, int]("add"), 5)
	require.NoError(t, err)
	assert.Equal(t, collections.Sequence[int]{6, 15}, got)
}

func TestInvoke_NamedMissingIsError(t *testing.T) {
	counters := collections.Of(newCounter(1))
	_, err := collections.Invoke(counters, collections.Named[*counter, int]("missing"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, collections.ErrMethodNotFound))
	assert.Contains(t, err.Error(), `"missing"`)
}

func TestInvoke_NamedOnNonInvoker(t *testing.T) {
	_, err := collections.Invoke(collections.Of(1, 2), collections.Named[int, int]("abs"))
	assert.ErrorIs(t, err, collections.ErrMethodNotFound)
}

func TestInvoke_NamedWrongResultType(t *testing.T) {
	counters := collections.Of(newCounter(1))
	_, err := collections.Invoke(counters, collections.Named[*counter, int]("label"))
	assert.ErrorIs(t, err, collections.ErrResultType)
}

func TestInvoke_StopsAtFirstFailure(t *testing.T) {
	bare := &counter{MethodSet: collections.NewMethodSet()}
	seq := collections.Of(newCounter(1), bare, newCounter(3))
	got, err := collections.Invoke(seq, collections.Named[*counter, int]("add"), 1)
	assert.ErrorIs(t, err, collections.ErrMethodNotFound)
	assert.Equal(t, collections.Sequence[int]{2}, got)
}

func TestMethod_String(t *testing.T) {
	assert.Equal(t, "add", collections.Named[int, int]("add").String())
	assert.Equal(t, "shared", collections.Shared(func(int, ...any) int { return 0 }).String())
}

func TestMethodSet(t *testing.T) {
	s := collections.NewMethodSet()
	assert.False(t, s.Has("ping"))
	s.Register("ping", func(...any) any { return "pong" })
	assert.True(t, s.Has("ping"))

	out, err := s.Invoke("ping")
	require.NoError(t, err)
	assert.Equal(t, "pong", out)

	_, err = s.Invoke("nope")
	assert.ErrorIs(t, err, collections.ErrMethodNotFound)
}

func TestMethodSet_ZeroValueRegister(t *testing.T) {
	var s collections.MethodSet
	s.Register("x", func(...any) any { return 1 })
	assert.True(t, s.Has("x"))
}

func TestMethodSet_ConcurrentAccess(t *testing.T) {
	s := collections.NewMethodSet()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.Register("id", func(args ...any) any { return args[0] })
		}()
		go func() {
			defer wg.Done()
			_, _ = s.Invoke("id", 1)
		}()
	}
	wg.Wait()
	assert.True(t, s.Has("id"))
}
