package argkey_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-fnutils/argkey"
)

func TestNewDefaultManager(t *testing.T) {
	m := argkey.NewDefaultManager()
	assert.Equal(t, argkey.DriverJSON, m.DefaultDriver())
	for _, d := range []argkey.DriverName{argkey.DriverJSON, argkey.DriverBlake2b, argkey.DriverXXHash} {
		assert.True(t, m.HasDriver(d), "driver %q not registered", d)
	}
	k, err := m.Key([]any{"user", 42})
	require.NoError(t, err)
	assert.Equal(t, `["user",42]`, k)
}

func TestManager_RegisterDriver(t *testing.T) {
	m := argkey.NewManager("custom")
	assert.ErrorIs(t, m.RegisterDriver("", argkey.NewJSONKeyer()), argkey.ErrEmptyDriverName)
	assert.ErrorIs(t, m.RegisterDriver("custom", nil), argkey.ErrNilKeyer)

	require.NoError(t, m.RegisterDriver("custom", argkey.KeyFunc(func([]any) (string, error) {
		return "k", nil
	})))
	got, err := m.Key(nil)
	require.NoError(t, err)
	assert.Equal(t, "k", got)
}

func TestManager_MissingDefault(t *testing.T) {
	m := argkey.NewManager(argkey.DriverJSON)
	_, err := m.Key([]any{1})
	assert.True(t, errors.Is(err, argkey.ErrDriverNotFound))

	_, err = m.Driver(argkey.DriverXXHash)
	assert.ErrorIs(t, err, argkey.ErrDriverNotFound)
}

func TestManager_SetDefaultDriver(t *testing.T) {
	m := argkey.NewDefaultManager()
	assert.ErrorIs(t, m.SetDefaultDriver("nope"), argkey.ErrDriverNotFound)
	assert.Equal(t, argkey.DriverJSON, m.DefaultDriver())

	require.NoError(t, m.SetDefaultDriver(argkey.DriverXXHash))
	k, err := m.Key([]any{1})
	require.NoError(t, err)
	assert.Len(t, k, 16)

	keyer := m.AsKeyer()
	assert.Equal(t, argkey.DriverXXHash, keyer.Driver())
	viaKeyer, err := keyer.Key([]any{1})
	require.NoError(t, err)
	assert.Equal(t, k, viaKeyer)
}

func TestManager_ConcurrentAccess(t *testing.T) {
	m := argkey.NewDefaultManager()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				_ = m.SetDefaultDriver(argkey.DriverBlake2b)
			} else {
				_ = m.SetDefaultDriver(argkey.DriverJSON)
			}
		}(i)
		go func() {
			defer wg.Done()
			_, err := m.Key([]any{"x"})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
}
