package lazy_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/mastermind/pkg/lazy"
)

func TestLoader_LoadsOnce(t *testing.T) {
	var calls int
	loader := lazy.New(func() (int, error) {
		calls++
		return 42, nil
	})

	var visited bool
	loader.IfLoaded(func(int) { visited = true })
	assert.False(t, visited)

	assert.Equal(t, 42, loader.MustLoad())
	value, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, 42, value)
	assert.Equal(t, 1, calls)

	loader.IfLoaded(func(v int) {
		visited = true
		assert.Equal(t, 42, v)
	})
	assert.True(t, visited)
}

func TestLoader_CachesError(t *testing.T) {
	var calls int
	loader := lazy.New(func() (string, error) {
		calls++
		return "", errors.New("unavailable")
	})

	_, err := loader.Load()
	assert.Error(t, err)
	_, err = loader.Load()
	assert.Error(t, err)
	assert.Equal(t, 1, calls)
	assert.Panics(t, func() { loader.MustLoad() })

	loader.IfLoaded(func(string) { t.Fail() })
}
