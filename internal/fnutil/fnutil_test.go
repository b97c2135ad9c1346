package fnutil

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoize(t *testing.T) {
	t.Run("successful results are cached", func(t *testing.T) {
		calls := 0
		double, err := Memoize(8, func(n int) (int, error) {
			calls++
			return n * 2, nil
		})
		require.NoError(t, err)

		for range 3 {
			v, err := double(21)
			require.NoError(t, err)
			assert.Equal(t, 42, v)
		}
		assert.Equal(t, 1, calls)

		_, err = double(5)
		require.NoError(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("errors are retried", func(t *testing.T) {
		calls := 0
		flaky, err := Memoize(8, func(string) (int, error) {
			calls++
			if calls == 1 {
				return 0, errors.New("transient")
			}
			return 7, nil
		})
		require.NoError(t, err)

		_, err = flaky("key")
		require.Error(t, err)

		v, err := flaky("key")
		require.NoError(t, err)
		assert.Equal(t, 7, v)
		assert.Equal(t, 2, calls)
	})

	t.Run("invalid cache size", func(t *testing.T) {
		_, err := Memoize(0, func(int) (int, error) { return 0, nil })
		assert.Error(t, err)
	})
}

func TestOnce(t *testing.T) {
	calls := 0
	get := Once(func() int {
		calls++
		return 42
	})

	assert.Zero(t, calls)
	assert.Equal(t, 42, get())
	assert.Equal(t, 42, get())
	assert.Equal(t, 1, calls)
}

func TestForceList(t *testing.T) {
	t.Run("bare value", func(t *testing.T) {
		got, ok := ForceList[string]("a")
		require.True(t, ok)
		assert.Equal(t, []string{"a"}, got)
	})

	t.Run("slice passes through", func(t *testing.T) {
		got, ok := ForceList[string]([]string{"a", "b"})
		require.True(t, ok)
		assert.Equal(t, []string{"a", "b"}, got)
	})

	t.Run("wrong type", func(t *testing.T) {
		_, ok := ForceList[string](42)
		assert.False(t, ok)
	})
}

func TestCurry(t *testing.T) {
	join := func(a, b string) string { return a + ":" + b }
	prefixed := Curry2(join)("mod")
	assert.Equal(t, "mod:Target", prefixed("Target"))

	sum := func(a, b, c int) int { return a + b + c }
	addTen := Curry3(sum)(10)
	assert.Equal(t, 16, addTen(2, 4))
}

func TestVerifySignature(t *testing.T) {
	ctxType := reflect.TypeOf((*context.Context)(nil)).Elem()
	strType := reflect.TypeOf("")
	errType := reflect.TypeOf((*error)(nil)).Elem()

	handler := func(ctx context.Context, name string, err error) {}

	t.Run("matching head and tail", func(t *testing.T) {
		assert.True(t, VerifySignature(handler, []reflect.Type{ctxType}, []reflect.Type{errType}))
	})

	t.Run("full parameter list", func(t *testing.T) {
		assert.True(t, VerifySignature(handler, []reflect.Type{ctxType, strType, errType}, nil))
	})

	t.Run("mismatched head", func(t *testing.T) {
		assert.False(t, VerifySignature(handler, []reflect.Type{strType}, nil))
	})

	t.Run("too few parameters", func(t *testing.T) {
		short := func(ctx context.Context) {}
		assert.False(t, VerifySignature(short, []reflect.Type{ctxType}, []reflect.Type{errType}))
	})

	t.Run("non-function never verifies", func(t *testing.T) {
		assert.False(t, VerifySignature(42, nil, nil))
		assert.False(t, VerifySignature(nil, nil, nil))
	})
}
