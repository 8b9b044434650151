package ers

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPanics(t *testing.T) {
	t.Run("ParsePanic", func(t *testing.T) {
		assert.NoError(t, ParsePanic(nil))

		err := ParsePanic("boom")
		assert.ErrorIs(t, err, ErrRecoveredPanic)
		assert.Equal(t, "boom: recovered panic", err.Error())

		err = ParsePanic(errors.New("kaboom"))
		assert.ErrorIs(t, err, ErrRecoveredPanic)
		assert.Equal(t, "kaboom: recovered panic", err.Error())

		err = ParsePanic(42)
		assert.ErrorIs(t, err, ErrRecoveredPanic)
		assert.Equal(t, "[int]: 42: recovered panic", err.Error())
	})
	t.Run("WithRecoverCall", func(t *testing.T) {
		assert.NoError(t, WithRecoverCall(func() {}))

		err := WithRecoverCall(func() { panic("function runs") })
		require.Error(t, err)
		assert.Equal(t, "function runs: recovered panic", err.Error())
	})
	t.Run("WithRecoverDo", func(t *testing.T) {
		out, err := WithRecoverDo(func() (int, error) { return 42, nil })
		require.NoError(t, err)
		assert.Equal(t, 42, out)

		out, err = WithRecoverDo(func() (int, error) { return 1, ErrInvalidInput })
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Equal(t, 1, out)

		out, err = WithRecoverDo(func() (int, error) { panic("nope") })
		assert.ErrorIs(t, err, ErrRecoveredPanic)
		assert.Equal(t, 0, out)
	})
}
