package dt

import (
	"encoding/json"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tychoish/dsa/ers"
)

func TestQueue(t *testing.T) {
	t.Run("ZeroValue", func(t *testing.T) {
		queue := &Queue[int]{}
		assert.Equal(t, 0, queue.Len())
		queue.Enqueue(1)
		assert.Equal(t, 1, queue.Len())
	})
	t.Run("Empty", func(t *testing.T) {
		queue := NewQueue[int]()

		v, err := queue.Dequeue()
		assert.ErrorIs(t, err, ers.ErrInvalidOperation)
		assert.Equal(t, 0, v)

		_, err = queue.Peek()
		assert.ErrorIs(t, err, ers.ErrInvalidOperation)
	})
	t.Run("FirstInFirstOut", func(t *testing.T) {
		queue := NewQueue(1, 2, 3)
		assert.Equal(t, []int{1, 2, 3}, queue.Slice())

		head, err := queue.Peek()
		require.NoError(t, err)
		assert.Equal(t, 1, head)

		queue.Enqueue(4)
		for _, expected := range []int{1, 2, 3, 4} {
			v, err := queue.Dequeue()
			require.NoError(t, err)
			assert.Equal(t, expected, v)
		}
		assert.Equal(t, 0, queue.Len())

		queue.Enqueue(5)
		assert.Equal(t, []int{5}, slices.Collect(queue.Iterator()))
	})
	t.Run("ContainsAndClear", func(t *testing.T) {
		queue := NewQueue("x", "y")
		assert.True(t, queue.Contains(func(s string) bool { return s == "y" }))
		queue.Clear()
		assert.Equal(t, 0, queue.Len())
		assert.Empty(t, queue.Slice())
	})
	t.Run("JSON", func(t *testing.T) {
		out, err := json.Marshal(NewQueue("a", "b"))
		require.NoError(t, err)
		assert.Equal(t, `["a","b"]`, string(out))

		rt := &Queue[string]{}
		require.NoError(t, json.Unmarshal(out, rt))
		v, err := rt.Dequeue()
		require.NoError(t, err)
		assert.Equal(t, "a", v)
	})
}
