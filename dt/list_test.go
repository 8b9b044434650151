package dt

import (
	"encoding/json"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tychoish/dsa/ers"
)

// checkList verifies every structural invariant of a doubly linked
// list: the length matches both walks, the walks mirror each other,
// and every element is owned by the list.
func checkList[T any](t testing.TB, l *List[T]) {
	t.Helper()

	if l.Len() == 0 {
		require.Nil(t, l.head, "empty list must have no head")
		require.Nil(t, l.tail, "empty list must have no tail")
		return
	}

	require.NotNil(t, l.head)
	require.NotNil(t, l.tail)
	require.Nil(t, l.head.prev, "head must not have a predecessor")
	require.Nil(t, l.tail.next, "tail must not have a successor")

	forward := 0
	var last *Element[T]
	for e := l.head; e != nil; e = e.next {
		require.True(t, e.In(l), "element at %d is not owned by the list", forward)
		require.True(t, last == e.prev, "broken prev link at %d", forward)
		last = e
		forward++
		require.LessOrEqual(t, forward, l.Len(), "forward walk is longer than the list")
	}
	require.True(t, l.tail == last, "tail is not the last element")
	require.Equal(t, l.Len(), forward)

	backward := 0
	for e := l.tail; e != nil; e = e.prev {
		backward++
		require.LessOrEqual(t, backward, l.Len(), "backward walk is longer than the list")
	}
	require.Equal(t, l.Len(), backward)

	fwd := l.Slice()
	bwd := slices.Collect(l.IteratorBack())
	slices.Reverse(bwd)
	require.Equal(t, fwd, bwd)
}

func randomInts(size int) []int {
	out := make([]int, size)
	for idx := range out {
		out[idx] = rand.Intn(size) + 1
	}
	return out
}

func TestList(t *testing.T) {
	t.Run("ZeroValue", func(t *testing.T) {
		list := &List[int]{}
		assert.Equal(t, 0, list.Len())
		assert.Nil(t, list.Front())
		assert.Nil(t, list.Back())
		assert.Empty(t, list.Slice())
		checkList(t, list)

		var nilList *List[int]
		assert.Equal(t, 0, nilList.Len())
	})
	t.Run("Constructors", func(t *testing.T) {
		list := NewList(1, 2, 5)
		assert.Equal(t, []int{1, 2, 5}, list.Slice())
		checkList(t, list)

		slist := NewListFromSeq(slices.Values([]string{"a", "b"}))
		assert.Equal(t, []string{"a", "b"}, slist.Slice())
		assert.Equal(t, "a", slist.Front().Value())
		assert.Equal(t, "b", slist.Back().Value())
		checkList(t, slist)
	})
	t.Run("RoundTrip", func(t *testing.T) {
		list := &List[int]{}
		list.Append(1, 2, 5)
		assert.Equal(t, []int{1, 2, 5}, list.Slice())

		list.Reverse()
		assert.Equal(t, []int{5, 2, 1}, list.Slice())
		checkList(t, list)
	})
	t.Run("LengthTracks", func(t *testing.T) {
		list := &List[int]{}
		for i := 1; i <= 100; i++ {
			if i%2 == 0 {
				list.PushBack(i)
			} else {
				list.PushFront(i)
			}
			require.Equal(t, i, list.Len())
		}
		checkList(t, list)

		for i := 100; i > 0; i-- {
			var err error
			if i%2 == 0 {
				_, err = list.RemoveFirst()
			} else {
				_, err = list.RemoveLast()
			}
			require.NoError(t, err)
			require.Equal(t, i-1, list.Len())
		}
		checkList(t, list)
	})
	t.Run("WrapAroundEffects", func(t *testing.T) {
		list := &List[int]{}
		for i := 0; i < 21; i++ {
			if i%2 == 0 {
				list.PushBack(i)
			} else {
				list.PushFront(i)
			}
		}
		expected := []int{19, 17, 15, 13, 11, 9, 7, 5, 3, 1, 0, 2, 4, 6, 8, 10, 12, 14, 16, 18, 20}
		assert.Equal(t, expected, list.Slice())
		checkList(t, list)
	})
	t.Run("Add", func(t *testing.T) {
		t.Run("FirstAndLast", func(t *testing.T) {
			list := &List[int]{}
			require.NoError(t, list.AddLast(NewElement(2)))
			require.NoError(t, list.AddFirst(NewElement(1)))
			require.NoError(t, list.AddLast(NewElement(3)))
			assert.Equal(t, []int{1, 2, 3}, list.Slice())
			checkList(t, list)
		})
		t.Run("Nil", func(t *testing.T) {
			list := NewList(1)
			assert.ErrorIs(t, list.AddFirst(nil), ers.ErrArgumentNull)
			assert.ErrorIs(t, list.AddLast(nil), ers.ErrArgumentNull)
			assert.ErrorIs(t, list.AddAfter(list.Front(), nil), ers.ErrArgumentNull)
			assert.ErrorIs(t, list.AddBefore(nil, NewElement(1)), ers.ErrArgumentNull)
			assert.Equal(t, []int{1}, list.Slice())
		})
		t.Run("OwnershipExclusivity", func(t *testing.T) {
			one := NewList(1, 2, 3)
			two := NewList(4, 5)
			owned := one.Front().Next()

			for name, op := range map[string]func() error{
				"AddFirst":  func() error { return two.AddFirst(owned) },
				"AddLast":   func() error { return two.AddLast(owned) },
				"AddAfter":  func() error { return two.AddAfter(two.Front(), owned) },
				"AddBefore": func() error { return two.AddBefore(two.Back(), owned) },
				"SameList":  func() error { return one.AddLast(owned) },
			} {
				t.Run(name, func(t *testing.T) {
					assert.ErrorIs(t, op(), ers.ErrInvalidOperation)
					assert.Equal(t, []int{1, 2, 3}, one.Slice())
					assert.Equal(t, []int{4, 5}, two.Slice())
					assert.True(t, owned.In(one))
					assert.False(t, owned.In(two))
					checkList(t, one)
					checkList(t, two)
				})
			}
		})
		t.Run("AfterAndBefore", func(t *testing.T) {
			list := NewList(2, 4)
			require.NoError(t, list.AddAfter(list.Front(), NewElement(3)))
			require.NoError(t, list.AddAfter(list.Back(), NewElement(5)))
			require.NoError(t, list.AddBefore(list.Front(), NewElement(1)))
			require.NoError(t, list.AddBefore(list.Back(), NewElement(42)))
			assert.Equal(t, []int{1, 2, 3, 4, 42, 5}, list.Slice())
			assert.Equal(t, 5, list.Back().Value())
			assert.Equal(t, 1, list.Front().Value())
			checkList(t, list)
		})
		t.Run("MarkNotInList", func(t *testing.T) {
			list := NewList(1, 2)
			other := NewList(3)
			assert.ErrorIs(t, list.AddAfter(other.Front(), NewElement(9)), ers.ErrInvalidOperation)
			assert.ErrorIs(t, list.AddBefore(NewElement(7), NewElement(9)), ers.ErrInvalidOperation)
			assert.ErrorIs(t, (&List[int]{}).AddAfter(NewElement(7), NewElement(9)), ers.ErrInvalidOperation)
			assert.Equal(t, []int{1, 2}, list.Slice())
			checkList(t, list)
		})
	})
	t.Run("Remove", func(t *testing.T) {
		t.Run("Empty", func(t *testing.T) {
			list := &List[int]{}
			_, err := list.RemoveFirst()
			assert.ErrorIs(t, err, ers.ErrInvalidOperation)
			_, err = list.RemoveLast()
			assert.ErrorIs(t, err, ers.ErrInvalidOperation)
			checkList(t, list)
		})
		t.Run("Ends", func(t *testing.T) {
			list := NewList(1, 2, 3)
			first := list.Front()
			v, err := list.RemoveFirst()
			require.NoError(t, err)
			assert.Equal(t, 1, v)
			assert.False(t, first.In(list))
			assert.Nil(t, first.Next())

			v, err = list.RemoveLast()
			require.NoError(t, err)
			assert.Equal(t, 3, v)
			assert.Equal(t, []int{2}, list.Slice())
			checkList(t, list)

			v, err = list.RemoveLast()
			require.NoError(t, err)
			assert.Equal(t, 2, v)
			checkList(t, list)
		})
		t.Run("Element", func(t *testing.T) {
			list := NewList(1, 2, 3)
			mid := list.Front().Next()
			require.NoError(t, list.Remove(mid))
			assert.Equal(t, []int{1, 3}, list.Slice())
			assert.Nil(t, mid.Next())
			assert.Nil(t, mid.Previous())
			assert.False(t, mid.In(list))
			checkList(t, list)

			assert.ErrorIs(t, list.Remove(mid), ers.ErrInvalidOperation)
			assert.ErrorIs(t, list.Remove(nil), ers.ErrArgumentNull)

			// a removed element may join another list
			other := &List[int]{}
			require.NoError(t, other.AddLast(mid))
			assert.Equal(t, []int{2}, other.Slice())
			checkList(t, other)
		})
		t.Run("Func", func(t *testing.T) {
			list := NewList(1, 2, 3, 2)
			require.NoError(t, list.RemoveFunc(func(v int) bool { return v == 2 }))
			assert.Equal(t, []int{1, 3, 2}, list.Slice())
			assert.ErrorIs(t, list.RemoveFunc(func(v int) bool { return v == 9 }), ers.ErrInvalidOperation)
			assert.ErrorIs(t, list.RemoveFunc(nil), ers.ErrArgumentNull)
			assert.Equal(t, []int{1, 3, 2}, list.Slice())
			checkList(t, list)
		})
		t.Run("Clear", func(t *testing.T) {
			list := NewList(1, 2, 3)
			elems := []*Element[int]{list.Front(), list.Front().Next(), list.Back()}
			list.Clear()
			checkList(t, list)
			assert.Equal(t, 0, list.Len())
			for _, e := range elems {
				assert.False(t, e.In(list))
				assert.Nil(t, e.Next())
				assert.Nil(t, e.Previous())
			}
			list.PushBack(4)
			assert.Equal(t, []int{4}, list.Slice())
		})
	})
	t.Run("Find", func(t *testing.T) {
		list := NewList("a", "b", "c")
		e := list.Find(func(v string) bool { return v == "b" })
		require.NotNil(t, e)
		assert.Equal(t, "b", e.Value())
		assert.Equal(t, "b", e.String())
		assert.Nil(t, list.Find(func(v string) bool { return v == "z" }))
		assert.True(t, list.Contains(func(v string) bool { return v == "c" }))
		assert.False(t, list.Contains(func(v string) bool { return v == "z" }))

		e.Set("B")
		assert.Equal(t, []string{"a", "B", "c"}, list.Slice())

		var nilElem *Element[string]
		assert.Equal(t, "", nilElem.Value())
		assert.False(t, nilElem.In(list))
	})
	t.Run("Reverse", func(t *testing.T) {
		for _, size := range []int{0, 1, 2, 3, 10} {
			vals := randomInts(size)
			list := NewList(vals...)
			list.Reverse()
			slices.Reverse(vals)
			assert.Equal(t, vals, list.Slice())
			checkList(t, list)
		}
	})
	t.Run("Iterators", func(t *testing.T) {
		list := NewList(1, 2, 3, 4)
		assert.Equal(t, []int{1, 2, 3, 4}, slices.Collect(list.Iterator()))
		assert.Equal(t, []int{4, 3, 2, 1}, slices.Collect(list.IteratorBack()))

		seen := 0
		for range list.Iterator() {
			seen++
			if seen == 2 {
				break
			}
		}
		assert.Equal(t, 2, seen)
	})
	t.Run("Copy", func(t *testing.T) {
		list := NewList(1, 2, 3)
		cp := list.Copy()
		assert.Equal(t, list.Slice(), cp.Slice())
		cp.Front().Set(100)
		assert.Equal(t, 1, list.Front().Value())
		checkList(t, cp)
	})
	t.Run("JSON", func(t *testing.T) {
		list := NewList(3, 1, 2)
		out, err := json.Marshal(list)
		require.NoError(t, err)
		assert.Equal(t, "[3,1,2]", string(out))

		out, err = json.Marshal(&List[int]{})
		require.NoError(t, err)
		assert.Equal(t, "[]", string(out))

		rt := NewList(0)
		require.NoError(t, json.Unmarshal([]byte("[3,1,2]"), rt))
		assert.Equal(t, []int{0, 3, 1, 2}, rt.Slice())
		checkList(t, rt)

		assert.Error(t, json.Unmarshal([]byte(`[3,"one"]`), rt))
		assert.Equal(t, []int{0, 3, 1, 2}, rt.Slice())

		type wrapper struct {
			Items *List[string] `json:"items"`
		}
		var w wrapper
		require.NoError(t, json.Unmarshal([]byte(`{"items":["a","b"]}`), &w))
		assert.Equal(t, []string{"a", "b"}, w.Items.Slice())
	})
}
