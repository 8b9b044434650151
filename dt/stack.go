package dt

import (
	"iter"

	"github.com/tychoish/dsa/ers"
	"github.com/tychoish/dsa/internal"
)

// Stack is a last-in, first-out collection backed by a ForwardList.
// The zero value is an empty stack.
type Stack[T any] struct {
	list ForwardList[T]
}

// NewStack builds a stack by pushing the items in order, so the last
// item is on top.
func NewStack[T any](items ...T) *Stack[T] {
	s := &Stack[T]{}
	for idx := range items {
		s.Push(items[idx])
	}
	return s
}

// Len returns the length of the stack. This is an O(1) operation.
func (s *Stack[T]) Len() int { return s.list.Len() }

// Push adds an item to the top of the stack.
func (s *Stack[T]) Push(it T) { s.list.PushFront(it) }

// Pop removes the item on the top of the stack, and returns it.
// Returns an ers.ErrInvalidOperation error if the stack is empty.
func (s *Stack[T]) Pop() (T, error) {
	if s.Len() == 0 {
		return s.list.zero(), ers.InvalidOperation("stack is empty")
	}
	return s.list.RemoveFirst()
}

// Peek returns the item on the top of the stack without removing it.
// Returns an ers.ErrInvalidOperation error if the stack is empty.
func (s *Stack[T]) Peek() (T, error) {
	if s.Len() == 0 {
		return s.list.zero(), ers.InvalidOperation("stack is empty")
	}
	return s.list.Front().Value(), nil
}

// Clear removes all items from the stack.
func (s *Stack[T]) Clear() { s.list.Clear() }

// Contains reports if any item in the stack satisfies the predicate.
func (s *Stack[T]) Contains(pred func(T) bool) bool { return s.list.Contains(pred) }

// Slice exports the contents of the stack to a slice, from the top of
// the stack to the bottom.
func (s *Stack[T]) Slice() []T { return s.list.Slice() }

// Iterator returns a non-destructive iterator over the items in the
// stack, from top to bottom.
func (s *Stack[T]) Iterator() iter.Seq[T] { return s.list.Iterator() }

// MarshalJSON produces a JSON array of the stack's items, from top to
// bottom.
func (s *Stack[T]) MarshalJSON() ([]byte, error) { return internal.MarshalJSONArray(s.Iterator()) }

// UnmarshalJSON reads a JSON array, as produced by MarshalJSON, and
// pushes the items so that the first item of the array ends up on
// top. Items already in the stack remain below the new items.
func (s *Stack[T]) UnmarshalJSON(in []byte) error {
	var items []T
	if err := internal.UnmarshalJSONArray(in, func(v T) { items = append(items, v) }); err != nil {
		return err
	}
	for idx := len(items) - 1; idx >= 0; idx-- {
		s.Push(items[idx])
	}
	return nil
}
