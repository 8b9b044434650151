package dt

import (
	"iter"

	"github.com/tychoish/dsa/ers"
	"github.com/tychoish/dsa/internal"
)

// Queue is a first-in, first-out collection backed by a
// ForwardList. The zero value is an empty queue.
type Queue[T any] struct {
	list ForwardList[T]
}

// NewQueue builds a queue by enqueuing the items in order.
func NewQueue[T any](items ...T) *Queue[T] {
	q := &Queue[T]{}
	q.list.Append(items...)
	return q
}

// Len returns the number of items in the queue. This is an O(1)
// operation.
func (q *Queue[T]) Len() int { return q.list.Len() }

// Enqueue adds an item to the end of the queue.
func (q *Queue[T]) Enqueue(it T) { q.list.PushBack(it) }

// Dequeue removes the item at the front of the queue and returns it.
// Returns an ers.ErrInvalidOperation error if the queue is empty.
func (q *Queue[T]) Dequeue() (T, error) {
	if q.Len() == 0 {
		return q.list.zero(), ers.InvalidOperation("queue is empty")
	}
	return q.list.RemoveFirst()
}

// Peek returns the item at the front of the queue without removing
// it. Returns an ers.ErrInvalidOperation error if the queue is empty.
func (q *Queue[T]) Peek() (T, error) {
	if q.Len() == 0 {
		return q.list.zero(), ers.InvalidOperation("queue is empty")
	}
	return q.list.Front().Value(), nil
}

// Clear removes all items from the queue.
func (q *Queue[T]) Clear() { q.list.Clear() }

// Contains reports if any item in the queue satisfies the predicate.
func (q *Queue[T]) Contains(pred func(T) bool) bool { return q.list.Contains(pred) }

// Slice exports the contents of the queue to a slice, front first.
func (q *Queue[T]) Slice() []T { return q.list.Slice() }

// Iterator returns a non-destructive iterator over the items in the
// queue, front first.
func (q *Queue[T]) Iterator() iter.Seq[T] { return q.list.Iterator() }

// MarshalJSON produces a JSON array of the queue's items, front
// first.
func (q *Queue[T]) MarshalJSON() ([]byte, error) { return internal.MarshalJSONArray(q.Iterator()) }

// UnmarshalJSON reads a JSON array and enqueues each item in order.
func (q *Queue[T]) UnmarshalJSON(in []byte) error { return internal.UnmarshalJSONArray(in, q.Enqueue) }
