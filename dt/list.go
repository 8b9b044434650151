package dt

import (
	"iter"

	"github.com/tychoish/dsa/dt/cmp"
	"github.com/tychoish/dsa/ers"
)

// List provides a doubly linked list. Callers are responsible for
// their own concurrency control and bounds checking, and should
// generally use with the same care as a slice.
//
// The zero value is an empty list. All add and remove operations at
// either end of the list are O(1).
type List[T any] struct {
	head   *Element[T]
	tail   *Element[T]
	length int
}

// NewList builds a list containing the items, in order.
func NewList[T any](items ...T) *List[T] {
	l := &List[T]{}
	l.Append(items...)
	return l
}

// NewListFromSeq builds a list from the values of the sequence, in
// order.
func NewListFromSeq[T any](seq iter.Seq[T]) *List[T] {
	l := &List[T]{}
	l.Extend(seq)
	return l
}

// Len returns the length of the list. As the add and remove
// operations track the length of the list, this is an O(1) operation.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	return l.length
}

// Front returns a pointer to the first element of the list, or nil if
// the list is empty. You can use this pointer to begin a c-style
// iteration over the list:
//
//	for e := list.Front(); e != nil; e = e.Next() {
//	       // operate
//	}
func (l *List[T]) Front() *Element[T] { return l.head }

// Back returns a pointer to the last element of the list, or nil if
// the list is empty. You can use this pointer to begin a c-style
// iteration over the list:
//
//	for e := list.Back(); e != nil; e = e.Previous() {
//	       // operate
//	}
func (l *List[T]) Back() *Element[T] { return l.tail }

// Append adds a variadic sequence of items to the end of the list.
func (l *List[T]) Append(items ...T) {
	for idx := range items {
		l.PushBack(items[idx])
	}
}

// Extend adds the values of the sequence to the end of the list.
func (l *List[T]) Extend(seq iter.Seq[T]) {
	for v := range seq {
		l.PushBack(v)
	}
}

// PushFront creates an element, prepends it to the list, and returns
// it. The performance of PushFront and PushBack are the same.
func (l *List[T]) PushFront(v T) *Element[T] { e := NewElement(v); l.uncheckedAddFirst(e); return e }

// PushBack creates an element, appends it to the list, and returns
// it. The performance of PushFront and PushBack are the same.
func (l *List[T]) PushBack(v T) *Element[T] { e := NewElement(v); l.uncheckedAddLast(e); return e }

// AddFirst adds a detached element to the start of the list. AddFirst
// returns an ers.ErrArgumentNull error if the element is nil, and an
// ers.ErrInvalidOperation error if the element already belongs to a
// list. Neither list is modified when AddFirst fails.
func (l *List[T]) AddFirst(e *Element[T]) error {
	if err := attachable(e); err != nil {
		return err
	}
	l.uncheckedAddFirst(e)
	return nil
}

// AddLast adds a detached element to the end of the list, with the
// same failure modes as AddFirst.
func (l *List[T]) AddLast(e *Element[T]) error {
	if err := attachable(e); err != nil {
		return err
	}
	l.uncheckedAddLast(e)
	return nil
}

// AddAfter inserts a detached element after mark, which must be a
// member of this list.
func (l *List[T]) AddAfter(mark, e *Element[T]) error {
	if err := l.insertable(mark, e); err != nil {
		return err
	}
	if mark.next == nil {
		l.uncheckedAddLast(e)
		return nil
	}
	l.uncheckedInsert(e, mark, mark.next)
	return nil
}

// AddBefore inserts a detached element before mark, which must be a
// member of this list.
func (l *List[T]) AddBefore(mark, e *Element[T]) error {
	if err := l.insertable(mark, e); err != nil {
		return err
	}
	if mark.prev == nil {
		l.uncheckedAddFirst(e)
		return nil
	}
	l.uncheckedInsert(e, mark.prev, mark)
	return nil
}

func attachable[T any](e *Element[T]) error {
	switch {
	case e == nil:
		return ers.ArgumentNull("node")
	case !e.isDetached():
		return ers.InvalidOperation("node already belongs to a list")
	default:
		return nil
	}
}

func (l *List[T]) insertable(mark, e *Element[T]) error {
	if mark == nil {
		return ers.ArgumentNull("mark")
	}
	if err := attachable(e); err != nil {
		return err
	}
	if !mark.In(l) {
		return ers.InvalidOperation("node is not in the list")
	}
	return nil
}

func (l *List[T]) uncheckedAddFirst(e *Element[T]) {
	e.list = l
	e.prev = nil
	e.next = l.head
	if l.head == nil {
		l.tail = e
	} else {
		l.head.prev = e
	}
	l.head = e
	l.length++
}

func (l *List[T]) uncheckedAddLast(e *Element[T]) {
	e.list = l
	e.next = nil
	e.prev = l.tail
	if l.tail == nil {
		l.head = e
	} else {
		l.tail.next = e
	}
	l.tail = e
	l.length++
}

// uncheckedInsert threads e between two adjacent interior elements.
func (l *List[T]) uncheckedInsert(e, prev, next *Element[T]) {
	e.list = l
	e.prev, e.next = prev, next
	prev.next = e
	next.prev = e
	l.length++
}

// RemoveFirst removes the first element from the list and returns its
// value. Returns an ers.ErrInvalidOperation error if the list is
// empty.
func (l *List[T]) RemoveFirst() (T, error) {
	if l.Len() == 0 {
		return l.zero(), ers.InvalidOperation("list is empty")
	}
	e := l.head
	l.uncheckedRemove(e)
	return e.value, nil
}

// RemoveLast removes the last element from the list and returns its
// value. Returns an ers.ErrInvalidOperation error if the list is
// empty.
func (l *List[T]) RemoveLast() (T, error) {
	if l.Len() == 0 {
		return l.zero(), ers.InvalidOperation("list is empty")
	}
	e := l.tail
	l.uncheckedRemove(e)
	return e.value, nil
}

// Remove detaches the element from the list. Returns an
// ers.ErrArgumentNull error if the element is nil, and an
// ers.ErrInvalidOperation error if the element is not a member of
// this list.
func (l *List[T]) Remove(e *Element[T]) error {
	if e == nil {
		return ers.ArgumentNull("node")
	}
	if !e.In(l) {
		return ers.InvalidOperation("node is not in the list")
	}
	l.uncheckedRemove(e)
	return nil
}

// RemoveFunc removes the first element whose value satisfies the
// predicate. Returns an ers.ErrInvalidOperation error when no value
// matches.
func (l *List[T]) RemoveFunc(pred func(T) bool) error {
	if pred == nil {
		return ers.ArgumentNull("predicate")
	}
	e := l.Find(pred)
	if e == nil {
		return ers.InvalidOperation("item not found")
	}
	l.uncheckedRemove(e)
	return nil
}

func (l *List[T]) uncheckedRemove(e *Element[T]) {
	if e.prev == nil {
		l.head = e.next
	} else {
		e.prev.next = e.next
	}
	if e.next == nil {
		l.tail = e.prev
	} else {
		e.next.prev = e.prev
	}
	l.length--
	e.uncouple()
}

// Clear removes every element from the list, uncoupling each element
// from its neighbors and from the list. This is an O(n) operation.
func (l *List[T]) Clear() {
	for e := l.head; e != nil; {
		next := e.next
		e.uncouple()
		e = next
	}
	l.head, l.tail, l.length = nil, nil, 0
}

// Find returns the first element whose value satisfies the predicate,
// or nil if there is none.
func (l *List[T]) Find(pred func(T) bool) *Element[T] {
	for e := l.Front(); e != nil; e = e.next {
		if pred(e.value) {
			return e
		}
	}
	return nil
}

// Contains reports if any value in the list satisfies the predicate.
func (l *List[T]) Contains(pred func(T) bool) bool { return l.Find(pred) != nil }

// Reverse reverses the order of the elements in the list, in place.
func (l *List[T]) Reverse() {
	if l.Len() < 2 {
		return
	}
	for e := l.head; e != nil; e = e.prev {
		e.next, e.prev = e.prev, e.next
	}
	l.head, l.tail = l.tail, l.head
}

// Iterator returns an iterator over the values in the list in
// front-to-back order. The Iterator is not synchronized with the
// values in the list, and will be exhausted when you reach the end of
// the list.
func (l *List[T]) Iterator() iter.Seq[T] {
	return func(yield func(T) bool) {
		for e := l.Front(); e != nil; e = e.next {
			if !yield(e.value) {
				return
			}
		}
	}
}

// IteratorBack returns an iterator that produces values from the
// list, from the back to the front.
func (l *List[T]) IteratorBack() iter.Seq[T] {
	return func(yield func(T) bool) {
		for e := l.Back(); e != nil; e = e.prev {
			if !yield(e.value) {
				return
			}
		}
	}
}

// Slice exports the contents of the list to a slice.
func (l *List[T]) Slice() []T {
	out := make([]T, 0, l.Len())
	for e := l.Front(); e != nil; e = e.next {
		out = append(out, e.value)
	}
	return out
}

// Copy duplicates the list. The element objects in the list are
// distinct, though if the values are themselves references, the
// values of both lists would be shared.
func (l *List[T]) Copy() *List[T] { return NewListFromSeq(l.Iterator()) }

// Sort sorts the list in place with a stable merge sort. A nil
// comparator uses cmp.Default. No elements are allocated: the
// existing elements are relinked.
func (l *List[T]) Sort(c cmp.Comparator[T]) {
	if l.Len() < 2 {
		return
	}
	l.head = mergeSortElements(l.head, defaultComparator(c))
	l.tail = l.head
	for l.tail.next != nil {
		l.tail = l.tail.next
	}
}

// IsSorted reports if the list is sorted from low to high according
// to the comparator. A nil comparator uses cmp.Default.
func (l *List[T]) IsSorted(c cmp.Comparator[T]) bool {
	if l.Len() < 2 {
		return true
	}
	c = defaultComparator(c)
	for e := l.head.next; e != nil; e = e.next {
		if c.Lt(e.value, e.prev.value) {
			return false
		}
	}
	return true
}

func (*List[T]) zero() (o T) { return }
