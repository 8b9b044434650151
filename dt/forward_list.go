package dt

import (
	"fmt"
	"iter"

	"github.com/tychoish/dsa/dt/cmp"
	"github.com/tychoish/dsa/ers"
)

// ForwardList provides a singly linked list. Callers are responsible
// for their own concurrency control and bounds checking, and should
// generally use with the same care as a slice.
//
// The zero value is an empty list. Appending and prepending are
// O(1); removing the last element is O(n).
type ForwardList[T any] struct {
	head   *Link[T]
	tail   *Link[T]
	length int
}

// Link is the node type of a ForwardList. Links hold a reference to
// the list that owns them, and can belong to at most one list at a
// time.
type Link[T any] struct {
	next  *Link[T]
	list  *ForwardList[T]
	value T
}

// NewLink produces a detached Link that you can add to a list with
// AddFirst, AddLast, or AddAfter.
func NewLink[T any](val T) *Link[T] { return &Link[T]{value: val} }

// String returns the string form of the value of the link.
func (n *Link[T]) String() string { return fmt.Sprint(n.Value()) }

// Value accesses the link's value. Nil links return the zero value.
func (n *Link[T]) Value() (out T) {
	if n != nil {
		out = n.value
	}
	return
}

// Set changes the value of the link in place.
func (n *Link[T]) Set(v T) { n.value = v }

// Next returns the following link, or nil at the end of the list.
func (n *Link[T]) Next() *Link[T] { return n.next }

// In reports if the link is a member of the list. Because links hold
// a reference to their list, this is an O(1) operation.
//
// Returns false when the link is nil.
func (n *Link[T]) In(l *ForwardList[T]) bool { return n != nil && n.list != nil && n.list == l }

func (n *Link[T]) uncouple() { n.next = nil; n.list = nil }

// NewForwardList builds a list containing the items, in order.
func NewForwardList[T any](items ...T) *ForwardList[T] {
	l := &ForwardList[T]{}
	l.Append(items...)
	return l
}

// NewForwardListFromSeq builds a list from the values of the
// sequence, in order.
func NewForwardListFromSeq[T any](seq iter.Seq[T]) *ForwardList[T] {
	l := &ForwardList[T]{}
	l.Extend(seq)
	return l
}

// Len returns the length of the list. As the add and remove
// operations track the length of the list, this is an O(1) operation.
func (l *ForwardList[T]) Len() int {
	if l == nil {
		return 0
	}
	return l.length
}

// Front returns the first link of the list, or nil when the list is
// empty. You can use this to begin a c-style iteration over the list:
//
//	for n := list.Front(); n != nil; n = n.Next() {
//	       // operate
//	}
func (l *ForwardList[T]) Front() *Link[T] { return l.head }

// Back returns the last link of the list, or nil when the list is
// empty.
func (l *ForwardList[T]) Back() *Link[T] { return l.tail }

// Append adds a variadic sequence of items to the end of the list.
func (l *ForwardList[T]) Append(items ...T) {
	for idx := range items {
		l.PushBack(items[idx])
	}
}

// Extend adds the values of the sequence to the end of the list.
func (l *ForwardList[T]) Extend(seq iter.Seq[T]) {
	for v := range seq {
		l.PushBack(v)
	}
}

// PushBack creates a link for the value, appends it to the list and
// returns it.
func (l *ForwardList[T]) PushBack(v T) *Link[T] { n := NewLink(v); l.uncheckedAddLast(n); return n }

// PushFront creates a link for the value, prepends it to the list
// and returns it.
func (l *ForwardList[T]) PushFront(v T) *Link[T] { n := NewLink(v); l.uncheckedAddFirst(n); return n }

// AddFirst adds a detached link to the start of the list. AddFirst
// returns an ers.ErrArgumentNull error if the link is nil, and an
// ers.ErrInvalidOperation error if the link already belongs to a
// list.
func (l *ForwardList[T]) AddFirst(n *Link[T]) error {
	if err := l.attachable(n); err != nil {
		return err
	}
	l.uncheckedAddFirst(n)
	return nil
}

// AddLast adds a detached link to the end of the list, with the same
// failure modes as AddFirst.
func (l *ForwardList[T]) AddLast(n *Link[T]) error {
	if err := l.attachable(n); err != nil {
		return err
	}
	l.uncheckedAddLast(n)
	return nil
}

// AddAfter inserts a detached link after mark, which must be a member
// of this list. This is an O(1) operation.
func (l *ForwardList[T]) AddAfter(mark, n *Link[T]) error {
	if mark == nil {
		return ers.ArgumentNull("mark")
	}
	if err := l.attachable(n); err != nil {
		return err
	}
	if !mark.In(l) {
		return ers.InvalidOperation("node is not in the list")
	}

	n.list = l
	n.next = mark.next
	mark.next = n
	if l.tail == mark {
		l.tail = n
	}
	l.length++
	return nil
}

func (l *ForwardList[T]) attachable(n *Link[T]) error {
	switch {
	case n == nil:
		return ers.ArgumentNull("node")
	case n.list != nil:
		return ers.InvalidOperation("node already belongs to a list")
	default:
		return nil
	}
}

func (l *ForwardList[T]) uncheckedAddFirst(n *Link[T]) {
	n.list = l
	n.next = l.head
	l.head = n
	if l.tail == nil {
		l.tail = n
	}
	l.length++
}

func (l *ForwardList[T]) uncheckedAddLast(n *Link[T]) {
	n.list = l
	n.next = nil
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.length++
}

// RemoveFirst removes the first link of the list and returns its
// value. Returns an ers.ErrInvalidOperation error if the list is
// empty.
func (l *ForwardList[T]) RemoveFirst() (T, error) {
	if l.Len() == 0 {
		return l.zero(), ers.InvalidOperation("list is empty")
	}
	n := l.head
	l.uncheckedRemove(n, nil)
	return n.value, nil
}

// RemoveLast removes the last link of the list and returns its
// value. Because the list is singly linked, this is an O(n)
// operation. Returns an ers.ErrInvalidOperation error if the list is
// empty.
func (l *ForwardList[T]) RemoveLast() (T, error) {
	if l.Len() == 0 {
		return l.zero(), ers.InvalidOperation("list is empty")
	}
	n := l.tail
	l.uncheckedRemove(n, l.before(n))
	return n.value, nil
}

// Remove detaches the link from the list. Returns an
// ers.ErrArgumentNull error if the link is nil, and an
// ers.ErrInvalidOperation error if the link is not a member of this
// list.
func (l *ForwardList[T]) Remove(n *Link[T]) error {
	if n == nil {
		return ers.ArgumentNull("node")
	}
	if !n.In(l) {
		return ers.InvalidOperation("node is not in the list")
	}
	l.uncheckedRemove(n, l.before(n))
	return nil
}

// RemoveFunc removes the first link whose value satisfies the
// predicate. Returns an ers.ErrInvalidOperation error when no value
// matches.
func (l *ForwardList[T]) RemoveFunc(pred func(T) bool) error {
	if pred == nil {
		return ers.ArgumentNull("predicate")
	}

	var prev *Link[T]
	for n := l.head; n != nil; prev, n = n, n.next {
		if pred(n.value) {
			l.uncheckedRemove(n, prev)
			return nil
		}
	}

	return ers.InvalidOperation("item not found")
}

// before returns the link preceding n, or nil when n is the head.
func (l *ForwardList[T]) before(n *Link[T]) *Link[T] {
	if l.head == n {
		return nil
	}
	prev := l.head
	for prev.next != n {
		prev = prev.next
	}
	return prev
}

func (l *ForwardList[T]) uncheckedRemove(n, prev *Link[T]) {
	if prev == nil {
		l.head = n.next
	} else {
		prev.next = n.next
	}
	if l.tail == n {
		l.tail = prev
	}
	l.length--
	n.uncouple()
}

// Clear removes every link from the list, uncoupling each link from
// its neighbors and from the list. This is an O(n) operation.
func (l *ForwardList[T]) Clear() {
	for n := l.head; n != nil; {
		next := n.next
		n.uncouple()
		n = next
	}
	l.head, l.tail, l.length = nil, nil, 0
}

// Find returns the first link whose value satisfies the predicate, or
// nil if there is none.
func (l *ForwardList[T]) Find(pred func(T) bool) *Link[T] {
	for n := l.Front(); n != nil; n = n.next {
		if pred(n.value) {
			return n
		}
	}
	return nil
}

// Contains reports if any value in the list satisfies the predicate.
func (l *ForwardList[T]) Contains(pred func(T) bool) bool { return l.Find(pred) != nil }

// Reverse reverses the order of the links in the list, in place.
func (l *ForwardList[T]) Reverse() {
	if l.Len() < 2 {
		return
	}

	var prev *Link[T]
	for n := l.head; n != nil; {
		next := n.next
		n.next = prev
		prev, n = n, next
	}
	l.head, l.tail = l.tail, l.head
}

// Iterator returns an iterator over the values in the list in
// front-to-back order.
func (l *ForwardList[T]) Iterator() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.Front(); n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Slice exports the contents of the list to a slice.
func (l *ForwardList[T]) Slice() []T {
	out := make([]T, 0, l.Len())
	for n := l.Front(); n != nil; n = n.next {
		out = append(out, n.value)
	}
	return out
}

// Copy duplicates the list. The links are distinct, though if the
// values are themselves references, the values of both lists are
// shared.
func (l *ForwardList[T]) Copy() *ForwardList[T] { return NewForwardListFromSeq(l.Iterator()) }

// Sort sorts the list in place with a stable merge sort. A nil
// comparator uses cmp.Default.
func (l *ForwardList[T]) Sort(c cmp.Comparator[T]) {
	if l.Len() < 2 {
		return
	}
	l.head = mergeSortLinks(l.head, defaultComparator(c))
	l.tail = l.head
	for l.tail.next != nil {
		l.tail = l.tail.next
	}
}

// IsSorted reports if the list is sorted from low to high according
// to the comparator. A nil comparator uses cmp.Default.
func (l *ForwardList[T]) IsSorted(c cmp.Comparator[T]) bool {
	if l.Len() < 2 {
		return true
	}
	c = defaultComparator(c)
	for n := l.head; n.next != nil; n = n.next {
		if c.Gt(n.value, n.next.value) {
			return false
		}
	}
	return true
}

func (*ForwardList[T]) zero() (o T) { return }
