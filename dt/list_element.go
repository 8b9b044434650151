package dt

import (
	"fmt"
)

////////////////////////////////////////////////////////////////////////
//
// Element implementation
//
////////////////////////////////////////////////////////////////////////

// Element is the node type of a List, provided by the Front/Back
// accessors, Find, and the Push operations. You can use the methods
// on these objects to iterate through the list in either direction.
//
// Elements hold a reference to the list that owns them, and can
// belong to at most one list at a time.
type Element[T any] struct {
	next  *Element[T]
	prev  *Element[T]
	list  *List[T]
	value T
}

// NewElement produces a detached Element that you can add to a list
// with AddFirst, AddLast, AddAfter, or AddBefore.
func NewElement[T any](val T) *Element[T] { return &Element[T]{value: val} }

// String returns the string form of the value of the element.
func (e *Element[T]) String() string { return fmt.Sprint(e.Value()) }

// Value accesses the element's value. Nil elements return the zero
// value.
func (e *Element[T]) Value() (out T) {
	if e != nil {
		out = e.value
	}
	return
}

// Set changes the value of the element in place.
func (e *Element[T]) Set(v T) { e.value = v }

// Next produces the next element, or nil at the end of the list.
func (e *Element[T]) Next() *Element[T] { return e.next }

// Previous produces the previous element, or nil at the start of the
// list.
func (e *Element[T]) Previous() *Element[T] { return e.prev }

// In checks to see if an element is in the specified list. Because
// elements hold a pointer to their list, this is an O(1) operation.
//
// Returns false when the element is nil.
func (e *Element[T]) In(l *List[T]) bool { return e != nil && e.list != nil && e.list == l }

func (e *Element[T]) isDetached() bool { return e.list == nil }

// uncouple clears every reference the element holds so that a removed
// element cannot reach back into the list.
func (e *Element[T]) uncouple() { e.next, e.prev, e.list = nil, nil, nil }
