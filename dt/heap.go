package dt

import (
	"iter"
	"math/bits"
	"slices"

	"golang.org/x/exp/constraints"

	"github.com/tychoish/dsa/dt/cmp"
	"github.com/tychoish/dsa/ers"
	"github.com/tychoish/dsa/internal"
)

// HeapOrder selects which extreme of the ordering a Heap keeps at its
// root.
type HeapOrder int8

const (
	// MinHeap keeps the smallest value at the root: a parent is in
	// the correct order when it is less than or equal to its
	// children.
	MinHeap HeapOrder = iota
	// MaxHeap keeps the largest value at the root: a parent is in
	// the correct order when it is greater than or equal to its
	// children.
	MaxHeap
)

func (o HeapOrder) String() string {
	switch o {
	case MinHeap:
		return "min"
	case MaxHeap:
		return "max"
	default:
		return "invalid"
	}
}

// Heap is a binary heap stored in a slice: the element at index i has
// children at 2i+1 and 2i+2 and its parent at (i-1)/2. The order is
// fixed when the heap is constructed.
//
// The zero value is an empty min-heap using cmp.Default.
type Heap[T any] struct {
	cmp   cmp.Comparator[T]
	order HeapOrder
	data  []T
}

// NewHeap constructs a heap with the given order and comparator (nil
// uses cmp.Default), and pushes the items onto it one at a time. Any
// order other than MaxHeap produces a MinHeap.
func NewHeap[T any](order HeapOrder, c cmp.Comparator[T], items ...T) *Heap[T] {
	if order != MaxHeap {
		order = MinHeap
	}
	h := &Heap[T]{cmp: c, order: order, data: make([]T, 0, len(items))}
	for idx := range items {
		h.Push(items[idx])
	}
	return h
}

// NewMinHeap constructs a min-heap over the natural order of the type.
func NewMinHeap[T constraints.Ordered](items ...T) *Heap[T] {
	return NewHeap(MinHeap, cmp.Natural[T](), items...)
}

// NewMaxHeap constructs a max-heap over the natural order of the type.
func NewMaxHeap[T constraints.Ordered](items ...T) *Heap[T] {
	return NewHeap(MaxHeap, cmp.Natural[T](), items...)
}

// Order returns the heap's order.
func (h *Heap[T]) Order() HeapOrder { return h.order }

// Len reports the size of the heap. This is a constant time
// operation.
func (h *Heap[T]) Len() int {
	if h == nil {
		return 0
	}
	return len(h.data)
}

// IsComplete reports if the heap's tree is perfect, with every level
// full, which is the case when the length plus one is a power of two.
func (h *Heap[T]) IsComplete() bool { return bits.OnesCount(uint(h.Len()+1)) == 1 }

// Push adds an item to the heap. This is an O(log n) operation.
func (h *Heap[T]) Push(item T) {
	h.data = append(h.data, item)
	h.siftUp(len(h.data) - 1)
}

// Peek returns the root of the heap without removing it. Returns an
// ers.ErrInvalidOperation error if the heap is empty.
func (h *Heap[T]) Peek() (T, error) {
	if h.Len() == 0 {
		return h.zero(), ers.InvalidOperation("heap is empty")
	}
	return h.data[0], nil
}

// Pop removes the root of the heap and returns it. Returns an
// ers.ErrInvalidOperation error if the heap is empty. This is an
// O(log n) operation.
func (h *Heap[T]) Pop() (T, error) {
	if h.Len() == 0 {
		return h.zero(), ers.InvalidOperation("heap is empty")
	}

	root := h.data[0]
	last := len(h.data) - 1
	h.swap(0, last)
	h.data[last] = h.zero()
	h.data = h.data[:last]

	if len(h.data) > 0 {
		h.siftDown(0)
	}

	return root, nil
}

// Slice returns a copy of the heap's backing slice, in heap (not
// sorted) order.
func (h *Heap[T]) Slice() []T {
	if h == nil {
		return []T{}
	}
	return append(make([]T, 0, h.Len()), h.data...)
}

// IteratorPop returns an iterator that pops values from the heap,
// producing them from the root's extreme outward, until the heap is
// empty or iteration stops.
func (h *Heap[T]) IteratorPop() iter.Seq[T] {
	return func(yield func(T) bool) {
		for h.Len() > 0 {
			value, _ := h.Pop()
			if !yield(value) {
				return
			}
		}
	}
}

// MarshalJSON produces a JSON array of the backing slice.
func (h *Heap[T]) MarshalJSON() ([]byte, error) {
	return internal.MarshalJSONArray(slices.Values(h.data))
}

// UnmarshalJSON reads a JSON array and pushes each value onto the
// heap. Existing values are kept.
func (h *Heap[T]) UnmarshalJSON(in []byte) error { return internal.UnmarshalJSONArray(in, h.Push) }

func (h *Heap[T]) siftUp(idx int) {
	for idx > 0 {
		parent := (idx - 1) / 2
		if h.correctOrder(h.data[parent], h.data[idx]) {
			return
		}
		h.swap(idx, parent)
		idx = parent
	}
}

func (h *Heap[T]) siftDown(idx int) {
	size := len(h.data)
	for {
		target := idx

		if left := 2*idx + 1; left < size && !h.correctOrder(h.data[target], h.data[left]) {
			target = left
		}
		if right := 2*idx + 2; right < size && !h.correctOrder(h.data[target], h.data[right]) {
			target = right
		}

		if target == idx {
			return
		}

		h.swap(idx, target)
		idx = target
	}
}

// correctOrder reports if parent may sit above child in the tree.
func (h *Heap[T]) correctOrder(parent, child T) bool {
	if h.order == MaxHeap {
		return h.comparator().Gte(parent, child)
	}
	return h.comparator().Lte(parent, child)
}

func (h *Heap[T]) comparator() cmp.Comparator[T] {
	if h.cmp == nil {
		return cmp.Default[T]()
	}
	return h.cmp
}

func (h *Heap[T]) swap(i, j int) { h.data[i], h.data[j] = h.data[j], h.data[i] }
func (*Heap[T]) zero() (o T)     { return }
