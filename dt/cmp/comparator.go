// Package cmp provides the ordering strategies used to sort linked
// lists and slices, and to order heaps.
package cmp

import (
	"time"

	"golang.org/x/exp/constraints"
)

// Comparator is a three-way comparison function. It returns a
// negative number when a orders before b, zero when they are equal,
// and a positive number when a orders after b.
//
// Comparators must describe a strict weak ordering for sorts and heaps
// to produce meaningful results. An inconsistent comparator produces
// an unspecified order, but never corrupts the containers using it.
type Comparator[T any] func(a, b T) int

// Orderable allows users to define a method on their types which
// provide a three-way comparison with another value of the same type.
type Orderable[T any] interface{ Compare(T) int }

// Compare calls the underlying function.
func (c Comparator[T]) Compare(a, b T) int { return c(a, b) }

// Eq, Gt, Lt, Gte and Lte report whether a stands in the named
// relation to b under the comparator.
func (c Comparator[T]) Eq(a, b T) bool  { return c(a, b) == 0 }
func (c Comparator[T]) Gt(a, b T) bool  { return c(a, b) > 0 }
func (c Comparator[T]) Lt(a, b T) bool  { return c(a, b) < 0 }
func (c Comparator[T]) Gte(a, b T) bool { return c(a, b) >= 0 }
func (c Comparator[T]) Lte(a, b T) bool { return c(a, b) <= 0 }

// LessThan converts the comparator into a less than predicate, for
// use with APIs like sort.Slice.
func (c Comparator[T]) LessThan() func(a, b T) bool { return c.Lt }

// FromLessThan builds a comparator from a less than predicate. Values
// for which neither lt(a, b) nor lt(b, a) hold are equal.
func FromLessThan[T any](lt func(a, b T) bool) Comparator[T] {
	return func(a, b T) int {
		switch {
		case lt(a, b):
			return -1
		case lt(b, a):
			return 1
		default:
			return 0
		}
	}
}

// Natural orders types that support the < operator.
func Natural[T constraints.Ordered]() Comparator[T] { return compareOrdered[T] }

// Custom orders types that implement Orderable.
func Custom[T Orderable[T]]() Comparator[T] { return func(a, b T) int { return a.Compare(b) } }

// By orders values by the natural order of a key derived from each
// value. Values with equal keys compare equal, which makes By useful
// for observing sort stability.
func By[T any, K constraints.Ordered](key func(T) K) Comparator[T] {
	return func(a, b T) int { return compareOrdered(key(a), key(b)) }
}

// Time orders time values chronologically.
func Time() Comparator[time.Time] { return func(a, b time.Time) int { return a.Compare(b) } }

// Reverse inverts the direction of an existing comparator.
func Reverse[T any](c Comparator[T]) Comparator[T] { return func(a, b T) int { return c(b, a) } }

// NullsLast lifts a comparator over values to a comparator over
// pointers to values. Nil pointers order after every non-nil pointer,
// and are equal to each other.
func NullsLast[T any](c Comparator[T]) Comparator[*T] {
	return func(a, b *T) int {
		switch {
		case a == nil && b == nil:
			return 0
		case a == nil:
			return 1
		case b == nil:
			return -1
		default:
			return c(*a, *b)
		}
	}
}

func compareOrdered[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
