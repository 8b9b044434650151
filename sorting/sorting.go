// Package sorting provides comparison sorts over slices. Every sort
// in this package returns a sorted copy of its input and leaves the
// input untouched.
//
// The comparator is a cmp.Comparator; a nil comparator uses
// cmp.Default, which orders nil values last.
package sorting

import (
	"strings"

	"github.com/tychoish/dsa/dt"
	"github.com/tychoish/dsa/dt/cmp"
	"github.com/tychoish/dsa/ers"
)

// Algorithm names one of the sorting strategies that Sort can
// dispatch to. The zero value is not a valid algorithm.
type Algorithm int

const (
	InsertionSort Algorithm = iota + 1
	BubbleSort
	QuickSort
	MergeSort
	HeapSort
	// LinkedMergeSort loads the values into a dt.List and uses the
	// list's in-place merge sort.
	LinkedMergeSort
)

var algorithmNames = map[Algorithm]string{
	InsertionSort:   "insertion",
	BubbleSort:      "bubble",
	QuickSort:       "quick",
	MergeSort:       "merge",
	HeapSort:        "heap",
	LinkedMergeSort: "linked",
}

// Algorithms returns every valid algorithm.
func Algorithms() []Algorithm {
	return []Algorithm{InsertionSort, BubbleSort, QuickSort, MergeSort, HeapSort, LinkedMergeSort}
}

func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}
	return "invalid"
}

// ParseAlgorithm resolves an algorithm from its name, ignoring case
// and surrounding whitespace. Unknown names produce an
// ers.ErrInvalidInput error.
func ParseAlgorithm(name string) (Algorithm, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for algo, n := range algorithmNames {
		if n == name {
			return algo, nil
		}
	}
	return 0, ers.InvalidInput("unknown sorting algorithm %q", name)
}

// Sort returns a sorted copy of the input using the named
// algorithm. Returns an ers.ErrArgumentNull error if the algorithm
// is not one of the defined values.
func Sort[T any](in []T, algo Algorithm, c cmp.Comparator[T]) ([]T, error) {
	switch algo {
	case InsertionSort:
		return Insertion(in, c), nil
	case BubbleSort:
		return Bubble(in, c), nil
	case QuickSort:
		return Quick(in, c), nil
	case MergeSort:
		return Merge(in, c), nil
	case HeapSort:
		return Heap(in, c), nil
	case LinkedMergeSort:
		return Linked(in, c), nil
	default:
		return nil, ers.ArgumentNull("algorithm")
	}
}

// Linked sorts a copy of the input by way of a doubly linked list.
// The sort is stable.
func Linked[T any](in []T, c cmp.Comparator[T]) []T {
	list := dt.NewList(in...)
	list.Sort(c)
	return list.Slice()
}

func setup[T any](in []T, c cmp.Comparator[T]) ([]T, cmp.Comparator[T]) {
	if c == nil {
		c = cmp.Default[T]()
	}
	return append(make([]T, 0, len(in)), in...), c
}
