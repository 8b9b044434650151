package sorting

import "github.com/tychoish/dsa/dt/cmp"

// Merge returns a sorted copy of the input using a top-down merge
// sort with a single scratch buffer. Ties take from the left half,
// so the sort is stable.
func Merge[T any](in []T, c cmp.Comparator[T]) []T {
	out, c := setup(in, c)
	if len(out) < 2 {
		return out
	}
	mergeSort(out, make([]T, len(out)), c)
	return out
}

func mergeSort[T any](arr, scratch []T, c cmp.Comparator[T]) {
	if len(arr) < 2 {
		return
	}

	mid := len(arr) / 2
	mergeSort(arr[:mid], scratch[:mid], c)
	mergeSort(arr[mid:], scratch[mid:], c)

	// already in order: the halves need no merge.
	if c.Lte(arr[mid-1], arr[mid]) {
		return
	}

	copy(scratch, arr)
	left, right := scratch[:mid], scratch[mid:len(arr)]
	i, j, k := 0, 0, 0
	for i < len(left) && j < len(right) {
		if c.Lte(left[i], right[j]) {
			arr[k] = left[i]
			i++
		} else {
			arr[k] = right[j]
			j++
		}
		k++
	}
	k += copy(arr[k:], left[i:])
	copy(arr[k:], right[j:])
}
