package sorting

import "github.com/tychoish/dsa/dt/cmp"

// Quick returns a sorted copy of the input using quicksort with a
// Lomuto partition around the last item of each range. The sort is
// not stable.
//
// Only the smaller partition is sorted recursively, so the stack
// depth stays O(log n) even when the partitions are unbalanced.
func Quick[T any](in []T, c cmp.Comparator[T]) []T {
	out, c := setup(in, c)
	quickSort(out, 0, len(out)-1, c)
	return out
}

func quickSort[T any](arr []T, low, high int, c cmp.Comparator[T]) {
	for low < high {
		pi := partition(arr, low, high, c)
		if pi-low < high-pi {
			quickSort(arr, low, pi-1, c)
			low = pi + 1
		} else {
			quickSort(arr, pi+1, high, c)
			high = pi - 1
		}
	}
}

func partition[T any](arr []T, low, high int, c cmp.Comparator[T]) int {
	pivot := arr[high]
	i := low - 1
	for j := low; j < high; j++ {
		if c.Lte(arr[j], pivot) {
			i++
			arr[i], arr[j] = arr[j], arr[i]
		}
	}
	arr[i+1], arr[high] = arr[high], arr[i+1]
	return i + 1
}
