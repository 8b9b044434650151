package sorting

import "github.com/tychoish/dsa/dt/cmp"

// Heap returns a sorted copy of the input using an in-place heap
// sort: the copy is arranged into a max-heap, and the root is
// repeatedly swapped to the end of the shrinking heap. The sort is
// not stable.
func Heap[T any](in []T, c cmp.Comparator[T]) []T {
	out, c := setup(in, c)

	for i := len(out)/2 - 1; i >= 0; i-- {
		maxHeapify(out, len(out), i, c)
	}

	for end := len(out) - 1; end > 0; end-- {
		out[0], out[end] = out[end], out[0]
		maxHeapify(out, end, 0, c)
	}

	return out
}

func maxHeapify[T any](arr []T, size, idx int, c cmp.Comparator[T]) {
	for {
		largest := idx
		if left := 2*idx + 1; left < size && c.Gt(arr[left], arr[largest]) {
			largest = left
		}
		if right := 2*idx + 2; right < size && c.Gt(arr[right], arr[largest]) {
			largest = right
		}
		if largest == idx {
			return
		}
		arr[idx], arr[largest] = arr[largest], arr[idx]
		idx = largest
	}
}
