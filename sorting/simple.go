package sorting

import "github.com/tychoish/dsa/dt/cmp"

// Insertion returns a sorted copy of the input, built one item at a
// time. The sort is stable: an item only moves past neighbors that
// are strictly greater. O(n^2) comparisons; O(n) on sorted input.
func Insertion[T any](in []T, c cmp.Comparator[T]) []T {
	out, c := setup(in, c)

	for j := 1; j < len(out); j++ {
		key := out[j]
		i := j - 1
		for i >= 0 && c.Gt(out[i], key) {
			out[i+1] = out[i]
			i--
		}
		out[i+1] = key
	}

	return out
}

// Bubble returns a sorted copy of the input by repeatedly swapping
// adjacent items that are out of order. Passes stop early once a pass
// makes no swaps. The sort is stable.
func Bubble[T any](in []T, c cmp.Comparator[T]) []T {
	out, c := setup(in, c)

	for i := 0; i < len(out)-1; i++ {
		swapped := false
		for j := 0; j < len(out)-i-1; j++ {
			if c.Gt(out[j], out[j+1]) {
				out[j], out[j+1] = out[j+1], out[j]
				swapped = true
			}
		}
		if !swapped {
			break
		}
	}

	return out
}
