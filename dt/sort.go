package dt

import "github.com/tychoish/dsa/dt/cmp"

func defaultComparator[T any](c cmp.Comparator[T]) cmp.Comparator[T] {
	if c == nil {
		return cmp.Default[T]()
	}
	return c
}

// mergeSortLinks sorts the chain starting at head and returns the new
// head. The chain is split at its midpoint, both halves are sorted
// recursively, and the sorted halves are merged. Recursion depth is
// O(log n); no links are allocated.
func mergeSortLinks[T any](head *Link[T], c cmp.Comparator[T]) *Link[T] {
	if head == nil || head.next == nil {
		return head
	}

	second := splitLinks(head)

	return mergeLinks(c, mergeSortLinks(head, c), mergeSortLinks(second, c))
}

// splitLinks severs the chain at its midpoint, using a slow pointer
// that advances one link for every two links of the fast pointer, and
// returns the head of the second half.
func splitLinks[T any](head *Link[T]) *Link[T] {
	slow, fast := head, head.next
	for fast != nil && fast.next != nil {
		slow = slow.next
		fast = fast.next.next
	}

	second := slow.next
	slow.next = nil
	return second
}

// mergeLinks merges two sorted chains. Ties take from the left chain
// so that the sort is stable, and the remainder of whichever chain is
// not exhausted is spliced on in one step.
func mergeLinks[T any](c cmp.Comparator[T], left, right *Link[T]) *Link[T] {
	var head *Link[T]
	tail := &head

	for left != nil && right != nil {
		if c.Lte(left.value, right.value) {
			*tail, left = left, left.next
		} else {
			*tail, right = right, right.next
		}
		tail = &(*tail).next
	}

	if left != nil {
		*tail = left
	} else {
		*tail = right
	}

	return head
}

// mergeSortElements is the doubly linked analog of mergeSortLinks:
// the returned chain has its prev links threaded and its head's prev
// cleared.
func mergeSortElements[T any](head *Element[T], c cmp.Comparator[T]) *Element[T] {
	if head == nil || head.next == nil {
		return head
	}

	second := splitElements(head)

	return mergeElements(c, mergeSortElements(head, c), mergeSortElements(second, c))
}

func splitElements[T any](head *Element[T]) *Element[T] {
	slow, fast := head, head.next
	for fast != nil && fast.next != nil {
		slow = slow.next
		fast = fast.next.next
	}

	second := slow.next
	slow.next = nil
	second.prev = nil
	return second
}

func mergeElements[T any](c cmp.Comparator[T], left, right *Element[T]) *Element[T] {
	var head, last *Element[T]
	link := func(e *Element[T]) {
		e.prev = last
		if last == nil {
			head = e
		} else {
			last.next = e
		}
		last = e
	}

	for left != nil && right != nil {
		if c.Lte(left.value, right.value) {
			next := left.next
			link(left)
			left = next
		} else {
			next := right.next
			link(right)
			right = next
		}
	}

	// the remainder is already threaded internally, so only its
	// first element needs to be linked.
	if left != nil {
		link(left)
	} else if right != nil {
		link(right)
	}

	return head
}
