// Package dt provides linked list, heap, stack and queue container
// implementations, with in-place merge sorting of linked lists
// parameterized by the comparators in the dt/cmp package.
//
// All top level structures in this package can be trivially
// constructed: their zero values are empty and ready for use. These
// structures are not safe for access from multiple concurrent go
// routines; callers that share a container must serialize access to
// it.
//
// Operations that cannot succeed return errors rooted in
// ers.ErrArgumentNull or ers.ErrInvalidOperation, and they fail
// before modifying the container.
package dt
