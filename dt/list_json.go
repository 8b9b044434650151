package dt

import (
	"github.com/tychoish/dsa/internal"
)

// MarshalJSON produces a JSON array representing the items in the
// list. By supporting json.Marshaler and json.Unmarshaler, lists can
// behave as arrays in larger json objects, and can be as the
// output/input of json.Marshal and json.Unmarshal.
func (l *List[T]) MarshalJSON() ([]byte, error) { return internal.MarshalJSONArray(l.Iterator()) }

// UnmarshalJSON reads json input and adds that to values in the
// list. If there are elements in the list, they are not removed. When
// the input is not a valid array of the list's type, the list is not
// modified.
func (l *List[T]) UnmarshalJSON(in []byte) error {
	return internal.UnmarshalJSONArray(in, func(v T) { l.PushBack(v) })
}

// MarshalJSON produces a JSON array representing the items in the
// list, front to back.
func (l *ForwardList[T]) MarshalJSON() ([]byte, error) {
	return internal.MarshalJSONArray(l.Iterator())
}

// UnmarshalJSON reads json input and appends the values to the list,
// with the same semantics as List.UnmarshalJSON.
func (l *ForwardList[T]) UnmarshalJSON(in []byte) error {
	return internal.UnmarshalJSONArray(in, func(v T) { l.PushBack(v) })
}
