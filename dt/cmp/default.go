package cmp

import (
	"reflect"
)

// Default returns the natural ordering used when callers do not
// provide a comparator.
//
// Absent values (nil pointers, interfaces, maps, slices, channels and
// functions) order after every present value, so that sorting places
// empty slots last. Present values that implement Orderable use their
// Compare method, pointers are dereferenced, and numeric, string and
// boolean kinds use their natural order. All other values compare as
// equal, which leaves their relative order to the stability of the
// algorithm.
func Default[T any]() Comparator[T] {
	return func(a, b T) int {
		if c, ok := any(a).(Orderable[T]); ok && !isNil(reflect.ValueOf(a)) && !isNil(reflect.ValueOf(b)) {
			return c.Compare(b)
		}
		return compareValues(reflect.ValueOf(a), reflect.ValueOf(b))
	}
}

func isNil(v reflect.Value) bool {
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return v.IsNil()
	default:
		return false
	}
}

func indirect(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) && !v.IsNil() {
		v = v.Elem()
	}
	return v
}

func compareValues(a, b reflect.Value) int {
	an, bn := isNil(a), isNil(b)
	switch {
	case an && bn:
		return 0
	case an:
		return 1
	case bn:
		return -1
	}

	a, b = indirect(a), indirect(b)

	if a.Kind() != b.Kind() {
		return 0
	}

	switch a.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return compareOrdered(a.Int(), b.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return compareOrdered(a.Uint(), b.Uint())
	case reflect.Float32, reflect.Float64:
		return compareOrdered(a.Float(), b.Float())
	case reflect.String:
		return compareOrdered(a.String(), b.String())
	case reflect.Bool:
		switch {
		case a.Bool() == b.Bool():
			return 0
		case b.Bool():
			return -1
		default:
			return 1
		}
	}

	if a.Type() == b.Type() {
		return compareMethod(a, b)
	}

	return 0
}

// compareMethod calls a Compare method that takes a value of the
// receiver's own type and returns an int, as time.Time does.
func compareMethod(a, b reflect.Value) int {
	m := a.MethodByName("Compare")
	if !m.IsValid() {
		return 0
	}

	mt := m.Type()
	if mt.NumIn() != 1 || mt.NumOut() != 1 || mt.In(0) != b.Type() || mt.Out(0).Kind() != reflect.Int {
		return 0
	}

	return int(m.Call([]reflect.Value{b})[0].Int())
}
