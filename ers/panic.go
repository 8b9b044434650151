package ers

import (
	"github.com/pkg/errors"
)

// ErrRecoveredPanic is the root of errors produced by converting a
// panic, typically from a caller supplied comparator or predicate.
const ErrRecoveredPanic Error = Error("recovered panic")

// ParsePanic converts the value of recover() into an error rooted in
// ErrRecoveredPanic. If no panic is detected, ParsePanic returns nil.
func ParsePanic(r any) error {
	switch p := r.(type) {
	case nil:
		return nil
	case error:
		return errors.Wrap(ErrRecoveredPanic, p.Error())
	case string:
		return errors.Wrap(ErrRecoveredPanic, p)
	default:
		return errors.Wrapf(ErrRecoveredPanic, "[%T]: %v", p, p)
	}
}

// WithRecoverCall runs a function and, if the function panics,
// converts the panic into an error.
func WithRecoverCall(fn func()) (err error) {
	defer func() { err = ParsePanic(recover()) }()
	fn()
	return
}

// WithRecoverDo runs a function that returns a value and an error
// with a panic handler that converts the panic to an error. When the
// function panics, the zero value is returned.
func WithRecoverDo[T any](fn func() (T, error)) (out T, err error) {
	defer func() {
		if perr := ParsePanic(recover()); perr != nil {
			var zero T
			out, err = zero, perr
		}
	}()
	return fn()
}
