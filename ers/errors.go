package ers

import (
	"github.com/pkg/errors"
)

// ErrArgumentNull is the root of errors returned when an operation
// that requires a value (a node, an element, a predicate) receives a
// nil one. These are always programmer errors.
const ErrArgumentNull Error = Error("argument null")

// ErrInvalidOperation is the root of errors returned when an
// operation is not valid for the current state of a container:
// removing from an empty list, popping an empty heap, or attaching a
// node that already belongs to a list.
const ErrInvalidOperation Error = Error("invalid operation")

// ErrInvalidInput indicates malformed input, typically from parsing
// user supplied names or values.
const ErrInvalidInput Error = Error("invalid input")

// ArgumentNull returns an ErrArgumentNull error naming the parameter
// that was nil. An empty parameter name produces the generic message.
func ArgumentNull(param string) error {
	if param == "" {
		return errors.Wrap(ErrArgumentNull, "value cannot be null")
	}
	return errors.Wrapf(ErrArgumentNull, "value cannot be null. parameter name: %s", param)
}

// InvalidOperation returns an ErrInvalidOperation error annotated
// with the message.
func InvalidOperation(msg string) error {
	if msg == "" {
		return errors.WithStack(ErrInvalidOperation)
	}
	return errors.Wrap(ErrInvalidOperation, msg)
}

// InvalidInput returns an ErrInvalidInput error annotated with a
// formatted message.
func InvalidInput(tmpl string, args ...any) error {
	return errors.Wrapf(ErrInvalidInput, tmpl, args...)
}

// Wrap annotates an error with a message, returning nil when the
// error is nil.
func Wrap(err error, msg string) error { return errors.Wrap(err, msg) }

// Wrapf annotates an error with a formatted message, returning nil
// when the error is nil.
func Wrapf(err error, tmpl string, args ...any) error { return errors.Wrapf(err, tmpl, args...) }

// Is returns true if the error is one of the target errors, (or one
// of it's constituent (wrapped) errors is a target error.
func Is(err error, targets ...error) bool {
	for _, target := range targets {
		if err == nil && target != nil {
			continue
		}
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// Ok returns true when the error is nil.
func Ok(err error) bool { return err == nil }
