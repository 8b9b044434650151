// Package ers provides the error kinds shared by the containers and
// algorithms in this module.
//
// Every failure returned by the dt and sorting packages is rooted in
// one of the constant sentinel errors declared here, so callers can
// distinguish failures with errors.Is regardless of the annotation
// added at the call site.
package ers

// Error is a type alias for building/declaring sentinel errors
// as constants.
//
// In addition to nil error interface values, the Empty string is
// considered equal to nil errors for the purposes of Is(). errors.As
// correctly handles unwrapping and casting Error-typed error objects.
type Error string

// Error implements the error interface for Error.
func (e Error) Error() string { return string(e) }

// Is satisfies the errors.Is interface without using reflection.
func (e Error) Is(err error) bool {
	switch {
	case err == nil && e == "":
		return true
	case (err == nil) != (e == ""):
		return false
	default:
		switch x := err.(type) {
		case Error:
			return x == e
		default:
			return false
		}
	}
}
