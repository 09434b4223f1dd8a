// Package integer divides integers under the three call-site policies for
// programming errors: let the runtime panic, validate and panic with a
// descriptive error, or validate and substitute a documented default.
//
// Panics are not meant to be handled inline. Recover is the boundary that
// turns one back into an error where a caller can act on it.
package integer

import (
	"runtime"

	"github.com/zeebo/errs"

	"github.com/calebcase/pitfalls"
)

// Error classes.
var (
	// Error is the class for recovered panics that carry no error.
	Error = errs.Class("integer")

	// ArithmeticError marks a runtime arithmetic failure, such as an
	// integer divide by zero.
	ArithmeticError = errs.Class("arithmetic")
)

// ErrZeroDivider is raised by MustDivide and returned by DivideOrError.
var ErrZeroDivider = pitfalls.ValidationError.New("divider must not be zero")

// Divide returns a / b with no checks. The runtime panics when b is zero.
func Divide(a, b int) int {
	return a / b
}

// MustDivide returns a / b. It panics with ErrZeroDivider before dividing
// when b is zero.
func MustDivide(a, b int) int {
	if b == 0 {
		panic(ErrZeroDivider)
	}

	return a / b
}

// DivideOrError returns a / b, or ErrZeroDivider when b is zero.
func DivideOrError(a, b int) (int, error) {
	if b == 0 {
		return 0, ErrZeroDivider
	}

	return a / b, nil
}

// DivideOrDefault returns a / b, or def when b is zero. It never fails.
func DivideOrDefault(a, b, def int) int {
	if b == 0 {
		return def
	}

	return a / b
}

// Recover calls fn and returns the value of any panic as an error:
//
//   - a runtime.Error is wrapped in ArithmeticError
//   - any other error is returned as is, keeping its class
//   - anything else is formatted into an Error
func Recover(fn func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		switch v := r.(type) {
		case runtime.Error:
			err = ArithmeticError.Wrap(v)
		case error:
			err = v
		default:
			err = Error.New("panic: %v", v)
		}
	}()

	fn()

	return nil
}
