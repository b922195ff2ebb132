// SPDX-License-Identifier: MIT

package classify

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/ccmath/number"
)

var (
	// ErrDomain indicates a real-like argument outside the real domain of
	// the function while the codomain is R, or a pole of gamma.
	ErrDomain = errors.New("classify: argument outside real domain")

	// ErrTypeMismatch indicates a non-numeric argument, a wrong number of
	// arguments, a complex argument to a real-only function, or a complex
	// base for a real argument of log.
	ErrTypeMismatch = number.ErrTypeMismatch

	// ErrNotImplemented marks complex arguments to atan2, gamma and lgamma.
	ErrNotImplemented = errors.New("classify: complex form not implemented")
)

// Error carries the function and arguments of a rejected call.
type Error struct {
	Func Func
	Args []number.Number
	Err  error
}

// NewError returns err annotated with the call it rejected.
func NewError(fn Func, args []number.Number, err error) *Error {
	return &Error{Func: fn, Args: args, Err: err}
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	parts := make([]string, len(e.Args))
	for i, a := range e.Args {
		parts[i] = a.String()
	}

	return fmt.Sprintf("%s(%s): %v", e.Func, strings.Join(parts, ", "), e.Err)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.Err
}
