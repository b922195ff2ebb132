// SPDX-License-Identifier: MIT

package classify

import (
	"github.com/katalvlaran/ccmath/codomain"
	"github.com/katalvlaran/ccmath/number"
)

// Decision selects the evaluation path of one call.
type Decision int

const (
	// Rejected accompanies a non-nil error.
	Rejected Decision = iota
	// UseReal evaluates with the real math primitive.
	UseReal
	// UseComplexPromotion evaluates real arguments with the complex formula.
	UseComplexPromotion
	// UseComplexNative evaluates complex arguments with the complex formula.
	UseComplexNative
)

// String returns the decision name.
func (d Decision) String() string {
	switch d {
	case UseReal:
		return "real"
	case UseComplexPromotion:
		return "complex-promotion"
	case UseComplexNative:
		return "complex-native"
	}

	return "rejected"
}

// Classify decides how fn(args...) is evaluated under mode.
//
// Steps:
//  1. Reject unknown functions, wrong arity and Invalid arguments.
//  2. Any complex argument: UseComplexNative if fn has a complex form,
//     otherwise ErrNotImplemented (atan2, gamma, lgamma) or
//     ErrTypeMismatch. A real log argument with a complex base is
//     ErrTypeMismatch.
//  3. Real-like arguments: UseReal inside the domain; outside it
//     UseComplexPromotion when mode is Complex and fn is promotable,
//     ErrDomain otherwise.
func Classify(fn Func, mode codomain.Mode, args ...number.Number) (Decision, error) {
	if !fn.Valid() {
		return Rejected, NewError(fn, args, ErrNotImplemented)
	}
	if lo, hi := fn.Arity(); len(args) < lo || len(args) > hi {
		return Rejected, NewError(fn, args, ErrTypeMismatch)
	}

	complexArgs := false
	for _, a := range args {
		switch a.Kind() {
		case number.KindInvalid:
			return Rejected, NewError(fn, args, ErrTypeMismatch)
		case number.KindComplex:
			complexArgs = true
		}
	}

	if complexArgs {
		switch {
		case fn.deferred():
			return Rejected, NewError(fn, args, ErrNotImplemented)
		case !fn.HasComplexForm():
			return Rejected, NewError(fn, args, ErrTypeMismatch)
		case fn == Log && len(args) == 2 && !args[0].IsComplex():
			return Rejected, NewError(fn, args, ErrTypeMismatch)
		}

		return UseComplexNative, nil
	}

	if !Violates(fn, args...) {
		return UseReal, nil
	}
	if mode == codomain.Complex && fn.Promotable() {
		return UseComplexPromotion, nil
	}

	return Rejected, NewError(fn, args, ErrDomain)
}

// Violates reports whether real-like args fall outside the real domain of
// fn. Comparisons are exact for Integer and Rational values; NaN never
// violates.
func Violates(fn Func, args ...number.Number) bool {
	if len(args) == 0 {
		return false
	}
	x := args[0]

	switch fn {
	case Sqrt, Log2, Log10:
		return below(x, 0)
	case Log:
		if below(x, 0) {
			return true
		}
		if len(args) == 2 {
			b := args[1]
			return below(b, 0) || equal(b, 1)
		}
		return false
	case Asin, Acos, Atanh:
		return above(x, 1) || below(x, -1)
	case Acosh:
		return below(x, 1)
	case Gamma:
		return isNegInf(x) || (x.IsInteger() && x.Sign() < 0)
	}

	return false
}

func below(n number.Number, v float64) bool { return !n.IsNaN() && n.CmpFloat(v) < 0 }

func above(n number.Number, v float64) bool { return !n.IsNaN() && n.CmpFloat(v) > 0 }

func equal(n number.Number, v float64) bool { return !n.IsNaN() && n.CmpFloat(v) == 0 }

func isNegInf(n number.Number) bool { return n.IsInf() && n.Sign() < 0 }
