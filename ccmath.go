// SPDX-License-Identifier: MIT

package ccmath

import (
	"math"

	"github.com/katalvlaran/ccmath/classify"
	"github.com/katalvlaran/ccmath/dispatch"
	"github.com/katalvlaran/ccmath/number"
)

// Mathematical constants.
const (
	PI = math.Pi
	E  = math.E
)

// std follows the process-wide codomain.
var std = dispatch.New(dispatch.WithGlobalCodomain())

// convert turns Go values into Numbers, reporting the first failure as a
// type mismatch of fn.
func convert(fn classify.Func, args []any) ([]number.Number, error) {
	ns := make([]number.Number, len(args))
	for i, a := range args {
		v, err := number.From(a)
		if err != nil {
			return nil, classify.NewError(fn, ns[:i], err)
		}
		ns[i] = v
	}

	return ns, nil
}

func eval(fn classify.Func, args ...any) (number.Number, error) {
	ns, err := convert(fn, args)
	if err != nil {
		return number.Number{}, err
	}

	return std.Eval(fn, ns...)
}

// Log returns ln(x), or log_base(x) when a base is given.
func Log(x any, base ...any) (number.Number, error) {
	return eval(classify.Log, append([]any{x}, base...)...)
}

// Atan2 returns the angle of the point (x, y).
func Atan2(y, x any) (number.Number, error) { return eval(classify.Atan2, y, x) }

// Hypot returns √(x²+y²).
func Hypot(x, y any) (number.Number, error) { return eval(classify.Hypot, x, y) }

// Ldexp returns frac·2^exp; a fractional exp is truncated toward zero.
func Ldexp(frac, exp any) (number.Number, error) { return eval(classify.Ldexp, frac, exp) }

// Frexp breaks x into a fraction in [½, 1) and a power of two.
func Frexp(x any) (float64, int, error) {
	ns, err := convert(classify.Frexp, []any{x})
	if err != nil {
		return 0, 0, err
	}

	return std.Frexp(ns[0])
}

// Lgamma returns ln|Γ(x)| and the sign of Γ(x). Every real x is accepted:
// poles give +Inf and Lgamma(-Inf) = -Inf.
func Lgamma(x any) (float64, int, error) {
	ns, err := convert(classify.Lgamma, []any{x})
	if err != nil {
		return 0, 0, err
	}

	return std.Lgamma(ns[0])
}

// The functions below take one argument and follow the process-wide
// codomain: a real argument outside the real domain is ErrDomain in R and
// promoted to a complex result in C.

// Sqrt returns √x; negative reals promote to i·√|x| in codomain C.
func Sqrt(x any) (number.Number, error) { return eval(classify.Sqrt, x) }

// Exp returns eˣ.
func Exp(x any) (number.Number, error) { return eval(classify.Exp, x) }

// Log2 returns the base-2 logarithm of x.
func Log2(x any) (number.Number, error) { return eval(classify.Log2, x) }

// Log10 returns the base-10 logarithm of x.
func Log10(x any) (number.Number, error) { return eval(classify.Log10, x) }

// Sin returns the sine of x (radians).
func Sin(x any) (number.Number, error) { return eval(classify.Sin, x) }

// Cos returns the cosine of x (radians).
func Cos(x any) (number.Number, error) { return eval(classify.Cos, x) }

// Tan returns the tangent of x (radians).
func Tan(x any) (number.Number, error) { return eval(classify.Tan, x) }

// Sinh returns the hyperbolic sine of x.
func Sinh(x any) (number.Number, error) { return eval(classify.Sinh, x) }

// Cosh returns the hyperbolic cosine of x.
func Cosh(x any) (number.Number, error) { return eval(classify.Cosh, x) }

// Tanh returns the hyperbolic tangent of x.
func Tanh(x any) (number.Number, error) { return eval(classify.Tanh, x) }

// Asin returns the inverse sine of x; |x| > 1 is a domain violation.
func Asin(x any) (number.Number, error) { return eval(classify.Asin, x) }

// Acos returns the inverse cosine of x; |x| > 1 is a domain violation.
func Acos(x any) (number.Number, error) { return eval(classify.Acos, x) }

// Atan returns the inverse tangent of x.
func Atan(x any) (number.Number, error) { return eval(classify.Atan, x) }

// Asinh returns the inverse hyperbolic sine of x.
func Asinh(x any) (number.Number, error) { return eval(classify.Asinh, x) }

// Acosh returns the inverse hyperbolic cosine of x; x < 1 is a domain violation.
func Acosh(x any) (number.Number, error) { return eval(classify.Acosh, x) }

// Atanh returns the inverse hyperbolic tangent of x; Atanh(±1) = ±Inf.
func Atanh(x any) (number.Number, error) { return eval(classify.Atanh, x) }

// Cbrt returns the cube root of x; Cbrt(-8) = -2.
func Cbrt(x any) (number.Number, error) { return eval(classify.Cbrt, x) }

// Erf returns the error function of real x.
func Erf(x any) (number.Number, error) { return eval(classify.Erf, x) }

// Erfc returns the complementary error function of real x.
func Erfc(x any) (number.Number, error) { return eval(classify.Erfc, x) }

// Gamma returns Γ(x); negative integers and -Inf are ErrDomain in either codomain.
func Gamma(x any) (number.Number, error) { return eval(classify.Gamma, x) }
