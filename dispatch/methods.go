// SPDX-License-Identifier: MIT

package dispatch

import (
	"math"

	"github.com/katalvlaran/ccmath/classify"
	"github.com/katalvlaran/ccmath/number"
)

// Log returns the natural logarithm of x, or log_base(x) when one base is
// given. A complex base is only accepted together with a complex x.
func (d *Dispatcher) Log(x number.Number, base ...number.Number) (number.Number, error) {
	return d.Eval(classify.Log, append([]number.Number{x}, base...)...)
}

// Atan2 returns the angle of the point (x, y), following math.Atan2 for
// signed zeros and infinities.
func (d *Dispatcher) Atan2(y, x number.Number) (number.Number, error) {
	return d.Eval(classify.Atan2, y, x)
}

// Hypot returns √(x²+y²) without undue overflow.
func (d *Dispatcher) Hypot(x, y number.Number) (number.Number, error) {
	return d.Eval(classify.Hypot, x, y)
}

// Ldexp returns frac·2^exp; a fractional exp is truncated toward zero.
func (d *Dispatcher) Ldexp(frac, exp number.Number) (number.Number, error) {
	return d.Eval(classify.Ldexp, frac, exp)
}

// Frexp breaks x into a fraction in [½, 1) and a power of two.
func (d *Dispatcher) Frexp(x number.Number) (float64, int, error) {
	if _, err := d.decide(classify.Frexp, []number.Number{x}); err != nil {
		return 0, 0, err
	}
	frac, exp := x.Frexp()

	return frac, exp, nil
}

// Lgamma returns ln|Γ(x)| and the sign of Γ(x). Real arguments are never
// rejected; complex ones are ErrNotImplemented.
func (d *Dispatcher) Lgamma(x number.Number) (float64, int, error) {
	if _, err := d.decide(classify.Lgamma, []number.Number{x}); err != nil {
		return 0, 0, err
	}
	lg, sign := math.Lgamma(x.Float64())

	return lg, sign, nil
}

// Sqrt returns the principal square root of x.
func (d *Dispatcher) Sqrt(x number.Number) (number.Number, error) {
	return d.Eval(classify.Sqrt, x)
}

// Exp returns eˣ.
func (d *Dispatcher) Exp(x number.Number) (number.Number, error) {
	return d.Eval(classify.Exp, x)
}

// Log2 returns the base-2 logarithm of x.
func (d *Dispatcher) Log2(x number.Number) (number.Number, error) {
	return d.Eval(classify.Log2, x)
}

// Log10 returns the base-10 logarithm of x.
func (d *Dispatcher) Log10(x number.Number) (number.Number, error) {
	return d.Eval(classify.Log10, x)
}

// Sin returns the sine of x.
func (d *Dispatcher) Sin(x number.Number) (number.Number, error) {
	return d.Eval(classify.Sin, x)
}

// Cos returns the cosine of x.
func (d *Dispatcher) Cos(x number.Number) (number.Number, error) {
	return d.Eval(classify.Cos, x)
}

// Tan returns the tangent of x.
func (d *Dispatcher) Tan(x number.Number) (number.Number, error) {
	return d.Eval(classify.Tan, x)
}

// Sinh returns the hyperbolic sine of x.
func (d *Dispatcher) Sinh(x number.Number) (number.Number, error) {
	return d.Eval(classify.Sinh, x)
}

// Cosh returns the hyperbolic cosine of x.
func (d *Dispatcher) Cosh(x number.Number) (number.Number, error) {
	return d.Eval(classify.Cosh, x)
}

// Tanh returns the hyperbolic tangent of x.
func (d *Dispatcher) Tanh(x number.Number) (number.Number, error) {
	return d.Eval(classify.Tanh, x)
}

// Asin returns the principal arcsine of x.
func (d *Dispatcher) Asin(x number.Number) (number.Number, error) {
	return d.Eval(classify.Asin, x)
}

// Acos returns the principal arccosine of x.
func (d *Dispatcher) Acos(x number.Number) (number.Number, error) {
	return d.Eval(classify.Acos, x)
}

// Atan returns the principal arctangent of x.
func (d *Dispatcher) Atan(x number.Number) (number.Number, error) {
	return d.Eval(classify.Atan, x)
}

// Asinh returns the inverse hyperbolic sine of x.
func (d *Dispatcher) Asinh(x number.Number) (number.Number, error) {
	return d.Eval(classify.Asinh, x)
}

// Acosh returns the principal inverse hyperbolic cosine of x.
func (d *Dispatcher) Acosh(x number.Number) (number.Number, error) {
	return d.Eval(classify.Acosh, x)
}

// Atanh returns the principal inverse hyperbolic tangent of x.
func (d *Dispatcher) Atanh(x number.Number) (number.Number, error) {
	return d.Eval(classify.Atanh, x)
}

// Cbrt returns the cube root of x; real for real x.
func (d *Dispatcher) Cbrt(x number.Number) (number.Number, error) {
	return d.Eval(classify.Cbrt, x)
}

// Erf returns the error function of x.
func (d *Dispatcher) Erf(x number.Number) (number.Number, error) {
	return d.Eval(classify.Erf, x)
}

// Erfc returns the complementary error function of x.
func (d *Dispatcher) Erfc(x number.Number) (number.Number, error) {
	return d.Eval(classify.Erfc, x)
}

// Gamma returns Γ(x).
func (d *Dispatcher) Gamma(x number.Number) (number.Number, error) {
	return d.Eval(classify.Gamma, x)
}
