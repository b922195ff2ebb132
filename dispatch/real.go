// SPDX-License-Identifier: MIT

package dispatch

import (
	"math"

	"github.com/katalvlaran/ccmath/classify"
	"github.com/katalvlaran/ccmath/cplx"
	"github.com/katalvlaran/ccmath/number"
)

// maxLdexpExp bounds the exponent handed to math.Ldexp; any larger
// magnitude already overflows or underflows every float64.
const maxLdexpExp = 1 << 16

// realUnary holds the math primitives that need no argument preparation.
var realUnary = map[classify.Func]func(float64) float64{
	classify.Exp:   math.Exp,
	classify.Sin:   math.Sin,
	classify.Cos:   math.Cos,
	classify.Tan:   math.Tan,
	classify.Sinh:  math.Sinh,
	classify.Cosh:  math.Cosh,
	classify.Tanh:  math.Tanh,
	classify.Asin:  math.Asin,
	classify.Acos:  math.Acos,
	classify.Atan:  math.Atan,
	classify.Asinh: math.Asinh,
	classify.Acosh: math.Acosh,
	classify.Atanh: math.Atanh,
	classify.Cbrt:  math.Cbrt,
	classify.Erf:   math.Erf,
	classify.Erfc:  math.Erfc,
	classify.Gamma: math.Gamma,
}

// evalReal runs the real primitive of fn on classified, in-domain args.
func evalReal(fn classify.Func, args []number.Number) float64 {
	x := args[0]
	switch fn {
	case classify.Sqrt:
		return sqrt(x.Float64())
	case classify.Log:
		if len(args) == 2 {
			return logBase(x, args[1])
		}
		return logReal(x, math.Log, 1)
	case classify.Log2:
		return logReal(x, math.Log2, math.Ln2)
	case classify.Log10:
		return logReal(x, math.Log10, math.Ln10)
	case classify.Atan2:
		return math.Atan2(x.Float64(), args[1].Float64())
	case classify.Hypot:
		return math.Hypot(x.Float64(), args[1].Float64())
	case classify.Frexp:
		frac, _ := x.Frexp()
		return frac
	case classify.Ldexp:
		return ldexp(x, args[1])
	case classify.Lgamma:
		lg, _ := math.Lgamma(x.Float64())
		return lg
	}

	return realUnary[fn](x.Float64())
}

// sqrt is math.Sqrt with sqrt(-0) = +0.
func sqrt(x float64) float64 {
	if x == 0 {
		return 0
	}

	return math.Sqrt(x)
}

// outOfRange reports whether an exact integer or rational x has no finite,
// non-zero float64 image.
func outOfRange(x number.Number) bool {
	if k := x.Kind(); k != number.KindInteger && k != number.KindRational {
		return false
	}
	f := x.Float64()

	return math.IsInf(f, 0) || (f == 0 && !x.IsZero())
}

// logReal applies prim to x, or ln|x|/ln when x is out of float64 range.
func logReal(x number.Number, prim func(float64) float64, ln float64) float64 {
	if outOfRange(x) {
		return x.LogAbs() / ln
	}

	return prim(x.Float64())
}

func logBase(x, b number.Number) float64 {
	if outOfRange(x) || outOfRange(b) {
		return x.LogAbs() / b.LogAbs()
	}

	return cplx.RealLogBase(x.Float64(), b.Float64())
}

// ldexp returns frac·2^exp with exp truncated toward zero.
func ldexp(frac, exp number.Number) float64 {
	e := math.Trunc(exp.Float64())
	switch {
	case math.IsNaN(e):
		return math.NaN()
	case e > maxLdexpExp:
		e = maxLdexpExp
	case e < -maxLdexpExp:
		e = -maxLdexpExp
	}

	return math.Ldexp(frac.Float64(), int(e))
}
