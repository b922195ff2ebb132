// SPDX-License-Identifier: MIT

package dispatch

import (
	"math"

	"github.com/katalvlaran/ccmath/classify"
	"github.com/katalvlaran/ccmath/cplx"
	"github.com/katalvlaran/ccmath/number"
)

var complexUnary = map[classify.Func]func(complex128) complex128{
	classify.Sqrt:  cplx.Sqrt,
	classify.Exp:   cplx.Exp,
	classify.Sin:   cplx.Sin,
	classify.Cos:   cplx.Cos,
	classify.Tan:   cplx.Tan,
	classify.Sinh:  cplx.Sinh,
	classify.Cosh:  cplx.Cosh,
	classify.Tanh:  cplx.Tanh,
	classify.Asin:  cplx.Asin,
	classify.Acos:  cplx.Acos,
	classify.Atan:  cplx.Atan,
	classify.Asinh: cplx.Asinh,
	classify.Acosh: cplx.Acosh,
	classify.Atanh: cplx.Atanh,
	classify.Cbrt:  cplx.Cbrt,
}

// evalComplex runs the complex formula of fn. Real-like arguments are
// promoted with a +0 imaginary part.
func evalComplex(fn classify.Func, args []number.Number) complex128 {
	x := args[0]
	switch fn {
	case classify.Log:
		if len(args) == 2 {
			return logBaseComplex(x, args[1])
		}
		return logComplex(x)
	case classify.Log2:
		if outOfRange(x) {
			return scale(logComplex(x), math.Ln2)
		}
		return cplx.Log2(x.Complex128())
	case classify.Log10:
		if outOfRange(x) {
			return scale(logComplex(x), math.Ln10)
		}
		return cplx.Log10(x.Complex128())
	}

	return complexUnary[fn](x.Complex128())
}

// logComplex is cplx.Log, finite for exact values out of float64 range.
func logComplex(x number.Number) complex128 {
	if !outOfRange(x) {
		return cplx.Log(x.Complex128())
	}
	arg := 0.0
	if x.Sign() < 0 {
		arg = math.Pi
	}

	return complex(x.LogAbs(), arg)
}

func logBaseComplex(x, b number.Number) complex128 {
	if !outOfRange(x) && !outOfRange(b) {
		return cplx.LogBase(x.Complex128(), b.Complex128())
	}
	lb := logComplex(b)
	if imag(lb) == 0 {
		return scale(logComplex(x), real(lb))
	}

	return logComplex(x) / lb
}

// scale divides both parts of z by the real d.
func scale(z complex128, d float64) complex128 {
	return complex(real(z)/d, imag(z)/d)
}
