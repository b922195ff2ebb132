// SPDX-License-Identifier: MIT

package cplx

import "math"

// Scaling bounds for Sqrt.
const (
	// largeDbl bounds the parts of z for which |z|+|x| cannot overflow.
	largeDbl = math.MaxFloat64 / 4
	// smallDbl bounds the parts of z below which (|z|±x)/2 may underflow.
	smallDbl = 0x1p-1000
)

// Sqrt returns the principal square root of z.
//
// Implementation:
//   - Stage 1: on the real axis return √x, or i·√|x| for negative x.
//   - Stage 2: scale huge finite arguments by 1/4 to keep |z|+|x| finite.
//   - Stage 3: scale tiny arguments by 2¹⁰⁶ and the root back by 2⁻⁵³, so
//     (|z|±x)/2 never underflows to zero.
//   - Stage 4: compute the larger of the two parts directly and derive the
//     other as |y|/(2·part), avoiding cancellation in |z|−|x|.
func Sqrt(z complex128) complex128 {
	x, y := real(z), imag(z)
	switch {
	case y == 0:
		if x < 0 {
			return complex(0, math.Sqrt(-x))
		}
		if x == 0 {
			return complex(0, y)
		}
		return complex(math.Sqrt(x), y)
	case math.IsInf(y, 0):
		return complex(math.Inf(1), y)
	case math.Abs(x) > largeDbl || math.Abs(y) > largeDbl:
		if !math.IsInf(x, 0) {
			return 2 * Sqrt(complex(x/4, y/4))
		}
	case math.Abs(x) < smallDbl && math.Abs(y) < smallDbl:
		w := Sqrt(complex(math.Ldexp(x, 106), math.Ldexp(y, 106)))
		return complex(math.Ldexp(real(w), -53), math.Ldexp(imag(w), -53))
	}

	r := math.Hypot(x, y)
	if x >= 0 {
		s := math.Sqrt((r + x) / 2)
		return complex(s, y/(2*s))
	}
	t := math.Sqrt((r - x) / 2)

	return complex(math.Abs(y)/(2*t), math.Copysign(t, y))
}

// Cbrt returns the cube root of z. For a zero imaginary part it is the
// real cube root (Cbrt(-8) = -2); otherwise the principal value
// |z|^(1/3)·(cos(arg z/3) + i sin(arg z/3)).
func Cbrt(z complex128) complex128 {
	x, y := real(z), imag(z)
	if y == 0 {
		return complex(math.Cbrt(x), y)
	}
	m := math.Cbrt(math.Hypot(x, y))
	s, c := math.Sincos(math.Atan2(y, x) / 3)

	return complex(m*c, m*s)
}

// Exp returns eᶻ.
func Exp(z complex128) complex128 {
	x, y := real(z), imag(z)
	if y == 0 {
		return complex(math.Exp(x), y)
	}
	e := math.Exp(x)
	s, c := math.Sincos(y)

	return complex(e*c, e*s)
}

// Log returns the principal natural logarithm ln|z| + i·arg z.
// Log(0) = -Inf; Log(-1) = πi.
func Log(z complex128) complex128 {
	x, y := real(z), imag(z)

	return complex(math.Log(math.Hypot(x, y)), math.Atan2(y, x))
}

// Log2 returns the principal base-2 logarithm of z.
func Log2(z complex128) complex128 {
	x, y := real(z), imag(z)
	if y == 0 && x > 0 {
		return complex(math.Log2(x), y)
	}
	l := Log(z)

	return complex(real(l)/math.Ln2, imag(l)/math.Ln2)
}

// Log10 returns the principal base-10 logarithm of z.
func Log10(z complex128) complex128 {
	x, y := real(z), imag(z)
	if y == 0 && x > 0 {
		return complex(math.Log10(x), y)
	}
	l := Log(z)

	return complex(real(l)/math.Ln10, imag(l)/math.Ln10)
}

// LogBase returns Log(z)/Log(base).
//
// A positive real base divides both parts by ln(base) directly; bases 2
// and 10 route to Log2 and Log10 so exact powers stay exact
// (LogBase(8, 2) = 3). Any other base, including negative and complex
// ones, uses the complex quotient: LogBase(-8, -2) = (ln8+πi)/(ln2+πi).
//
// Base 1 divides by ln 1 = 0: LogBase(8, 1) = (+Inf+NaN i), and
// LogBase(0, 0) is NaN in both parts.
func LogBase(z, base complex128) complex128 {
	if bx, by := real(base), imag(base); by == 0 && bx > 0 {
		switch bx {
		case 2:
			return Log2(z)
		case 10:
			return Log10(z)
		}
		lb := math.Log(bx)
		l := Log(z)
		return complex(real(l)/lb, imag(l)/lb)
	}

	return Log(z) / Log(base)
}

// RealLogBase returns log_base(x) for real x and base, using the same
// exact routes as LogBase.
func RealLogBase(x, base float64) float64 {
	switch base {
	case 2:
		return math.Log2(x)
	case 10:
		return math.Log10(x)
	}

	return math.Log(x) / math.Log(base)
}
