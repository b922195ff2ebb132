// SPDX-License-Identifier: MIT

package cplx

import "math"

// tanhSaturation is the |x| beyond which float64 tanh(x) rounds to ±1.
const tanhSaturation = 22

// mulI returns i·z without rounding.
func mulI(z complex128) complex128 {
	return complex(-imag(z), real(z))
}

// mulNegI returns −i·z without rounding.
func mulNegI(z complex128) complex128 {
	return complex(imag(z), -real(z))
}

// Sinh returns sinh x cos y + i cosh x sin y.
func Sinh(z complex128) complex128 {
	x, y := real(z), imag(z)
	switch {
	case y == 0:
		return complex(math.Sinh(x), y)
	case x == 0:
		return complex(x, math.Sin(y))
	}
	s, c := math.Sincos(y)

	return complex(math.Sinh(x)*c, math.Cosh(x)*s)
}

// Cosh returns cosh x cos y + i sinh x sin y.
func Cosh(z complex128) complex128 {
	x, y := real(z), imag(z)
	switch {
	case y == 0:
		return complex(math.Cosh(x), 0)
	case x == 0:
		return complex(math.Cos(y), 0)
	}
	s, c := math.Sincos(y)

	return complex(math.Cosh(x)*c, math.Sinh(x)*s)
}

// Tanh returns Sinh(z)/Cosh(z). For |x| past tanhSaturation the quotient
// is evaluated in closed form, since sinh and cosh overflow long before
// their ratio leaves ±1.
func Tanh(z complex128) complex128 {
	x, y := real(z), imag(z)
	switch {
	case y == 0:
		return complex(math.Tanh(x), y)
	case x == 0:
		return complex(x, math.Tan(y))
	case math.Abs(x) > tanhSaturation:
		s, c := math.Sincos(y)
		return complex(math.Copysign(1, x), 4*s*c*math.Exp(-2*math.Abs(x)))
	}

	return Sinh(z) / Cosh(z)
}

// Sin returns −i·Sinh(i·z).
func Sin(z complex128) complex128 {
	return mulNegI(Sinh(mulI(z)))
}

// Cos returns Cosh(i·z).
func Cos(z complex128) complex128 {
	return Cosh(mulI(z))
}

// Tan returns −i·Tanh(i·z), which equals Sin(z)/Cos(z).
func Tan(z complex128) complex128 {
	return mulNegI(Tanh(mulI(z)))
}
