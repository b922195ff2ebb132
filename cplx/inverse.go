// SPDX-License-Identifier: MIT

package cplx

import "math"

// Asinh returns the principal inverse hyperbolic sine of z.
//
// With s1 = √(1−iz) and s2 = √(1+iz):
//
//	Re = asinh(Re s1·Im s2 − Re s2·Im s1)
//	Im = atan2(y, Re s1·Re s2 − Im s1·Im s2)
func Asinh(z complex128) complex128 {
	x, y := real(z), imag(z)
	if y == 0 {
		return complex(math.Asinh(x), y)
	}
	s1 := Sqrt(complex(1+y, -x))
	s2 := Sqrt(complex(1-y, x))

	return complex(
		math.Asinh(real(s1)*imag(s2)-real(s2)*imag(s1)),
		math.Atan2(y, real(s1)*real(s2)-imag(s1)*imag(s2)),
	)
}

// Asin returns the principal inverse sine −i·Asinh(i·z).
func Asin(z complex128) complex128 {
	x, y := real(z), imag(z)
	if y == 0 && math.Abs(x) <= 1 {
		return complex(math.Asin(x), y)
	}

	return mulNegI(Asinh(mulI(z)))
}

// Acos returns the principal inverse cosine π/2 − Asin(z).
func Acos(z complex128) complex128 {
	x, y := real(z), imag(z)
	if y == 0 && math.Abs(x) <= 1 {
		return complex(math.Acos(x), -y)
	}
	s := Asin(z)

	return complex(math.Pi/2-real(s), -imag(s))
}

// Acosh returns the principal inverse hyperbolic cosine of z.
//
// With s1 = √(z−1) and s2 = √(z+1):
//
//	Re = asinh(Re s1·Re s2 + Im s1·Im s2)
//	Im = 2·atan2(Im s1, Re s2)
func Acosh(z complex128) complex128 {
	x, y := real(z), imag(z)
	if y == 0 && x >= 1 {
		return complex(math.Acosh(x), y)
	}
	s1 := Sqrt(complex(x-1, y))
	s2 := Sqrt(complex(x+1, y))

	return complex(
		math.Asinh(real(s1)*real(s2)+imag(s1)*imag(s2)),
		2*math.Atan2(imag(s1), real(s2)),
	)
}

// Atanh returns the principal inverse hyperbolic tangent of z.
// Atanh(±1) = ±Inf.
//
//	Re = ¼·log1p(4x / ((1−x)² + y²))
//	Im = −½·atan2(−2y, (1−x)(1+x) − y²)
func Atanh(z complex128) complex128 {
	x, y := real(z), imag(z)
	if y == 0 && math.Abs(x) <= 1 {
		return complex(math.Atanh(x), y)
	}
	yy := y * y

	return complex(
		math.Log1p(4*x/((1-x)*(1-x)+yy))/4,
		-math.Atan2(-2*y, (1-x)*(1+x)-yy)/2,
	)
}

// Atan returns the principal inverse tangent −i·Atanh(i·z).
func Atan(z complex128) complex128 {
	x, y := real(z), imag(z)
	if y == 0 {
		return complex(math.Atan(x), y)
	}

	return mulNegI(Atanh(mulI(z)))
}
