// SPDX-License-Identifier: MIT
package cplx_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/katalvlaran/ccmath/cplx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"
)

// tol is the absolute/relative tolerance for approximate comparisons.
const tol = 1e-12

// assertClose fails unless both parts of got are within tol of want.
func assertClose(t *testing.T, want, got complex128, msgAndArgs ...interface{}) {
	t.Helper()
	ok := scalar.EqualWithinAbsOrRel(real(want), real(got), tol, tol) &&
		scalar.EqualWithinAbsOrRel(imag(want), imag(got), tol, tol)
	assert.Truef(t, ok, "want %v, got %v %v", want, got, msgAndArgs)
}

// assertRel is assertClose without the absolute floor, for tiny values.
func assertRel(t *testing.T, want, got complex128, msgAndArgs ...interface{}) {
	t.Helper()
	ok := scalar.EqualWithinRel(real(want), real(got), tol) &&
		scalar.EqualWithinRel(imag(want), imag(got), tol)
	assert.Truef(t, ok, "want %v, got %v %v", want, got, msgAndArgs)
}

type unary struct {
	name string
	fn   func(complex128) complex128
}

// TestLiteralValues pins reference values at z = 1+2i.
func TestLiteralValues(t *testing.T) {
	t.Parallel()

	z := complex(1, 2)
	tests := []struct {
		unary
		want complex128
	}{
		{unary{"sqrt", cplx.Sqrt}, complex(1.272019649514069, 0.7861513777574233)},
		{unary{"exp", cplx.Exp}, complex(-1.1312043837568135, 2.4717266720048188)},
		{unary{"log", cplx.Log}, complex(0.8047189562170503, 1.1071487177940904)},
		{unary{"log2", cplx.Log2}, complex(1.1609640474436813, 1.5972779646881088)},
		{unary{"log10", cplx.Log10}, complex(0.3494850021680094, 0.480828578784234)},
		{unary{"sin", cplx.Sin}, complex(3.165778513216168, 1.959601041421606)},
		{unary{"cos", cplx.Cos}, complex(2.0327230070196656, -3.0518977991517997)},
		{unary{"tan", cplx.Tan}, complex(0.033812826079896774, 1.0147936161466338)},
		{unary{"sinh", cplx.Sinh}, complex(-0.4890562590412937, 1.4031192506220405)},
		{unary{"cosh", cplx.Cosh}, complex(-0.64214812471552, 1.0686074213827783)},
		{unary{"tanh", cplx.Tanh}, complex(1.16673625724092, -0.2434582011857252)},
		{unary{"asin", cplx.Asin}, complex(0.4270785863924755, 1.5285709194809978)},
		{unary{"acos", cplx.Acos}, complex(1.1437177404024204, -1.528570919480998)},
		{unary{"atan", cplx.Atan}, complex(1.3389725222944935, 0.4023594781085251)},
		{unary{"asinh", cplx.Asinh}, complex(1.4693517443681852, 1.0634400235777521)},
		{unary{"acosh", cplx.Acosh}, complex(1.528570919480998, 1.1437177404024204)},
		{unary{"atanh", cplx.Atanh}, complex(0.17328679513998635, 1.1780972450961724)},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assertClose(t, tc.want, tc.fn(z))
		})
	}
}

// TestRealReduction checks that x+0i inside the real domain yields exactly
// the math package value with a zero imaginary part.
func TestRealReduction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fn   func(complex128) complex128
		real func(float64) float64
		xs   []float64
	}{
		{"sqrt", cplx.Sqrt, math.Sqrt, []float64{0, 0.25, 2, 1e300}},
		{"exp", cplx.Exp, math.Exp, []float64{-3, 0, 0.5, 700}},
		{"log", cplx.Log, math.Log, []float64{1e-300, 0.5, 1, 8}},
		{"log2", cplx.Log2, math.Log2, []float64{0.5, 1, 8, 1e10}},
		{"log10", cplx.Log10, math.Log10, []float64{0.01, 1, 100, 3}},
		{"sin", cplx.Sin, math.Sin, []float64{-2, 0, 1, 100}},
		{"cos", cplx.Cos, math.Cos, []float64{-2, 0, 1, 100}},
		{"tan", cplx.Tan, math.Tan, []float64{-2, 0, 1, 100}},
		{"sinh", cplx.Sinh, math.Sinh, []float64{-2, 0, 1, 30}},
		{"cosh", cplx.Cosh, math.Cosh, []float64{-2, 0, 1, 30}},
		{"tanh", cplx.Tanh, math.Tanh, []float64{-2, 0, 1, 30}},
		{"asin", cplx.Asin, math.Asin, []float64{-1, -0.5, 0, 1}},
		{"acos", cplx.Acos, math.Acos, []float64{-1, -0.5, 0, 1}},
		{"atan", cplx.Atan, math.Atan, []float64{-1e10, -1, 0, 3}},
		{"asinh", cplx.Asinh, math.Asinh, []float64{-3, 0, 0.5, 1e5}},
		{"acosh", cplx.Acosh, math.Acosh, []float64{1, 1.5, 10, 1e8}},
		{"atanh", cplx.Atanh, math.Atanh, []float64{-0.99, 0, 0.5, 0.75}},
		{"cbrt", cplx.Cbrt, math.Cbrt, []float64{-8, -0.001, 0, 27}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			for _, x := range tc.xs {
				got := tc.fn(complex(x, 0))
				require.Equal(t, tc.real(x), real(got), "%s(%v) real part", tc.name, x)
				require.Zero(t, imag(got), "%s(%v) imaginary part", tc.name, x)
			}
		})
	}
}

// TestAgainstStdlib compares with math/cmplx away from branch cuts.
func TestAgainstStdlib(t *testing.T) {
	t.Parallel()

	fns := []struct {
		unary
		ref func(complex128) complex128
	}{
		{unary{"sqrt", cplx.Sqrt}, cmplx.Sqrt},
		{unary{"exp", cplx.Exp}, cmplx.Exp},
		{unary{"log", cplx.Log}, cmplx.Log},
		{unary{"log10", cplx.Log10}, cmplx.Log10},
		{unary{"sin", cplx.Sin}, cmplx.Sin},
		{unary{"cos", cplx.Cos}, cmplx.Cos},
		{unary{"tan", cplx.Tan}, cmplx.Tan},
		{unary{"sinh", cplx.Sinh}, cmplx.Sinh},
		{unary{"cosh", cplx.Cosh}, cmplx.Cosh},
		{unary{"tanh", cplx.Tanh}, cmplx.Tanh},
		{unary{"asin", cplx.Asin}, cmplx.Asin},
		{unary{"acos", cplx.Acos}, cmplx.Acos},
		{unary{"atan", cplx.Atan}, cmplx.Atan},
		{unary{"asinh", cplx.Asinh}, cmplx.Asinh},
		{unary{"acosh", cplx.Acosh}, cmplx.Acosh},
		{unary{"atanh", cplx.Atanh}, cmplx.Atanh},
	}
	points := []complex128{
		complex(0.3, 0.4), complex(-0.7, 2), complex(-3, -0.2),
		complex(5, -7), complex(0.5, -0.5), complex(-1.25, 0.75),
	}

	for _, f := range fns {
		f := f
		t.Run(f.name, func(t *testing.T) {
			t.Parallel()
			for _, z := range points {
				assertClose(t, f.ref(z), f.fn(z), "at %v", z)
			}
		})
	}
}

// TestPromotedRealValues pins the principal values reached by real
// arguments outside their real domain (upper side of each cut).
func TestPromotedRealValues(t *testing.T) {
	t.Parallel()

	assert.Equal(t, complex(0, 2), cplx.Sqrt(-4))
	assert.Equal(t, complex(0, 3), cplx.Sqrt(-9))
	assert.Equal(t, complex(0, math.Pi), cplx.Log(-1))

	assertClose(t, complex(math.Pi/2, -1.3169578969248166), cplx.Asin(2))
	assertClose(t, complex(0, 1.3169578969248166), cplx.Acos(2))
	assertClose(t, complex(0, math.Pi/3), cplx.Acosh(0.5))
	assertClose(t, complex(1.3169578969248166, math.Pi), cplx.Acosh(-2))
	assertClose(t, complex(0.5493061443340549, math.Pi/2), cplx.Atanh(2))
	assertClose(t, complex(math.Log(2)/math.Ln10, math.Pi/math.Ln10), cplx.Log10(-2))
}

// TestRoundTrips verifies f(f⁻¹(z)) ≈ z for real and complex z.
func TestRoundTrips(t *testing.T) {
	t.Parallel()

	pairs := []struct {
		name     string
		fwd, inv func(complex128) complex128
	}{
		{"sin∘asin", cplx.Sin, cplx.Asin},
		{"cos∘acos", cplx.Cos, cplx.Acos},
		{"tan∘atan", cplx.Tan, cplx.Atan},
		{"sinh∘asinh", cplx.Sinh, cplx.Asinh},
		{"cosh∘acosh", cplx.Cosh, cplx.Acosh},
		{"tanh∘atanh", cplx.Tanh, cplx.Atanh},
		{"exp∘log", cplx.Exp, cplx.Log},
	}
	points := []complex128{complex(1, 1), complex(0.3, 0), complex(-2.5, -0.7), complex(0.1, 3)}

	for _, p := range pairs {
		p := p
		t.Run(p.name, func(t *testing.T) {
			t.Parallel()
			for _, z := range points {
				assertClose(t, z, p.fwd(p.inv(z)), "at %v", z)
			}
		})
	}
}

// TestRoundTripsNearUnderflow runs the Sqrt-based inverses at branch
// points offset by subnormal and near-underflow imaginary parts.
func TestRoundTripsNearUnderflow(t *testing.T) {
	t.Parallel()

	square := func(z complex128) complex128 { return z * z }
	pairs := []struct {
		name     string
		fwd, inv func(complex128) complex128
	}{
		{"square∘sqrt", square, cplx.Sqrt},
		{"cos∘acos", cplx.Cos, cplx.Acos},
		{"cosh∘acosh", cplx.Cosh, cplx.Acosh},
		{"sin∘asin", cplx.Sin, cplx.Asin},
		{"sinh∘asinh", cplx.Sinh, cplx.Asinh},
	}
	tiny := math.SmallestNonzeroFloat64
	points := []complex128{
		complex(1, tiny), complex(0, tiny), complex(-1, tiny), complex(tiny, 1),
		complex(1, 1e-300), complex(0, -1e-300), complex(tiny, tiny),
	}

	for _, p := range pairs {
		p := p
		t.Run(p.name, func(t *testing.T) {
			t.Parallel()
			for _, z := range points {
				w := p.inv(z)
				require.Falsef(t, cmplx.IsNaN(w) || cmplx.IsInf(w), "%s(%v) = %v", p.name, z, w)
				assertClose(t, z, p.fwd(w), "at %v", z)
			}
		})
	}
}

// TestHyperbolicIdentities checks sin(iy) = i·sinh(y) and friends.
func TestHyperbolicIdentities(t *testing.T) {
	t.Parallel()

	assertClose(t, complex(0, math.Sinh(2)), cplx.Sin(2i))
	assertClose(t, complex(math.Cosh(2), 0), cplx.Cos(2i))
	assertClose(t, complex(0, math.Tanh(2)), cplx.Tan(2i))
	assertClose(t, complex(0, math.Sin(2)), cplx.Sinh(2i))
	assertClose(t, complex(math.Cos(2), 0), cplx.Cosh(2i))
	assertClose(t, complex(0, math.Tan(2)), cplx.Tanh(2i))
	assertClose(t, -1, cplx.Exp(complex(0, math.Pi)))
}

// TestLogBase covers real, negative and complex bases.
func TestLogBase(t *testing.T) {
	t.Parallel()

	assert.Equal(t, complex(3, 0), cplx.LogBase(8, 2))
	assert.Equal(t, 3.0, cplx.RealLogBase(8, 2))
	assert.InDelta(t, 2.0, cplx.RealLogBase(100, 10), 1e-15)
	assert.InDelta(t, 2.0, cplx.RealLogBase(25, 5), 1e-15)

	assertClose(t, complex(0.7324867603589635, 1.0077701926457874), cplx.LogBase(complex(1, 2), 3))
	assertClose(t, complex(1.092840647090816, -0.42078724841586035), cplx.LogBase(-8, -2))
	assertClose(t, cplx.Log(complex(1, 2))/cplx.Log(complex(0, 2)), cplx.LogBase(complex(1, 2), 2i))

	one := cplx.LogBase(8, 1)
	assert.True(t, math.IsInf(real(one), 1))
	assert.True(t, math.IsNaN(imag(one)))
	assert.True(t, cmplx.IsNaN(cplx.LogBase(0, 0)))
}

// TestCbrt checks the real cube root on the axis and the principal root off it.
func TestCbrt(t *testing.T) {
	t.Parallel()

	assert.Equal(t, complex(-2, 0), cplx.Cbrt(-8))
	assert.Equal(t, complex(3, 0), cplx.Cbrt(27))

	r := cplx.Cbrt(8i)
	assertClose(t, complex(math.Sqrt(3), 1), r)
	assertClose(t, 8i, r*r*r)

	w := complex(-1, 1e-300) // just above the cut: principal root, not -1
	assertClose(t, complex(0.5, math.Sqrt(3)/2), cplx.Cbrt(w))
}

// TestSpecialValues covers poles, infinities and overflow guards.
func TestSpecialValues(t *testing.T) {
	t.Parallel()

	assert.True(t, math.IsInf(real(cplx.Log(0)), -1))
	assert.True(t, math.IsInf(real(cplx.Atanh(1)), 1))
	assert.True(t, math.IsInf(real(cplx.Atanh(-1)), -1))
	assert.True(t, math.IsInf(imag(cplx.Atan(1i)), 1))

	// sinh/cosh overflow here, their ratio does not
	assertClose(t, 1, cplx.Tanh(complex(400, 1)))
	assertClose(t, -1, cplx.Tanh(complex(-30, 2)))
	assertClose(t, complex(0, -1), cplx.Tan(complex(1, -400)))

	// |z|+x overflows without scaling
	big := complex(1e308, 1e308)
	assertClose(t, cmplx.Sqrt(big), cplx.Sqrt(big))
	assertClose(t, cmplx.Sqrt(-big), cplx.Sqrt(-big))

	s := cplx.Sqrt(complex(math.Inf(-1), 1))
	assert.Zero(t, real(s))
	assert.True(t, math.IsInf(imag(s), 1))
	assert.True(t, math.IsInf(real(cplx.Sqrt(complex(1, math.Inf(1)))), 1))

	// (|z|±x)/2 underflows without scaling; h = √tiny
	tiny := math.SmallestNonzeroFloat64
	h := math.Ldexp(1, -537)
	assertRel(t, complex(h/math.Sqrt2, h/math.Sqrt2), cplx.Sqrt(complex(0, tiny)))
	assertRel(t, complex(h/math.Sqrt2, -h/math.Sqrt2), cplx.Sqrt(complex(0, -tiny)))
	assertRel(t, complex(h, h), cplx.Acosh(complex(1, tiny)))
	assertRel(t, complex(h, math.Pi/2), cplx.Asinh(complex(tiny, 1)))
	assertRel(t, complex(math.Pi/2, h), cplx.Asin(complex(1, tiny)))
	a := cplx.Acos(complex(1, tiny))
	assert.InDelta(t, 0, real(a), tol)
	assert.True(t, scalar.EqualWithinRel(-h, imag(a), tol), "Acos(1+tiny·i) = %v", a)

	assert.True(t, cmplx.IsNaN(cplx.Exp(complex(math.NaN(), 1))))
	assert.False(t, math.Signbit(real(cplx.Sqrt(complex(math.Copysign(0, -1), 0)))))
}
