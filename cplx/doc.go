// SPDX-License-Identifier: MIT

// Package cplx evaluates elementary functions on complex128 arguments.
//
// Every function is built from real primitives of package math and the
// builtin complex arithmetic, following the classic identities:
//
//	exp(x+iy)  = eˣ(cos y + i sin y)
//	log(z)     = ln|z| + i·arg z                (branch cut: negative real axis)
//	sqrt(z)    = √((|z|+x)/2) + i·sgn(y)·√((|z|−x)/2)
//	sinh(x+iy) = sinh x cos y + i cosh x sin y
//	cosh(x+iy) = cosh x cos y + i sinh x sin y
//	sin(z)     = −i·sinh(iz),   cos(z) = cosh(iz),   tan(z) = −i·tanh(iz)
//	asin(z)    = −i·asinh(iz),  acos(z) = π/2 − asin(z)
//	atan(z)    = −i·atanh(iz)
//
// The inverse functions use Kahan's formulations ("Branch Cuts for Complex
// Elementary Functions", 1987), which are algebraically equal to the
// logarithmic forms
//
//	asinh(z) = log(z + √(z²+1))
//	acosh(z) = log(z + √(z−1)·√(z+1))
//	atanh(z) = ½·log((1+z)/(1−z))
//
// but avoid their cancellation near the branch points.
//
// Results are principal values. A zero imaginary part on the negative real
// axis is treated as +0, so promoted real arguments land on the upper side
// of each branch cut: Sqrt(-4) = 2i, Log(-1) = πi.
//
// Real reduction: for x+0i with x inside the real domain of the function,
// every function returns exactly the math package value with a zero
// imaginary part. Cbrt keeps the real cube root for x+0i (Cbrt(-8) = -2)
// and uses the principal complex root only for a non-zero imaginary part.
//
// Complexity: every function is O(1) with a bounded number of real
// primitive calls.
package cplx
