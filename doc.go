// SPDX-License-Identifier: MIT

// Package ccmath extends the real elementary functions of package math to
// complex arguments and, on request, to complex results.
//
// Every function accepts any Go numeric value (all int/uint widths,
// float32/64, complex64/128, *big.Int, *big.Rat, *big.Float or a
// number.Number) and returns a number.Number of kind Real or Complex:
//
//	v, err := ccmath.Sqrt(-4)      // (0+2i) while the codomain is C
//	v, err  = ccmath.Sin(1 + 2i)   // (3.165778513216168+1.959601041421606i)
//	v, err  = ccmath.Log(8, 2)     // 3
//
// Codomain:
//
//	C (default)  real arguments outside the real domain are promoted and
//	             evaluated on the principal complex branch
//	R            the same calls fail with ErrDomain
//
// The codomain is process-wide (SetCodomain, Codomain, or the
// CCMATH_CODOMAIN environment variable read at start-up). Code that needs
// its own setting builds a dispatch.Dispatcher with dispatch.WithCodomain,
// or calls NewFromEnv to get one configured from the environment together
// with a zap logger.
//
// Errors:
//
//	ErrDomain          real argument outside the real domain in codomain R,
//	                   or a pole of gamma
//	ErrTypeMismatch    non-numeric argument, wrong arity, complex argument
//	                   to a real-only function
//	ErrNotImplemented  complex atan2, gamma and lgamma
//
// Overflow and poles follow IEEE-754: Log(0) = -Inf, Atanh(1) = +Inf.
//
// Subpackages:
//
//	number/    tagged numeric variant and conversion from Go values
//	codomain/  codomain mode, process-wide policy and env configuration
//	classify/  per-call decision: real, promotion, native complex or error
//	cplx/      complex128 formulas built from real primitives
//	dispatch/  Dispatcher tying classification to evaluation
package ccmath
