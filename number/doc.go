// SPDX-License-Identifier: MIT

// Package number defines the numeric input and result values consumed by
// the ccmath dispatcher.
//
// A Number is a tagged variant over four kinds:
//
//	Integer   int64, or *big.Int when the value does not fit in 64 bits
//	Rational  *big.Rat
//	Real      float64
//	Complex   complex128
//
// Integer, Rational and Real are "real-like": the dispatcher may hand them
// to a real math primitive. Complex values always take the complex path,
// even when their imaginary part is zero.
//
// Dynamic values (interface{} arguments coming from callers) are converted
// with From, which performs an exhaustive type switch over Go's numeric
// types and rejects everything else with ErrTypeMismatch.
//
//	n, err := number.From(uint8(9))   // Integer 9
//	z := number.Cmplx(1, 2)           // Complex (1+2i)
//	q := number.Rat(big.NewRat(-1, 3)) // Rational -1/3
//
// Large integers keep their exact magnitude. LogAbs uses it so that
// log(2**1024) stays finite although float64(2**1024) overflows.
package number
