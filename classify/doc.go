// SPDX-License-Identifier: MIT

// Package classify decides, per call, how an extended math function is
// evaluated.
//
// Classify inspects the function, the codomain mode and the argument kinds
// and returns one of three decisions:
//
//	UseReal              all arguments are real-like and inside the real domain
//	UseComplexPromotion  real-like arguments outside the real domain, mode C
//	UseComplexNative     at least one argument is complex
//
// or an *Error wrapping one of the sentinels ErrDomain, ErrTypeMismatch or
// ErrNotImplemented.
//
// Domain predicates (NaN never violates; it propagates through the real
// primitive):
//
//	sqrt, log, log2, log10  x < 0
//	log(x, b)               x < 0, b < 0 or b = 1
//	asin, acos, atanh       |x| > 1
//	acosh                   x < 1
//	gamma                   x = -Inf or a negative integer (never promoted)
//
// lgamma has no predicate: poles give +Inf and lgamma(-Inf) = -Inf.
//
// Integer and rational arguments are compared exactly, so 1+10⁻³⁰ as a
// rational violates the asin predicate even though it rounds to 1.0.
//
// Complexity: O(len(args)); exact comparisons of big values are
// proportional to their bit length.
package classify
