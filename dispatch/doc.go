// SPDX-License-Identifier: MIT

// Package dispatch evaluates extended math functions on number.Number
// arguments.
//
// A Dispatcher asks classify.Classify how each call is to be evaluated and
// then invokes either the real primitive from package math or the complex
// formula from package cplx. Results are number.Number values of kind Real
// or Complex.
//
// Codomain:
//   - WithGlobalCodomain (default): every call reads codomain.Get() once.
//   - WithCodomain(m): the Dispatcher is pinned to m and never touches the
//     process-wide setting.
//
// Logging: promotions and rejected calls are logged at debug level on the
// injected *zap.Logger (zap.NewNop() unless WithLogger is given), with the
// fields "func", "args" and "mode".
//
// Real path notes:
//   - sqrt(-0) returns +0.
//   - log, log2 and log10 of integers and rationals outside float64 range
//     use number.LogAbs and stay finite: log(2**1024) = 1024·ln2.
//   - ldexp truncates a fractional exponent toward zero.
//
// A Dispatcher is immutable after New and safe for concurrent use.
package dispatch
