// SPDX-License-Identifier: MIT

// Package codomain holds the policy that decides what happens when a real
// argument falls outside a function's real domain.
//
// Two modes exist:
//
//	Complex ("C")  promote the argument to complex and return the
//	               principal complex value, e.g. sqrt(-4) = 2i (default)
//	Real    ("R")  reject the call with a domain error
//
// The mode is consulted on every call that could leave the real domain.
// It can be fixed per dispatcher (dispatch.WithCodomain) or read from the
// process-wide policy kept here. The process-wide value is guarded by a
// sync.RWMutex, so Set and Get may be called from any goroutine; a call in
// flight sees either the old or the new mode, never a torn value.
//
// At package initialisation the process-wide mode is taken from the
// CCMATH_CODOMAIN environment variable when it holds a recognised value.
//
//	codomain.Set(codomain.Real)
//	defer codomain.Reset()
package codomain
