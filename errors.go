// SPDX-License-Identifier: MIT

package ccmath

import "github.com/katalvlaran/ccmath/classify"

// Sentinels returned (wrapped in a *classify.Error) by every function.
// Match them with errors.Is.
var (
	ErrDomain         = classify.ErrDomain
	ErrTypeMismatch   = classify.ErrTypeMismatch
	ErrNotImplemented = classify.ErrNotImplemented
)
