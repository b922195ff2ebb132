// SPDX-License-Identifier: MIT

package number

import "errors"

// ErrTypeMismatch indicates that a value is not one of the recognised
// numeric kinds (e.g. a string, nil or bool passed where a number is
// required). It is never silently coerced.
var ErrTypeMismatch = errors.New("number: numeric value required")
