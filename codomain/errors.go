// SPDX-License-Identifier: MIT

package codomain

import "errors"

// ErrUnknownMode indicates a codomain name other than "R"/"real" or
// "C"/"complex".
var ErrUnknownMode = errors.New("codomain: unknown mode")
