// SPDX-License-Identifier: MIT

package number

import "math/big"

// Kind tags the variant held by a Number.
type Kind int

const (
	// KindInvalid is the zero Kind; a zero Number is not a valid argument.
	KindInvalid Kind = iota
	// KindInteger holds an int64 or a *big.Int.
	KindInteger
	// KindRational holds a *big.Rat.
	KindRational
	// KindReal holds a float64.
	KindReal
	// KindComplex holds a complex128.
	KindComplex
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindRational:
		return "rational"
	case KindReal:
		return "real"
	case KindComplex:
		return "complex"
	default:
		return "invalid"
	}
}

// IsRealLike reports whether values of this kind may be handed to a real
// math primitive.
func (k Kind) IsRealLike() bool {
	return k == KindInteger || k == KindRational || k == KindReal
}

// Number is an immutable numeric value of one of the Kinds above.
// The zero Number has Kind KindInvalid.
//
// Big variants are copied on construction, so a Number never aliases a
// caller-owned *big.Int or *big.Rat.
type Number struct {
	kind Kind

	i  int64    // Integer, when bi == nil
	bi *big.Int // Integer that does not fit int64
	r  *big.Rat // Rational
	f  float64  // Real
	c  complex128
}
