// SPDX-License-Identifier: MIT

package number

import (
	"fmt"
	"math"
	"math/big"
	"math/cmplx"
	"strconv"
)

// Limits of the float64 format used when reducing huge integers.
const (
	// maxExp is DBL_MAX_EXP: integers with at least this many bits overflow float64.
	maxExp = 1024
	// mantDigits is DBL_MANT_DIG, the number of significant bits kept after a shift.
	mantDigits = 53
)

// ---------- Constructors ----------

// Int returns an Integer Number.
func Int(i int64) Number {
	return Number{kind: KindInteger, i: i}
}

// BigInt returns an Integer Number holding a copy of b.
// Values that fit in int64 are stored unboxed. A nil b yields the zero
// (Invalid) Number.
func BigInt(b *big.Int) Number {
	if b == nil {
		return Number{}
	}
	if b.IsInt64() {
		return Int(b.Int64())
	}

	return Number{kind: KindInteger, bi: new(big.Int).Set(b)}
}

// Rat returns a Rational Number holding a copy of r. A nil r yields the
// zero (Invalid) Number.
func Rat(r *big.Rat) Number {
	if r == nil {
		return Number{}
	}

	return Number{kind: KindRational, r: new(big.Rat).Set(r)}
}

// Real returns a Real Number.
func Real(f float64) Number {
	return Number{kind: KindReal, f: f}
}

// Complex returns a Complex Number.
func Complex(c complex128) Number {
	return Number{kind: KindComplex, c: c}
}

// Cmplx returns the Complex Number re+im·i.
func Cmplx(re, im float64) Number {
	return Complex(complex(re, im))
}

// From converts a dynamic Go value into a Number.
//
// Accepted: every signed and unsigned integer type, float32, float64,
// complex64, complex128, non-nil *big.Int, *big.Rat, *big.Float, and
// valid Numbers. Anything else is rejected with ErrTypeMismatch.
func From(v any) (Number, error) {
	switch x := v.(type) {
	case Number:
		if x.kind == KindInvalid {
			return Number{}, fmt.Errorf("%w: invalid number", ErrTypeMismatch)
		}
		return x, nil
	case int:
		return Int(int64(x)), nil
	case int8:
		return Int(int64(x)), nil
	case int16:
		return Int(int64(x)), nil
	case int32:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case uint:
		return fromUint64(uint64(x)), nil
	case uint8:
		return Int(int64(x)), nil
	case uint16:
		return Int(int64(x)), nil
	case uint32:
		return Int(int64(x)), nil
	case uint64:
		return fromUint64(x), nil
	case float32:
		return Real(float64(x)), nil
	case float64:
		return Real(x), nil
	case complex64:
		return Complex(complex128(x)), nil
	case complex128:
		return Complex(x), nil
	case *big.Int:
		if x == nil {
			break
		}
		return BigInt(x), nil
	case *big.Rat:
		if x == nil {
			break
		}
		return Rat(x), nil
	case *big.Float:
		if x == nil {
			break
		}
		f, _ := x.Float64()
		return Real(f), nil
	}

	return Number{}, fmt.Errorf("%w: got %T", ErrTypeMismatch, v)
}

// MustFrom is like From but panics on error. Intended for tests and
// package-level initialisation with literal values.
func MustFrom(v any) Number {
	n, err := From(v)
	if err != nil {
		panic(err)
	}

	return n
}

func fromUint64(u uint64) Number {
	if u <= math.MaxInt64 {
		return Int(int64(u))
	}

	return Number{kind: KindInteger, bi: new(big.Int).SetUint64(u)}
}

// ---------- Queries ----------

// Kind returns the variant tag.
func (n Number) Kind() Kind { return n.kind }

// IsRealLike reports whether n is an Integer, Rational or Real.
func (n Number) IsRealLike() bool { return n.kind.IsRealLike() }

// IsComplex reports whether n is a Complex (regardless of its imaginary part).
func (n Number) IsComplex() bool { return n.kind == KindComplex }

// Float64 returns the nearest float64 to n. For Complex values it returns
// the real part. Integers too large for float64 become ±Inf.
func (n Number) Float64() float64 {
	switch n.kind {
	case KindInteger:
		if n.bi != nil {
			f, _ := new(big.Float).SetInt(n.bi).Float64()
			return f
		}
		return float64(n.i)
	case KindRational:
		f, _ := n.r.Float64()
		return f
	case KindReal:
		return n.f
	case KindComplex:
		return real(n.c)
	}

	return math.NaN()
}

// Complex128 returns n as a complex128; real-like values get a +0
// imaginary part.
func (n Number) Complex128() complex128 {
	if n.kind == KindComplex {
		return n.c
	}

	return complex(n.Float64(), 0)
}

// Sign returns -1, 0 or +1. It is exact for Integer and Rational values.
// For Real values both zeros and NaN report 0; for Complex values the
// sign of the real part is used.
func (n Number) Sign() int {
	switch n.kind {
	case KindInteger:
		if n.bi != nil {
			return n.bi.Sign()
		}
		switch {
		case n.i < 0:
			return -1
		case n.i > 0:
			return 1
		}
		return 0
	case KindRational:
		return n.r.Sign()
	}

	f := n.Float64()
	switch {
	case f < 0:
		return -1
	case f > 0:
		return 1
	}

	return 0
}

// CmpFloat compares a real-like n with b, exactly for Integer and Rational
// values. It returns -1, 0 or +1. NaN on either side compares as 0; ±Inf
// bounds order correctly against every finite value.
func (n Number) CmpFloat(b float64) int {
	if math.IsNaN(b) || n.IsNaN() {
		return 0
	}
	switch n.kind {
	case KindInteger, KindRational:
		if math.IsInf(b, 1) {
			return -1
		}
		if math.IsInf(b, -1) {
			return 1
		}
		return n.rat().Cmp(new(big.Rat).SetFloat64(b))
	}

	f := n.Float64()
	switch {
	case f < b:
		return -1
	case f > b:
		return 1
	}

	return 0
}

// IsZero reports whether n equals zero (either sign for floats).
func (n Number) IsZero() bool {
	if n.kind == KindComplex {
		return n.c == 0
	}

	return n.kind != KindInvalid && n.Sign() == 0 && !n.IsNaN()
}

// IsNaN reports whether n is a Real NaN or a Complex with a NaN part.
func (n Number) IsNaN() bool {
	switch n.kind {
	case KindReal:
		return math.IsNaN(n.f)
	case KindComplex:
		return cmplx.IsNaN(n.c)
	}

	return false
}

// IsInf reports whether n is an infinite Real, or a Complex with an
// infinite part.
func (n Number) IsInf() bool {
	switch n.kind {
	case KindReal:
		return math.IsInf(n.f, 0)
	case KindComplex:
		return cmplx.IsInf(n.c)
	}

	return false
}

// IsInteger reports whether n has an integral value: every Integer, a
// Rational with denominator 1, or a finite Real without fraction.
func (n Number) IsInteger() bool {
	switch n.kind {
	case KindInteger:
		return true
	case KindRational:
		return n.r.IsInt()
	case KindReal:
		return !math.IsInf(n.f, 0) && n.f == math.Trunc(n.f)
	}

	return false
}

// LogAbs returns ln|n|. Unlike math.Log(math.Abs(n.Float64())) it stays
// finite for integers and rationals whose parts overflow float64.
func (n Number) LogAbs() float64 {
	switch n.kind {
	case KindInteger:
		if n.bi != nil {
			return logAbsInt(n.bi)
		}
	case KindRational:
		num, den := n.r.Num(), n.r.Denom()
		if num.BitLen() >= maxExp || den.BitLen() >= maxExp {
			if num.Sign() == 0 {
				return math.Inf(-1)
			}
			return logAbsInt(num) - logAbsInt(den)
		}
	case KindComplex:
		return math.Log(cmplx.Abs(n.c))
	}

	return math.Log(math.Abs(n.Float64()))
}

// Frexp breaks n into a fraction in [½, 1) and a power of two, like
// math.Frexp. Integers and rationals are decomposed exactly before the
// fraction is rounded, so values beyond float64 range keep a finite
// fraction and a large exponent.
func (n Number) Frexp() (frac float64, exp int) {
	var f *big.Float
	switch {
	case n.kind == KindInteger && n.bi != nil:
		f = new(big.Float).SetInt(n.bi)
	case n.kind == KindRational:
		f = new(big.Float).SetRat(n.r)
	default:
		return math.Frexp(n.Float64())
	}
	mant := new(big.Float)
	exp = f.MantExp(mant)
	frac, _ = mant.Float64()
	if math.Abs(frac) == 1 { // rounded up out of [½, 1)
		frac /= 2
		exp++
	}

	return frac, exp
}

// logAbsInt computes ln|b| as ln(m) + shift·ln2 where m keeps the top
// mantDigits bits of |b|.
func logAbsInt(b *big.Int) float64 {
	a := new(big.Int).Abs(b)
	bits := a.BitLen()
	if bits < maxExp {
		f, _ := new(big.Float).SetInt(a).Float64()
		return math.Log(f)
	}
	shift := bits - mantDigits
	a.Rsh(a, uint(shift))
	f, _ := new(big.Float).SetInt(a).Float64()

	return math.Log(f) + float64(shift)*math.Ln2
}

// rat returns the exact value of an Integer or Rational.
func (n Number) rat() *big.Rat {
	switch {
	case n.kind == KindRational:
		return n.r
	case n.bi != nil:
		return new(big.Rat).SetInt(n.bi)
	}

	return new(big.Rat).SetInt64(n.i)
}

// String renders n in Go literal syntax: 3, -1/3, 0.5, (1+2i).
func (n Number) String() string {
	switch n.kind {
	case KindInteger:
		if n.bi != nil {
			return n.bi.String()
		}
		return strconv.FormatInt(n.i, 10)
	case KindRational:
		return n.r.RatString()
	case KindReal:
		return strconv.FormatFloat(n.f, 'g', -1, 64)
	case KindComplex:
		return strconv.FormatComplex(n.c, 'g', -1, 128)
	}

	return "<invalid>"
}
