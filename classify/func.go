// SPDX-License-Identifier: MIT

package classify

import "strconv"

// Func identifies one public extended math function.
type Func int

const (
	Sqrt Func = iota
	Exp
	Log
	Log2
	Log10
	Sin
	Cos
	Tan
	Sinh
	Cosh
	Tanh
	Asin
	Acos
	Atan
	Asinh
	Acosh
	Atanh
	Cbrt
	Atan2
	Hypot
	Frexp
	Ldexp
	Erf
	Erfc
	Lgamma
	Gamma

	numFuncs
)

var funcNames = [numFuncs]string{
	"sqrt", "exp", "log", "log2", "log10",
	"sin", "cos", "tan", "sinh", "cosh", "tanh",
	"asin", "acos", "atan", "asinh", "acosh", "atanh",
	"cbrt", "atan2", "hypot", "frexp", "ldexp",
	"erf", "erfc", "lgamma", "gamma",
}

// Funcs returns every Func in declaration order.
func Funcs() []Func {
	out := make([]Func, numFuncs)
	for i := range out {
		out[i] = Func(i)
	}

	return out
}

// String returns the lower-case public name of fn.
func (fn Func) String() string {
	if !fn.Valid() {
		return "Func(" + strconv.Itoa(int(fn)) + ")"
	}

	return funcNames[fn]
}

// Valid reports whether fn is a known function.
func (fn Func) Valid() bool {
	return fn >= 0 && fn < numFuncs
}

// Arity returns the minimum and maximum number of arguments fn accepts.
func (fn Func) Arity() (lo, hi int) {
	switch fn {
	case Log:
		return 1, 2
	case Atan2, Hypot, Ldexp:
		return 2, 2
	}

	return 1, 1
}

// HasComplexForm reports whether fn is defined for complex arguments.
func (fn Func) HasComplexForm() bool {
	switch fn {
	case Atan2, Hypot, Frexp, Ldexp, Erf, Erfc, Lgamma, Gamma:
		return false
	}

	return fn.Valid()
}

// Promotable reports whether a real argument outside the real domain of fn
// may be evaluated on the complex path.
func (fn Func) Promotable() bool {
	switch fn {
	case Sqrt, Log, Log2, Log10, Asin, Acos, Acosh, Atanh:
		return true
	}

	return false
}

// deferred reports whether the complex form of fn is planned but absent.
func (fn Func) deferred() bool {
	return fn == Atan2 || fn == Gamma || fn == Lgamma
}
