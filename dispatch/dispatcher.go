// SPDX-License-Identifier: MIT

package dispatch

import (
	"github.com/katalvlaran/ccmath/classify"
	"github.com/katalvlaran/ccmath/codomain"
	"github.com/katalvlaran/ccmath/number"
	"go.uber.org/zap"
)

// Dispatcher routes calls to the real or complex implementation.
type Dispatcher struct {
	opts Options
}

// New returns a Dispatcher configured by opts.
func New(opts ...Option) *Dispatcher {
	return &Dispatcher{opts: gatherOptions(opts...)}
}

// Mode returns the codomain the next call will use.
func (d *Dispatcher) Mode() codomain.Mode {
	if d.opts.global {
		return codomain.Get()
	}

	return d.opts.mode
}

// Logger returns the logger the Dispatcher reports to.
func (d *Dispatcher) Logger() *zap.Logger {
	return d.opts.logger
}

// Eval evaluates fn(args...). It is the single entry point behind every
// named method. For Frexp and Lgamma it returns only the first result
// (the fraction and ln|Γ(x)|); use the methods for the second.
func (d *Dispatcher) Eval(fn classify.Func, args ...number.Number) (number.Number, error) {
	dec, err := d.decide(fn, args)
	if err != nil {
		return number.Number{}, err
	}
	if dec == classify.UseReal {
		return number.Real(evalReal(fn, args)), nil
	}

	return number.Complex(evalComplex(fn, args)), nil
}

// decide snapshots the mode once, classifies the call and logs the outcome.
func (d *Dispatcher) decide(fn classify.Func, args []number.Number) (classify.Decision, error) {
	mode := d.Mode()
	dec, err := classify.Classify(fn, mode, args...)
	switch {
	case err != nil:
		d.opts.logger.Debug("call rejected", append(callFields(fn, mode, args), zap.Error(err))...)
	case dec == classify.UseComplexPromotion:
		d.opts.logger.Debug("promoting to complex", callFields(fn, mode, args)...)
	}

	return dec, err
}

func callFields(fn classify.Func, mode codomain.Mode, args []number.Number) []zap.Field {
	return []zap.Field{
		zap.String("func", fn.String()),
		zap.Stringers("args", args),
		zap.Stringer("mode", mode),
	}
}
