// SPDX-License-Identifier: MIT

package dispatch

import (
	"github.com/katalvlaran/ccmath/codomain"
	"go.uber.org/zap"
)

// DefaultGlobalCodomain makes a Dispatcher follow the process-wide codomain.
const DefaultGlobalCodomain = true

const (
	panicModeInvalid = "dispatch: WithCodomain: unknown codomain mode"
	panicLoggerNil   = "dispatch: WithLogger: logger must be non-nil"
)

// Option configures a Dispatcher. Constructors panic only on nonsensical
// values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	global bool          // DefaultGlobalCodomain
	mode   codomain.Mode // used when !global
	logger *zap.Logger   // zap.NewNop() by default
}

// WithCodomain pins the Dispatcher to m.
func WithCodomain(m codomain.Mode) Option {
	if !m.Valid() {
		panic(panicModeInvalid)
	}

	return func(o *Options) {
		o.global = false
		o.mode = m
	}
}

// WithGlobalCodomain makes the Dispatcher read codomain.Get() on every call.
func WithGlobalCodomain() Option {
	return func(o *Options) {
		o.global = true
	}
}

// WithLogger sets the logger for promotion and rejection events.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) {
		o.logger = l
	}
}

func defaultOptions() Options {
	return Options{
		global: DefaultGlobalCodomain,
		mode:   codomain.Default,
		logger: zap.NewNop(),
	}
}

// gatherOptions applies opts over the defaults, in order.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
