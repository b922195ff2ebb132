// SPDX-License-Identifier: MIT

package ccmath

import (
	"fmt"

	"github.com/katalvlaran/ccmath/codomain"
	"github.com/katalvlaran/ccmath/dispatch"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// SetCodomain sets the process-wide codomain from "C"/"complex" or
// "R"/"real".
func SetCodomain(s string) error {
	return codomain.SetString(s)
}

// SetCodomainMode sets the process-wide codomain and returns the previous one.
func SetCodomainMode(m codomain.Mode) codomain.Mode {
	return codomain.Set(m)
}

// Codomain returns the process-wide codomain.
func Codomain() codomain.Mode {
	return codomain.Get()
}

// NewFromEnv returns a Dispatcher pinned to CCMATH_CODOMAIN that logs to a
// zap logger built from CCMATH_LOG_LEVEL and CCMATH_LOG_DEVELOPMENT.
func NewFromEnv() (*dispatch.Dispatcher, error) {
	cfg, err := codomain.LoadConfig()
	if err != nil {
		return nil, err
	}
	logger, err := NewLogger(cfg)
	if err != nil {
		return nil, err
	}

	return dispatch.New(dispatch.WithCodomain(cfg.Codomain), dispatch.WithLogger(logger)), nil
}

// NewLogger builds the zap logger described by cfg: JSON in production,
// console output in development, always on stderr.
func NewLogger(cfg *codomain.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("ccmath: invalid log level %q: %w", cfg.LogLevel, err)
	}

	encoding, encCfg := "json", zap.NewProductionEncoderConfig()
	if cfg.LogDevelopment {
		encoding, encCfg = "console", zap.NewDevelopmentEncoderConfig()
	}
	zapCfg := zap.Config{
		Level:             zap.NewAtomicLevelAt(level),
		Development:       cfg.LogDevelopment,
		Encoding:          encoding,
		EncoderConfig:     encCfg,
		OutputPaths:       []string{"stderr"},
		ErrorOutputPaths:  []string{"stderr"},
		DisableStacktrace: !cfg.LogDevelopment,
	}

	return zapCfg.Build()
}
