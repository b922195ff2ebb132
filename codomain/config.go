// SPDX-License-Identifier: MIT

package codomain

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is prepended to every environment key read by LoadConfig.
const EnvPrefix = "CCMATH"

// Config holds the environment-driven settings of the library.
type Config struct {
	// Codomain is read from CCMATH_CODOMAIN ("C" or "R").
	Codomain Mode `envconfig:"CODOMAIN" default:"C"`
	// LogLevel is a zap level name read from CCMATH_LOG_LEVEL.
	LogLevel string `envconfig:"LOG_LEVEL" default:"warn"`
	// LogDevelopment selects zap's console encoder (CCMATH_LOG_DEVELOPMENT).
	LogDevelopment bool `envconfig:"LOG_DEVELOPMENT" default:"false"`
}

// LoadConfig reads Config from the environment.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("codomain: failed to load config: %w", err)
	}

	return &cfg, nil
}

// DefaultConfig returns the configuration used when the environment is empty.
func DefaultConfig() *Config {
	return &Config{
		Codomain:       Default,
		LogLevel:       "warn",
		LogDevelopment: false,
	}
}

// FromEnv loads Config and applies its Codomain to the process-wide policy.
func FromEnv() (*Config, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	Set(cfg.Codomain)

	return cfg, nil
}
