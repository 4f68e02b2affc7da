// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - A single Config is shared by the gene API, survival API and frontend
//   binaries; each binary reads the address it serves on.
// - All functions accept context.Context as the first parameter.
// - External errors are wrapped with ErrLoadConfig or ErrInvalidConfig.
package config

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the log encoding: json or console.
	LogFormat string `koanf:"log_format"`

	// GeneAddr is the listen address of the gene API.
	GeneAddr string `koanf:"gene_addr"`

	// SurvivalAddr is the listen address of the survival-analysis API.
	SurvivalAddr string `koanf:"survival_addr"`

	// FrontendAddr is the listen address of the static frontend.
	FrontendAddr string `koanf:"frontend_addr"`

	// AssetsDir is served by the frontend. Empty selects the built-in assets.
	AssetsDir string `koanf:"assets_dir"`

	// CORSOrigins lists origins allowed to call the gene API.
	CORSOrigins []string `koanf:"cors_origins"`

	// MetricsEnabled exposes GET /metrics on every service.
	MetricsEnabled bool `koanf:"metrics_enabled"`

	// ShutdownTimeoutMS bounds graceful shutdown.
	ShutdownTimeoutMS int `koanf:"shutdown_timeout_ms"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:          "info",
		LogFormat:         "json",
		GeneAddr:          ":28881",
		SurvivalAddr:      ":28882",
		FrontendAddr:      ":28883",
		AssetsDir:         "",
		CORSOrigins:       []string{"*"},
		MetricsEnabled:    true,
		ShutdownTimeoutMS: 30_000,
	}
}

// ShutdownTimeout returns ShutdownTimeoutMS as a duration.
func (c *Config) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutMS) * time.Millisecond
}

// Validate reports the first invalid field.
func (c *Config) Validate(_ context.Context) error {
	addrs := []struct{ key, val string }{
		{"gene_addr", c.GeneAddr},
		{"survival_addr", c.SurvivalAddr},
		{"frontend_addr", c.FrontendAddr},
	}
	for _, a := range addrs {
		if strings.TrimSpace(a.val) == "" {
			return fmt.Errorf("%w: %s must not be empty", ErrInvalidConfig, a.key)
		}
	}
	switch strings.ToLower(c.LogFormat) {
	case "json", "console":
	default:
		return fmt.Errorf("%w: log_format must be json or console, got %q", ErrInvalidConfig, c.LogFormat)
	}
	if c.ShutdownTimeoutMS <= 0 {
		return fmt.Errorf("%w: shutdown_timeout_ms must be positive", ErrInvalidConfig)
	}
	return nil
}
