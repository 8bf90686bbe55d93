// Package config defines the fanjoin application configuration and its
// resolution from command-line flags and environment variables.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"

	apperrors "github.com/agbru/fanjoin/internal/errors"
	"github.com/agbru/fanjoin/internal/logging"
)

const (
	// EnvPrefix is prepended to every environment variable read by fanjoin.
	EnvPrefix = "FANJOIN_"

	// TaskCount is the fixed number of concurrent units the binary spawns.
	// It is not exposed as a flag or environment variable.
	TaskCount = 5
)

// AppConfig holds the resolved application configuration.
type AppConfig struct {
	// Tasks is the number of units to fan out. Always TaskCount for the binary.
	Tasks int
	// LogLevel is the diagnostics level for stderr ("debug", "info", ...).
	LogLevel string
	// IgnoredEnv lists KEY=value pairs from the environment that could not be
	// parsed and were replaced by their defaults.
	IgnoredEnv []string
}

// ParseConfig resolves the configuration with the priority
// CLI flags > environment variables > defaults.
//
// The returned error is flag.ErrHelp when -h/--help was requested, and an
// apperrors.ConfigError for any other invalid input.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	cfg := AppConfig{Tasks: TaskCount}

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)
	fs.StringVar(&cfg.LogLevel, "log-level", "", "diagnostics level on stderr: trace, debug, info, warn, error, disabled (default warn)")
	fs.Usage = func() {
		fmt.Fprintf(errWriter, "Usage: %s [--log-level LEVEL]\n\n", programName)
		fmt.Fprintf(errWriter, "Spawns %d concurrent tasks, each printing its index, and waits for all of them.\n\n", TaskCount)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return cfg, err
		}
		return cfg, apperrors.NewConfigError("%v", err)
	}
	if fs.NArg() > 0 {
		return cfg, apperrors.NewConfigError("unexpected arguments: %v", fs.Args())
	}

	applyEnvOverrides(&cfg, fs)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the configuration for invalid values.
func (c AppConfig) Validate() error {
	if c.Tasks < 0 {
		return apperrors.NewConfigError("task count must be non-negative, got %d", c.Tasks)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return apperrors.NewConfigError("invalid log level: %v", err)
	}
	return nil
}
