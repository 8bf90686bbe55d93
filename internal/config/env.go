// This file contains environment variable utilities for configuration override.

package config

import (
	"flag"
	"os"

	"github.com/agbru/fanjoin/internal/logging"
)

// isFlagSet checks if a flag was explicitly set on the command line.
// This is used to determine whether to apply environment variable overrides.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// isFlagSetAny checks if any of the specified flags were explicitly set.
func isFlagSetAny(fs *flag.FlagSet, names ...string) bool {
	for _, name := range names {
		if isFlagSet(fs, name) {
			return true
		}
	}
	return false
}

// envOverride declares a single environment variable override.
// Each entry maps an env key (without the FANJOIN_ prefix) to the CLI flag
// name(s) it corresponds to and a function that applies the env value.
// apply reports false when the value cannot be parsed; the field then keeps
// its default.
type envOverride struct {
	envKey string
	flags  []string
	apply  func(*AppConfig, string) bool
}

// envOverrides is the declarative table of all environment variable overrides.
// The task count is deliberately absent.
var envOverrides = []envOverride{
	{"LOG_LEVEL", []string{"log-level"}, func(c *AppConfig, v string) bool {
		if _, err := logging.ParseLevel(v); err != nil {
			return false
		}
		c.LogLevel = v
		return true
	}},
}

// applyEnvOverrides applies environment variable values to the configuration
// for any flags that were not explicitly set on the command line. Invalid
// values fall back to the default and are listed in config.IgnoredEnv.
//
// Supported environment variables (all prefixed with FANJOIN_):
//   - LOG_LEVEL
func applyEnvOverrides(config *AppConfig, fs *flag.FlagSet) {
	for _, o := range envOverrides {
		if isFlagSetAny(fs, o.flags...) {
			continue
		}
		key := EnvPrefix + o.envKey
		if val := os.Getenv(key); val != "" && !o.apply(config, val) {
			config.IgnoredEnv = append(config.IgnoredEnv, key+"="+val)
		}
	}
}
