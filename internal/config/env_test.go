package config

import (
	"io"
	"testing"
)

func TestApplyEnvOverrides(t *testing.T) {
	tests := []struct {
		name      string
		env       string
		args      []string
		wantLevel string
	}{
		{name: "env applies when flag absent", env: "debug", args: nil, wantLevel: "debug"},
		{name: "flag wins over env", env: "debug", args: []string{"--log-level", "error"}, wantLevel: "error"},
		{name: "empty env ignored", env: "", args: nil, wantLevel: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvPrefix+"LOG_LEVEL", tt.env)

			cfg, err := ParseConfig("fanjoin", tt.args, io.Discard)
			if err != nil {
				t.Fatalf("ParseConfig() unexpected error: %v", err)
			}
			if cfg.LogLevel != tt.wantLevel {
				t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, tt.wantLevel)
			}
		})
	}
}

func TestApplyEnvOverrides_InvalidEnvFallsBack(t *testing.T) {
	t.Setenv(EnvPrefix+"LOG_LEVEL", "verbose")

	cfg, err := ParseConfig("fanjoin", nil, io.Discard)
	if err != nil {
		t.Fatalf("ParseConfig() unexpected error: %v", err)
	}
	if cfg.LogLevel != "" {
		t.Errorf("LogLevel = %q, want default", cfg.LogLevel)
	}
	want := EnvPrefix + "LOG_LEVEL=verbose"
	if len(cfg.IgnoredEnv) != 1 || cfg.IgnoredEnv[0] != want {
		t.Errorf("IgnoredEnv = %v, want [%s]", cfg.IgnoredEnv, want)
	}
}

func TestParseConfig_InvalidLevelFlagRejected(t *testing.T) {
	t.Setenv(EnvPrefix+"LOG_LEVEL", "")

	if _, err := ParseConfig("fanjoin", []string{"--log-level", "verbose"}, io.Discard); err == nil {
		t.Fatal("expected invalid --log-level to be rejected")
	}
}

func TestEnvOverrides_NoTaskCountKey(t *testing.T) {
	for _, o := range envOverrides {
		if o.envKey == "TASKS" || o.envKey == "N" {
			t.Errorf("task count must not be configurable through %s%s", EnvPrefix, o.envKey)
		}
	}
}
