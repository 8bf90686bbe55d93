package config

import (
	"bytes"
	"errors"
	"flag"
	"strings"
	"testing"

	apperrors "github.com/agbru/fanjoin/internal/errors"
)

func TestParseConfig_Defaults(t *testing.T) {
	t.Setenv(EnvPrefix+"LOG_LEVEL", "")
	var errBuf bytes.Buffer

	cfg, err := ParseConfig("fanjoin", nil, &errBuf)
	if err != nil {
		t.Fatalf("ParseConfig() unexpected error: %v", err)
	}
	if cfg.Tasks != TaskCount {
		t.Errorf("Tasks = %d, want %d", cfg.Tasks, TaskCount)
	}
	if cfg.LogLevel != "" {
		t.Errorf("LogLevel = %q, want empty default", cfg.LogLevel)
	}
	if errBuf.Len() != 0 {
		t.Errorf("expected no stderr output, got %q", errBuf.String())
	}
}

func TestParseConfig_Errors(t *testing.T) {
	t.Setenv(EnvPrefix+"LOG_LEVEL", "")
	tests := []struct {
		name       string
		args       []string
		wantHelp   bool
		wantConfig bool
	}{
		{name: "help short", args: []string{"-h"}, wantHelp: true},
		{name: "help long", args: []string{"--help"}, wantHelp: true},
		{name: "unknown flag", args: []string{"--tasks", "3"}, wantConfig: true},
		{name: "positional argument", args: []string{"5"}, wantConfig: true},
		{name: "invalid level", args: []string{"--log-level", "loud"}, wantConfig: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			var errBuf bytes.Buffer
			_, err := ParseConfig("fanjoin", tt.args, &errBuf)
			if err == nil {
				t.Fatal("expected an error")
			}
			if got := errors.Is(err, flag.ErrHelp); got != tt.wantHelp {
				t.Errorf("errors.Is(err, flag.ErrHelp) = %v, want %v", got, tt.wantHelp)
			}
			var cfgErr apperrors.ConfigError
			if got := errors.As(err, &cfgErr); got != tt.wantConfig {
				t.Errorf("errors.As(err, ConfigError) = %v, want %v (err: %v)", got, tt.wantConfig, err)
			}
		})
	}
}

func TestParseConfig_UsageMentionsTaskCount(t *testing.T) {
	var errBuf bytes.Buffer
	_, _ = ParseConfig("fanjoin", []string{"-h"}, &errBuf)

	out := errBuf.String()
	if !strings.Contains(out, "Usage: fanjoin") {
		t.Errorf("usage output missing program name: %q", out)
	}
	if !strings.Contains(out, "-log-level") {
		t.Errorf("usage output missing log-level flag: %q", out)
	}
}

func TestAppConfig_Validate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		cfg     AppConfig
		wantErr bool
	}{
		{"defaults", AppConfig{Tasks: TaskCount}, false},
		{"zero tasks", AppConfig{Tasks: 0}, false},
		{"negative tasks", AppConfig{Tasks: -1}, true},
		{"debug level", AppConfig{Tasks: 1, LogLevel: "debug"}, false},
		{"bad level", AppConfig{Tasks: 1, LogLevel: "chatty"}, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if err := tt.cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
