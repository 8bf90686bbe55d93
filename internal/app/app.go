// Package app wires configuration, logging, metrics and the fan-out/join
// runner into the fanjoin command.
package app

import (
	"context"
	"errors"
	"flag"
	"io"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/agbru/fanjoin/internal/config"
	apperrors "github.com/agbru/fanjoin/internal/errors"
	"github.com/agbru/fanjoin/internal/fanout"
	"github.com/agbru/fanjoin/internal/format"
	"github.com/agbru/fanjoin/internal/logging"
	"github.com/agbru/fanjoin/internal/metrics"
	"github.com/agbru/fanjoin/internal/sysmon"
)

// Application represents the fanjoin application instance.
type Application struct {
	Config    config.AppConfig
	ErrWriter io.Writer
	Logger    logging.Logger
	Registry  *prometheus.Registry
	Metrics   *metrics.RunMetrics
	Work      func(out io.Writer) fanout.WorkFunc

	metricsOnce sync.Once
	sample      func() sysmon.Stats
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithLogger replaces the stderr logger built from the configuration.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// WithRegistry sets the Prometheus registry the run metrics register with.
func WithRegistry(reg *prometheus.Registry) AppOption {
	return func(a *Application) { a.Registry = reg }
}

// New creates a new Application instance by parsing command-line arguments.
// args[0] is the program name.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	programName := "fanjoin"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}

	app := &Application{Config: cfg, ErrWriter: errWriter, Work: fanout.PrintIndex, sample: sysmon.Sample}
	for _, opt := range opts {
		opt(app)
	}
	if app.Logger == nil {
		// ParseConfig has already validated the level.
		level, _ := logging.ParseLevel(cfg.LogLevel)
		app.Logger = logging.NewLeveledLogger(errWriter, "fanjoin", level)
	}
	for _, kv := range cfg.IgnoredEnv {
		app.Logger.Warn("ignoring invalid environment value, using default", logging.String("env", kv))
	}
	if app.Registry == nil {
		app.Registry = prometheus.NewRegistry()
	}
	app.runMetrics()
	return app, nil
}

// runMetrics registers the run collectors with a.Registry on first use and
// returns the same instance afterwards, so repeated runs share one set.
func (a *Application) runMetrics() *metrics.RunMetrics {
	a.metricsOnce.Do(func() {
		if a.Metrics != nil {
			return
		}
		if a.Registry == nil {
			a.Registry = prometheus.NewRegistry()
		}
		a.Metrics = metrics.NewRunMetrics(a.Registry)
	})
	return a.Metrics
}

func (a *Application) sampler() func() sysmon.Stats {
	if a.sample == nil {
		return sysmon.Sample
	}
	return a.sample
}

func (a *Application) debugEnabled() bool {
	level, err := logging.ParseLevel(a.Config.LogLevel)
	return err == nil && level <= zerolog.DebugLevel
}

// Run spawns the configured units writing to out, joins them all, and
// returns the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	m := a.runMetrics()

	runner, err := fanout.NewRunner(
		fanout.Config{Tasks: a.Config.Tasks, Work: a.Work(out)},
		fanout.WithLogger(a.Logger),
		fanout.WithObserver(m),
	)
	if err != nil {
		a.Logger.Error("invalid runner configuration", err)
		return apperrors.ExitCodeFor(err)
	}

	// Sampling reads /proc; skip it when the entries would be dropped.
	debug := a.debugEnabled()
	if debug {
		a.sampler()().Log(a.Logger, "before")
	}
	summary := runner.Run(ctx)
	if debug {
		a.sampler()().Log(a.Logger, "after")
	}

	a.Logger.Info("all tasks joined",
		logging.Int("tasks", summary.Tasks),
		logging.String("elapsed", format.FormatExecutionDuration(summary.Elapsed)))
	metrics.Log(a.Logger, a.Registry)

	return apperrors.ExitSuccess
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
