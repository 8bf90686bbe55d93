package fanout

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/agbru/fanjoin/internal/errors"
	"github.com/agbru/fanjoin/internal/logging"
	"github.com/agbru/fanjoin/internal/osthread"
)

const tracerName = "github.com/agbru/fanjoin/internal/fanout"

// WorkFunc is the function every unit runs. It receives the unit's index,
// performs its side effect and has no way to report failure.
type WorkFunc func(index int)

// Config parameterizes a run.
type Config struct {
	// Tasks is the number of units to spawn. Zero is a valid, empty run.
	Tasks int
	// Work is invoked once per unit with indices 0..Tasks-1.
	Work WorkFunc
}

// Summary describes a completed run.
type Summary struct {
	Tasks   int
	Joined  int
	Elapsed time.Duration
}

// Runner executes the fan-out/join of a Config.
type Runner struct {
	cfg      Config
	logger   logging.Logger
	observer Observer
	tracer   trace.Tracer
}

// Option configures a Runner during construction.
type Option func(*Runner)

// WithLogger sets the logger used for per-unit debug entries.
func WithLogger(l logging.Logger) Option {
	return func(r *Runner) { r.logger = l }
}

// WithObserver sets the lifecycle observer.
func WithObserver(o Observer) Option {
	return func(r *Runner) { r.observer = o }
}

// WithTracer overrides the tracer taken from the global OpenTelemetry provider.
func WithTracer(t trace.Tracer) Option {
	return func(r *Runner) { r.tracer = t }
}

// NewRunner validates cfg and builds a Runner.
func NewRunner(cfg Config, opts ...Option) (*Runner, error) {
	if cfg.Tasks < 0 {
		return nil, apperrors.ValidationError{Field: "Tasks", Message: "must be non-negative"}
	}
	if cfg.Work == nil {
		return nil, apperrors.ValidationError{Field: "Work", Message: "must not be nil"}
	}
	r := &Runner{cfg: cfg}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = logging.NewNopLogger()
	}
	if r.observer == nil {
		r.observer = NullObserver{}
	}
	if r.tracer == nil {
		r.tracer = otel.Tracer(tracerName)
	}
	return r, nil
}

// Run spawns every unit, then joins each handle in creation order.
//
// The context only carries the trace span; a run cannot be cancelled and
// blocks until every work function has returned.
func (r *Runner) Run(ctx context.Context) Summary {
	_, span := r.tracer.Start(ctx, "fanout.Run",
		trace.WithAttributes(attribute.Int("fanout.tasks", r.cfg.Tasks)))
	defer span.End()

	start := time.Now()

	handles := make([]*Handle, 0, r.cfg.Tasks)
	for i := 0; i < r.cfg.Tasks; i++ {
		r.observer.TaskSpawned(i)
		handles = append(handles, Spawn(i, r.unit))
		span.AddEvent("spawn", trace.WithAttributes(attribute.Int("fanout.index", i)))
		r.logger.Debug("task spawned", logging.Int("index", i))
	}

	joined := 0
	err := JoinAll(handles, func(index int, wait time.Duration) {
		joined++
		r.observer.TaskJoined(index, wait)
		span.AddEvent("join", trace.WithAttributes(attribute.Int("fanout.index", index)))
		r.logger.Debug("task joined", logging.Int("index", index), logging.Duration("wait", wait))
	})
	if err != nil {
		// The handle sequence never leaves this function, so only a bug gets here.
		span.RecordError(err)
		span.SetStatus(codes.Error, "join failed")
		r.logger.Error("join failed", err)
	}

	summary := Summary{Tasks: r.cfg.Tasks, Joined: joined, Elapsed: time.Since(start)}
	span.SetAttributes(attribute.Int("fanout.joined", joined))
	r.logger.Debug("run complete",
		logging.Int("tasks", summary.Tasks),
		logging.Int("joined", summary.Joined),
		logging.Duration("elapsed", summary.Elapsed))
	return summary
}

// unit wraps the configured work function with timing and notifications.
func (r *Runner) unit(index int) {
	start := time.Now()
	r.cfg.Work(index)
	elapsed := time.Since(start)
	r.observer.TaskFinished(index, elapsed)
	r.logger.Debug("task finished",
		logging.Int("index", index),
		logging.Int("os_thread", osthread.ID()),
		logging.Duration("elapsed", elapsed))
}
