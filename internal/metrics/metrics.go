// Package metrics records fan-out/join lifecycle counters and latencies in
// Prometheus collectors. RunMetrics satisfies fanout.Observer.
package metrics

import (
	"sort"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"

	"github.com/agbru/fanjoin/internal/logging"
)

// Namespace prefixes every metric name.
const Namespace = "fanjoin"

// RunMetrics holds the collectors fed by a runner.
type RunMetrics struct {
	spawned      prometheus.Counter
	finished     prometheus.Counter
	joined       prometheus.Counter
	running      prometheus.Gauge
	taskDuration prometheus.Histogram
	joinWait     prometheus.Histogram
}

// NewRunMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewRunMetrics(reg prometheus.Registerer) *RunMetrics {
	f := promauto.With(reg)
	return &RunMetrics{
		spawned: f.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "tasks_spawned_total",
			Help:      "Units launched by the fan-out phase.",
		}),
		finished: f.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "tasks_finished_total",
			Help:      "Units whose work function returned.",
		}),
		joined: f.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "tasks_joined_total",
			Help:      "Handles consumed by the join phase.",
		}),
		running: f.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "tasks_running",
			Help:      "Units launched whose work function has not returned yet.",
		}),
		taskDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "task_duration_seconds",
			Help:      "Time spent inside the work function.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12),
		}),
		joinWait: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "join_wait_seconds",
			Help:      "Time the join phase blocked on a single handle.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12),
		}),
	}
}

// TaskSpawned implements fanout.Observer.
func (m *RunMetrics) TaskSpawned(int) {
	m.spawned.Inc()
	m.running.Inc()
}

// TaskFinished implements fanout.Observer.
func (m *RunMetrics) TaskFinished(_ int, elapsed time.Duration) {
	m.finished.Inc()
	m.running.Dec()
	m.taskDuration.Observe(elapsed.Seconds())
}

// TaskJoined implements fanout.Observer.
func (m *RunMetrics) TaskJoined(_ int, wait time.Duration) {
	m.joined.Inc()
	m.joinWait.Observe(wait.Seconds())
}

// Summarize flattens the gathered families into name -> value. Counters and
// gauges map to their value; histograms contribute <name>_count and <name>_sum.
func Summarize(g prometheus.Gatherer) (map[string]float64, error) {
	families, err := g.Gather()
	if err != nil {
		return nil, err
	}
	out := make(map[string]float64, len(families))
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			addMetric(out, mf.GetName(), mf.GetType(), m)
		}
	}
	return out, nil
}

func addMetric(out map[string]float64, name string, typ dto.MetricType, m *dto.Metric) {
	switch typ {
	case dto.MetricType_COUNTER:
		out[name] += m.GetCounter().GetValue()
	case dto.MetricType_GAUGE:
		out[name] += m.GetGauge().GetValue()
	case dto.MetricType_HISTOGRAM:
		out[name+"_count"] += float64(m.GetHistogram().GetSampleCount())
		out[name+"_sum"] += m.GetHistogram().GetSampleSum()
	}
}

// Log writes every summarized value at debug level in name order.
func Log(logger logging.Logger, g prometheus.Gatherer) {
	values, err := Summarize(g)
	if err != nil {
		logger.Warn("metrics unavailable", logging.Err(err))
		return
	}
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		logger.Debug("metric", logging.String("name", name), logging.Float64("value", values[name]))
	}
}
