package pipeline

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics of the processing pipeline.
// A nil *Metrics disables instrumentation (tests, one-shot CLIs).
type Metrics struct {
	SweepsTotal        *prometheus.CounterVec
	DocumentsTotal     *prometheus.CounterVec
	SweepDuration      *prometheus.HistogramVec
	QueueDepth         prometheus.Gauge
	StuckResetsTotal   prometheus.Counter
	TerminalTotal      *prometheus.CounterVec
	ApplyConflictTotal prometheus.Counter
}

// NewMetrics creates and registers all pipeline metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		SweepsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "docpipe_sweeps_total",
				Help: "Total number of pipeline sweeps",
			},
			[]string{"job"},
		),
		DocumentsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "docpipe_documents_processed_total",
				Help: "Documents processed by the OCR worker, by outcome",
			},
			[]string{"outcome"},
		),
		SweepDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "docpipe_sweep_duration_seconds",
				Help:    "Duration of pipeline sweeps in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"job"},
		),
		QueueDepth: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "docpipe_queue_depth",
				Help: "Documents currently queued for OCR",
			},
		),
		StuckResetsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "docpipe_stuck_resets_total",
				Help: "Documents recovered from a stuck processing state",
			},
		),
		TerminalTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "docpipe_terminal_total",
				Help: "Documents parked in a terminal failure state, by status",
			},
			[]string{"status"},
		),
		ApplyConflictTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "docpipe_apply_field_conflicts_total",
				Help: "Field conflicts detected while applying extracted data",
			},
		),
	}
}

func (m *Metrics) sweep(job string, seconds float64) {
	if m == nil {
		return
	}
	m.SweepsTotal.WithLabelValues(job).Inc()
	m.SweepDuration.WithLabelValues(job).Observe(seconds)
}

func (m *Metrics) document(outcome string) {
	if m == nil {
		return
	}
	m.DocumentsTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) stuckReset() {
	if m == nil {
		return
	}
	m.StuckResetsTotal.Inc()
}

func (m *Metrics) terminal(status string) {
	if m == nil {
		return
	}
	m.TerminalTotal.WithLabelValues(status).Inc()
}

func (m *Metrics) conflicts(n int) {
	if m == nil || n == 0 {
		return
	}
	m.ApplyConflictTotal.Add(float64(n))
}

func (m *Metrics) queueDepth(n int) {
	if m == nil {
		return
	}
	m.QueueDepth.Set(float64(n))
}
