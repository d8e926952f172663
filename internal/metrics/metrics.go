// Package metrics holds the prometheus collectors of the ledger service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "club_ledger"

// Sweep results.
const (
	SweepOK      = "ok"
	SweepError   = "error"
	SweepSkipped = "skipped"
)

// Metrics groups the collectors. A nil *Metrics is valid and records nothing.
type Metrics struct {
	operations    *prometheus.CounterVec
	loansReversed prometheus.Counter
	sweeps        *prometheus.CounterVec
	sweepDuration prometheus.Histogram
	persist       prometheus.Histogram
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Ledger operations by name and outcome.",
		}, []string{"operation", "outcome"}),
		loansReversed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "loans_reversed_total",
			Help:      "Loans reversed by the expiry sweep.",
		}),
		sweeps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sweeps_total",
			Help:      "Expiry sweeps by result.",
		}, []string{"result"}),
		sweepDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "sweep_duration_seconds",
			Help:      "Duration of expiry sweeps.",
			Buckets:   prometheus.DefBuckets,
		}),
		persist: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "persist_duration_seconds",
			Help:      "Duration of snapshot writes to durable storage.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(m.operations, m.loansReversed, m.sweeps, m.sweepDuration, m.persist)
	return m
}

// ObserveOperation counts one engine operation; outcome is "ok" or a failure tag.
func (m *Metrics) ObserveOperation(operation, outcome string) {
	if m == nil {
		return
	}
	m.operations.WithLabelValues(operation, outcome).Inc()
}

// LoansReversed adds n reversed loans.
func (m *Metrics) LoansReversed(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.loansReversed.Add(float64(n))
}

// ObserveSweep records one sweep attempt.
func (m *Metrics) ObserveSweep(result string, d time.Duration) {
	if m == nil {
		return
	}
	m.sweeps.WithLabelValues(result).Inc()
	if result != SweepSkipped {
		m.sweepDuration.Observe(d.Seconds())
	}
}

// ObservePersist records one snapshot write.
func (m *Metrics) ObservePersist(d time.Duration) {
	if m == nil {
		return
	}
	m.persist.Observe(d.Seconds())
}
