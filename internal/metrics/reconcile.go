// Package metrics exposes reconciliation counters for Prometheus.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	OutcomeCorrected        = "corrected"
	OutcomeUnchanged        = "unchanged"
	OutcomeInvalidWindow    = "invalid_window"
	OutcomePersistenceError = "persistence_error"
)

// Reconcile holds the reconciliation instruments. A nil *Reconcile is a no-op.
type Reconcile struct {
	records       *prometheus.CounterVec
	batchDuration prometheus.Histogram
}

// NewReconcile registers the instruments on reg. A nil reg returns nil.
func NewReconcile(reg prometheus.Registerer) (*Reconcile, error) {
	if reg == nil {
		return nil, nil
	}

	m := &Reconcile{
		records: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "hackathon_reconcile_total",
			Help: "Hackathon phase reconciliations by outcome.",
		}, []string{"outcome"}),
		batchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "hackathon_reconcile_batch_duration_seconds",
			Help:    "Duration of batch reconciliation runs in seconds.",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30},
		}),
	}

	for _, c := range []prometheus.Collector{m.records, m.batchDuration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (m *Reconcile) RecordOutcome(outcome string) {
	if m == nil {
		return
	}
	m.records.WithLabelValues(outcome).Inc()
}

func (m *Reconcile) RecordBatch(d time.Duration) {
	if m == nil {
		return
	}
	m.batchDuration.Observe(d.Seconds())
}
