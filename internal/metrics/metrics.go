// Package metrics exposes Prometheus instrumentation for the settlement
// sweep and the HTTP API.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SweepRuns counts completed sweep runs by terminal status.
	SweepRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "apex",
		Subsystem: "settlement",
		Name:      "sweep_runs_total",
		Help:      "Completed settlement sweep runs by status.",
	}, []string{"status"})

	// SweepOutcomes counts per-investment outcomes across sweep runs.
	SweepOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "apex",
		Subsystem: "settlement",
		Name:      "sweep_outcomes_total",
		Help:      "Per-investment sweep outcomes (accrued, backfilled, settled, skipped).",
	}, []string{"outcome"})

	// SettledCents totals the cents credited to user balances by settlement.
	SettledCents = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "apex",
		Subsystem: "settlement",
		Name:      "settled_cents_total",
		Help:      "Total cents credited to user balances by settlements.",
	})
)
