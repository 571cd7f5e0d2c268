// Package metrics defines Prometheus metrics for scenario runs.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups the collectors updated by scenario.Runner.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	SolvesTotal   *prometheus.CounterVec
	SolveDuration *prometheus.HistogramVec
	ModelSize     *prometheus.GaugeVec
	Objective     *prometheus.GaugeVec
	Reduction     prometheus.Gauge
	ErrorsTotal   *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
// A nil reg leaves them unregistered.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		SolvesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mcflow_solves_total",
				Help: "Total LP solves by scenario and status",
			},
			[]string{"scenario", "status"},
		),
		SolveDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "mcflow_solve_duration_seconds",
				Help:    "LP solve duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"scenario"},
		),
		ModelSize: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "mcflow_model_size",
				Help: "Size of the last built LP by scenario and dimension",
			},
			[]string{"scenario", "dimension"},
		),
		Objective: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "mcflow_objective",
				Help: "Last optimal objective by scenario",
			},
			[]string{"scenario"},
		),
		Reduction: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "mcflow_reduction_percent",
				Help: "Last computed objective reduction in percent",
			},
		),
		ErrorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mcflow_errors_total",
				Help: "Total errors by type",
			},
			[]string{"type"},
		),
	}
	if reg != nil {
		reg.MustRegister(
			m.SolvesTotal, m.SolveDuration, m.ModelSize,
			m.Objective, m.Reduction, m.ErrorsTotal,
		)
	}

	return m
}

// ObserveSolve records one finished solve.
func (m *Metrics) ObserveSolve(scenario, status string, d time.Duration) {
	if m == nil {
		return
	}
	m.SolvesTotal.WithLabelValues(scenario, status).Inc()
	m.SolveDuration.WithLabelValues(scenario).Observe(d.Seconds())
}

// ObserveModel records the dimensions of a built model.
func (m *Metrics) ObserveModel(scenario string, rows, cols, nonzeros int) {
	if m == nil {
		return
	}
	m.ModelSize.WithLabelValues(scenario, "rows").Set(float64(rows))
	m.ModelSize.WithLabelValues(scenario, "cols").Set(float64(cols))
	m.ModelSize.WithLabelValues(scenario, "nonzeros").Set(float64(nonzeros))
}

// ObserveObjective records an optimal objective.
func (m *Metrics) ObserveObjective(scenario string, v float64) {
	if m == nil {
		return
	}
	m.Objective.WithLabelValues(scenario).Set(v)
}

// ObserveReduction records a computed reduction percentage.
func (m *Metrics) ObserveReduction(percent float64) {
	if m == nil {
		return
	}
	m.Reduction.Set(percent)
}

// ObserveError counts an error of the given type ("config", "solver",
// "verify", "extract").
func (m *Metrics) ObserveError(kind string) {
	if m == nil {
		return
	}
	m.ErrorsTotal.WithLabelValues(kind).Inc()
}
