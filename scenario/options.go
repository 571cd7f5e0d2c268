// SPDX-License-Identifier: MIT

package scenario

import (
	"io"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mcflow/lp"
	"github.com/katalvlaran/mcflow/metrics"
)

// Option customizes a Runner.
type Option func(*Runner)

// WithSolver sets the LP solver. Panics on nil.
func WithSolver(s lp.Solver) Option {
	if s == nil {
		panic("scenario: WithSolver(nil)")
	}
	return func(r *Runner) { r.solver = s }
}

// WithTolerance sets the flow reporting and verification tolerance.
// Panics unless tol is positive and finite.
func WithTolerance(tol float64) Option {
	if !(tol > 0) || math.IsInf(tol, 0) {
		panic("scenario: tolerance must be positive")
	}
	return func(r *Runner) { r.tol = tol }
}

// WithLogger sets the logger. Panics on nil.
func WithLogger(l *logrus.Logger) Option {
	if l == nil {
		panic("scenario: WithLogger(nil)")
	}
	return func(r *Runner) { r.log = l }
}

// WithParallel solves both scenarios concurrently.
func WithParallel(on bool) Option {
	return func(r *Runner) { r.parallel = on }
}

// WithMetrics records solves on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(r *Runner) { r.metrics = m }
}

// WithRunID overrides run ID generation (tests, replay).
func WithRunID(gen func() string) Option {
	if gen == nil {
		panic("scenario: WithRunID(nil)")
	}
	return func(r *Runner) { r.newID = gen }
}

func discardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}
