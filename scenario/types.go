// SPDX-License-Identifier: MIT

package scenario

import (
	"errors"
	"time"

	"github.com/katalvlaran/mcflow/commodity"
	"github.com/katalvlaran/mcflow/core"
	"github.com/katalvlaran/mcflow/flow"
	"github.com/katalvlaran/mcflow/lp"
)

// ErrSolverFailure is wrapped by every error caused by the solver rather
// than by the input. It names the failing scenario.
var ErrSolverFailure = errors.New("scenario: solver failure")

// ErrExtraction is wrapped when a verified optimum cannot be turned into a
// Result (flows or routes).
var ErrExtraction = errors.New("scenario: extraction failure")

// Kind names a scenario.
type Kind string

const (
	// Baseline is the network as given.
	Baseline Kind = "baseline"
	// Augmented is the network plus the shortcut.
	Augmented Kind = "augmented"
)

// DefaultTolerance separates reported flows from numerical noise.
const DefaultTolerance = 1e-6

// Input is everything a comparison needs.
type Input struct {
	flow.Input

	// Shortcut is added in the augmented scenario only.
	Shortcut flow.Shortcut
}

// Result is the outcome of one scenario.
//
// Objective, LowerBound, Routes, Flows, Edges and Shortcut are set only
// when Status is lp.StatusOptimal.
type Result struct {
	Scenario   Kind
	Status     lp.Status
	Objective  float64
	LowerBound float64
	Routes     []flow.Route
	Stats      lp.Stats
	Flows      []flow.Flow
	Edges      []flow.EdgeFlow
	Shortcut   *flow.ShortcutUsage
	FreeEdges  []core.Edge
	Duration   time.Duration
}

// Optimal reports whether r carries numbers.
func (r *Result) Optimal() bool { return r != nil && r.Status == lp.StatusOptimal }

// Comparison is the outcome of a Run.
type Comparison struct {
	RunID     string
	Baseline  *Result
	Augmented *Result

	// Computable is true only when both scenarios are optimal.
	Computable bool

	// Reduction is baseline − augmented objective.
	Reduction float64

	// Percent is Reduction relative to the baseline, in percent.
	// A zero baseline yields 0.
	Percent float64

	// Failed lists the scenarios that ended without an optimum.
	Failed []Kind

	// Warnings are lint findings on the input; they never stop a run.
	Warnings []commodity.Warning
}
