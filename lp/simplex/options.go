// SPDX-License-Identifier: MIT

package simplex

import "fmt"

const (
	// DefaultTolerance is the reduced-cost tolerance handed to gonum.
	DefaultTolerance = 1e-10

	// DefaultRankTolerance decides when an eliminated row counts as zero.
	DefaultRankTolerance = 1e-9
)

// Option customizes a Solver.
type Option func(*Solver)

// WithTolerance sets the simplex optimality tolerance. Panics on tol ≤ 0.
func WithTolerance(tol float64) Option {
	if !(tol > 0) {
		panic(fmt.Sprintf("simplex: WithTolerance(%g)", tol))
	}
	return func(s *Solver) { s.tol = tol }
}

// WithRankTolerance sets the row-elimination tolerance. Panics on tol ≤ 0.
func WithRankTolerance(tol float64) Option {
	if !(tol > 0) {
		panic(fmt.Sprintf("simplex: WithRankTolerance(%g)", tol))
	}
	return func(s *Solver) { s.rankTol = tol }
}

// WithArtificialStart makes every solve start from an identity basis of
// artificial columns instead of gonum's own initial basis. Without it the
// artificial start is only the fallback after gonum fails.
func WithArtificialStart() Option {
	return func(s *Solver) { s.artificial = true }
}
