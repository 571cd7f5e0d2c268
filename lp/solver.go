// SPDX-License-Identifier: MIT
// File: solver.go
// Role: Solver capability, solve status and solution values.

package lp

import "context"

// Status is the outcome of a solve.
type Status int

const (
	// StatusError: the solver failed; no outcome is known.
	StatusError Status = iota
	// StatusOptimal: an optimal point was found.
	StatusOptimal
	// StatusInfeasible: no point satisfies the constraints.
	StatusInfeasible
	// StatusUnbounded: the objective decreases without bound.
	StatusUnbounded
)

func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusInfeasible:
		return "infeasible"
	case StatusUnbounded:
		return "unbounded"
	default:
		return "error"
	}
}

// MarshalText renders the status name, so encoders print "optimal" not 1.
func (s Status) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Solver solves a Problem.
//
// Implementations return a non-nil error (wrapping ErrSolver) only when they
// could not reach a verdict; proven infeasibility or unboundedness is a
// Solution with the matching Status and a nil error.
type Solver interface {
	Solve(ctx context.Context, p *Problem) (*Solution, error)
}

// SolverFunc adapts a function to the Solver interface.
type SolverFunc func(ctx context.Context, p *Problem) (*Solution, error)

// Solve calls f(ctx, p).
func (f SolverFunc) Solve(ctx context.Context, p *Problem) (*Solution, error) { return f(ctx, p) }

// Solution is the result of a solve.
type Solution struct {
	Status    Status
	objective float64
	values    []float64
}

// Optimal builds an optimal Solution; values are copied.
func Optimal(objective float64, values []float64) *Solution {
	return &Solution{
		Status:    StatusOptimal,
		objective: objective,
		values:    append([]float64(nil), values...),
	}
}

// Infeasible builds an infeasible Solution.
func Infeasible() *Solution { return &Solution{Status: StatusInfeasible} }

// Unbounded builds an unbounded Solution.
func Unbounded() *Solution { return &Solution{Status: StatusUnbounded} }

// IsOptimal reports whether values may be read.
func (s *Solution) IsOptimal() bool { return s != nil && s.Status == StatusOptimal }

// Objective returns the optimal objective value.
func (s *Solution) Objective() (float64, error) {
	if !s.IsOptimal() {
		return 0, ErrNotOptimal
	}

	return s.objective, nil
}

// Value returns the optimal value of v.
func (s *Solution) Value(v VarID) (float64, error) {
	if !s.IsOptimal() {
		return 0, ErrNotOptimal
	}
	if v < 0 || int(v) >= len(s.values) {
		return 0, ErrUnknownVar
	}

	return s.values[v], nil
}

// Values returns a copy of all optimal values in column order.
func (s *Solution) Values() ([]float64, error) {
	if !s.IsOptimal() {
		return nil, ErrNotOptimal
	}

	return append([]float64(nil), s.values...), nil
}
