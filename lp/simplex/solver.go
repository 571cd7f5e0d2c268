// SPDX-License-Identifier: MIT
// File: solver.go
// Role: gonum-backed lp.Solver.

package simplex

import (
	"context"
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	golp "gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/katalvlaran/mcflow/lp"
)

// Solver solves lp.Problems with gonum's simplex. The zero value is not
// usable; construct with New. A Solver holds no per-solve state and is safe
// for concurrent use.
type Solver struct {
	tol        float64
	rankTol    float64
	artificial bool
}

var _ lp.Solver = (*Solver)(nil)

// New returns a Solver with default tolerances.
func New(opts ...Option) *Solver {
	s := &Solver{tol: DefaultTolerance, rankTol: DefaultRankTolerance}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Solve implements lp.Solver.
//
// ctx is checked before the (non-interruptible) gonum call only.
func (s *Solver) Solve(ctx context.Context, p *lp.Problem) (*lp.Solution, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", lp.ErrSolver, err)
	}

	sf, err := toStandardForm(p, s.rankTol)
	switch {
	case errors.Is(err, errInconsistent):
		return lp.Infeasible(), nil
	case errors.Is(err, errFreeDescent):
		return lp.Unbounded(), nil
	case err != nil:
		return nil, fmt.Errorf("%w: %w", lp.ErrSolver, err)
	}

	// Every remaining column has non-negative cost when no row survives.
	if sf.rows == 0 {
		return lp.Optimal(0, make([]float64, sf.structural)), nil
	}

	opt, x, err := s.start(sf)
	switch {
	case err == nil:
	case errors.Is(err, golp.ErrInfeasible):
		return lp.Infeasible(), nil
	case errors.Is(err, golp.ErrUnbounded):
		return lp.Unbounded(), nil
	default:
		return nil, fmt.Errorf("%w: %w", lp.ErrSolver, err)
	}

	// Round-off scales with the right-hand side.
	clean := s.tol
	for _, b := range sf.b {
		clean = math.Max(clean, s.tol*math.Abs(b))
	}
	values := sf.expand(x)
	for j, v := range values {
		if math.Abs(v) <= clean {
			values[j] = 0
		}
	}

	return lp.Optimal(opt, values), nil
}

// start runs gonum from its own initial basis and, when that fails for a
// reason other than infeasibility or unboundedness (typically a singular
// basis on a degenerate system), once more from the artificial basis.
func (s *Solver) start(sf *standardForm) (float64, []float64, error) {
	if s.artificial {
		return s.artificialStart(sf)
	}
	opt, x, err := s.simplex(sf)
	if err == nil || errors.Is(err, golp.ErrInfeasible) || errors.Is(err, golp.ErrUnbounded) {
		return opt, x, err
	}
	opt, x, retryErr := s.artificialStart(sf)
	if retryErr != nil && !errors.Is(retryErr, golp.ErrInfeasible) && !errors.Is(retryErr, golp.ErrUnbounded) {
		return opt, x, fmt.Errorf("%w (artificial start: %v)", err, retryErr)
	}

	return opt, x, retryErr
}

// simplex runs gonum, turning its dimension panics into errors.
func (s *Solver) simplex(sf *standardForm) (opt float64, x []float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("simplex: gonum panic: %v", r)
		}
	}()
	a := mat.NewDense(sf.rows, sf.width(), sf.a)

	return golp.Simplex(sf.c, a, sf.b, s.tol, nil)
}
