// SPDX-License-Identifier: MIT
// File: artificial.go
// Role: fallback start for degenerate systems gonum cannot factor.
//
// gonum picks its initial basis among the columns of A and, when that basis
// is not feasible, runs its own phase 1 from it. On highly degenerate
// network LPs both steps can land on a singular basis even though an
// optimum exists. The fallback appends one artificial column per row (rows
// with b < 0 are negated first), so the identity is a feasible, perfectly
// conditioned starting basis, and prices the artificials with a penalty
// above any dual the original rows can carry.

package simplex

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	golp "gonum.org/v1/gonum/optimize/convex/lp"
)

const (
	// artificialPenalty multiplies 1 + Σ|c_j| to price an artificial unit.
	artificialPenalty = 10.0

	// penaltyRetries is how often the penalty grows by penaltyGrowth before
	// leftover artificial mass is read as infeasibility.
	penaltyRetries = 2
	penaltyGrowth  = 1e3
)

// artificialStart solves sf from the identity basis of artificial columns.
//
// Returns golp.ErrInfeasible when the artificials cannot be driven to zero
// under the largest penalty tried.
func (s *Solver) artificialStart(sf *standardForm) (float64, []float64, error) {
	n := sf.width()
	var scale, cost float64
	for _, b := range sf.b {
		scale = math.Max(scale, math.Abs(b))
	}
	for _, c := range sf.c {
		cost += math.Abs(c)
	}
	limit := s.rankTol * math.Max(1, scale)

	penalty := artificialPenalty * (1 + cost)
	for attempt := 0; attempt <= penaltyRetries; attempt++ {
		x, err := s.withArtificials(sf, penalty)
		if err != nil {
			return math.NaN(), nil, err
		}
		if floats.Sum(x[n:]) <= limit {
			structural := x[:n:n]

			return floats.Dot(sf.c, structural), structural, nil
		}
		penalty *= penaltyGrowth
	}

	return math.NaN(), nil, golp.ErrInfeasible
}

// withArtificials solves min cᵀx + penalty·Σa s.t. ±A·x + a = |b|, starting
// from the artificial basis.
func (s *Solver) withArtificials(sf *standardForm, penalty float64) (x []float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("simplex: gonum panic: %v", r)
		}
	}()
	m, n := sf.rows, sf.width()
	width := n + m

	a := mat.NewDense(m, width, nil)
	b := make([]float64, m)
	basis := make([]int, m)
	for i := 0; i < m; i++ {
		sign := 1.0
		if sf.b[i] < 0 {
			sign = -1
		}
		for j := 0; j < n; j++ {
			if v := sf.a[i*n+j]; v != 0 {
				a.Set(i, j, sign*v)
			}
		}
		a.Set(i, n+i, 1)
		b[i] = sign * sf.b[i]
		basis[i] = n + i
	}
	c := make([]float64, width)
	copy(c, sf.c)
	for j := n; j < width; j++ {
		c[j] = penalty
	}

	_, x, err = golp.Simplex(c, a, b, s.tol, basis)

	return x, err
}
