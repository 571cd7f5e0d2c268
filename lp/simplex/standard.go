// SPDX-License-Identifier: MIT
// File: standard.go
// Role: lp.Problem → dense standard form with full row rank.

package simplex

import (
	"errors"
	"math"

	"github.com/katalvlaran/mcflow/lp"
)

var (
	// errInconsistent marks a dependent row whose right-hand side disagrees
	// with the rows it depends on: A·x = b has no solution at all.
	errInconsistent = errors.New("simplex: inconsistent equality system")

	// errFreeDescent marks a column absent from every row with negative cost.
	errFreeDescent = errors.New("simplex: unconstrained column with negative cost")
)

// standardForm is min cᵀx s.t. A·x = b, x ≥ 0, row-major A.
// Columns absent from every kept row are fixed at zero and left out; cols
// maps each standard-form column back to its problem column.
type standardForm struct {
	rows       int
	a          []float64
	b          []float64
	c          []float64
	cols       []int
	structural int // number of problem columns (slacks excluded)
}

// width returns the number of standard-form columns.
func (sf *standardForm) width() int { return len(sf.cols) }

// expand scatters a standard-form point back onto the problem columns.
func (sf *standardForm) expand(x []float64) []float64 {
	out := make([]float64, sf.structural)
	for k, j := range sf.cols {
		if j < sf.structural {
			out[j] = x[k]
		}
	}

	return out
}

// toStandardForm densifies p, appends slack columns, removes dependent rows
// and drops columns that no kept row touches.
func toStandardForm(p *lp.Problem, rankTol float64) (*standardForm, error) {
	rows := p.Constraints()
	n := p.NumVars()

	slacks := 0
	for _, r := range rows {
		if r.Sense != lp.EQ {
			slacks++
		}
	}
	cols := n + slacks

	dense := make([][]float64, len(rows))
	rhs := make([]float64, len(rows))
	slack := n
	for i, r := range rows {
		row := make([]float64, cols)
		for _, t := range r.Terms {
			row[t.Var] += t.Coef
		}
		switch r.Sense {
		case lp.LE:
			row[slack] = 1
			slack++
		case lp.GE:
			row[slack] = -1
			slack++
		}
		dense[i] = row
		rhs[i] = r.RHS
	}

	keep, err := independentRows(dense, rhs, rankTol)
	if err != nil {
		return nil, err
	}

	cost := make([]float64, cols)
	copy(cost, p.Objective())

	sf := &standardForm{rows: len(keep), structural: n}
	for j := 0; j < cols; j++ {
		used := false
		for _, i := range keep {
			if dense[i][j] != 0 {
				used = true
				break
			}
		}
		if !used {
			if cost[j] < 0 {
				return nil, errFreeDescent
			}
			continue
		}
		sf.cols = append(sf.cols, j)
		sf.c = append(sf.c, cost[j])
	}
	sf.a = make([]float64, 0, len(keep)*len(sf.cols))
	sf.b = make([]float64, 0, len(keep))
	for _, i := range keep {
		for _, j := range sf.cols {
			sf.a = append(sf.a, dense[i][j])
		}
		sf.b = append(sf.b, rhs[i])
	}

	return sf, nil
}

// independentRows returns the indices of a maximal set of linearly
// independent rows, scanning in order (forward elimination on copies).
// A row that reduces to zero with a non-zero reduced right-hand side makes
// the system inconsistent.
func independentRows(a [][]float64, b []float64, tol float64) ([]int, error) {
	type pivot struct {
		row []float64
		rhs float64
		col int
	}
	var (
		basis []pivot
		keep  []int
	)
	for i := range a {
		r := append([]float64(nil), a[i]...)
		rhs := b[i]
		for _, pv := range basis {
			f := r[pv.col]
			if f == 0 {
				continue
			}
			for j := range r {
				r[j] -= f * pv.row[j]
			}
			rhs -= f * pv.rhs
		}

		col, best := -1, 0.0
		for j, v := range r {
			if abs := math.Abs(v); abs > best {
				col, best = j, abs
			}
		}
		if best <= tol {
			if math.Abs(rhs) > tol*(1+math.Abs(b[i])) {
				return nil, errInconsistent
			}
			continue
		}

		inv := 1 / r[col]
		for j := range r {
			r[j] *= inv
		}
		basis = append(basis, pivot{row: r, rhs: rhs * inv, col: col})
		keep = append(keep, i)
	}

	return keep, nil
}
