// SPDX-License-Identifier: MIT
// File: problem.go
// Role: LP problem model: variables, objective, sparse constraint rows.
// Determinism:
//   - Variables and constraints keep insertion order; VarID is the column index.

package lp

import (
	"fmt"
	"math"
)

// VarID is the column index of a variable inside its Problem.
type VarID int

// Sense is the relation of a constraint row to its right-hand side.
type Sense int

const (
	// EQ is Σ a·x = b.
	EQ Sense = iota
	// LE is Σ a·x ≤ b.
	LE
	// GE is Σ a·x ≥ b.
	GE
)

// String renders the sense in LP-format notation.
func (s Sense) String() string {
	switch s {
	case LE:
		return "<="
	case GE:
		return ">="
	default:
		return "="
	}
}

// Term is one coefficient of a sparse row.
type Term struct {
	Var  VarID
	Coef float64
}

// Constraint is a named sparse row.
type Constraint struct {
	Name  string
	Terms []Term
	Sense Sense
	RHS   float64
}

// Problem is a minimization LP over non-negative continuous variables.
type Problem struct {
	name        string
	varNames    []string
	varIndex    map[string]VarID
	objective   []float64
	constraints []Constraint
	rowIndex    map[string]int
}

// NewProblem returns an empty problem.
func NewProblem(name string) *Problem {
	return &Problem{
		name:     name,
		varIndex: make(map[string]VarID),
		rowIndex: make(map[string]int),
	}
}

// Name returns the problem name.
func (p *Problem) Name() string { return p.name }

// AddVar appends a non-negative continuous variable with zero objective
// coefficient and returns its column index.
func (p *Problem) AddVar(name string) (VarID, error) {
	if name == "" {
		return 0, ErrEmptyName
	}
	if _, ok := p.varIndex[name]; ok {
		return 0, fmt.Errorf("%w: variable %q", ErrDuplicateName, name)
	}
	id := VarID(len(p.varNames))
	p.varNames = append(p.varNames, name)
	p.varIndex[name] = id
	p.objective = append(p.objective, 0)

	return id, nil
}

// SetObjective sets the cost coefficient of v.
func (p *Problem) SetObjective(v VarID, coef float64) error {
	if !p.valid(v) {
		return fmt.Errorf("%w: %d", ErrUnknownVar, v)
	}
	if math.IsNaN(coef) || math.IsInf(coef, 0) {
		return fmt.Errorf("%w: objective of %q = %g", ErrBadCoefficient, p.varNames[v], coef)
	}
	p.objective[v] = coef

	return nil
}

// AddConstraint appends a row. Terms are copied; repeated variables are
// allowed and summed by consumers.
func (p *Problem) AddConstraint(c Constraint) error {
	if c.Name == "" {
		return ErrEmptyName
	}
	if _, ok := p.rowIndex[c.Name]; ok {
		return fmt.Errorf("%w: constraint %q", ErrDuplicateName, c.Name)
	}
	if math.IsNaN(c.RHS) || math.IsInf(c.RHS, 0) {
		return fmt.Errorf("%w: rhs of %q = %g", ErrBadCoefficient, c.Name, c.RHS)
	}
	for _, t := range c.Terms {
		if !p.valid(t.Var) {
			return fmt.Errorf("%w: %d in %q", ErrUnknownVar, t.Var, c.Name)
		}
		if math.IsNaN(t.Coef) || math.IsInf(t.Coef, 0) {
			return fmt.Errorf("%w: %q in %q = %g", ErrBadCoefficient, p.varNames[t.Var], c.Name, t.Coef)
		}
	}
	c.Terms = append([]Term(nil), c.Terms...)
	p.rowIndex[c.Name] = len(p.constraints)
	p.constraints = append(p.constraints, c)

	return nil
}

func (p *Problem) valid(v VarID) bool { return v >= 0 && int(v) < len(p.varNames) }

// NumVars returns the number of columns.
func (p *Problem) NumVars() int { return len(p.varNames) }

// NumConstraints returns the number of rows.
func (p *Problem) NumConstraints() int { return len(p.constraints) }

// VarName returns the name of v ("" if out of range).
func (p *Problem) VarName(v VarID) string {
	if !p.valid(v) {
		return ""
	}

	return p.varNames[v]
}

// VarNames returns all variable names in column order.
func (p *Problem) VarNames() []string { return append([]string(nil), p.varNames...) }

// Lookup returns the variable with the given name.
func (p *Problem) Lookup(name string) (VarID, bool) {
	v, ok := p.varIndex[name]

	return v, ok
}

// Objective returns a copy of the dense cost vector.
func (p *Problem) Objective() []float64 { return append([]float64(nil), p.objective...) }

// Constraints returns a copy of all rows in insertion order.
func (p *Problem) Constraints() []Constraint {
	out := make([]Constraint, len(p.constraints))
	for i, c := range p.constraints {
		c.Terms = append([]Term(nil), c.Terms...)
		out[i] = c
	}

	return out
}

// Constraint returns the row with the given name.
func (p *Problem) Constraint(name string) (Constraint, bool) {
	i, ok := p.rowIndex[name]
	if !ok {
		return Constraint{}, false
	}
	c := p.constraints[i]
	c.Terms = append([]Term(nil), c.Terms...)

	return c, true
}

// Stats summarizes the problem size.
type Stats struct {
	Rows         int
	Cols         int
	NonZeros     int
	Equalities   int
	Inequalities int
}

// Stats counts rows, columns and structural nonzeros.
func (p *Problem) Stats() Stats {
	s := Stats{Rows: len(p.constraints), Cols: len(p.varNames)}
	for _, c := range p.constraints {
		s.NonZeros += len(c.Terms)
		if c.Sense == EQ {
			s.Equalities++
		} else {
			s.Inequalities++
		}
	}

	return s
}

// Evaluate returns cᵀx for a dense point x.
func (p *Problem) Evaluate(x []float64) float64 {
	var sum float64
	for j, c := range p.objective {
		if j < len(x) {
			sum += c * x[j]
		}
	}

	return sum
}

// Activity returns Σ a·x of row c at point x.
func Activity(c Constraint, x []float64) float64 {
	var sum float64
	for _, t := range c.Terms {
		if int(t.Var) < len(x) {
			sum += t.Coef * x[t.Var]
		}
	}

	return sum
}

// Check verifies that x satisfies every bound and row within tol.
// The first violation is returned as a ViolationError.
func (p *Problem) Check(x []float64, tol float64) error {
	if len(x) != len(p.varNames) {
		return fmt.Errorf("%w: point has %d values for %d variables", ErrUnknownVar, len(x), len(p.varNames))
	}
	for j, v := range x {
		if v < -tol {
			return ViolationError{Name: p.varNames[j], Residual: v}
		}
	}
	for _, c := range p.constraints {
		r := Activity(c, x) - c.RHS
		switch {
		case c.Sense == EQ && math.Abs(r) > tol,
			c.Sense == LE && r > tol,
			c.Sense == GE && r < -tol:
			return ViolationError{Name: c.Name, Residual: r}
		}
	}

	return nil
}
