// SPDX-License-Identifier: MIT

package lp

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateName indicates a variable or constraint name already in use.
	ErrDuplicateName = errors.New("lp: duplicate name")

	// ErrEmptyName indicates an empty variable or constraint name.
	ErrEmptyName = errors.New("lp: empty name")

	// ErrUnknownVar indicates a term referencing a variable outside the problem.
	ErrUnknownVar = errors.New("lp: unknown variable")

	// ErrBadCoefficient indicates a NaN or infinite coefficient or right-hand side.
	ErrBadCoefficient = errors.New("lp: bad coefficient")

	// ErrSolver is wrapped by every solver failure that is not a proven
	// infeasible or unbounded outcome.
	ErrSolver = errors.New("lp: solver failure")

	// ErrNotOptimal is returned by Solution accessors when no usable values exist.
	ErrNotOptimal = errors.New("lp: solution is not optimal")
)

// ViolationError reports a row or bound violated by a candidate point.
type ViolationError struct {
	Name     string  // constraint or variable name
	Residual float64 // signed amount by which the row is violated
}

func (e ViolationError) Error() string {
	return fmt.Sprintf("lp: %q violated by %g", e.Name, e.Residual)
}
