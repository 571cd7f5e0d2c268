// Package scenario runs the baseline and augmented flow scenarios and
// compares them.
//
// A Runner builds both models first, so every configuration error is
// reported before any solver call. Each scenario then goes through
// solve → verify → extract on its own model; nothing is shared between the
// two but the immutable input snapshot.
//
// Outcomes are split in two kinds:
//
//   - A proven non-optimal status (infeasible, unbounded) is a result: it
//     is reported in the scenario's Result, the other scenario is still
//     reported, and the Comparison is marked not computable.
//   - A solver failure (error from the solver, error status, or an
//     "optimal" answer that fails verification) is an error matching
//     ErrSolverFailure. No partial numbers are returned.
//   - A verified optimum whose flows or routes cannot be read back is an
//     error matching ErrExtraction.
package scenario
