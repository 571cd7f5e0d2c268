// Package lp describes linear programs and the solver capability that
// consumes them.
//
// A Problem is always in "non-negative" form:
//
//	minimize    Σ c_j · x_j
//	subject to  Σ a_ij · x_j  (= | ≤ | ≥)  b_i     for every row i
//	            x_j ≥ 0                            for every column j
//
// Rows are sparse (a list of Terms); only the terms a model actually needs
// are ever constructed. Problem never solves anything.
//
// Solver is the injected capability, Solve(ctx, *Problem) (*Solution, error):
//
//   - error ⇒ the solver itself failed (unavailable, numeric breakdown);
//     the error wraps ErrSolver.
//   - Solution.Status == StatusOptimal ⇒ Objective and Value are usable.
//   - StatusInfeasible / StatusUnbounded ⇒ proven outcomes; Value reports
//     nothing and Objective is not meaningful.
//
// WriteLP renders a Problem in CPLEX LP text format for inspection or for
// feeding an external solver.
package lp
