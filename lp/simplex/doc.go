// Package simplex implements lp.Solver on top of gonum's dense simplex
// (gonum.org/v1/gonum/optimize/convex/lp).
//
// The gonum routine wants standard form (A·x = b, x ≥ 0) with A of full
// row rank and no all-zero columns. This package:
//
//  1. adds one slack column per ≤ / ≥ row,
//  2. drops linearly dependent rows (a flow model has one redundant
//     conservation row per commodity), reporting an inconsistent dependent
//     row as infeasible,
//  3. calls lp.Simplex and maps ErrInfeasible / ErrUnbounded onto
//     statuses,
//  4. on any other gonum failure (a singular basis on a degenerate system,
//     a panic) retries once from an identity basis of artificial columns;
//     only when that fails too is the result an error wrapping
//     mcflow/lp.ErrSolver.
package simplex
