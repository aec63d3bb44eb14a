// Package simplex implements the revised-simplex engine of lvlsolve: a
// primal and a dual bounded-variable simplex over a factorized basis,
// with interchangeable pricing strategies, Harris two-pass ratio tests,
// bounded cost shifting against degeneracy, warm/hot starts, and strict
// iteration, time and objective-bound budgets.
//
// # Unified view
//
// A model lp.Lp with n columns and m rows is solved through the
// homogeneous system
//
//	A·x − s = 0,   colLower ≤ x ≤ colUpper,   rowLower ≤ s ≤ rowUpper,
//
// so variables 0..n-1 are structural and n..n+m-1 are logical (one slack
// per row, matrix column −eᵢ). The basis of all logicals is −I and is
// always nonsingular, giving every solve a valid starting point. The
// engine always minimizes internally; a Maximize model has its costs
// negated on the way in and its objective and duals mapped back on the
// way out.
//
// # Algorithm outline
//
//  1. Install a basis: the caller-supplied warm-start basis when present
//     and usable, the all-logical basis otherwise. Factorize it (LU via
//     gonum/mat, rank-one updated after each pivot, refactorized on a
//     fixed interval or on a numerical event).
//  2. Dispatch once per solve on Options.Strategy: Primal runs the
//     two-phase primal driver; DualPlain/DualTasks/DualMulti run the dual
//     driver (Tasks/Multi fan the pricing scans over a bounded worker
//     pool); Choose picks the dual driver.
//  3. Each iteration prices one candidate (edge-weighted reduced costs in
//     the primal, edge-weighted primal infeasibilities in the dual), runs
//     the two-pass ratio test, and commits exactly one pivot (or bound
//     flip) through the factorization. Iteration, wall-clock and
//     objective-bound limits are polled once per iteration, never
//     mid-pivot.
//  4. Terminal statuses: Optimal, Infeasible and Unbounded are certified;
//     IterationLimit, TimeLimit and ObjectiveBound return partial state a
//     caller may resume from; NumericalFailure reports an instability
//     that survived the retry budget.
//
// # Determinism
//
// Every choice in the engine is deterministic: randomized cost shifts
// draw from a seeded generator (Options.Seed), parallel pricing reduces
// worker results in a fixed order with ties broken by lowest variable
// index, and re-running an identical model with an identical basis and
// options reproduces the exact pivot sequence and iteration count.
//
// # Errors vs statuses
//
// Run returns an error only for caller contract violations (malformed
// model or basis, invalid options) and for a basis that remains singular
// after logical repair. Everything the solve itself discovers — including
// limits — is a Status, not an error.
package simplex
