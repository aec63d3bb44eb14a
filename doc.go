// Package lvlsolve is a pure-Go linear-programming toolkit built around a
// revised-simplex engine with a factorized basis.
//
// 🚀 What is lvlsolve?
//
//	A deterministic, library-first LP solver core that brings together:
//		• lp/      — the bounded-variable LP container (compressed-column
//		             matrix, per-variable bounds, objective sense & offset)
//		             with strict validation and a general→standard-form
//		             (Ax = b, x ≥ 0) converter
//		• simplex/ — primal and dual revised-simplex drivers over a
//		             factorized basis (LU with rank-one pivot updates),
//		             Devex / dual steepest-edge pricing, Harris two-pass
//		             ratio tests, bounded cost perturbation, warm/hot
//		             starts, and iteration/time/objective-bound limits
//
// ✨ Why choose lvlsolve?
//
//   - Deterministic – seeded randomness only; identical inputs reproduce
//     identical pivot sequences and iteration counts
//   - Honest statuses – Optimal, Infeasible and Unbounded are certified;
//     limits are warnings carrying partial state, never silent failures
//   - Pure Go – the linear algebra runs on gonum, no cgo, no external
//     solver binaries
//   - Diagnosable – per-solve statistics (factorization counts, work-vector
//     densities) and infeasibility/complementarity measures come back as
//     data, not logs
//
// Out of scope by design: file-format parsing, interior-point methods,
// presolve/postsolve reductions and integer (branch-and-bound) solving.
// Those live in collaborating layers; this module is the pivoting heart.
//
//	go get github.com/katalvlaran/lvlsolve
package lvlsolve
