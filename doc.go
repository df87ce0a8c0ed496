// SPDX-License-Identifier: MIT

// Package linsolve provides reference-quality dense linear-algebra
// primitives built around Gaussian elimination with partial pivoting.
//
// The package offers:
//
//   - Dense — a row-major float64 matrix behind a small Matrix
//     interface (Rows/Cols/At/Set/Clone), with validated
//     constructors (NewZeros, NewIdentity, FromRows).
//   - Solve — partial-pivot Gaussian elimination returning the
//     determinant of A and the solution X of A·X = B in one pass.
//     Passing the identity as B yields A⁻¹ (see Inverse).
//   - Mul / MatVec / Transpose — dimension-checked dense kernels
//     used by the solver's contract and by property tests.
//
// Design principles, shared across the package:
//
//   - Value semantics: Solve and friends operate on private working
//     copies; caller-owned matrices are never mutated, so repeated
//     calls on the same inputs return the same results.
//   - Fail-fast validation: every kernel validates shapes eagerly and
//     returns sentinel errors (ErrDimensionMismatch, ErrNonSquare,
//     ErrSingular, ...) matched via errors.Is. No partial output.
//   - Determinism: fixed loop orders, no global state, no implicit
//     randomness. Singularity is detected with an explicit pivot
//     tolerance (WithPivotTolerance) instead of a fragile exact-zero
//     division.
//   - Pure Go — no cgo, no hidden deps.
//
// Concurrency: all routines are purely computational. Each call
// allocates its own working storage, so concurrent calls are safe as
// long as shared inputs are not mutated mid-call by another
// goroutine. No operation blocks or suspends.
//
// This is a reference implementation: loops are naive by design;
// sparse, blocked, and parallel variants are out of scope.
package linsolve
