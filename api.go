// SPDX-License-Identifier: MIT
// Package linsolve — public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication — each facade delegates to the canonical implementation.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed once, eagerly, before any working copy is made.
//   - All errors surface synchronously; there is nothing to retry — a
//     deterministic numeric failure repeats on the same inputs.
//
// AI-Hints:
//   - Prefer passing *Dense to unlock fast-paths in kernels (flat-slice loops).
//   - Use NewIdentity/NewZeros to build matrices with explicit shape and neutral elements.
//   - For A⁻¹·b with a single right-hand side, Solve(a, column) beats
//     forming the full inverse.

package linsolve

// ---------- Constructors & Utilities (O(1) alloc + O(rc) zeroing by runtime) ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
// Deterministic: single allocation; no hidden work.
// Complexity: O(r*c) zero-init by the runtime.
//
// Note: Returns (*Dense, error) to surface ErrInvalidDimensions.
func NewZeros(rows, cols int) (*Dense, error) {
	// Delegate directly to the strict constructor (single allocation).
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n²) zeroing (constructor) + O(n) diagonal writes.
//
// AI-Hints: Pass as the right-hand side of Solve to obtain the inverse.
func NewIdentity(n int) (*Dense, error) {
	// Allocate an n×n zero matrix via the constructor.
	I, err := NewDense(n, n) // O(1) alloc + O(n^2) zeroing
	if err != nil {
		return nil, err // propagate constructor error unchanged
	}
	// Set the diagonal deterministically in a single loop.
	for i := 0; i < n; i++ { // fixed i order guarantees reproducibility
		_ = I.Set(i, i, 1.0) // Set is bounds-safe; error is not expected after shape validation
	}

	// Return the identity matrix.
	return I, nil
}

// ---------- Solver surface (public facades → internal kernels) ----------

// Solve computes, for square A (n×n) and right-hand side B (n×p), the
// determinant of A and the matrix X (n×p) with A·X = B, via Gaussian
// elimination with partial pivoting.
//
// Behavior highlights:
//   - Value semantics: A and B are copied before any mutation; the
//     caller may reuse both and will get identical results on repeat
//     calls.
//   - B = I_n yields X = A⁻¹ (see Inverse).
//   - Determinant sign flips exactly once per pivot row swap.
//
// Inputs:
//   - a: square coefficient matrix (n×n).
//   - b: right-hand side (n×p), p ≥ 1.
//   - opts: numeric policy (WithPivotTolerance).
//
// Returns:
//   - float64: det(A).
//   - Matrix : X, same shape as B, freshly allocated *Dense.
//
// Errors:
//   - ErrNilMatrix         (nil operand).
//   - ErrNonSquare         (A not square).
//   - ErrDimensionMismatch (B rows ≠ A size).
//   - ErrSingular          (a pivot within tolerance of zero); no
//     partial solution is returned.
//
// Determinism:
//   - Fixed pivot scan and update orders; stable tie-breaking (lowest
//     row index wins).
//
// Complexity:
//   - Time O(n³ + n²·p), Space O(n² + n·p) for the working copies.
//
// AI-Hints:
//   - Validate shapes up front if you want to avoid error returns as a
//     control path; the solver checks eagerly either way.
func Solve(a, b Matrix, opts ...Option) (float64, Matrix, error) {
	// Delegate to the canonical kernel driver with the Solve tag.
	return solve(a, b, opSolve, opts...)
}

// Determinant computes det(A) for square A via forward elimination
// only (no right-hand side, no back-substitution of B).
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrSingular.
// Determinism: identical pivoting to Solve — both report the same
// determinant for the same A.
// Complexity: Time O(n³), Space O(n²) for the working copy.
//
// AI-Hints: cheaper than Solve when only singularity/volume is needed.
func Determinant(a Matrix, opts ...Option) (float64, error) {
	return determinant(a, opts...)
}

// Inverse computes A⁻¹ by solving A·X = I_n, reusing the elimination
// kernel with an identity right-hand side.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrSingular.
// Complexity: Time O(n³), Space O(n²).
//
// AI-Hints: if you only need A⁻¹·b, call Solve with b directly — it is
// the same cost for one elimination but avoids the n×n inverse.
func Inverse(a Matrix, opts ...Option) (Matrix, error) {
	// Validate square-ness first so the identity allocation below
	// cannot mask the real error for non-square input.
	if err := ValidateSquareNonNil(a); err != nil {
		return nil, opErrorf(opInverse, err)
	}
	// Build the neutral right-hand side.
	eye, err := NewIdentity(a.Rows())
	if err != nil {
		return nil, opErrorf(opInverse, err)
	}
	// Solve A·X = I; the determinant is discarded here.
	_, inv, err := solve(a, eye, opInverse, opts...)
	if err != nil {
		return nil, err // already wrapped with the Inverse tag
	}

	return inv, nil
}

// SolveRows is the nested-slice convenience wrapper: it ingests A and
// B as [][]float64 (validated for rectangularity and, by default,
// finiteness), solves, and exports X in the same container shape.
//
// Errors: everything FromRows and Solve can return
// (ErrInvalidDimensions, ErrRaggedRows, ErrNaNInf, ErrNonSquare,
// ErrDimensionMismatch, ErrSingular).
// Complexity: Time O(n³ + n²·p), Space O(n² + n·p).
//
// AI-Hints: prefer the Matrix-based Solve in hot paths; this wrapper
// re-validates and re-copies the nested slices on every call.
func SolveRows(a, b [][]float64, opts ...Option) (float64, [][]float64, error) {
	// Ingest both operands under the caller's numeric policy.
	am, err := FromRows(a, opts...)
	if err != nil {
		return 0, nil, opErrorf(opSolveRows, err)
	}
	bm, err := FromRows(b, opts...)
	if err != nil {
		return 0, nil, opErrorf(opSolveRows, err)
	}
	// Delegate to the canonical kernel driver.
	det, x, err := solve(am, bm, opSolveRows, opts...)
	if err != nil {
		return 0, nil, err // already wrapped with the SolveRows tag
	}

	// Export in the caller's container shape (fresh storage).
	return det, x.(*Dense).RowSlices(), nil
}

// ---------- Comparison ----------

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN != anything; +Inf equals +Inf; -Inf equals -Inf. Deterministic.
// Time: O(r*c). Space: O(1).
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol| (negative values are normalized).
//
// AI-Hints:
//   - AllClose with small atol/rtol is ideal for invariance checks such
//     as Mul(A, X) ≈ B in unit tests.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	ok, err := ewAllClose(a, b, rtol, atol)
	if err != nil {
		return false, opErrorf(opAllClose, err)
	}

	return ok, nil
}
