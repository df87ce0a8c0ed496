// SPDX-License-Identifier: MIT

// Package linsolve: Gaussian elimination with partial pivoting.
//
// Purpose:
//   - Implement the numerically sensitive core of the package: row
//     pivoting, in-place forward elimination, back-substitution and
//     determinant tracking in a single two-phase kernel.
//
// Notes:
//   - The kernel mutates its operands, so the public entry points
//     always hand it private *Dense working copies (value semantics:
//     caller inputs stay untouched and calls are repeatable).
//   - Singularity is detected via |pivot| ≤ tol BEFORE any division;
//     the kernel never propagates NaN/Inf from a degenerate pivot.
package linsolve

import (
	"fmt"
	"math"
)

// detOne is the multiplicative identity seeding the determinant
// accumulator and the row-swap sign factor.
const detOne = 1.0

// cloneToDense materializes m into a freshly allocated *Dense the
// elimination kernel may mutate freely.
// Implementation:
//   - Stage 1: Fast-path — *Dense clones its flat backing slice.
//   - Stage 2: Fallback — allocate and copy element-wise via At.
//
// Behavior highlights:
//   - Always returns storage independent of m (the value-semantics
//     boundary of the solver).
//
// Errors:
//   - Allocation errors from NewDense; At errors from exotic
//     implementations (both unexpected after shape validation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func cloneToDense(m Matrix) (*Dense, error) {
	// Fast-path: Dense.Clone already deep-copies the backing slice.
	if d, ok := m.(*Dense); ok {
		return d.Clone().(*Dense), nil
	}

	// Fallback: element-wise copy through the interface.
	rows, cols := m.Rows(), m.Cols()
	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	var i, j int // loop iterators
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out.data[i*cols+j] = v
		}
	}

	return out, nil
}

// swapRows exchanges rows i and k of d in place via the flat slice.
// Complexity: O(c) per call.
func (m *Dense) swapRows(i, k int) {
	baseI, baseK := i*m.c, k*m.c
	for j := 0; j < m.c; j++ {
		m.data[baseI+j], m.data[baseK+j] = m.data[baseK+j], m.data[baseI+j]
	}
}

// eliminate runs both phases of Gaussian elimination on the working
// copies a (n×n, mutated to upper-triangular then consumed) and b
// (n×p, mutated into the solution X), returning det(A). b may be nil
// for determinant-only runs; phase 2 then only accumulates the
// diagonal product.
//
// Implementation:
//   - Phase 1 (forward elimination, pivot columns i = 0..n-2):
//     1. Partial pivot scan of rows i..n-1 in column i with strict `>`
//     comparison, so ties resolve to the lowest row index.
//     2. On k ≠ i: swap rows i,k in BOTH a and b, negate the ±1 sign
//     factor (it composes multiplicatively with the diagonal
//     product assembled in phase 2).
//     3. Zero-pivot guard, then subtract t = a[j,i]/a[i,i] times row i
//     from each row j below — a-columns i+1..n-1 plus every column
//     of b. The pivot itself is NOT divided out; it stays in place
//     for the determinant.
//   - Phase 2 (back-substitution, rows i = n-1..0):
//     1. Subtract solved-row contributions a[i,j]·b[j,·] for j > i,
//     using the un-normalized upper-triangular values.
//     2. Multiply the determinant accumulator by a[i,i] (before it is
//     normalized away), guarding |a[i,i]| ≤ tol.
//     3. Normalize b row i by a[i,i], finishing X[i,·].
//
// Behavior highlights:
//   - Deterministic: fixed scan/update orders; identical inputs give
//     identical outputs, swaps included.
//   - The determinant is a plain local scalar — sign factor × diagonal
//     product — with no shared accumulator state.
//
// Inputs:
//   - a: n×n working copy (caller-owned scratch; destroyed).
//   - b: n×p working copy or nil (destroyed / becomes X).
//   - tol: singularity threshold, ≥ 0 (0 = exact-zero check).
//
// Returns:
//   - float64: det(A) = (±1 per row swap) × Π a[i,i].
//
// Errors:
//   - ErrSingular when any pivot satisfies |pivot| ≤ tol; the partial
//     state of a and b is meaningless and callers must not expose it.
//
// Determinism:
//   - Fixed i→j→k loop orders; tie-broken pivot selection.
//
// Complexity:
//   - Time O(n³ + n²·p), Space O(1) beyond the provided copies.
//
// AI-Hints:
//   - Feed b = I_n to obtain A⁻¹ in b; feed b = nil when only the
//     determinant is needed (skips all right-hand-side work).
func eliminate(a, b *Dense, tol float64) (float64, error) {
	n := a.r
	p := 0 // right-hand-side width (0 when determinant-only)
	if b != nil {
		p = b.c
	}

	var (
		i, j, k      int     // loop iterators
		baseI, baseJ int     // flat row offsets into a
		pivot, t     float64 // current pivot and elimination multiplier
		best, cand   float64 // |pivot| candidates during the scan
	)
	sign, det := detOne, detOne // ±1 row-swap factor and diagonal product

	// Phase 1 — forward elimination with partial pivoting.
	for i = 0; i < n-1; i++ {
		// 1. Pivot scan: largest |a[j,i]| over rows i..n-1, strict `>`
		//    keeps the lowest index on ties.
		k = i
		best = math.Abs(a.data[i*n+i])
		for j = i + 1; j < n; j++ {
			cand = math.Abs(a.data[j*n+i])
			if cand > best {
				best, k = cand, j
			}
		}

		// 2. Row swap mirrored into b; each swap flips the sign factor.
		if k != i {
			a.swapRows(i, k)
			if b != nil {
				b.swapRows(i, k)
			}
			sign = -sign
		}

		// 3. Guard the pivot before it becomes a divisor.
		baseI = i * n
		pivot = a.data[baseI+i]
		if math.Abs(pivot) <= tol {
			return 0, ErrSingular
		}

		// Eliminate every row below the pivot row.
		for j = i + 1; j < n; j++ {
			baseJ = j * n
			t = a.data[baseJ+i] / pivot
			if t == 0 {
				continue // row already clear in this column
			}
			// a-columns right of the pivot; the pivot column entry is
			// never read again, leaving it in place is free.
			for k = i + 1; k < n; k++ {
				a.data[baseJ+k] -= t * a.data[baseI+k]
			}
			// Every column of the right-hand side.
			if b != nil {
				for k = 0; k < p; k++ {
					b.data[j*p+k] -= t * b.data[i*p+k]
				}
			}
		}
	}

	// Phase 2 — back-substitution and determinant assembly.
	for i = n - 1; i >= 0; i-- {
		baseI = i * n
		// 1. Remove contributions of already-solved rows below, using
		//    the un-normalized upper-triangular a values.
		if b != nil {
			for j = i + 1; j < n; j++ {
				t = a.data[baseI+j]
				if t == 0 {
					continue
				}
				for k = 0; k < p; k++ {
					b.data[i*p+k] -= t * b.data[j*p+k]
				}
			}
		}

		// 2. Fold the diagonal entry into the determinant before
		//    normalizing it away. The guard also covers the last pivot
		//    a[n-1,n-1], which phase 1 never visits.
		pivot = a.data[baseI+i]
		if math.Abs(pivot) <= tol {
			return 0, ErrSingular
		}
		det *= pivot

		// 3. Normalize row i of b, finishing X[i,·].
		if b != nil {
			for k = 0; k < p; k++ {
				b.data[i*p+k] /= pivot
			}
		}
	}

	// Compose the diagonal product with the row-swap sign.
	return sign * det, nil
}

// solve validates, copies and runs the elimination kernel for the
// public Solve facade. Errors are wrapped with the caller's tag.
func solve(a, b Matrix, tag string, opts ...Option) (float64, Matrix, error) {
	// Eager validation: no allocation, no partial output on failure.
	if err := ValidateSolveCompatible(a, b); err != nil {
		return 0, nil, opErrorf(tag, err)
	}
	o := gatherOptions(opts...)

	// Private working copies — the caller's matrices stay untouched.
	wa, err := cloneToDense(a)
	if err != nil {
		return 0, nil, opErrorf(tag, err)
	}
	wb, err := cloneToDense(b)
	if err != nil {
		return 0, nil, opErrorf(tag, err)
	}

	// Run both elimination phases; wb becomes the solution X.
	det, err := eliminate(wa, wb, o.pivotTol)
	if err != nil {
		return 0, nil, opErrorf(tag, err)
	}

	return det, wb, nil
}

// determinant validates, copies and runs a forward-only elimination
// (nil right-hand side) for the public Determinant facade.
func determinant(a Matrix, opts ...Option) (float64, error) {
	if err := ValidateSquareNonNil(a); err != nil {
		return 0, opErrorf(opDeterminant, err)
	}
	o := gatherOptions(opts...)

	wa, err := cloneToDense(a)
	if err != nil {
		return 0, opErrorf(opDeterminant, err)
	}

	det, err := eliminate(wa, nil, o.pivotTol)
	if err != nil {
		return 0, opErrorf(opDeterminant, err)
	}

	return det, nil
}
