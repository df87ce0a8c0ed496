// SPDX-License-Identifier: MIT

// Package linsolve: element-wise comparison kernel backing the
// AllClose facade and the package's own test suite.
package linsolve

import (
	"fmt"
	"math"
)

// ewAllClose reports whether |a[i,j]-b[i,j]| ≤ atol + rtol*|b[i,j]|
// holds element-wise for identically shaped a and b.
// Implementation:
//   - Stage 1: Validate non-nil operands and identical shapes;
//     normalize negative tolerances to their absolute values.
//   - Stage 2: Fast-path flat scan for *Dense×*Dense, otherwise a
//     fixed i→j interface walk.
//
// Behavior highlights:
//   - NaN never compares close to anything (including NaN).
//   - Matching infinities (+Inf/+Inf, -Inf/-Inf) compare close.
//   - Short-circuits on the first violating element.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Determinism:
//   - Fixed traversal order; stable short-circuit position.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func ewAllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	// Validate both operands and their shapes.
	if err := ValidateNotNil(a); err != nil {
		return false, err
	}
	if err := ValidateNotNil(b); err != nil {
		return false, err
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false, ErrDimensionMismatch
	}
	// Tolerances are used as magnitudes.
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	rows, cols := a.Rows(), a.Cols()
	var (
		i, j   int     // loop iterators
		av, bv float64 // element temporaries
	)

	// closeAt applies the tolerance policy to one element pair.
	closeAt := func(av, bv float64) bool {
		if math.IsNaN(av) || math.IsNaN(bv) {
			return false // NaN is never close
		}
		if math.IsInf(av, 0) || math.IsInf(bv, 0) {
			return av == bv // only matching infinities agree
		}
		return math.Abs(av-bv) <= atol+rtol*math.Abs(bv)
	}

	// Fast-path: both *Dense → single flat scan.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			n := rows * cols
			for idx := 0; idx < n; idx++ {
				if !closeAt(da.data[idx], db.data[idx]) {
					return false, nil
				}
			}
			return true, nil
		}
	}

	// Fallback: generic interface walk.
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			av, err = a.At(i, j)
			if err != nil {
				return false, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			bv, err = b.At(i, j)
			if err != nil {
				return false, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			if !closeAt(av, bv) {
				return false, nil
			}
		}
	}

	return true, nil
}
