// SPDX-License-Identifier: MIT
// Package linsolve_test: unit tests for the multiplication kernels
// (Mul, MatVec, Transpose) over both the fast and fallback paths.
package linsolve_test

import (
	"testing"

	"github.com/katalvlaran/linsolve"
)

func TestMul_IdentityNeutral(t *testing.T) {
	t.Parallel()

	// A × I = A for the reference 3×3 coefficient matrix
	A := NewFilledDense(t, 3, 3, []float64{
		2, 0, -1,
		0, 5, 6,
		0, -1, 1,
	})
	I := IdentityDense(t, 3)

	C, err := linsolve.Mul(A, I)
	if err != nil {
		t.Fatalf("Mul(A, I): %v", err)
	}
	CompareExact(t, [][]float64{{2, 0, -1}, {0, 5, 6}, {0, -1, 1}}, C)
}

// TestMul_NonSymmetricB pins the indexing convention: the inner sum
// reads B[k,j], so a non-symmetric B distinguishes C = A·B from the
// transposed variant A·Bᵀ.
func TestMul_NonSymmetricB(t *testing.T) {
	t.Parallel()

	A := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	B := NewFilledDense(t, 2, 2, []float64{5, 6, 7, 8})

	C, err := linsolve.Mul(A, B)
	if err != nil {
		t.Fatalf("Mul: %v", err)
	}
	// standard semantics; the transposed indexing would give [[17,23],[39,53]]
	CompareExact(t, [][]float64{{19, 22}, {43, 50}}, C)
}

func TestMul_RectangularShapes(t *testing.T) {
	t.Parallel()

	// (2×3)·(3×1) → 2×1
	A := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	B := NewFilledDense(t, 3, 1, []float64{7, 8, 9})

	C, err := linsolve.Mul(A, B)
	if err != nil {
		t.Fatalf("Mul: %v", err)
	}
	CompareExact(t, [][]float64{{50}, {122}}, C)
}

func TestMul_DimensionMismatch(t *testing.T) {
	t.Parallel()

	// 2×3 times 2×2: inner dimensions disagree
	A := MustDense(t, 2, 3)
	B := MustDense(t, 2, 2)
	_, err := linsolve.Mul(A, B)
	AssertErrorIs(t, err, linsolve.ErrDimensionMismatch)

	_, err = linsolve.Mul(nil, B)
	AssertErrorIs(t, err, linsolve.ErrNilMatrix)
}

// TestMul_FallbackMatchesFastPath hides the concrete type of one
// operand to force the interface path and compares against the
// flat-slice result.
func TestMul_FallbackMatchesFastPath(t *testing.T) {
	t.Parallel()

	A := RandFilledDense(t, 4, 3, 101)
	B := RandFilledDense(t, 3, 5, 202)

	fast, err := linsolve.Mul(A, B)
	if err != nil {
		t.Fatalf("Mul fast: %v", err)
	}
	slow, err := linsolve.Mul(hide{A}, hide{B})
	if err != nil {
		t.Fatalf("Mul fallback: %v", err)
	}
	CompareClose(t, fast, slow, 0, 0)
}

func TestMatVec(t *testing.T) {
	t.Parallel()

	A := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	x := []float64{1, 0, -1}

	y, err := linsolve.MatVec(A, x)
	if err != nil {
		t.Fatalf("MatVec: %v", err)
	}
	if y[0] != -2 || y[1] != -2 {
		t.Fatalf("MatVec = %v; want [-2 -2]", y)
	}

	// fallback path agrees
	y2, err := linsolve.MatVec(hide{A}, x)
	if err != nil {
		t.Fatalf("MatVec fallback: %v", err)
	}
	if y2[0] != y[0] || y2[1] != y[1] {
		t.Fatalf("fallback MatVec = %v; want %v", y2, y)
	}

	// length mismatch
	_, err = linsolve.MatVec(A, []float64{1, 2})
	AssertErrorIs(t, err, linsolve.ErrDimensionMismatch)
	_, err = linsolve.MatVec(A, nil)
	AssertErrorIs(t, err, linsolve.ErrNilMatrix)
}

func TestTranspose(t *testing.T) {
	t.Parallel()

	A := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})

	At, err := linsolve.Transpose(A)
	if err != nil {
		t.Fatalf("Transpose: %v", err)
	}
	CompareExact(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, At)

	// fallback path agrees
	At2, err := linsolve.Transpose(hide{A})
	if err != nil {
		t.Fatalf("Transpose fallback: %v", err)
	}
	CompareClose(t, At, At2, 0, 0)
}
