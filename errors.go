// SPDX-License-Identifier: MIT
// Package linsolve: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// package. All kernels MUST return these sentinels and tests MUST check
// them via errors.Is. No kernel panics on user-triggered conditions;
// panics are reserved for programmer errors in option constructors.

package linsolve

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "linsolve: ..." for consistency and to
// allow easy grepping across logs. Sentinels are returned plain from
// validators and wrapped exactly once at the facade with an operation
// tag via fmt.Errorf("%s: %w", tag, err) — callers still match with
// errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil receiver -> shape/index -> ragged/NaN ingestion -> dimension
// mismatch -> singularity.

var (
	// ErrNilMatrix indicates that a nil Matrix (receiver or argument)
	// was passed where a concrete matrix is required.
	ErrNilMatrix = errors.New("linsolve: nil matrix")

	// ErrInvalidDimensions indicates that requested matrix dimensions
	// are non-positive. Constructors must validate before allocation.
	ErrInvalidDimensions = errors.New("linsolve: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside
	// valid bounds. Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("linsolve: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands: Mul where a.Cols != b.Rows, or Solve where B's row
	// count disagrees with A's size.
	ErrDimensionMismatch = errors.New("linsolve: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required (the
	// coefficient matrix of Solve/Determinant/Inverse) but the input
	// wasn't.
	ErrNonSquare = errors.New("linsolve: matrix is not square")

	// ErrRaggedRows signals that nested-slice input rows have unequal
	// lengths; ingestion requires a rectangular layout.
	ErrRaggedRows = errors.New("linsolve: ragged rows")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where
	// finite values are required by the numeric policy (ingestion).
	ErrNaNInf = errors.New("linsolve: NaN or Inf encountered")

	// ErrSingular is returned when a pivot falls within the configured
	// tolerance of zero during elimination or normalization. The
	// computation aborts instead of propagating NaN/Inf silently.
	ErrSingular = errors.New("linsolve: singular matrix")
)
