// SPDX-License-Identifier: MIT

// Package linsolve: functional configuration for the numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each knob impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: Options fields are unexported; public APIs consume ...Option.
//
// Notes:
//   - Pivot tolerance: the reference algorithm divides by a pivot and
//     lets an exact zero blow up. Here singularity is detected with
//     |pivot| ≤ pivotTol before any division. WithPivotTolerance(0)
//     restores exact-zero semantics for callers who want the
//     reference behavior bit for bit.
//   - NaN/Inf validation applies at ingestion (FromRows/SolveRows)
//     only; kernels assume finite data once a matrix is constructed.
package linsolve

import "math"

// ---------- Defaults (single source of truth) ----------

// Numeric policy.
const (
	// DefaultPivotTol is the non-negative threshold under which a pivot
	// is treated as zero and the matrix reported singular. Sized for
	// float64: comfortably above rounding noise of well-conditioned
	// systems, far below any honest pivot.
	DefaultPivotTol = 1e-12

	// DefaultValidateNaNInf toggles strict finite-value validation on
	// ingestion (FromRows/SolveRows).
	DefaultValidateNaNInf = true
)

// ---------- Internal panic messages (no magic strings) ----------

const panicPivotTolInvalid = "linsolve: WithPivotTolerance: tol must be finite, non-negative"

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option
// setters. It is intentionally opaque to prevent external mutation;
// public entry points accept `...Option` and internally resolve them
// via gatherOptions.
type Options struct {
	pivotTol       float64 // ≥ 0; DefaultPivotTol
	validateNaNInf bool    // DefaultValidateNaNInf
}

// ---------- Constructors (WithX) ----------

// WithPivotTolerance sets the singularity threshold used by the
// elimination kernels: a pivot p with |p| ≤ tol aborts with ErrSingular.
// Implementation:
//   - Stage 1: validate tol is finite and ≥ 0.
//   - Stage 2: return a setter that writes tol into Options.
//
// Behavior highlights:
//   - Strict validation in constructor; panics on nonsensical values.
//   - tol = 0 reproduces an exact-zero pivot check.
//
// Inputs:
//   - tol: non-negative finite threshold.
//
// Returns:
//   - Option: functional setter.
//
// Errors:
//   - Panics with a stable message when tol is invalid.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - Larger tol rejects more near-singular systems; it never changes
//     the arithmetic of accepted ones.
//
// AI-Hints:
//   - Keep the default for double-precision data; raise toward 1e-9
//     when inputs carry measurement noise and a misleading "solution"
//     is worse than ErrSingular.
func WithPivotTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicPivotTolInvalid)
	}

	// Assign validated tolerance
	return func(o *Options) { o.pivotTol = tol }
}

// WithValidateNaNInf enables strict finite-value validation at
// ingestion. This is the default; use WithNoValidateNaNInf to relax.
// Complexity: O(1).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation at ingestion (use
// with care): non-finite values then flow into the kernels and
// propagate through arithmetic as IEEE-754 dictates.
// Complexity: O(1).
//
// AI-Hints:
//   - Only useful when ingesting data with known ±Inf placeholders
//     that are sanitized before solving.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// ---------- Resolution helpers ----------

// NewOptions returns the effective Options after applying setters over
// the documented defaults. Exposed for callers who want to inspect or
// reuse a resolved configuration.
// Complexity: O(len(opts)).
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// PivotTolerance reports the resolved singularity threshold.
func (o Options) PivotTolerance() float64 { return o.pivotTol }

// ValidatesNaNInf reports whether ingestion rejects non-finite values.
func (o Options) ValidatesNaNInf() bool { return o.validateNaNInf }

// defaultOptions returns the zero-configuration state. It MUST agree
// with the Default* constants above (single source of truth).
func defaultOptions() Options {
	return Options{
		pivotTol:       DefaultPivotTol,
		validateNaNInf: DefaultValidateNaNInf,
	}
}

// gatherOptions applies user setters over the defaults in order.
// Later options win; all setters are idempotent.
// Complexity: O(len(user)).
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
