// SPDX-License-Identifier: MIT

// Package linsolve: Dense is the concrete, row-major implementation of
// the Matrix interface, storing elements in a flat slice for
// performance and cache friendliness.
package linsolve

import (
	"fmt"
	"math"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Dense or ErrInvalidDimensions.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// Allocate flat slice
	data := make([]float64, rows*cols)

	// Return initialized Dense
	return &Dense{r: rows, c: cols, data: data}, nil
}

// FromRows builds a Dense matrix from a nested row-major slice.
// Implementation:
//   - Stage 1: Validate non-empty input, rectangular rows and (per the
//     numeric policy) finite values.
//   - Stage 2: Allocate a Dense and copy row by row into the flat slice.
//
// Behavior highlights:
//   - The input slices are copied, never aliased; later mutation of
//     `rows` does not affect the returned matrix.
//   - Deterministic i→j copy order.
//
// Inputs:
//   - rows: nested float64 rows; len(rows) ≥ 1, all rows equal length ≥ 1.
//   - opts: numeric policy; WithNoValidateNaNInf skips the finiteness scan.
//
// Returns:
//   - *Dense: freshly allocated matrix holding a copy of the data.
//
// Errors:
//   - ErrInvalidDimensions (empty input or empty first row).
//   - ErrRaggedRows        (rows of unequal length).
//   - ErrNaNInf            (non-finite value under the default policy).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - This is the canonical ingestion point for caller-owned [][]float64;
//     pair with RowSlices to round-trip the same container shape.
func FromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)

	// Validate outer shape before touching any data.
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	r, c := len(rows), len(rows[0])

	var i, j int // loop iterators
	for i = 0; i < r; i++ {
		// Rectangularity: every row must match the first row's length.
		if len(rows[i]) != c {
			return nil, fmt.Errorf("FromRows: row %d has %d columns, want %d: %w", i, len(rows[i]), c, ErrRaggedRows)
		}
	}

	// Numeric policy: reject NaN/±Inf up front so kernels never see them.
	if o.validateNaNInf {
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				if v := rows[i][j]; math.IsNaN(v) || math.IsInf(v, 0) {
					return nil, fmt.Errorf("FromRows: value at (%d,%d): %w", i, j, ErrNaNInf)
				}
			}
		}
	}

	// Allocate and copy row by row (shape already validated).
	m, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}
	for i = 0; i < r; i++ {
		copy(m.data[i*c:(i+1)*c], rows[i])
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense) Rows() int {
	return m.r // return stored row count
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense) Cols() int {
	return m.c // return stored column count
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Stage 1 (Validate): check 0 ≤ row < r and 0 ≤ col < c.
// Stage 2 (Execute): compute and return linear index.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	// Validate row index
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}
	// Validate column index
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	// Compute flat offset
	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): read from data slice.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	// Compute flat index or error
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	// Return stored value
	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): write into data slice.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	// Compute flat index or error
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	// Assign value
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory for copy.
func (m *Dense) Clone() Matrix {
	// Allocate new slice for data copy
	copyData := make([]float64, len(m.data))
	// Copy all elements into new slice
	copy(copyData, m.data)

	return &Dense{r: m.r, c: m.c, data: copyData}
}

// RowSlices exports the matrix as a fresh [][]float64 in row-major
// order. The result shares no storage with the receiver.
// Complexity: O(r*c) time and memory.
func (m *Dense) RowSlices() [][]float64 {
	out := make([][]float64, m.r)
	var i int // loop iterator
	for i = 0; i < m.r; i++ {
		row := make([]float64, m.c)
		copy(row, m.data[i*m.c:(i+1)*m.c])
		out[i] = row
	}

	return out
}

// String implements fmt.Stringer for easy debugging.
// Stage 1 (Execute): build per-row strings.
// Stage 2 (Finalize): return concatenated representation.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var s string
	var i, j int
	for i = 0; i < m.r; i++ { // iterate over rows
		s += "["                  // open row
		for j = 0; j < m.c; j++ { // iterate over columns
			// compute flat index directly for performance
			s += fmt.Sprintf("%g", m.data[i*m.c+j])
			if j < m.c-1 {
				s += ", " // separate values with comma
			}
		}
		s += "]\n" // close row
	}

	return s
}
