// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Col/Row return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Offer column-major ingestion/export (NewDenseFromCols, Columns) for
//     column-wise algorithms such as fuzzy partition transforms.
//   - Enforce a numeric policy (optional rejection of NaN/Inf) at ingestion.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At: O(1); Col/Row: O(r)/O(c); RawRows/Columns: O(r*c).

package matrix

import (
	"fmt"
	"math"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"       // method tag used in error wrappers
	ctxCol      = "Col"      // method tag used in error wrappers
	ctxRow      = "Row"      // method tag used in error wrappers
	ctxFromRows = "FromRows" // ctor tag for NewDenseFromRows
	ctxFromCols = "FromCols" // ctor tag for NewDenseFromCols
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Stable, human-friendly messages; preserves the sentinel via %w.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf rejects NaN/Inf on ingestion (policy default from options.go).
//
// A Dense is never written after construction, so it is safe for concurrent reads.
type Dense struct {
	r, c           int       // row and column counts (>0)
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf on ingestion when true
}

// *Dense implements the read-only Matrix interface.
var _ Matrix = (*Dense)(nil)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation and numeric policy.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//   - Stage 3: resolve numeric policy from opts over defaults.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols), // make() zero-fills deterministically
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// NewDenseFromRows builds a Dense by deep-copying a row-major [][]float64.
// MAIN DESCRIPTION:
//   - Ingest caller-owned rows; the caller may mutate or discard its slices afterward.
//
// Implementation:
//   - Stage 1: shape checks (non-empty, every row non-empty and of equal length).
//   - Stage 2: allocate and copy row by row, enforcing the numeric policy.
//
// Errors:
//   - ErrBadShape for empty input, zero-length rows or ragged rows.
//   - ErrNaNInf when the policy is on and a value is not finite.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("Dense.%s: no rows: %w", ctxFromRows, ErrBadShape)
	}
	c := len(rows[0])
	if c == 0 {
		return nil, fmt.Errorf("Dense.%s: row 0 is empty: %w", ctxFromRows, ErrBadShape)
	}
	var i int
	for i = 1; i < len(rows); i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("Dense.%s: row %d has %d values, want %d: %w",
				ctxFromRows, i, len(rows[i]), c, ErrBadShape)
		}
	}

	m, err := NewDense(len(rows), c, opts...)
	if err != nil {
		return nil, err
	}
	var j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < c; j++ {
			if m.validateNaNInf && isNonFinite(rows[i][j]) {
				return nil, denseErrorf(ctxFromRows, i, j, ErrNaNInf)
			}
		}
		copy(m.data[i*c:(i+1)*c], rows[i])
	}

	return m, nil
}

// NewDenseFromCols builds a Dense from column-major input: cols[j][i] is element (i,j).
// Same shape and numeric-policy contract as NewDenseFromRows, applied to columns.
// Complexity: O(r*c).
func NewDenseFromCols(cols [][]float64, opts ...Option) (*Dense, error) {
	if len(cols) == 0 {
		return nil, fmt.Errorf("Dense.%s: no columns: %w", ctxFromCols, ErrBadShape)
	}
	r := len(cols[0])
	if r == 0 {
		return nil, fmt.Errorf("Dense.%s: column 0 is empty: %w", ctxFromCols, ErrBadShape)
	}

	m, err := NewDense(r, len(cols), opts...)
	if err != nil {
		return nil, err
	}
	var i, j int
	for j = 0; j < m.c; j++ {
		if len(cols[j]) != r {
			return nil, fmt.Errorf("Dense.%s: column %d has %d values, want %d: %w",
				ctxFromCols, j, len(cols[j]), r, ErrBadShape)
		}
		for i = 0; i < r; i++ {
			if m.validateNaNInf && isNonFinite(cols[j][i]) {
				return nil, denseErrorf(ctxFromCols, i, j, ErrNaNInf)
			}
			m.data[i*m.c+j] = cols[j][i]
		}
	}

	return m, nil
}

// Rows returns the row count. No side effects.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Returns the bare sentinel; public methods wrap with coordinates and method name.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range; returns a wrapped sentinel.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Col returns a copy of column j (length Rows()).
// Complexity: O(r).
func (m *Dense) Col(j int) ([]float64, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxCol, 0, j, ErrOutOfRange)
	}
	out := make([]float64, m.r)
	var i int
	for i = 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// Row returns a copy of row i (length Cols()).
// Complexity: O(c).
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// RawRows returns a deep row-major copy as [][]float64.
// Complexity: O(r*c).
func (m *Dense) RawRows() [][]float64 {
	out := make([][]float64, m.r)
	var i int
	for i = 0; i < m.r; i++ {
		out[i] = make([]float64, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// Columns returns a deep column-major copy: out[j][i] is element (i,j).
// Complexity: O(r*c).
func (m *Dense) Columns() [][]float64 {
	out := make([][]float64, m.c)
	var i, j int
	for j = 0; j < m.c; j++ {
		out[j] = make([]float64, m.r)
		for i = 0; i < m.r; i++ {
			out[j][i] = m.data[i*m.c+j]
		}
	}

	return out
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Read-only visitor; stops early when f returns false.
// Complexity: O(r*c), Space O(1).
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int

	for i = 0; i < m.r; i++ { // iterate rows deterministically
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return // early exit requested by caller
			}
		}
	}
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(x float64) bool { return math.IsNaN(x) || math.IsInf(x, 0) }
