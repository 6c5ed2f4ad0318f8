// SPDX-License-Identifier: MIT

// Package partition - Partition value type, construction and accessors.
//
// Purpose:
//   - Wrap an exclusively owned matrix.Dense as an immutable M×N fuzzy partition.
//   - Deep-copy on every boundary: construction copies the caller's rows, and
//     accessors return copies, so no caller can reach the backing storage.
//   - Provide the column-major plumbing (columns/derive) shared by every transform.
//
// Complexity quicksheet:
//   - New: O(M*N); Rows/Cols/Shape: O(1); At: O(1); Column: O(M); Values: O(M*N).

package partition

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/fuzzypart/matrix"
)

// ---------- Formatting literals ----------
const (
	_fmtCell    = "%9.4f " // fixed width 9, 4 decimals, one trailing space per cell
	_fmtRowSep  = "\n"     // rows are joined, never terminated
	_fmtInitCap = 10       // bytes reserved per cell in String
)

// Partition is an immutable M×N matrix of membership degrees.
// Column j is object j's fractional assignment to M categories.
//
// The column-sum invariant (every column sums to 1, every entry in [0,1]) is
// NOT enforced at construction; call Validate to check it.
// A *Partition is safe for concurrent use by multiple readers.
type Partition struct {
	m *matrix.Dense // exclusively owned; never exposed, never mutated after construction
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Partition)(nil)

// New builds a Partition by deep-copying values (row-major, values[row][col]).
// MAIN DESCRIPTION:
//   - Dimensions are inferred from the input's shape.
//   - The caller's slices may be freely mutated or discarded afterward.
//
// Errors:
//   - ErrShape (also matching matrix.ErrBadShape) for empty, zero-length or ragged rows.
//   - matrix.ErrNaNInf when a value is NaN or ±Inf.
//
// Complexity:
//   - Time O(M*N), Space O(M*N).
func New(values [][]float64) (*Partition, error) {
	d, err := matrix.NewDenseFromRows(values)
	if err != nil {
		if errors.Is(err, matrix.ErrBadShape) {
			return nil, fmt.Errorf("%s: %w: %w", opNew, ErrShape, err)
		}
		return nil, partitionErrorf(opNew, err)
	}

	return &Partition{m: d}, nil
}

// MustNew is like New but panics on error. Intended for literals in tests and examples.
func MustNew(values [][]float64) *Partition {
	p, err := New(values)
	if err != nil {
		panic(err)
	}

	return p
}

// derive wraps column-major transform output into a fresh Partition.
// Transform output is not subject to the NaN/Inf ingestion policy: its
// arithmetic is fully defined by the formulas, including on invalid inputs.
// Panics only on a programmer error (malformed column slices).
func derive(cols [][]float64) *Partition {
	d, err := matrix.NewDenseFromCols(cols, matrix.WithNoValidateNaNInf())
	if err != nil {
		panic(fmt.Sprintf("partition: derive: %v", err))
	}

	return &Partition{m: d}
}

// newColumns allocates a zeroed column-major buffer of shape rows×cols.
func newColumns(rows, cols int) [][]float64 {
	out := make([][]float64, cols)
	buf := make([]float64, rows*cols)
	var j int
	for j = 0; j < cols; j++ {
		out[j] = buf[j*rows : (j+1)*rows : (j+1)*rows]
	}

	return out
}

// Rows returns M, the number of categories.
func (p *Partition) Rows() int { return p.m.Rows() }

// Cols returns N, the number of objects.
func (p *Partition) Cols() int { return p.m.Cols() }

// Shape returns (M, N).
func (p *Partition) Shape() (rows, cols int) { return p.m.Shape() }

// At returns the membership degree of object col in category row.
// Returns an error wrapping matrix.ErrOutOfRange for invalid indices.
func (p *Partition) At(row, col int) (float64, error) {
	v, err := p.m.At(row, col)
	if err != nil {
		return 0, partitionErrorf(opAt, err)
	}

	return v, nil
}

// Column returns a copy of column j (object j's memberships, length M).
func (p *Partition) Column(j int) ([]float64, error) {
	c, err := p.m.Col(j)
	if err != nil {
		return nil, partitionErrorf(opColumn, err)
	}

	return c, nil
}

// Values returns a deep row-major copy of the membership matrix.
func (p *Partition) Values() [][]float64 { return p.m.RawRows() }

// String renders the matrix row-major: every cell as "%9.4f " (fixed width,
// 4 decimals, trailing space), rows joined by "\n" with no trailing newline.
//
// Complexity: O(M*N).
func (p *Partition) String() string {
	rows, cols := p.m.Shape()
	var b strings.Builder
	b.Grow(rows * cols * _fmtInitCap)

	var i int
	for i = 0; i < rows; i++ {
		row, _ := p.m.Row(i) // i is in range by construction
		for _, v := range row {
			fmt.Fprintf(&b, _fmtCell, v)
		}
		if i != rows-1 {
			b.WriteString(_fmtRowSep)
		}
	}

	return b.String()
}
