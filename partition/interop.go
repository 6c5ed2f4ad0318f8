// SPDX-License-Identifier: MIT

// Package partition - gonum/mat interop.
//
// Both directions copy; a *mat.Dense returned by Mat never aliases the
// partition's storage, and FromMat never keeps a reference to its argument.
package partition

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Mat returns the membership matrix as a freshly allocated *mat.Dense.
// Complexity: O(M*N).
func (p *Partition) Mat() *mat.Dense {
	rows, cols := p.Shape()
	flat := make([]float64, 0, rows*cols)
	for _, row := range p.m.RawRows() {
		flat = append(flat, row...)
	}

	return mat.NewDense(rows, cols, flat)
}

// FromMat builds a Partition by copying any gonum matrix.
//
// Errors:
//   - ErrShape when a is nil or empty; matrix.ErrNaNInf for non-finite values.
//
// Complexity: O(M*N).
func FromMat(a mat.Matrix) (*Partition, error) {
	if a == nil {
		return nil, partitionErrorf(opFromMat, ErrShape)
	}
	rows, cols := a.Dims()
	if rows == 0 || cols == 0 {
		return nil, fmt.Errorf("%s(%dx%d): %w", opFromMat, rows, cols, ErrShape)
	}

	values := make([][]float64, rows)
	var i, j int
	for i = 0; i < rows; i++ {
		values[i] = make([]float64, cols)
		for j = 0; j < cols; j++ {
			values[i][j] = a.At(i, j)
		}
	}
	p, err := New(values)
	if err != nil {
		return nil, partitionErrorf(opFromMat, err)
	}

	return p, nil
}
