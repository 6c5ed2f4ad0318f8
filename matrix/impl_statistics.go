// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide column-wise and whole-matrix reductions (max, min, sum, threshold
//     counts) as deterministic passes over the row-major buffer.
//   - Delegate the slice kernels to gonum/floats so every reduction shares one
//     well-tested implementation.
//
// Exposed API:
//   - (*Dense).ColMax()            -> per-column maxima
//   - (*Dense).ColMin()            -> per-column minima
//   - (*Dense).ColSums()           -> per-column sums
//   - (*Dense).ColCountAtLeast(t)  -> per-column count of entries >= t
//   - (*Dense).MinMax()            -> global minimum and maximum
//
// Determinism & Performance:
//   - Fixed i→j traversal for all explicit loops.
//   - Dense has r,c > 0 by construction, so reductions never see empty input.

package matrix

import "gonum.org/v1/gonum/floats"

// ColMax returns the maximum of every column (len == Cols()).
// Complexity: O(r*c) time, O(r+c) space.
func (m *Dense) ColMax() []float64 {
	return m.reduceCols(floats.Max)
}

// ColMin returns the minimum of every column (len == Cols()).
// Complexity: O(r*c) time, O(r+c) space.
func (m *Dense) ColMin() []float64 {
	return m.reduceCols(floats.Min)
}

// ColSums returns the sum of every column (len == Cols()).
// Complexity: O(r*c) time, O(r+c) space.
func (m *Dense) ColSums() []float64 {
	return m.reduceCols(floats.Sum)
}

// ColCountAtLeast returns, per column, the number of entries v with v >= t.
// Complexity: O(r*c) time, O(c) space.
func (m *Dense) ColCountAtLeast(t float64) []int {
	counts := make([]int, m.c)
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if m.data[base+j] >= t {
				counts[j]++
			}
		}
	}

	return counts
}

// MinMax returns the global minimum and maximum over all entries.
// Complexity: O(r*c) time, O(1) space.
func (m *Dense) MinMax() (lo, hi float64) {
	return floats.Min(m.data), floats.Max(m.data)
}

// reduceCols applies fn to a scratch copy of each column in turn.
// The scratch buffer is reused across columns to keep allocations at O(r).
func (m *Dense) reduceCols(fn func([]float64) float64) []float64 {
	out := make([]float64, m.c)
	col := make([]float64, m.r)
	var i, j int
	for j = 0; j < m.c; j++ {
		for i = 0; i < m.r; i++ {
			col[i] = m.data[i*m.c+j]
		}
		out[j] = fn(col)
	}

	return out
}
