// SPDX-License-Identifier: MIT

// Package partition - alpha-level cuts.
//
// Both cuts share one precondition pass (alphaCutCounts) that rejects the
// argument before any output is allocated, so callers never observe a
// partially built result.
package partition

import (
	"fmt"
	"math"
)

// alphaCutCounts validates alpha against every column and returns, per column,
// the number of entries >= alpha.
//
// Errors:
//   - ErrAlphaNotPositive when alpha <= 0 or alpha is NaN.
//   - ErrAlphaAboveMax when max(column) <= alpha for any column (first such column reported).
func (p *Partition) alphaCutCounts(op string, alpha float64) ([]int, error) {
	if alpha <= 0 || math.IsNaN(alpha) {
		return nil, fmt.Errorf("%s(%g): %w", op, alpha, ErrAlphaNotPositive)
	}
	for j, hi := range p.m.ColMax() {
		if hi <= alpha {
			return nil, fmt.Errorf("%s(%g): column %d max %g: %w", op, alpha, j, hi, ErrAlphaAboveMax)
		}
	}

	return p.m.ColCountAtLeast(alpha), nil
}

// AlphaCut returns the alpha-level cut: per column, entries >= alpha become
// 1/count (count = number of such entries) and all others become 0.
//
// Errors:
//   - ErrAlphaNotPositive, ErrAlphaAboveMax (both match ErrInvalidArgument).
//
// Complexity: O(M*N).
func (p *Partition) AlphaCut(alpha float64) (*Partition, error) {
	counts, err := p.alphaCutCounts(opAlphaCut, alpha)
	if err != nil {
		return nil, err
	}

	src := p.m.Columns()
	out := newColumns(p.Rows(), p.Cols())
	var i int
	for j, col := range src {
		w := 1.0 / float64(counts[j])
		for i = range col {
			if col[i] >= alpha {
				out[j][i] = w
			}
		}
	}

	return derive(out), nil
}

// ComplementAlphaCut returns the complement of the alpha-level cut: per
// column, weight is spread evenly over the entries that did NOT pass the cut.
//   - count == M: every entry becomes 1/M.
//   - otherwise entries < alpha become 1/(M-count), entries >= alpha become 0.
//
// Errors:
//   - Same preconditions as AlphaCut.
//
// Complexity: O(M*N).
func (p *Partition) ComplementAlphaCut(alpha float64) (*Partition, error) {
	counts, err := p.alphaCutCounts(opComplementAlpha, alpha)
	if err != nil {
		return nil, err
	}

	rows := p.Rows()
	src := p.m.Columns()
	out := newColumns(rows, p.Cols())
	var i int
	for j, col := range src {
		if counts[j] == rows {
			w := 1.0 / float64(rows)
			for i = range col {
				out[j][i] = w
			}
			continue
		}
		w := 1.0 / float64(rows-counts[j])
		for i = range col {
			if col[i] < alpha {
				out[j][i] = w
			}
		}
	}

	return derive(out), nil
}
