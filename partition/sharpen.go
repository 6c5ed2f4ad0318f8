// SPDX-License-Identifier: MIT

// Package partition - linear sharpening operators.
//
// Both families apply
//
//	out = 1/M + (u - 1/M) / (1 - M*bound)
//
// and fall back to the uniform 1/M when max == min. They differ only in where
// the bound comes from:
//   - LS / ComplementLS: one bound for the whole matrix (global min / max).
//   - MLS / ComplementMLS: one bound per column (column min / max).
package partition

// sharpenValue is the shared linear sharpening formula.
func sharpenValue(u, inv, scale float64) float64 {
	return inv + (u-inv)/scale
}

// LS returns the linear sharpening: bound = global minimum.
// Applying LS to its own output changes nothing (idempotent).
// Complexity: O(M*N).
func (p *Partition) LS() *Partition { return p.linearSharpen(false) }

// ComplementLS returns the dual linear sharpening: bound = global maximum.
// Complexity: O(M*N).
func (p *Partition) ComplementLS() *Partition { return p.linearSharpen(true) }

// MLS returns the max/min linear sharpening: bound = per-column minimum.
// Complexity: O(M*N).
func (p *Partition) MLS() *Partition { return p.columnSharpen(false) }

// ComplementMLS returns the dual of MLS: bound = per-column maximum.
// Complexity: O(M*N).
func (p *Partition) ComplementMLS() *Partition { return p.columnSharpen(true) }

// linearSharpen implements LS and ComplementLS.
func (p *Partition) linearSharpen(complement bool) *Partition {
	rows := p.Rows()
	inv := 1.0 / float64(rows)
	lo, hi := p.m.MinMax()

	src := p.m.Columns()
	out := newColumns(rows, p.Cols())
	var i int
	if hi == lo {
		for j := range out {
			for i = range out[j] {
				out[j][i] = inv
			}
		}
		return derive(out)
	}

	bound := lo
	if complement {
		bound = hi
	}
	scale := 1 - float64(rows)*bound
	for j, col := range src {
		for i = range col {
			out[j][i] = sharpenValue(col[i], inv, scale)
		}
	}

	return derive(out)
}

// columnSharpen implements MLS and ComplementMLS.
func (p *Partition) columnSharpen(complement bool) *Partition {
	rows := p.Rows()
	inv := 1.0 / float64(rows)
	maxs, mins := p.m.ColMax(), p.m.ColMin()

	src := p.m.Columns()
	out := newColumns(rows, p.Cols())
	var i int
	for j, col := range src {
		if maxs[j] == mins[j] {
			for i = range col {
				out[j][i] = inv
			}
			continue
		}
		bound := mins[j]
		if complement {
			bound = maxs[j]
		}
		scale := 1 - float64(rows)*bound
		for i = range col {
			out[j][i] = sharpenValue(col[i], inv, scale)
		}
	}

	return derive(out)
}
