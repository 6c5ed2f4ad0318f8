// SPDX-License-Identifier: MIT

package partition

// Complement returns the involutive complement of p.
// Per column, with λ = M·(max−min)/(1−M·min) (λ = 0 when max == min):
//
//	out = (u − λ/M) / (1 − λ)
//
// Complement(Complement(U)) equals U within tolerance for every valid U.
// Complexity: O(M*N).
func (p *Partition) Complement() *Partition {
	rows := p.Rows()
	m := float64(rows)
	maxs, mins := p.m.ColMax(), p.m.ColMin()

	src := p.m.Columns()
	out := newColumns(rows, p.Cols())
	var i int
	for j, col := range src {
		var lambda float64
		if maxs[j] != mins[j] {
			lambda = m * (maxs[j] - mins[j]) / (1 - m*mins[j])
		}
		for i = range col {
			out[j][i] = (col[i] - lambda/m) / (1 - lambda)
		}
	}

	return derive(out)
}
