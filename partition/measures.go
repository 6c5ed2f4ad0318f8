// SPDX-License-Identifier: MIT

// Package partition - similarity measures between two partitions.
//
// Both measures return a score in [0,1] where 1 means "no violating cell".
// Operands must be non-nil and share the same shape.
package partition

import (
	"fmt"
	"math"

	"github.com/katalvlaran/fuzzypart/matrix"
)

// checkOperand validates a binary-measure argument against the receiver.
func (p *Partition) checkOperand(op string, v *Partition) error {
	if v == nil {
		return partitionErrorf(op, ErrNilPartition)
	}
	if err := matrix.ValidateSameShape(p.m, v.m); err != nil {
		return fmt.Errorf("%s: %w: %w", op, ErrDimensionMismatch, err)
	}

	return nil
}

// AlphaApproximate measures how closely v's alpha-cut agrees with p's.
// Over every cell (i,j):
//   - p[i][j] >= alpha: M1 += max(0, alpha − v[i][j]); cardM1++.
//   - otherwise:        M2 += max(0, v[i][j] − alpha).
//
// Result = 1 − (M1+M2) / (cardM1·alpha + (M·N − cardM1)·(1 − alpha)).
// 1.0 means p and v are alpha-equivalent.
//
// Degenerate denominator (e.g. alpha ∈ {0,1} with a one-sided cardinality):
//   - M1+M2 == 0 ⇒ 1.0 (no violating cell).
//   - otherwise ErrIllDefined; NaN/Inf is never returned.
//
// Errors:
//   - ErrNilPartition, ErrDimensionMismatch, ErrIllDefined.
//
// Complexity: O(M*N).
func (p *Partition) AlphaApproximate(alpha float64, v *Partition) (float64, error) {
	if err := p.checkOperand(opAlphaApproximate, v); err != nil {
		return 0, err
	}

	var m1, m2 float64
	var card int
	vCols := v.m.Columns()
	var i int
	for j, col := range p.m.Columns() {
		for i = range col {
			if col[i] >= alpha {
				card++
				m1 += math.Max(0, alpha-vCols[j][i])
			} else {
				m2 += math.Max(0, vCols[j][i]-alpha)
			}
		}
	}

	total := p.Rows() * p.Cols()
	num := m1 + m2
	den := float64(card)*alpha + float64(total-card)*(1-alpha)
	if den == 0 {
		if num == 0 {
			return 1.0, nil
		}
		return 0, fmt.Errorf("%s(%g): %d of %d cells at or above alpha: %w",
			opAlphaApproximate, alpha, card, total, ErrIllDefined)
	}

	return 1.0 - num/den, nil
}

// SharpnessDegree measures the degree to which v is a sharpening of p.
// Over every cell (i,j), with 1/M as the pivot:
//   - p[i][j] >= 1/M: K1 += max(0, p[i][j] − v[i][j]).
//   - p[i][j] <= 1/M: K2 += max(0, v[i][j] − p[i][j]).
//
// A cell exactly at 1/M satisfies both conditions and feeds both accumulators,
// so any deviation of v from 1/M there counts against the score.
// Result = 1 − (K1+K2)/(2N).
//
// Errors:
//   - ErrNilPartition, ErrDimensionMismatch.
//
// Complexity: O(M*N).
func (p *Partition) SharpnessDegree(v *Partition) (float64, error) {
	if err := p.checkOperand(opSharpnessDegree, v); err != nil {
		return 0, err
	}

	pivot := 1.0 / float64(p.Rows())
	var k1, k2 float64
	vCols := v.m.Columns()
	var i int
	for j, col := range p.m.Columns() {
		for i = range col {
			if col[i] >= pivot {
				k1 += math.Max(0, col[i]-vCols[j][i])
			}
			if col[i] <= pivot {
				k2 += math.Max(0, vCols[j][i]-col[i])
			}
		}
	}

	return 1 - (k1+k2)/(2*float64(p.Cols())), nil
}

// AlphaEquivalent reports whether p and v have the same alpha-cut, i.e.
// AlphaApproximate(alpha, v) is 1 within the tolerance.
func (p *Partition) AlphaEquivalent(alpha float64, v *Partition, opts ...Option) (bool, error) {
	s, err := p.AlphaApproximate(alpha, v)
	if err != nil {
		return false, partitionErrorf(opAlphaEquivalent, err)
	}

	return math.Abs(1-s) <= gatherOptions(opts...).eps, nil
}

// IsSharpeningOf reports whether p is a sharpening of u, i.e.
// u.SharpnessDegree(p) is 1 within the tolerance.
func (p *Partition) IsSharpeningOf(u *Partition, opts ...Option) (bool, error) {
	if u == nil {
		return false, partitionErrorf(opIsSharpeningOf, ErrNilPartition)
	}
	s, err := u.SharpnessDegree(p)
	if err != nil {
		return false, partitionErrorf(opIsSharpeningOf, err)
	}

	return math.Abs(1-s) <= gatherOptions(opts...).eps, nil
}
