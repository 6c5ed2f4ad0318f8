// SPDX-License-Identifier: MIT

package partition

import "math"

// Validate reports whether p satisfies the fuzzy partition invariant within
// the tolerance: every entry lies in [−ε, 1+ε] and every column sum lies
// within ε of 1. The tolerance is read at call time (WithEpsilon, default
// DefaultEpsilon). Never fails; a nil receiver is invalid.
//
// Complexity: O(M*N).
func (p *Partition) Validate(opts ...Option) bool {
	if p == nil {
		return false
	}
	eps := gatherOptions(opts...).eps

	lo, hi := p.m.MinMax()
	if lo+eps < 0 || hi-eps > 1 {
		return false
	}
	for _, s := range p.m.ColSums() {
		if !(math.Abs(1-s) <= eps) { // NaN sums are never valid
			return false
		}
	}

	return true
}

// Equal reports whether p and other have the same shape and every pair of
// cells differs by at most ε (WithEpsilon, default DefaultEpsilon).
// Two nil partitions are equal; nil and non-nil are not.
//
// Complexity: O(M*N).
func (p *Partition) Equal(other *Partition, opts ...Option) bool {
	if p == nil || other == nil {
		return p == other
	}
	if p == other {
		return true
	}
	pr, pc := p.m.Shape()
	or, oc := other.m.Shape()
	if pr != or || pc != oc {
		return false
	}
	eps := gatherOptions(opts...).eps

	equal := true
	p.m.Do(func(i, j int, v float64) bool {
		w, _ := other.m.At(i, j) // same shape: in range
		// NaN never compares equal.
		if !(math.Abs(v-w) <= eps) {
			equal = false
		}
		return equal
	})

	return equal
}
