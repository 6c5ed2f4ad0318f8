// Package partition implements fuzzy partitions and the closed set of
// transforms defined on them.
//
// 🚀 What is a fuzzy partition?
//
//	An M×N matrix U of membership degrees. Column j is object j's soft
//	assignment to M categories: every entry lies in [0,1] and every column
//	sums to 1. Construction does not enforce this; Validate checks it.
//
// ✨ Transforms (each returns a NEW *Partition, the receiver is never mutated):
//   - AlphaCut / ComplementAlphaCut — crisp-like redistribution over the
//     entries at or above (resp. below) a level alpha.
//   - LS / ComplementLS — linear sharpening with one global bound.
//   - MLS / ComplementMLS — linear sharpening with one bound per column.
//   - Complement — the involutive complement: U.Complement().Complement() == U.
//
// 📏 Measures:
//   - AlphaApproximate — similarity of two partitions' alpha-cuts, in [0,1].
//   - SharpnessDegree — degree to which V sharpens U, in [0,1].
//
// ⚙️ Usage:
//
//	u, err := partition.New([][]float64{
//		{0.5, 0.7, 0.3, 0.0},
//		{0.4, 0.2, 0.4, 0.1},
//		{0.1, 0.1, 0.3, 0.9},
//	})
//	cut, err := u.AlphaCut(0.25)
//	same := u.Complement().Complement().Equal(u) // true
//
//	r, _ := partition.NewRandom(5, 5, partition.NewSource(42))
//	ok := r.Validate(partition.WithEpsilon(1e-8))
//
// Tolerance:
//
//	Validate and Equal take the tolerance per call (WithEpsilon, default
//	DefaultEpsilon = 1e-8) or through a bound Tolerance value. There is no
//	package-level mutable state, so *Partition values are safe to share
//	between goroutines.
//
// Complexity: every transform and measure is O(M·N) time and space.
package partition
