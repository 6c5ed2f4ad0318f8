// Package fuzzypart is a small engine for fuzzy partitions: M×N membership
// matrices whose columns each distribute one object over M categories.
//
// 🚀 What is in the box?
//
//   - partition/: the immutable Partition value with alpha-cuts, linear
//     sharpening (LS, MLS and their complements), the involutive complement
//     and the similarity measures (alpha-approximation, sharpness degree).
//   - matrix/: the dense row-major storage and column reductions behind it.
//   - codec/: YAML/JSON partition documents.
//   - cmd/fuzzyp: a CLI over all of the above.
//
// ✨ Design notes
//
//   - Every transform returns a new Partition; nothing is mutated in place.
//   - Tolerance is an explicit per-call option, never global state, so
//     partitions are safe to share between goroutines.
//   - Errors are sentinels matched with errors.Is; no exported function
//     panics on user input.
//
// Quick start:
//
//	u, _ := partition.New([][]float64{
//		{0.5, 0.7, 0.3, 0.0},
//		{0.4, 0.2, 0.4, 0.1},
//		{0.1, 0.1, 0.3, 0.9},
//	})
//	sharp := u.MLS()
//	deg, _ := u.SharpnessDegree(sharp) // 1: MLS is a sharpening of u
//	cut, _ := u.AlphaCut(0.25)
//
// See the package docs under partition/ for formulas and complexity.
package fuzzypart
