// SPDX-License-Identifier: MIT

// Package partition - random partition generation.
//
// Every column is drawn independently: M uniform values on [0,1], then each
// value is divided by the column sum, so columns sum to 1 to floating precision.
//
// Concurrency:
//   - rand.Source values are NOT goroutine-safe. Do not share one source across
//     goroutines; derive one per worker with NewSource.
package partition

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/fuzzypart/matrix"
)

// defaultSeed is the fixed seed used when NewSource is called with seed==0.
const defaultSeed uint64 = 1

// pcgStream decorrelates the second PCG word from the seed.
const pcgStream uint64 = 0x9e3779b97f4a7c15

// NewSource returns a deterministic source for NewRandom.
// Policy: seed==0 ⇒ defaultSeed; otherwise the seed is used verbatim.
func NewSource(seed uint64) rand.Source {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.NewPCG(seed, seed^pcgStream)
}

// NewRandom generates a rows×cols partition with uniformly drawn columns
// rescaled to sum to 1.
// MAIN DESCRIPTION:
//   - src == nil draws from the process-wide entropy source (not reproducible).
//   - Pass NewSource(seed) (or any rand.Source) for deterministic output.
//
// Behavior highlights:
//   - Entries lie strictly inside (0,1) almost surely.
//   - A column whose draws are all exactly zero becomes uniform 1/M.
//
// Errors:
//   - ErrShape (also matching matrix.ErrInvalidDimensions) when rows<=0 or cols<=0.
//
// Complexity:
//   - Time O(M*N), Space O(M*N).
func NewRandom(rows, cols int, src rand.Source) (*Partition, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%s(%d,%d): %w: %w", opNewRandom, rows, cols, ErrShape, matrix.ErrInvalidDimensions)
	}

	u := distuv.Uniform{Min: 0, Max: 1, Src: src}
	out := newColumns(rows, cols)

	var i, j int
	var sum float64
	for j = 0; j < cols; j++ {
		col := out[j]
		for i = 0; i < rows; i++ {
			col[i] = u.Rand()
		}
		sum = floats.Sum(col)
		if sum == 0 {
			for i = 0; i < rows; i++ {
				col[i] = 1.0 / float64(rows)
			}
			continue
		}
		for i = 0; i < rows; i++ {
			col[i] /= sum
		}
	}

	return derive(out), nil
}
