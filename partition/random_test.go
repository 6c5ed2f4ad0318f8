// SPDX-License-Identifier: MIT
package partition_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fuzzypart/matrix"
	"github.com/katalvlaran/fuzzypart/partition"
)

// randomIterations is the number of generated partitions checked for validity.
const randomIterations = 10000

// TestNewRandom_Valid generates many 5×5 partitions from one source; none may fail Validate.
func TestNewRandom_Valid(t *testing.T) {
	t.Parallel()

	src := partition.NewSource(2024)
	fails := 0
	for i := 0; i < randomIterations; i++ {
		p, err := partition.NewRandom(5, 5, src)
		require.NoError(t, err)
		if !p.Validate(partition.WithEpsilon(epsTest)) {
			fails++
		}
	}
	require.Zero(t, fails)
}

// TestNewRandom_Shapes checks non-square and degenerate-but-legal shapes.
func TestNewRandom_Shapes(t *testing.T) {
	t.Parallel()

	for _, dims := range [][2]int{{1, 1}, {1, 7}, {7, 1}, {3, 11}, {100, 100}} {
		p, err := partition.NewRandom(dims[0], dims[1], partition.NewSource(7))
		require.NoError(t, err)
		r, c := p.Shape()
		require.Equal(t, dims, [2]int{r, c})
		require.True(t, p.Validate())
	}

	// A single category always holds the whole membership.
	p := mustRandom(t, 1, 4, 3)
	require.Equal(t, [][]float64{{1, 1, 1, 1}}, p.Values())
}

// TestNewRandom_Deterministic reproduces a partition from the same seed.
func TestNewRandom_Deterministic(t *testing.T) {
	t.Parallel()

	a := mustRandom(t, 6, 4, 42)
	b := mustRandom(t, 6, 4, 42)
	c := mustRandom(t, 6, 4, 43)
	require.Equal(t, a.Values(), b.Values())
	require.NotEqual(t, a.Values(), c.Values())

	// Seed 0 maps to the default seed.
	require.Equal(t, mustRandom(t, 3, 3, 0).Values(), mustRandom(t, 3, 3, 1).Values())
}

// TestNewRandom_NilSource draws from the process-wide source.
func TestNewRandom_NilSource(t *testing.T) {
	t.Parallel()

	p, err := partition.NewRandom(4, 4, nil)
	require.NoError(t, err)
	require.True(t, p.Validate())
}

// TestNewRandom_BadDims rejects non-positive dimensions.
func TestNewRandom_BadDims(t *testing.T) {
	t.Parallel()

	for _, dims := range [][2]int{{0, 1}, {1, 0}, {-1, 3}, {0, 0}} {
		p, err := partition.NewRandom(dims[0], dims[1], partition.NewSource(1))
		require.Nil(t, p)
		require.ErrorIs(t, err, partition.ErrShape)
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	}
}
