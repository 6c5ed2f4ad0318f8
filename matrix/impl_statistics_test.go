// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const epsTight = 1e-12

// ------------------------------
// Column reductions
// ------------------------------

func TestColReductions(t *testing.T) {
	t.Parallel()

	X := NewFilledDense(t, 3, 2, []float64{
		0.5, 0.1,
		0.2, 0.7,
		0.3, 0.2,
	})

	require.Equal(t, []float64{0.5, 0.7}, X.ColMax())
	require.Equal(t, []float64{0.2, 0.1}, X.ColMin())
	sliceClose(t, X.ColSums(), []float64{1, 1}, epsTight, 0)
	require.Equal(t, []int{2, 1}, X.ColCountAtLeast(0.3))
	require.Equal(t, []int{3, 3}, X.ColCountAtLeast(0))
	require.Equal(t, []int{0, 0}, X.ColCountAtLeast(0.71))

	lo, hi := X.MinMax()
	require.Equal(t, 0.1, lo)
	require.Equal(t, 0.7, hi)
}

func TestColReductions_SingleCell(t *testing.T) {
	t.Parallel()

	X := NewFilledDense(t, 1, 1, []float64{-3})
	require.Equal(t, []float64{-3}, X.ColMax())
	require.Equal(t, []float64{-3}, X.ColMin())
	lo, hi := X.MinMax()
	require.Equal(t, lo, hi)
}
