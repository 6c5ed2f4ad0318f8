// SPDX-License-Identifier: MIT
package partition_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/fuzzypart/matrix"
	"github.com/katalvlaran/fuzzypart/partition"
)

// TestMat copies out row-major and never aliases.
func TestMat(t *testing.T) {
	t.Parallel()

	p := mustPartition(t, sampleRows())
	m := p.Mat()
	r, c := m.Dims()
	require.Equal(t, 3, r)
	require.Equal(t, 4, c)
	require.Equal(t, 0.9, m.At(2, 3))

	m.Set(0, 0, 42)
	v, err := p.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 0.5, v)
}

// TestFromMat round-trips through gonum and reports bad input.
func TestFromMat(t *testing.T) {
	t.Parallel()

	p := mustPartition(t, sampleRows())
	back, err := partition.FromMat(p.Mat())
	require.NoError(t, err)
	require.True(t, p.Equal(back, partition.WithEpsilon(0)))

	// Any mat.Matrix works, including a transposed view.
	tr, err := partition.FromMat(p.Mat().T())
	require.NoError(t, err)
	r, c := tr.Shape()
	require.Equal(t, [2]int{4, 3}, [2]int{r, c})

	_, err = partition.FromMat(nil)
	require.ErrorIs(t, err, partition.ErrShape)

	_, err = partition.FromMat(mat.NewDense(1, 1, []float64{math.NaN()}))
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}
