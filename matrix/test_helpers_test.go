// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures for Dense and the reductions.
//   - Hide the concrete type behind the Matrix interface for the validators.

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fuzzypart/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int, opts ...matrix.Option) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c, opts...)
	require.NoError(t, err)

	return m
}

// NewFilledDense builds an r×c *Dense from a row-major flat slice.
func NewFilledDense(t *testing.T, r, c int, data []float64) *matrix.Dense {
	t.Helper()
	require.Len(t, data, r*c, "NewFilledDense: data length")
	rows := make([][]float64, r)
	var i int
	for i = 0; i < r; i++ {
		rows[i] = data[i*c : (i+1)*c]
	}
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// sliceClose asserts element-wise |got-want| <= atol + rtol*|want|.
func sliceClose(t *testing.T, got, want []float64, atol, rtol float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for k := range want {
		tol := atol + rtol*math.Abs(want[k])
		require.LessOrEqualf(t, math.Abs(got[k]-want[k]), tol, "index %d: got %v want %v", k, got[k], want[k])
	}
}
