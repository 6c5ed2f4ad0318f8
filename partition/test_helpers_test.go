// SPDX-License-Identifier: MIT
// Package partition_test contains shared fixtures and assertions.
//
// Purpose:
//   - Provide the literal partitions reused across test files.
//   - Keep comparison failures readable by printing both matrices.

package partition_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fuzzypart/partition"
)

// epsTest is the comparison tolerance shared by every test in this package.
const epsTest = 1e-8

// sampleRows is the 3×4 partition used by the alpha-cut, String and Validate tests.
func sampleRows() [][]float64 {
	return [][]float64{
		{0.5, 0.7, 0.3, 0.0},
		{0.4, 0.2, 0.4, 0.1},
		{0.1, 0.1, 0.3, 0.9},
	}
}

// mustPartition builds a partition from literal rows or fails the test.
func mustPartition(t testing.TB, rows [][]float64) *partition.Partition {
	t.Helper()
	p, err := partition.New(rows)
	require.NoError(t, err)

	return p
}

// mustRandom builds a seeded random partition or fails the test.
func mustRandom(t testing.TB, rows, cols int, seed uint64) *partition.Partition {
	t.Helper()
	p, err := partition.NewRandom(rows, cols, partition.NewSource(seed))
	require.NoError(t, err)

	return p
}

// requireEqualPartition fails with both renderings when want and got differ beyond epsTest.
func requireEqualPartition(t testing.TB, want, got *partition.Partition) {
	t.Helper()
	require.NotNil(t, got)
	if !want.Equal(got, partition.WithEpsilon(epsTest)) {
		require.Failf(t, "partitions differ", "want:\n%s\ngot:\n%s", want, got)
	}
}
