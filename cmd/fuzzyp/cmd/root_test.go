// SPDX-License-Identifier: MIT
package cmd_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fuzzypart/cmd/fuzzyp/cmd"
	"github.com/katalvlaran/fuzzypart/codec"
	"github.com/katalvlaran/fuzzypart/internal/config"
	"github.com/katalvlaran/fuzzypart/partition"
)

// run executes a fresh command tree and captures both streams.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := cmd.NewRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()

	return stdout.String(), stderr.String(), err
}

// writeDoc stores rows as a document under dir and returns its path.
func writeDoc(t *testing.T, dir, name string, rows [][]float64) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, codec.WriteFile(path, partition.MustNew(rows)))

	return path
}

func sampleRows() [][]float64 {
	return [][]float64{
		{0.5, 0.7, 0.3, 0.0},
		{0.4, 0.2, 0.4, 0.1},
		{0.1, 0.1, 0.3, 0.9},
	}
}

func nearlyValidRows() [][]float64 {
	rows := sampleRows()
	rows[2][3] = 0.9001

	return rows
}

func TestRandom(t *testing.T) {
	t.Parallel()

	out, _, err := run(t, "random", "--rows", "5", "--cols", "6", "--seed", "42", "--format", "json")
	require.NoError(t, err)
	p, err := codec.Decode(strings.NewReader(out), codec.FormatJSON)
	require.NoError(t, err)
	r, c := p.Shape()
	require.Equal(t, [2]int{5, 6}, [2]int{r, c})
	require.True(t, p.Validate())

	again, _, err := run(t, "random", "--rows", "5", "--cols", "6", "--seed", "42", "--format", "json")
	require.NoError(t, err)
	require.Equal(t, out, again)

	_, _, err = run(t, "random", "--rows", "0")
	require.ErrorIs(t, err, partition.ErrShape)
}

func TestRandom_ToFileThenShow(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "r.yaml")
	_, _, err := run(t, "random", "--rows", "2", "--cols", "3", "--seed", "1", "-o", path)
	require.NoError(t, err)

	out, _, err := run(t, "show", path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 2)
	require.Len(t, lines[0], 3*10)
}

func TestShow(t *testing.T) {
	t.Parallel()

	path := writeDoc(t, t.TempDir(), "u.yaml", sampleRows())
	out, _, err := run(t, "show", path)
	require.NoError(t, err)
	require.Equal(t, partition.MustNew(sampleRows()).String()+"\n", out)

	_, _, err = run(t, "show", filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
	_, _, err = run(t, "show")
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	good := writeDoc(t, dir, "good.json", sampleRows())
	near := writeDoc(t, dir, "near.yaml", nearlyValidRows())

	out, _, err := run(t, "validate", good)
	require.NoError(t, err)
	require.Equal(t, "valid\n", out)

	out, _, err = run(t, "validate", near)
	require.ErrorIs(t, err, cmd.ErrInvalidPartition)
	require.Equal(t, "invalid\n", out)

	out, _, err = run(t, "validate", "--epsilon", "0.01", near)
	require.NoError(t, err)
	require.Equal(t, "valid\n", out)
}

func TestValidate_ConfigAndFlagPrecedence(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	near := writeDoc(t, dir, "near.yaml", nearlyValidRows())
	cfgPath := filepath.Join(dir, "fuzzyp.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("epsilon = 0.01\n"), 0o644))

	_, _, err := run(t, "--config", cfgPath, "validate", near)
	require.NoError(t, err)

	// The flag wins over the file.
	_, _, err = run(t, "--config", cfgPath, "--epsilon", "1e-8", "validate", near)
	require.ErrorIs(t, err, cmd.ErrInvalidPartition)

	require.NoError(t, os.WriteFile(cfgPath, []byte("format = \"xml\"\n"), 0o644))
	_, _, err = run(t, "--config", cfgPath, "validate", near)
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	_, _, err = run(t, "--epsilon=-1", "validate", near)
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestTransform(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeDoc(t, dir, "u.yaml", sampleRows())
	u := partition.MustNew(sampleRows())

	out, _, err := run(t, "transform", path, "alpha-cut", "--alpha", "0.25")
	require.NoError(t, err)
	got, err := codec.Decode(strings.NewReader(out), codec.FormatYAML)
	require.NoError(t, err)
	want, err := u.AlphaCut(0.25)
	require.NoError(t, err)
	require.True(t, want.Equal(got))

	outPath := filepath.Join(dir, "c.json")
	_, _, err = run(t, "transform", path, "complement", "-o", outPath)
	require.NoError(t, err)
	got, err = codec.ReadFile(outPath)
	require.NoError(t, err)
	require.True(t, u.Complement().Equal(got))

	for _, op := range []string{"complement-alpha-cut", "ls", "complement-ls", "mls", "complement-mls"} {
		_, _, err = run(t, "transform", path, op, "--alpha", "0.25")
		require.NoError(t, err, op)
	}

	_, _, err = run(t, "transform", path, "sharpen")
	require.ErrorIs(t, err, cmd.ErrUnknownTransform)
	_, _, err = run(t, "transform", path, "alpha-cut", "--alpha", "0")
	require.ErrorIs(t, err, partition.ErrAlphaNotPositive)
	_, _, err = run(t, "transform", path, "alpha-cut", "--alpha", "0.95")
	require.ErrorIs(t, err, partition.ErrAlphaAboveMax)
}

func TestCompare(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	a := writeDoc(t, dir, "a.yaml", sampleRows())
	b := writeDoc(t, dir, "b.yaml", [][]float64{
		{0.4, 1.0, 0.3, 0.1},
		{0.4, 0.0, 0.3, 0.2},
		{0.2, 0.0, 0.4, 0.7},
	})

	out, _, err := run(t, "compare", a, a)
	require.NoError(t, err)
	require.Equal(t, "equal: true\nsharpness: 1.000000\n", out)

	out, _, err = run(t, "compare", a, b, "--alpha", "0.3")
	require.NoError(t, err)
	require.Contains(t, out, "equal: false\n")
	require.Contains(t, out, "alpha-approximate: 1.000000\n")

	small := writeDoc(t, dir, "s.yaml", [][]float64{{1}})
	_, _, err = run(t, "compare", a, small)
	require.ErrorIs(t, err, partition.ErrDimensionMismatch)
}

func TestVersionAndVerbose(t *testing.T) {
	t.Parallel()

	out, _, err := run(t, "version")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "fuzzyp v"+cmd.Version+"\n"))

	path := writeDoc(t, t.TempDir(), "u.yaml", sampleRows())
	_, stderr, err := run(t, "-v", "show", path)
	require.NoError(t, err)
	require.Contains(t, stderr, "level=DEBUG")
	require.Contains(t, stderr, "partition loaded")

	_, stderr, err = run(t, "show", path)
	require.NoError(t, err)
	require.Empty(t, stderr)
}
