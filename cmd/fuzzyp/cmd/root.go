// SPDX-License-Identifier: MIT

// Package cmd wires the fuzzyp command tree.
//
// Every command reads the effective settings from the app built in the root's
// PersistentPreRunE: config file first, then explicit flags on top.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/fuzzypart/codec"
	"github.com/katalvlaran/fuzzypart/internal/config"
	"github.com/katalvlaran/fuzzypart/partition"
)

// ErrInvalidPartition is returned by `validate` for a partition that fails
// the invariant, so the process exits non-zero.
var ErrInvalidPartition = errors.New("fuzzyp: partition is not valid")

// app carries the resolved settings shared by all subcommands.
type app struct {
	cfgFile string
	verbose bool
	epsilon float64
	format  string

	cfg    config.Config
	log    *slog.Logger
	outFmt codec.Format
}

// tolerance returns the resolved epsilon as a comparison option.
func (a *app) tolerance() partition.Option { return partition.WithEpsilon(a.cfg.Epsilon) }

// load merges config file and flags, then builds the logger.
func (a *app) load(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("epsilon") {
		cfg.Epsilon = a.epsilon
	}
	if flags.Changed("format") {
		cfg.Format = a.format
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	a.outFmt = cfg.OutputFormat()

	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}
	a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	a.log.Debug("settings resolved",
		"config", a.cfgFile, "epsilon", cfg.Epsilon, "format", cfg.Format, "seed", cfg.Seed)

	return nil
}

// readPartition loads a document and logs its shape.
func (a *app) readPartition(path string) (*partition.Partition, error) {
	p, err := codec.ReadFile(path)
	if err != nil {
		return nil, err
	}
	rows, cols := p.Shape()
	a.log.Debug("partition loaded", "path", path, "rows", rows, "cols", cols)

	return p, nil
}

// emit writes p to path when set (format by extension), else to out in the
// configured format.
func (a *app) emit(out io.Writer, path string, p *partition.Partition) error {
	if path != "" {
		if err := codec.WriteFile(path, p); err != nil {
			return err
		}
		a.log.Info("partition written", "path", path)
		return nil
	}

	return codec.Encode(out, p, a.outFmt)
}

// NewRootCmd builds a fresh command tree. Tests build one per case.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "fuzzyp",
		Short: "Fuzzy partition toolkit",
		Long: `fuzzyp works with fuzzy partitions: M×N membership matrices whose
columns sum to 1.

Documents are YAML or JSON:
  rows: 3
  cols: 4
  values: [[0.5, 0.7, 0.3, 0.0], [0.4, 0.2, 0.4, 0.1], [0.1, 0.1, 0.3, 0.9]]`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "TOML config file (epsilon, format, seed)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging on stderr")
	pf.Float64Var(&a.epsilon, "epsilon", partition.DefaultEpsilon, "tolerance for validate and compare")
	pf.StringVar(&a.format, "format", codec.FormatYAML.String(), "output format: yaml | json")

	root.AddCommand(
		newRandomCmd(a),
		newShowCmd(a),
		newValidateCmd(a),
		newTransformCmd(a),
		newCompareCmd(a),
		newVersionCmd(),
	)

	return root
}

// Execute runs the command tree on os.Args and reports the error on stderr.
func Execute() error {
	root := NewRootCmd()
	err := root.Execute()
	if err != nil {
		fmt.Fprintf(root.ErrOrStderr(), "fuzzyp: %v\n", err)
	}

	return err
}
