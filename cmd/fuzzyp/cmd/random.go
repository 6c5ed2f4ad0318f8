// SPDX-License-Identifier: MIT

package cmd

import (
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/fuzzypart/partition"
)

func newRandomCmd(a *app) *cobra.Command {
	var rows, cols int
	var seed uint64
	var out string

	c := &cobra.Command{
		Use:   "random",
		Short: "Generate a random valid partition",
		Long: `Generate a rows×cols partition with uniformly drawn columns rescaled
to sum to 1. A non-zero --seed (or config seed) makes the output reproducible.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("seed") {
				seed = a.cfg.Seed
			}
			var src rand.Source
			if seed != 0 {
				src = partition.NewSource(seed)
			}
			p, err := partition.NewRandom(rows, cols, src)
			if err != nil {
				return err
			}
			a.log.Debug("partition generated", "rows", rows, "cols", cols, "seed", seed)

			return a.emit(cmd.OutOrStdout(), out, p)
		},
	}
	c.Flags().IntVar(&rows, "rows", 3, "number of categories (M)")
	c.Flags().IntVar(&cols, "cols", 4, "number of objects (N)")
	c.Flags().Uint64Var(&seed, "seed", 0, "PRNG seed; 0 draws a fresh one")
	c.Flags().StringVarP(&out, "output", "o", "", "write to file (format by extension)")

	return c
}
