// SPDX-License-Identifier: MIT

package cmd

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/fuzzypart/partition"
)

// ErrUnknownTransform is returned for an OP argument outside the transform table.
var ErrUnknownTransform = errors.New("fuzzyp: unknown transform")

// transformFunc applies one named transform; alpha is ignored by the non-cut ones.
type transformFunc func(p *partition.Partition, alpha float64) (*partition.Partition, error)

func pure(f func(*partition.Partition) *partition.Partition) transformFunc {
	return func(p *partition.Partition, _ float64) (*partition.Partition, error) { return f(p), nil }
}

// transforms maps CLI operation names onto Partition methods.
var transforms = map[string]transformFunc{
	"alpha-cut":            (*partition.Partition).AlphaCut,
	"complement-alpha-cut": (*partition.Partition).ComplementAlphaCut,
	"ls":                   pure((*partition.Partition).LS),
	"complement-ls":        pure((*partition.Partition).ComplementLS),
	"mls":                  pure((*partition.Partition).MLS),
	"complement-mls":       pure((*partition.Partition).ComplementMLS),
	"complement":           pure((*partition.Partition).Complement),
}

// transformNames lists the table keys in sorted order.
func transformNames() []string {
	names := make([]string, 0, len(transforms))
	for name := range transforms {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

func newTransformCmd(a *app) *cobra.Command {
	var alpha float64
	var out string

	c := &cobra.Command{
		Use:       "transform FILE OP",
		Short:     "Apply a transform and print the resulting partition",
		Long:      "OP is one of: " + strings.Join(transformNames(), ", ") + ".",
		Args:      cobra.ExactArgs(2),
		ValidArgs: transformNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			fn, ok := transforms[args[1]]
			if !ok {
				return fmt.Errorf("%q (want one of %s): %w",
					args[1], strings.Join(transformNames(), ", "), ErrUnknownTransform)
			}
			p, err := a.readPartition(args[0])
			if err != nil {
				return err
			}
			res, err := fn(p, alpha)
			if err != nil {
				return err
			}
			a.log.Debug("transform applied", "op", args[1], "alpha", alpha)

			return a.emit(cmd.OutOrStdout(), out, res)
		},
	}
	c.Flags().Float64Var(&alpha, "alpha", 0.5, "level for alpha-cut and complement-alpha-cut")
	c.Flags().StringVarP(&out, "output", "o", "", "write to file (format by extension)")

	return c
}
