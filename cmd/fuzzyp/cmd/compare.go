// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCompareCmd(a *app) *cobra.Command {
	var alpha float64

	c := &cobra.Command{
		Use:   "compare A B",
		Short: "Compare two partitions of the same shape",
		Long: `Print whether A equals B within --epsilon, the degree to which B
sharpens A and, with --alpha, the alpha-approximation of B to A.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := a.readPartition(args[0])
			if err != nil {
				return err
			}
			v, err := a.readPartition(args[1])
			if err != nil {
				return err
			}
			sharp, err := u.SharpnessDegree(v)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "equal: %t\n", u.Equal(v, a.tolerance()))
			fmt.Fprintf(w, "sharpness: %.6f\n", sharp)
			if cmd.Flags().Changed("alpha") {
				approx, err := u.AlphaApproximate(alpha, v)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "alpha-approximate: %.6f\n", approx)
			}

			return nil
		},
	}
	c.Flags().Float64Var(&alpha, "alpha", 0, "also report the alpha-approximation at this level")

	return c
}
