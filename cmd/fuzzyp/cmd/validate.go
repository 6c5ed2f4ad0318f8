// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE",
		Short: "Check the partition invariant within --epsilon",
		Long: `Check that every entry lies in [0,1] and every column sums to 1,
both within --epsilon. Prints "valid" or "invalid"; exits 1 when invalid.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.readPartition(args[0])
			if err != nil {
				return err
			}
			if !p.Validate(a.tolerance()) {
				fmt.Fprintln(cmd.OutOrStdout(), "invalid")
				return fmt.Errorf("%s: %w", args[0], ErrInvalidPartition)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), "valid")

			return err
		},
	}
}
