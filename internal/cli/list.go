package cli

import (
	"github.com/spf13/cobra"
)

func newListCmd(ledger Ledger) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all expenses with their total",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rs, err := ledger.List(cmd.Context())
			if err != nil {
				return err
			}
			printRowSet(cmd.OutOrStdout(), rs)
			return nil
		},
	}
}
