package cli

import (
	"github.com/spf13/cobra"
)

func newSearchCmd(ledger Ledger) *cobra.Command {
	return &cobra.Command{
		Use:   "search QUERY",
		Short: "List the expenses whose memo contains QUERY",
		Long: `List the expenses whose memo contains QUERY as a case-insensitive
substring. An empty QUERY matches every expense.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rs, err := ledger.Search(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printRowSet(cmd.OutOrStdout(), rs)
			return nil
		},
	}
}
