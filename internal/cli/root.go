package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Duncan-Britt/Expenses/internal/core"
	"github.com/Duncan-Britt/Expenses/internal/render"
)

// NewRootCmd builds the command tree. Bare invocation prints usage.
func NewRootCmd(ledger Ledger, in io.Reader, out io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "expenses",
		Short: "Personal expense ledger",
		Long: `Expenses is a personal expense ledger backed by PostgreSQL.

Each expense is an amount with two decimal places, a memo, and a
calendar date. Records can be listed, searched by memo substring,
deleted by id, or cleared entirely.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.SetIn(in)
	rootCmd.SetOut(out)

	rootCmd.AddCommand(
		newAddCmd(ledger),
		newListCmd(ledger),
		newSearchCmd(ledger),
		newDeleteCmd(ledger),
		newClearCmd(ledger),
	)

	return rootCmd
}

// printRowSet writes the summary line, then (for a non-empty set) the
// table and the total block.
func printRowSet(out io.Writer, rs core.RowSet) {
	fmt.Fprintln(out, render.Summary(rs.Count()))
	if rs.Empty() {
		return
	}
	for line := range render.Table(rs.Expenses) {
		fmt.Fprintln(out, line)
	}
	fmt.Fprintln(out, render.Total(rs.Total))
}
