package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Duncan-Britt/Expenses/internal/core"
	"github.com/Duncan-Britt/Expenses/internal/storage"
)

func newAddCmd(ledger Ledger) *cobra.Command {
	return &cobra.Command{
		Use:   "add AMOUNT MEMO [DATE]",
		Short: "Record a new expense",
		Long: `Record a new expense. AMOUNT is a positive decimal with at most two
fractional digits. DATE is an ISO date (2006-01-02) and defaults to
today when omitted.`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			amount, err := core.ParseAmount(args[0])
			if err != nil {
				fmt.Fprintf(out, "Invalid amount: %s\n", args[0])
				return nil
			}

			memo := args[1]
			if strings.TrimSpace(memo) == "" {
				fmt.Fprintln(out, "Memo cannot be empty.")
				return nil
			}

			createdOn := core.Today()
			if len(args) == 3 {
				createdOn, err = core.ParseDate(args[2])
				if err != nil {
					fmt.Fprintf(out, "Invalid date: %s\n", args[2])
					return nil
				}
			}

			e, err := ledger.Add(cmd.Context(), amount, memo, createdOn)
			if err != nil {
				if errors.Is(err, storage.ErrAmountNotPositive) {
					fmt.Fprintln(out, "Amount must be greater than zero.")
					return nil
				}
				return err
			}

			fmt.Fprintf(out, "Recorded expense %d.\n", e.ID)
			return nil
		},
	}
}
