package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Duncan-Britt/Expenses/internal/core"
	"github.com/Duncan-Britt/Expenses/internal/storage"
)

func newDeleteCmd(ledger Ledger) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID...",
		Short: "Delete expenses by id",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			// Bad ids and missing rows are reported per argument; the
			// remaining ids are still processed.
			for _, arg := range args {
				id, err := core.ParseID(arg)
				if err != nil {
					fmt.Fprintf(out, "Invalid id: %s\n", arg)
					continue
				}

				e, err := ledger.Delete(cmd.Context(), id)
				if err != nil {
					if errors.Is(err, storage.ErrNotFound) {
						fmt.Fprintf(out, "No expense with id %d.\n", id)
						continue
					}
					return err
				}

				fmt.Fprintf(out, "Deleted expense %d: %s, %s, %s\n",
					e.ID, e.CreatedOn, e.Amount.StringFixed(2), e.Memo)
			}
			return nil
		},
	}
}
