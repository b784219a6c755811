package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newClearCmd(ledger Ledger) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete every expense",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			fmt.Fprint(out, "Delete all expenses? (y/n) ")
			answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			answer = strings.ToLower(strings.TrimSpace(answer))
			if answer != "y" && answer != "yes" {
				fmt.Fprintln(out, "Aborted.")
				return nil
			}

			removed, err := ledger.Clear(cmd.Context())
			if err != nil {
				return err
			}

			noun := "expenses"
			if removed == 1 {
				noun = "expense"
			}
			fmt.Fprintf(out, "Removed %d %s.\n", removed, noun)
			return nil
		},
	}
}
