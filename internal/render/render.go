// Package render formats row sets as fixed-width text. It never
// re-sorts: lines come out in the order rows came in.
package render

import (
	"fmt"
	"iter"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Duncan-Britt/Expenses/internal/core"
)

const ruleWidth = 40

// Table yields one formatted line per expense: right-justified id
// (width 4), ISO date, right-justified amount (width 10, two decimals),
// then the memo, separated by space-and-pipe.
func Table(rows []core.Expense) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, e := range rows {
			line := fmt.Sprintf("%4d | %s | %10s | %s",
				e.ID, e.CreatedOn, e.Amount.StringFixed(2), e.Memo)
			if !yield(line) {
				return
			}
		}
	}
}

// Summary phrases the row count.
func Summary(count int) string {
	switch count {
	case 0:
		return "There are no expenses."
	case 1:
		return "There is 1 expense."
	default:
		return fmt.Sprintf("There are %d expenses.", count)
	}
}

// Total renders the separator rule and the total line. "Total" is
// left-aligned and the value right-justified into a 26-character field,
// making the total line 31 characters wide.
func Total(sum decimal.Decimal) string {
	return strings.Repeat("-", ruleWidth) + "\n" +
		fmt.Sprintf("Total%26s", sum.StringFixed(2))
}
