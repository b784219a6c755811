// Package cli dispatches commands to the store. It validates input
// shape (amount grammar, id syntax, date parseability) before any store
// call is made, prints the rendered output, and turns store failures
// into one-line messages.
package cli

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/Duncan-Britt/Expenses/internal/core"
)

// Ledger is the store surface the dispatcher needs. *storage.Store
// satisfies it; tests use an in-memory implementation.
type Ledger interface {
	Add(ctx context.Context, amount decimal.Decimal, memo string, createdOn core.Date) (core.Expense, error)
	List(ctx context.Context) (core.RowSet, error)
	Search(ctx context.Context, query string) (core.RowSet, error)
	Delete(ctx context.Context, id int64) (core.Expense, error)
	Clear(ctx context.Context) (int64, error)
}
