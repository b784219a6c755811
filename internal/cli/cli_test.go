package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/Duncan-Britt/Expenses/internal/core"
	"github.com/Duncan-Britt/Expenses/internal/storage"
)

// memLedger is an in-memory Ledger used to exercise the dispatcher
// without a database. It mirrors the store's contracts: positive-amount
// rejection, case-insensitive substring search, not-found deletes.
type memLedger struct {
	nextID int64
	rows   []core.Expense
	adds   int
}

func (m *memLedger) Add(_ context.Context, amount decimal.Decimal, memo string, createdOn core.Date) (core.Expense, error) {
	m.adds++
	if !amount.IsPositive() {
		return core.Expense{}, storage.ErrAmountNotPositive
	}
	m.nextID++
	e := core.Expense{ID: m.nextID, Amount: amount, Memo: memo, CreatedOn: createdOn}
	m.rows = append(m.rows, e)
	return e, nil
}

func (m *memLedger) List(_ context.Context) (core.RowSet, error) {
	return core.NewRowSet(m.rows), nil
}

func (m *memLedger) Search(_ context.Context, query string) (core.RowSet, error) {
	q := strings.ToLower(query)
	var matched []core.Expense
	for _, e := range m.rows {
		if strings.Contains(strings.ToLower(e.Memo), q) {
			matched = append(matched, e)
		}
	}
	return core.NewRowSet(matched), nil
}

func (m *memLedger) Delete(_ context.Context, id int64) (core.Expense, error) {
	for i, e := range m.rows {
		if e.ID == id {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return e, nil
		}
	}
	return core.Expense{}, storage.ErrNotFound
}

func (m *memLedger) Clear(_ context.Context) (int64, error) {
	removed := int64(len(m.rows))
	m.rows = nil
	return removed, nil
}

func execute(t *testing.T, ledger Ledger, stdin string, args ...string) string {
	t.Helper()

	out := &bytes.Buffer{}
	cmd := NewRootCmd(ledger, strings.NewReader(stdin), out)
	cmd.SetErr(out)
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.String()
}

func seed(t *testing.T, ledger *memLedger) {
	t.Helper()
	execute(t, ledger, "", "add", "9.99", "coffee", "2026-08-31")
	execute(t, ledger, "", "add", "5.00", "tea", "2026-08-31")
}

func TestAddAndList(t *testing.T) {
	ledger := &memLedger{}
	seed(t, ledger)

	got := execute(t, ledger, "", "list")
	want := "There are 2 expenses.\n" +
		"   1 | 2026-08-31 |       9.99 | coffee\n" +
		"   2 | 2026-08-31 |       5.00 | tea\n" +
		"----------------------------------------\n" +
		"Total                     15.99\n"
	require.Equal(t, want, got)
}

func TestListEmpty(t *testing.T) {
	got := execute(t, &memLedger{}, "", "list")
	require.Equal(t, "There are no expenses.\n", got)
}

func TestAddDisplaysTwoDecimals(t *testing.T) {
	ledger := &memLedger{}
	execute(t, ledger, "", "add", "12.5", "lunch", "2026-08-31")

	got := execute(t, ledger, "", "list")
	require.Contains(t, got, "      12.50 | lunch")
	require.Contains(t, got, "Total                     12.50")
}

func TestAddDefaultsToToday(t *testing.T) {
	ledger := &memLedger{}
	execute(t, ledger, "", "add", "3.25", "bus fare")

	require.Len(t, ledger.rows, 1)
	require.Equal(t, core.Today().String(), ledger.rows[0].CreatedOn.String())
}

func TestAddInvalidInput(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"bad amount", []string{"add", "12.345", "coffee"}, "Invalid amount: 12.345\n"},
		{"zero amount", []string{"add", "0", "coffee"}, "Invalid amount: 0\n"},
		{"negative amount", []string{"add", "-5", "coffee"}, "Invalid amount: -5\n"},
		{"non-numeric amount", []string{"add", "ten", "coffee"}, "Invalid amount: ten\n"},
		{"bad date", []string{"add", "5.00", "coffee", "yesterday"}, "Invalid date: yesterday\n"},
		{"blank memo", []string{"add", "5.00", "   "}, "Memo cannot be empty.\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ledger := &memLedger{}
			got := execute(t, ledger, "", tc.args...)
			require.Equal(t, tc.want, got)
			require.Zero(t, ledger.adds, "store must not be touched on malformed input")
		})
	}
}

// rejectingLedger simulates the database refusing an insert even though
// the input passed client-side validation.
type rejectingLedger struct {
	memLedger
}

func (r *rejectingLedger) Add(context.Context, decimal.Decimal, string, core.Date) (core.Expense, error) {
	return core.Expense{}, storage.ErrAmountNotPositive
}

func TestAddConstraintRejection(t *testing.T) {
	got := execute(t, &rejectingLedger{}, "", "add", "5.00", "coffee")
	require.Equal(t, "Amount must be greater than zero.\n", got)
}

func TestSearch(t *testing.T) {
	ledger := &memLedger{}
	seed(t, ledger)

	got := execute(t, ledger, "", "search", "tea")
	want := "There is 1 expense.\n" +
		"   2 | 2026-08-31 |       5.00 | tea\n" +
		"----------------------------------------\n" +
		"Total                      5.00\n"
	require.Equal(t, want, got)
}

func TestSearchCaseInsensitive(t *testing.T) {
	ledger := &memLedger{}
	seed(t, ledger)

	got := execute(t, ledger, "", "search", "COFFEE")
	require.Contains(t, got, "There is 1 expense.")
	require.Contains(t, got, "coffee")
}

func TestSearchEmptyQueryMatchesAll(t *testing.T) {
	ledger := &memLedger{}
	seed(t, ledger)

	got := execute(t, ledger, "", "search", "")
	require.Contains(t, got, "There are 2 expenses.")
}

func TestSearchNoMatches(t *testing.T) {
	ledger := &memLedger{}
	seed(t, ledger)

	got := execute(t, ledger, "", "search", "rent")
	require.Equal(t, "There are no expenses.\n", got)
}

func TestDelete(t *testing.T) {
	ledger := &memLedger{}
	seed(t, ledger)

	got := execute(t, ledger, "", "delete", "1")
	require.Equal(t, "Deleted expense 1: 2026-08-31, 9.99, coffee\n", got)
	require.Len(t, ledger.rows, 1)
}

func TestDeleteMixedIDs(t *testing.T) {
	ledger := &memLedger{}
	seed(t, ledger)

	got := execute(t, ledger, "", "delete", "2", "99", "two")
	require.Equal(t,
		"Deleted expense 2: 2026-08-31, 5.00, tea\n"+
			"No expense with id 99.\n"+
			"Invalid id: two\n",
		got)
	require.Len(t, ledger.rows, 1)
}

func TestClearConfirmed(t *testing.T) {
	ledger := &memLedger{}
	seed(t, ledger)

	got := execute(t, ledger, "y\n", "clear")
	require.Contains(t, got, "Delete all expenses? (y/n) ")
	require.Contains(t, got, "Removed 2 expenses.")
	require.Empty(t, ledger.rows)
}

func TestClearAborted(t *testing.T) {
	ledger := &memLedger{}
	seed(t, ledger)

	got := execute(t, ledger, "n\n", "clear")
	require.Contains(t, got, "Aborted.")
	require.Len(t, ledger.rows, 2)
}

func TestClearEmptyLedger(t *testing.T) {
	got := execute(t, &memLedger{}, "yes\n", "clear")
	require.Contains(t, got, "Removed 0 expenses.")
}

func TestBareInvocationPrintsUsage(t *testing.T) {
	got := execute(t, &memLedger{}, "")
	require.Contains(t, got, "Usage:")
	require.Contains(t, got, "expenses")
}
