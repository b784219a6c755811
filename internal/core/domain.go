package core

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type (
	// Date is a calendar day without a time component.
	Date struct {
		time.Time
	}

	// Expense is a single ledger row. Rows are immutable once created;
	// the only mutations are delete and clear.
	Expense struct {
		ID        int64
		Amount    decimal.Decimal
		Memo      string
		CreatedOn Date
	}

	// RowSet is an ordered collection of expenses together with the
	// exact decimal sum of their amounts.
	RowSet struct {
		Expenses []Expense
		Total    decimal.Decimal
	}
)

var (
	ErrInvalidAmount = errors.New("invalid amount")
	ErrEmptyMemo     = errors.New("empty memo")
	ErrInvalidDate   = errors.New("invalid date")
)

// ISODateLayout is the wire and display format for expense dates.
const ISODateLayout = "2006-01-02"

// NewDate creates a Date from year, month, day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// Today returns the current calendar date.
func Today() Date {
	y, m, d := time.Now().Date()
	return NewDate(y, int(m), d)
}

// DateOf truncates t to its calendar day.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, int(m), d)
}

// String renders the date in ISO form (2006-01-02).
func (d Date) String() string {
	return d.Format(ISODateLayout)
}

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

func (e Expense) Validate() error {
	if !e.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	if len(strings.TrimSpace(e.Memo)) == 0 {
		return ErrEmptyMemo
	}
	return e.CreatedOn.Validate()
}

// NewRowSet builds a RowSet from rows, computing the aggregate total
// with decimal precision. The row order is preserved.
func NewRowSet(rows []Expense) RowSet {
	total := decimal.Zero
	for _, e := range rows {
		total = total.Add(e.Amount)
	}
	return RowSet{Expenses: rows, Total: total}
}

// Empty reports whether the set holds no rows, so callers can choose a
// "no expenses" message over an empty table.
func (rs RowSet) Empty() bool {
	return len(rs.Expenses) == 0
}

// Count returns the number of rows in the set.
func (rs RowSet) Count() int {
	return len(rs.Expenses)
}
