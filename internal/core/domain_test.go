package core

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestExpenseValidate(t *testing.T) {
	valid := Expense{
		Amount:    decimal.RequireFromString("9.99"),
		Memo:      "coffee",
		CreatedOn: NewDate(2026, 8, 31),
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid expense rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Expense)
		want   error
	}{
		{"zero amount", func(e *Expense) { e.Amount = decimal.Zero }, ErrInvalidAmount},
		{"negative amount", func(e *Expense) { e.Amount = decimal.NewFromInt(-1) }, ErrInvalidAmount},
		{"blank memo", func(e *Expense) { e.Memo = "   " }, ErrEmptyMemo},
		{"zero date", func(e *Expense) { e.CreatedOn = Date{} }, ErrInvalidDate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := valid
			tc.mutate(&e)
			if err := e.Validate(); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestNewRowSet(t *testing.T) {
	empty := NewRowSet(nil)
	if !empty.Empty() || empty.Count() != 0 {
		t.Fatal("empty row set should report empty")
	}
	if !empty.Total.IsZero() {
		t.Fatalf("empty total should be zero, got %s", empty.Total)
	}

	rs := NewRowSet([]Expense{
		{ID: 1, Amount: decimal.RequireFromString("9.99"), Memo: "coffee"},
		{ID: 2, Amount: decimal.RequireFromString("5.00"), Memo: "tea"},
	})
	if rs.Empty() || rs.Count() != 2 {
		t.Fatalf("expected 2 rows, got %d", rs.Count())
	}
	if rs.Total.StringFixed(2) != "15.99" {
		t.Fatalf("expected total 15.99, got %s", rs.Total.StringFixed(2))
	}
	if rs.Expenses[0].ID != 1 || rs.Expenses[1].ID != 2 {
		t.Fatal("row order must be preserved")
	}
}
