// Package core provides the expense domain types and input parsing.
//
// Parsing here is the fast-fail convenience layer: the database check
// constraint remains the authoritative guard on amounts.
package core

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	amountPattern = regexp.MustCompile(`^[0-9]+(\.[0-9]{0,2})?$`)
	idPattern     = regexp.MustCompile(`^[0-9]+$`)
)

// ParseAmount converts a decimal string of the form digits[.digits{0,2}]
// to an exact decimal value. At most two fractional digits are accepted
// and the value must be positive.
//
// Examples:
//
//	ParseAmount("12.5")  -> 12.5, nil
//	ParseAmount("12.")   -> 12, nil
//	ParseAmount("12.345") -> error (too many fractional digits)
//	ParseAmount("-3")     -> error (sign not allowed)
func ParseAmount(s string) (decimal.Decimal, error) {
	if !amountPattern.MatchString(s) {
		return decimal.Zero, ErrInvalidAmount
	}
	// A bare trailing dot ("12.") is within the grammar but not accepted
	// by decimal.NewFromString.
	amt, err := decimal.NewFromString(strings.TrimSuffix(s, "."))
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	if !amt.IsPositive() {
		return decimal.Zero, ErrInvalidAmount
	}
	return amt, nil
}

// ParseDate parses an ISO calendar date (2006-01-02).
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(ISODateLayout, s)
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return DateOf(t), nil
}

// ParseID parses a numeric-looking expense id.
func ParseID(s string) (int64, error) {
	if !idPattern.MatchString(s) {
		return 0, strconv.ErrSyntax
	}
	return strconv.ParseInt(s, 10, 64)
}
