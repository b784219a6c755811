package storage

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when no expense has the requested id.
	ErrNotFound = errors.New("expense not found")

	// ErrAmountNotPositive is returned when an insert violates the
	// positive_amount_check constraint.
	ErrAmountNotPositive = errors.New("amount must be greater than zero")
)

// SchemaError reports a failed schema bootstrap. It is fatal: the store
// cannot be used when the expenses table is missing or unverifiable.
type SchemaError struct {
	Err error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema bootstrap: %v", e.Err)
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}
