package valueobject

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Validation errors
// ---------------------------------------------------------------------------
//
// Every failure mode of the engine is an input-validation error detected
// before any computation starts. Each error names the offending field and the
// violated constraint so the caller can correct the request.

// InvalidAmountError reports a monetary amount or rate outside its allowed
// range.
type InvalidAmountError struct {
	Field      string
	Constraint string
	Value      decimal.Decimal
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("invalid amount: %s %s, got %s", e.Field, e.Constraint, e.Value)
}

// InvalidTermError reports a non-positive loan term.
type InvalidTermError struct {
	TermMonths int
}

func (e *InvalidTermError) Error() string {
	return fmt.Sprintf("invalid term: term months must be at least 1, got %d", e.TermMonths)
}

// InvalidProfileError reports a financial profile that cannot be scored.
type InvalidProfileError struct {
	Field  string
	Reason string
}

func (e *InvalidProfileError) Error() string {
	return fmt.Sprintf("invalid profile: %s %s", e.Field, e.Reason)
}
