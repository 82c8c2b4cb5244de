package valueobject

import "github.com/shopspring/decimal"

// ---------------------------------------------------------------------------
// FinancialProfile – immutable value object
// ---------------------------------------------------------------------------

// FinancialProfile carries the financial facts the engine scores against.
// ExistingDebts is a cumulative balance; the scoring formulas treat it as an
// annualized liability where noted.
type FinancialProfile struct {
	MonthlyIncome    decimal.Decimal
	MonthlyExpenses  decimal.Decimal
	ExistingDebts    decimal.Decimal
	Assets           decimal.Decimal
	CreditScore      int
	EmploymentMonths int
}

// Validate checks the profile against the engine's input constraints.
func (p FinancialProfile) Validate() error {
	if p.MonthlyIncome.LessThanOrEqual(decimal.Zero) {
		return &InvalidProfileError{Field: "monthly_income", Reason: "must be positive"}
	}
	if p.MonthlyExpenses.IsNegative() {
		return &InvalidProfileError{Field: "monthly_expenses", Reason: "must not be negative"}
	}
	if p.ExistingDebts.IsNegative() {
		return &InvalidProfileError{Field: "existing_debts", Reason: "must not be negative"}
	}
	if p.Assets.IsNegative() {
		return &InvalidProfileError{Field: "assets", Reason: "must not be negative"}
	}
	if p.EmploymentMonths < 0 {
		return &InvalidProfileError{Field: "employment_months", Reason: "must not be negative"}
	}
	return nil
}

// ---------------------------------------------------------------------------
// LoanTerms – immutable value object
// ---------------------------------------------------------------------------

// LoanTerms describes a proposed loan.
type LoanTerms struct {
	Principal         decimal.Decimal
	AnnualRatePercent decimal.Decimal
	TermMonths        int
}

// Validate checks the terms against the engine's input constraints.
func (t LoanTerms) Validate() error {
	if t.TermMonths <= 0 {
		return &InvalidTermError{TermMonths: t.TermMonths}
	}
	if t.Principal.LessThanOrEqual(decimal.Zero) {
		return &InvalidAmountError{Field: "principal", Constraint: "must be positive", Value: t.Principal}
	}
	if t.AnnualRatePercent.IsNegative() {
		return &InvalidAmountError{Field: "annual_rate_percent", Constraint: "must not be negative", Value: t.AnnualRatePercent}
	}
	return nil
}
