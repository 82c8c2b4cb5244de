package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Request DTOs
// ---------------------------------------------------------------------------

// QuoteLoanRequest carries the terms to price.
type QuoteLoanRequest struct {
	Principal         decimal.Decimal `json:"principal"`
	AnnualRatePercent decimal.Decimal `json:"annual_rate_percent"`
	TermMonths        int             `json:"term_months"`
}

// GenerateScheduleRequest carries the terms and start date for a full
// amortization schedule. LoanID is optional; one is generated when empty.
type GenerateScheduleRequest struct {
	StartDate         time.Time       `json:"start_date"`
	LoanID            string          `json:"loan_id,omitempty"`
	Principal         decimal.Decimal `json:"principal"`
	AnnualRatePercent decimal.Decimal `json:"annual_rate_percent"`
	TermMonths        int             `json:"term_months"`
}

// ComputePenaltyRequest carries an overdue amount and elapsed days. The
// penalty rate is optional; the policy default applies when nil.
type ComputePenaltyRequest struct {
	PenaltyRatePercentPerMonth *decimal.Decimal `json:"penalty_rate_percent_per_month,omitempty"`
	OverdueAmount              decimal.Decimal  `json:"overdue_amount"`
	DaysPastDue                int              `json:"days_past_due"`
}

// FinancialProfileRequest is the wire form of a borrower's financial facts.
type FinancialProfileRequest struct {
	MonthlyIncome    decimal.Decimal `json:"monthly_income"`
	MonthlyExpenses  decimal.Decimal `json:"monthly_expenses"`
	ExistingDebts    decimal.Decimal `json:"existing_debts"`
	Assets           decimal.Decimal `json:"assets"`
	CreditScore      int             `json:"credit_score"`
	EmploymentMonths int             `json:"employment_months"`
}

// AssessRiskRequest identifies the applicant and their financial profile.
type AssessRiskRequest struct {
	ApplicantID string                  `json:"applicant_id,omitempty"`
	Profile     FinancialProfileRequest `json:"profile"`
}

// EvaluateAffordabilityRequest pairs a profile with a proposed loan.
type EvaluateAffordabilityRequest struct {
	ApplicantID       string                  `json:"applicant_id,omitempty"`
	Profile           FinancialProfileRequest `json:"profile"`
	LoanAmount        decimal.Decimal         `json:"loan_amount"`
	AnnualRatePercent decimal.Decimal         `json:"annual_rate_percent"`
	TermMonths        int                     `json:"term_months"`
}

// ---------------------------------------------------------------------------
// Response DTOs
// ---------------------------------------------------------------------------

// PaymentResponse carries the periodic payment alone.
type PaymentResponse struct {
	MonthlyPayment decimal.Decimal `json:"monthly_payment"`
}

// LoanQuoteResponse carries the priced loan.
type LoanQuoteResponse struct {
	QuoteID        string          `json:"quote_id"`
	MonthlyPayment decimal.Decimal `json:"monthly_payment"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	TotalInterest  decimal.Decimal `json:"total_interest"`
}

// ScheduleEntryResponse represents a single amortization installment.
type ScheduleEntryResponse struct {
	DueDate           time.Time       `json:"due_date"`
	ID                string          `json:"id"`
	LoanID            string          `json:"loan_id"`
	Status            string          `json:"status"`
	PrincipalPortion  decimal.Decimal `json:"principal_portion"`
	InterestPortion   decimal.Decimal `json:"interest_portion"`
	TotalAmount       decimal.Decimal `json:"total_amount"`
	PenaltyAmount     decimal.Decimal `json:"penalty_amount"`
	InstallmentNumber int             `json:"installment_number"`
}

// ScheduleResponse is the full amortization schedule for a loan.
type ScheduleResponse struct {
	LoanID  string                  `json:"loan_id"`
	Entries []ScheduleEntryResponse `json:"entries"`
}

// PenaltyResponse carries an accrued penalty.
type PenaltyResponse struct {
	Penalty decimal.Decimal `json:"penalty"`
}

// RiskAssessmentResponse is the external representation of a risk assessment.
type RiskAssessmentResponse struct {
	AssessmentID           string          `json:"assessment_id"`
	OverallRisk            string          `json:"overall_risk"`
	RiskFactors            []string        `json:"risk_factors,omitempty"`
	RecommendedAmount      decimal.Decimal `json:"recommended_amount"`
	RecommendedRatePercent decimal.Decimal `json:"recommended_rate_percent"`
	DebtToIncomeRatio      decimal.Decimal `json:"debt_to_income_ratio"`
	RiskScore              int             `json:"risk_score"`
}

// AffordabilityResponse is the external representation of an affordability
// verdict.
type AffordabilityResponse struct {
	EvaluationID       string          `json:"evaluation_id"`
	Recommendations    []string        `json:"recommendations,omitempty"`
	MonthlyPayment     decimal.Decimal `json:"monthly_payment"`
	DebtToIncomeRatio  decimal.Decimal `json:"debt_to_income_ratio"`
	AffordabilityScore int             `json:"affordability_score"`
	IsAffordable       bool            `json:"is_affordable"`
}
