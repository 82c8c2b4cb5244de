package event

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DomainEvent is the interface all underwriting decision events implement.
// Consumers downstream (workflow engines, reporting) subscribe to these; the
// engine itself never reads them back.
type DomainEvent interface {
	EventID() string
	EventType() string
	AggregateID() string
	OccurredAt() time.Time
}

// BaseEvent provides the common identity fields of a DomainEvent.
type BaseEvent struct {
	ID          string    `json:"event_id"`
	Type        string    `json:"event_type"`
	Aggregate   string    `json:"aggregate_id"`
	OccurredUTC time.Time `json:"occurred_at"`
}

// NewBaseEvent creates a BaseEvent with a generated UUID and the current time.
func NewBaseEvent(eventType, aggregateID string) BaseEvent {
	return BaseEvent{
		ID:          uuid.New().String(),
		Type:        eventType,
		Aggregate:   aggregateID,
		OccurredUTC: time.Now().UTC(),
	}
}

func (e BaseEvent) EventID() string       { return e.ID }
func (e BaseEvent) EventType() string     { return e.Type }
func (e BaseEvent) AggregateID() string   { return e.Aggregate }
func (e BaseEvent) OccurredAt() time.Time { return e.OccurredUTC }

// ---------------------------------------------------------------------------
// Decision events
// ---------------------------------------------------------------------------

// LoanQuoted is raised when a quote (payment and total cost) is produced.
type LoanQuoted struct {
	BaseEvent
	Principal         decimal.Decimal `json:"principal"`
	AnnualRatePercent decimal.Decimal `json:"annual_rate_percent"`
	MonthlyPayment    decimal.Decimal `json:"monthly_payment"`
	TotalAmount       decimal.Decimal `json:"total_amount"`
	TermMonths        int             `json:"term_months"`
}

func NewLoanQuoted(quoteID string, principal, annualRatePercent, payment, totalAmount decimal.Decimal, termMonths int) LoanQuoted {
	return LoanQuoted{
		BaseEvent:         NewBaseEvent("underwriting.loan.quoted", quoteID),
		Principal:         principal,
		AnnualRatePercent: annualRatePercent,
		MonthlyPayment:    payment,
		TotalAmount:       totalAmount,
		TermMonths:        termMonths,
	}
}

// RiskAssessed is raised when a credit-risk assessment completes.
type RiskAssessed struct {
	BaseEvent
	OverallRisk            string          `json:"overall_risk"`
	RiskFactors            []string        `json:"risk_factors,omitempty"`
	RecommendedAmount      decimal.Decimal `json:"recommended_amount"`
	RecommendedRatePercent decimal.Decimal `json:"recommended_rate_percent"`
	RiskScore              int             `json:"risk_score"`
}

func NewRiskAssessed(assessmentID, overallRisk string, riskScore int, factors []string, recommendedAmount, recommendedRate decimal.Decimal) RiskAssessed {
	return RiskAssessed{
		BaseEvent:              NewBaseEvent("underwriting.risk.assessed", assessmentID),
		OverallRisk:            overallRisk,
		RiskScore:              riskScore,
		RiskFactors:            factors,
		RecommendedAmount:      recommendedAmount,
		RecommendedRatePercent: recommendedRate,
	}
}

// AffordabilityEvaluated is raised when an affordability verdict is produced.
type AffordabilityEvaluated struct {
	BaseEvent
	MonthlyPayment     decimal.Decimal `json:"monthly_payment"`
	DebtToIncomeRatio  decimal.Decimal `json:"debt_to_income_ratio"`
	AffordabilityScore int             `json:"affordability_score"`
	IsAffordable       bool            `json:"is_affordable"`
}

func NewAffordabilityEvaluated(evaluationID string, payment, dti decimal.Decimal, score int, affordable bool) AffordabilityEvaluated {
	return AffordabilityEvaluated{
		BaseEvent:          NewBaseEvent("underwriting.affordability.evaluated", evaluationID),
		MonthlyPayment:     payment,
		DebtToIncomeRatio:  dti,
		AffordabilityScore: score,
		IsAffordable:       affordable,
	}
}
