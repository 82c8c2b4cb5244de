package service

import (
	"github.com/shopspring/decimal"

	"github.com/crestbank/underwriting-service/internal/domain/model"
	"github.com/crestbank/underwriting-service/internal/domain/valueobject"
	"github.com/crestbank/underwriting-service/pkg/money"
)

// AffordabilityResult holds the verdict on whether a proposed loan is
// sustainable for a borrower. AffordabilityScore starts at 100 and takes
// independent deductions; with the current deduction table its floor is 25,
// so it is reported unclamped.
type AffordabilityResult struct {
	MonthlyPayment     decimal.Decimal
	DebtToIncomeRatio  decimal.Decimal
	Recommendations    []string
	AffordabilityScore int
	IsAffordable       bool
}

// Affordability deduction thresholds. Unlike the risk scorer's exclusive
// bands, deductions are additive: every rule that matches applies.
var (
	dtiHardLimit  = decimal.NewFromFloat(0.50)
	dtiWatchLimit = decimal.NewFromFloat(0.40)
)

const (
	deductionHighDTI        = 40
	deductionElevatedDTI    = 20
	deductionLowCreditScore = 20
	deductionShortTenure    = 15

	minCreditScoreForFullMarks = 650
	minEmploymentMonths        = 12
	affordableScoreCutoff      = 60
)

const (
	recommendReduceOrExtend = "Consider reducing loan amount or extending term"
	recommendMonitorBudget  = "Monitor monthly budget carefully"
	recommendImproveCredit  = "Consider improving credit score before applying"
	recommendShortTenure    = "Employment history is relatively short"
)

// AffordabilityEvaluator judges whether a specific proposed loan fits a
// borrower's budget.
type AffordabilityEvaluator struct {
	policy Policy
}

// NewAffordabilityEvaluator creates an evaluator bound to the given policy.
func NewAffordabilityEvaluator(policy Policy) *AffordabilityEvaluator {
	return &AffordabilityEvaluator{policy: policy}
}

// Evaluate computes the proposed loan's payment, folds it into the borrower's
// recurring obligations, and scores the result. A loan is affordable when the
// score stays at or above 60 and the resulting debt-to-income ratio does not
// exceed 0.50.
func (e *AffordabilityEvaluator) Evaluate(
	profile valueobject.FinancialProfile,
	loanAmount decimal.Decimal,
	termMonths int,
	annualRatePercent decimal.Decimal,
) (AffordabilityResult, error) {
	if err := profile.Validate(); err != nil {
		return AffordabilityResult{}, err
	}

	payment, err := model.ComputePeriodicPayment(loanAmount, annualRatePercent, termMonths)
	if err != nil {
		return AffordabilityResult{}, err
	}

	obligations := profile.MonthlyExpenses.
		Add(profile.ExistingDebts.Div(decimal.NewFromInt(12))).
		Add(payment)
	dti := obligations.Div(profile.MonthlyIncome)

	score := 100
	var recommendations []string

	switch {
	case dti.GreaterThan(dtiHardLimit):
		score -= deductionHighDTI
		recommendations = append(recommendations, recommendReduceOrExtend)
	case dti.GreaterThan(dtiWatchLimit):
		score -= deductionElevatedDTI
		recommendations = append(recommendations, recommendMonitorBudget)
	}

	if profile.CreditScore < minCreditScoreForFullMarks {
		score -= deductionLowCreditScore
		recommendations = append(recommendations, recommendImproveCredit)
	}

	if profile.EmploymentMonths < minEmploymentMonths {
		score -= deductionShortTenure
		recommendations = append(recommendations, recommendShortTenure)
	}

	return AffordabilityResult{
		MonthlyPayment:     payment,
		DebtToIncomeRatio:  money.RoundRatio(dti),
		AffordabilityScore: score,
		IsAffordable:       score >= affordableScoreCutoff && dti.LessThanOrEqual(dtiHardLimit),
		Recommendations:    recommendations,
	}, nil
}
