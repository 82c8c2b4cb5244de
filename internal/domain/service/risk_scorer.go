package service

import (
	"github.com/shopspring/decimal"

	"github.com/crestbank/underwriting-service/internal/domain/valueobject"
	"github.com/crestbank/underwriting-service/pkg/money"
)

// RiskAssessment holds the outcome of scoring a financial profile.
type RiskAssessment struct {
	OverallRisk            valueobject.RiskLevel
	RiskFactors            []string
	RecommendedAmount      decimal.Decimal
	RecommendedRatePercent decimal.Decimal
	DebtToIncomeRatio      decimal.Decimal
	RiskScore              int
}

// ---------------------------------------------------------------------------
// Decision tables
// ---------------------------------------------------------------------------
//
// Each scoring dimension is an ordered threshold table: the first band that
// matches contributes its points, and a profile that falls through every band
// appends the dimension's risk factor instead. A dimension never does both.

type intBand struct {
	atLeast int
	points  int
}

type ratioBand struct {
	limit  decimal.Decimal
	points int
}

var creditScoreBands = []intBand{
	{atLeast: 750, points: 40},
	{atLeast: 700, points: 30},
	{atLeast: 650, points: 20},
	{atLeast: 600, points: 10},
}

// debtToIncomeBands are upper bounds, matched lowest ratio first.
var debtToIncomeBands = []ratioBand{
	{limit: decimal.NewFromFloat(0.30), points: 30},
	{limit: decimal.NewFromFloat(0.40), points: 20},
	{limit: decimal.NewFromFloat(0.50), points: 10},
}

var employmentBands = []intBand{
	{atLeast: 24, points: 20},
	{atLeast: 12, points: 15},
	{atLeast: 6, points: 10},
}

// assetsToIncomeBands are lower bounds on assets over annual income.
var assetsToIncomeBands = []ratioBand{
	{limit: decimal.NewFromFloat(1.0), points: 10},
	{limit: decimal.NewFromFloat(0.5), points: 7},
	{limit: decimal.NewFromFloat(0.25), points: 5},
}

const (
	factorLowCreditScore   = "Low credit score"
	factorHighDebtToIncome = "High debt-to-income ratio"
	factorShortEmployment  = "Short employment history"
	factorLimitedAssets    = "Limited assets/savings"
)

// Classification cutoffs on the composite 0-100 score.
const (
	lowRiskScoreCutoff    = 80
	mediumRiskScoreCutoff = 60
)

// RiskScorer classifies a borrower's credit risk from a financial profile and
// derives recommended loan terms.
type RiskScorer struct {
	policy Policy
}

// NewRiskScorer creates a scorer bound to the given policy.
func NewRiskScorer(policy Policy) *RiskScorer {
	return &RiskScorer{policy: policy}
}

// Assess scores the profile across four independently weighted dimensions
// (credit score 40, debt-to-income 30, employment stability 20, assets 10)
// and classifies the composite: >=80 low, >=60 medium, otherwise high.
//
// The debt-to-income formula divides the cumulative existing-debt balance
// directly by monthly income. That is a preserved policy choice, not a
// validated financial model; see DESIGN.md.
func (s *RiskScorer) Assess(profile valueobject.FinancialProfile) (RiskAssessment, error) {
	if err := profile.Validate(); err != nil {
		return RiskAssessment{}, err
	}

	dti := profile.ExistingDebts.Add(profile.MonthlyExpenses).Div(profile.MonthlyIncome)

	score := 0
	var factors []string

	if pts, ok := matchIntBand(creditScoreBands, profile.CreditScore); ok {
		score += pts
	} else {
		factors = append(factors, factorLowCreditScore)
	}

	if pts, ok := matchUpperBand(debtToIncomeBands, dti); ok {
		score += pts
	} else {
		factors = append(factors, factorHighDebtToIncome)
	}

	if pts, ok := matchIntBand(employmentBands, profile.EmploymentMonths); ok {
		score += pts
	} else {
		factors = append(factors, factorShortEmployment)
	}

	annualIncome := profile.MonthlyIncome.Mul(decimal.NewFromInt(12))
	assetsRatio := profile.Assets.Div(annualIncome)
	if pts, ok := matchLowerBand(assetsToIncomeBands, assetsRatio); ok {
		score += pts
	} else {
		factors = append(factors, factorLimitedAssets)
	}

	level := classify(score)

	return RiskAssessment{
		OverallRisk:            level,
		RiskScore:              score,
		RiskFactors:            factors,
		RecommendedAmount:      s.maxRecommendedAmount(profile),
		RecommendedRatePercent: s.recommendedRate(level),
		DebtToIncomeRatio:      money.RoundRatio(dti),
	}, nil
}

// maxRecommendedAmount sizes the largest loan the profile supports: monthly
// capacity is the income-allocation cap minus existing obligations (expenses
// plus annualized debt service), projected through the fixed reference
// scenario and floored to a whole currency unit.
func (s *RiskScorer) maxRecommendedAmount(profile valueobject.FinancialProfile) decimal.Decimal {
	obligations := profile.MonthlyExpenses.Add(profile.ExistingDebts.Div(decimal.NewFromInt(12)))
	capacity := profile.MonthlyIncome.Mul(s.policy.IncomeAllocationCap).Sub(obligations)

	if capacity.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	return capacity.Mul(s.policy.ReferenceTermMonths).Div(s.policy.ReferenceRateFactor).Floor()
}

func (s *RiskScorer) recommendedRate(level valueobject.RiskLevel) decimal.Decimal {
	switch level {
	case valueobject.RiskLevelLow:
		return s.policy.BaseRatePercent
	case valueobject.RiskLevelMedium:
		return s.policy.BaseRatePercent.Add(s.policy.MediumRiskRateAdjustment)
	default:
		return s.policy.BaseRatePercent.Add(s.policy.HighRiskRateAdjustment)
	}
}

func classify(score int) valueobject.RiskLevel {
	switch {
	case score >= lowRiskScoreCutoff:
		return valueobject.RiskLevelLow
	case score >= mediumRiskScoreCutoff:
		return valueobject.RiskLevelMedium
	default:
		return valueobject.RiskLevelHigh
	}
}

func matchIntBand(bands []intBand, value int) (int, bool) {
	for _, b := range bands {
		if value >= b.atLeast {
			return b.points, true
		}
	}
	return 0, false
}

func matchUpperBand(bands []ratioBand, value decimal.Decimal) (int, bool) {
	for _, b := range bands {
		if value.LessThanOrEqual(b.limit) {
			return b.points, true
		}
	}
	return 0, false
}

func matchLowerBand(bands []ratioBand, value decimal.Decimal) (int, bool) {
	for _, b := range bands {
		if value.GreaterThanOrEqual(b.limit) {
			return b.points, true
		}
	}
	return 0, false
}
