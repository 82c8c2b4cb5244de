package service

import "github.com/shopspring/decimal"

// Policy groups every tunable lending-policy constant so rate or threshold
// changes never touch the algorithms. All services take a Policy; callers
// that want the house defaults use DefaultPolicy.
type Policy struct {
	// BaseRatePercent is the base annual interest rate offered before any
	// risk adjustment, e.g. 8.5 for 8.5%.
	BaseRatePercent decimal.Decimal

	// MediumRiskRateAdjustment and HighRiskRateAdjustment are added to the
	// base rate for the respective risk classifications. Low risk carries no
	// adjustment.
	MediumRiskRateAdjustment decimal.Decimal
	HighRiskRateAdjustment   decimal.Decimal

	// IncomeAllocationCap is the share of monthly income that may be
	// committed to loan payments when sizing the maximum recommended amount.
	IncomeAllocationCap decimal.Decimal

	// ReferenceTermMonths and ReferenceRateFactor define the fixed reference
	// scenario (5 years at roughly 10%) baked into the maximum-amount
	// formula: amount = capacity * ReferenceTermMonths / ReferenceRateFactor.
	ReferenceTermMonths decimal.Decimal
	ReferenceRateFactor decimal.Decimal

	// PenaltyRatePercentPerMonth is the default overdue penalty rate applied
	// when the caller does not supply one.
	PenaltyRatePercentPerMonth decimal.Decimal

	// DaysPerMonth is the day-count convention used to prorate monthly
	// penalty rates. Deliberately a flat 30-day month, not a calendar
	// computation.
	DaysPerMonth decimal.Decimal
}

// DefaultPolicy returns the house lending policy.
func DefaultPolicy() Policy {
	return Policy{
		BaseRatePercent:            decimal.NewFromFloat(8.5),
		MediumRiskRateAdjustment:   decimal.NewFromFloat(1.0),
		HighRiskRateAdjustment:     decimal.NewFromFloat(2.5),
		IncomeAllocationCap:        decimal.NewFromFloat(0.40),
		ReferenceTermMonths:        decimal.NewFromInt(60),
		ReferenceRateFactor:        decimal.NewFromFloat(1.1),
		PenaltyRatePercentPerMonth: decimal.NewFromInt(2),
		DaysPerMonth:               decimal.NewFromInt(30),
	}
}
