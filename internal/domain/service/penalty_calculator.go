package service

import (
	"github.com/shopspring/decimal"

	"github.com/crestbank/underwriting-service/pkg/money"
)

// PenaltyCalculator accrues overdue-payment penalties. It treats daysPastDue
// as an opaque integer supplied by the caller; computing it from real dates,
// and any grace-period policy, live outside the engine.
type PenaltyCalculator struct {
	policy Policy
}

// NewPenaltyCalculator creates a calculator bound to the given policy.
func NewPenaltyCalculator(policy Policy) *PenaltyCalculator {
	return &PenaltyCalculator{policy: policy}
}

// Compute accrues a penalty on an overdue amount using the policy's default
// monthly penalty rate.
func (c *PenaltyCalculator) Compute(overdueAmount decimal.Decimal, daysPastDue int) decimal.Decimal {
	return c.ComputeAtRate(overdueAmount, daysPastDue, c.policy.PenaltyRatePercentPerMonth)
}

// ComputeAtRate accrues a penalty at an explicit monthly percentage rate:
//
//	penalty = overdueAmount * (rate/100) * (daysPastDue / daysPerMonth)
//
// Days at or before the due date accrue exactly zero; penalties are never
// negative.
func (c *PenaltyCalculator) ComputeAtRate(
	overdueAmount decimal.Decimal,
	daysPastDue int,
	penaltyRatePercentPerMonth decimal.Decimal,
) decimal.Decimal {
	if daysPastDue <= 0 {
		return decimal.Zero
	}

	monthsPastDue := decimal.NewFromInt(int64(daysPastDue)).Div(c.policy.DaysPerMonth)
	penalty := overdueAmount.
		Mul(penaltyRatePercentPerMonth.Div(decimal.NewFromInt(100))).
		Mul(monthsPastDue)

	return money.Round(penalty)
}
