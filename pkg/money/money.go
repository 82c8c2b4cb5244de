// Package money holds the currency arithmetic conventions shared by every
// calculator in the underwriting engine. All user-facing monetary figures are
// rounded here exactly once; intermediate accumulators stay unrounded so
// rounding error does not compound.
package money

import "github.com/shopspring/decimal"

// MinorUnitPlaces is the number of decimal places in the currency minor unit.
const MinorUnitPlaces = 2

// RatioPlaces is the precision used when reporting ratios such as
// debt-to-income.
const RatioPlaces = 2

// Round rounds an amount to the currency minor unit. Ties round away from
// zero (conventional currency display), not banker's rounding.
func Round(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(MinorUnitPlaces)
}

// RoundRatio rounds a dimensionless ratio for reporting.
func RoundRatio(ratio decimal.Decimal) decimal.Decimal {
	return ratio.Round(RatioPlaces)
}

// MonthlyRate converts an annual percentage rate (8.5 means 8.5%) into a
// monthly decimal rate.
func MonthlyRate(annualRatePercent decimal.Decimal) decimal.Decimal {
	return annualRatePercent.Div(decimal.NewFromInt(1200))
}
