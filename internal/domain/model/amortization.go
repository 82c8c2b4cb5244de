package model

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/crestbank/underwriting-service/internal/domain/valueobject"
	"github.com/crestbank/underwriting-service/pkg/money"
)

// ScheduleEntry is an immutable value object representing one installment in
// an amortization schedule. Status and PenaltyAmount belong to the external
// loan-servicing workflow; entries are always emitted pending with a zero
// penalty.
type ScheduleEntry struct {
	DueDate           time.Time
	ID                string
	LoanID            string
	Status            valueobject.InstallmentStatus
	PrincipalPortion  decimal.Decimal
	InterestPortion   decimal.Decimal
	TotalAmount       decimal.Decimal
	PenaltyAmount     decimal.Decimal
	InstallmentNumber int
}

// TotalCost summarises the nominal cost of a loan. TotalAmount is the
// periodic payment times the term, not the schedule sum, so it may differ
// from the reconciled schedule by a few minor currency units.
type TotalCost struct {
	TotalAmount    decimal.Decimal
	TotalInterest  decimal.Decimal
	MonthlyPayment decimal.Decimal
}

// ComputePeriodicPayment computes the fixed installment (EMI) for an
// amortizing loan.
//
// The calculation uses:
//
//	monthlyRate = annualRatePercent / 100 / 12
//	payment     = P * r * (1+r)^n / ((1+r)^n - 1)
//
// A zero rate degenerates to a straight-line split of the principal. The
// result is rounded to the currency minor unit.
func ComputePeriodicPayment(
	principal decimal.Decimal,
	annualRatePercent decimal.Decimal,
	termMonths int,
) (decimal.Decimal, error) {
	terms := valueobject.LoanTerms{
		Principal:         principal,
		AnnualRatePercent: annualRatePercent,
		TermMonths:        termMonths,
	}
	if err := terms.Validate(); err != nil {
		return decimal.Decimal{}, err
	}

	if annualRatePercent.IsZero() {
		return money.Round(principal.Div(decimal.NewFromInt(int64(termMonths)))), nil
	}

	// float64 carries the power calculation; monetary arithmetic switches
	// back to decimal afterwards.
	monthlyRate := annualRatePercent.InexactFloat64() / 100.0 / 12.0
	factor := math.Pow(1+monthlyRate, float64(termMonths))
	paymentFloat := principal.InexactFloat64() * monthlyRate * factor / (factor - 1)

	return money.Round(decimal.NewFromFloat(paymentFloat)), nil
}

// GenerateSchedule computes the full amortization schedule for a loan.
//
// Each installment's monetary fields are independently rounded to the minor
// unit, matching real amortization tables. The rounding residual that builds
// up over the term is reconciled into the final installment so the principal
// portions sum exactly to the principal and the balance reaches zero.
//
// Installment numbers are fixed at generation time; the slice is a finite,
// complete schedule, never lazily recomputed.
func GenerateSchedule(
	loanID string,
	principal decimal.Decimal,
	annualRatePercent decimal.Decimal,
	termMonths int,
	startDate time.Time,
) ([]ScheduleEntry, error) {
	payment, err := ComputePeriodicPayment(principal, annualRatePercent, termMonths)
	if err != nil {
		return nil, err
	}

	monthlyRate := money.MonthlyRate(annualRatePercent)
	remaining := principal
	schedule := make([]ScheduleEntry, 0, termMonths)

	for n := 1; n <= termMonths; n++ {
		interest := money.Round(remaining.Mul(monthlyRate))
		principalPortion := payment.Sub(interest)
		total := payment

		// Final installment absorbs the accumulated rounding drift.
		if n == termMonths {
			principalPortion = remaining
			total = money.Round(principalPortion.Add(interest))
		}

		remaining = remaining.Sub(principalPortion)

		schedule = append(schedule, ScheduleEntry{
			ID:                fmt.Sprintf("%s-%d", loanID, n),
			LoanID:            loanID,
			InstallmentNumber: n,
			DueDate:           startDate.AddDate(0, n, 0),
			PrincipalPortion:  money.Round(principalPortion),
			InterestPortion:   interest,
			TotalAmount:       total,
			Status:            valueobject.InstallmentStatusPending,
			PenaltyAmount:     decimal.Zero,
		})
	}

	return schedule, nil
}

// ComputeTotalCost computes the nominal total repayment and interest for a
// loan: payment times term, not the reconciled schedule sum.
func ComputeTotalCost(
	principal decimal.Decimal,
	annualRatePercent decimal.Decimal,
	termMonths int,
) (TotalCost, error) {
	payment, err := ComputePeriodicPayment(principal, annualRatePercent, termMonths)
	if err != nil {
		return TotalCost{}, err
	}

	totalAmount := money.Round(payment.Mul(decimal.NewFromInt(int64(termMonths))))
	return TotalCost{
		TotalAmount:    totalAmount,
		TotalInterest:  money.Round(totalAmount.Sub(principal)),
		MonthlyPayment: payment,
	}, nil
}
