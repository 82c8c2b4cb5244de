package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crestbank/underwriting-service/internal/domain/valueobject"
)

func TestAffordabilityEvaluator_ComfortableLoan(t *testing.T) {
	eval := NewAffordabilityEvaluator(DefaultPolicy())

	result, err := eval.Evaluate(
		profileFixture(720, 10000, 2000, 2400, 20000, 24),
		decimal.NewFromInt(50000), 36, decimal.NewFromFloat(8.5))
	require.NoError(t, err)

	assert.Equal(t, 100, result.AffordabilityScore)
	assert.True(t, result.IsAffordable)
	assert.Empty(t, result.Recommendations)
	assert.True(t, result.MonthlyPayment.IsPositive())
	assert.True(t, result.DebtToIncomeRatio.LessThanOrEqual(decimal.NewFromFloat(0.40)))
}

func TestAffordabilityEvaluator_ElevatedDebtToIncome(t *testing.T) {
	eval := NewAffordabilityEvaluator(DefaultPolicy())

	// Zero-rate loan keeps the payment exact: 57600/36 = 1600. Obligations are
	// 2400 + 6000/12 + 1600 = 4500, a ratio of 0.45.
	result, err := eval.Evaluate(
		profileFixture(700, 10000, 2400, 6000, 10000, 24),
		decimal.NewFromInt(57600), 36, decimal.Zero)
	require.NoError(t, err)

	assert.Equal(t, 80, result.AffordabilityScore)
	assert.True(t, result.IsAffordable)
	assert.Equal(t, []string{recommendMonitorBudget}, result.Recommendations)
	assert.True(t, result.MonthlyPayment.Equal(decimal.NewFromInt(1600)))
	assert.True(t, result.DebtToIncomeRatio.Equal(decimal.NewFromFloat(0.45)))
}

func TestAffordabilityEvaluator_RatioAtHardLimit(t *testing.T) {
	eval := NewAffordabilityEvaluator(DefaultPolicy())

	// 2600 + 4800/12 + 72000/36 = 5000 on a 10000 income: exactly 0.50. The
	// hard limit is exclusive, so this still passes.
	result, err := eval.Evaluate(
		profileFixture(700, 10000, 2600, 4800, 10000, 24),
		decimal.NewFromInt(72000), 36, decimal.Zero)
	require.NoError(t, err)

	assert.Equal(t, 80, result.AffordabilityScore)
	assert.True(t, result.IsAffordable)
	assert.True(t, result.DebtToIncomeRatio.Equal(decimal.NewFromFloat(0.50)))
}

func TestAffordabilityEvaluator_RatioBeyondHardLimit(t *testing.T) {
	eval := NewAffordabilityEvaluator(DefaultPolicy())

	// 1500 + 6000/12 + 36000/36 = 3000 on a 4000 income: a ratio of 0.75. The
	// score alone would pass, but the hard ratio limit vetoes affordability.
	result, err := eval.Evaluate(
		profileFixture(700, 4000, 1500, 6000, 5000, 24),
		decimal.NewFromInt(36000), 36, decimal.Zero)
	require.NoError(t, err)

	assert.Equal(t, 60, result.AffordabilityScore)
	assert.False(t, result.IsAffordable)
	assert.Equal(t, []string{recommendReduceOrExtend}, result.Recommendations)
	assert.True(t, result.DebtToIncomeRatio.Equal(decimal.NewFromFloat(0.75)))
}

func TestAffordabilityEvaluator_StackedDeductions(t *testing.T) {
	eval := NewAffordabilityEvaluator(DefaultPolicy())

	// Every deduction applies: 100 - 40 - 20 - 15 = 25, the score floor.
	result, err := eval.Evaluate(
		profileFixture(600, 3000, 1800, 6000, 0, 6),
		decimal.NewFromInt(7200), 36, decimal.Zero)
	require.NoError(t, err)

	assert.Equal(t, 25, result.AffordabilityScore)
	assert.False(t, result.IsAffordable)
	assert.Equal(t, []string{
		recommendReduceOrExtend,
		recommendImproveCredit,
		recommendShortTenure,
	}, result.Recommendations)
}

func TestAffordabilityEvaluator_InvalidInputs(t *testing.T) {
	eval := NewAffordabilityEvaluator(DefaultPolicy())
	profile := profileFixture(700, 5000, 1500, 0, 10000, 24)

	t.Run("invalid profile", func(t *testing.T) {
		_, err := eval.Evaluate(
			profileFixture(700, 0, 1500, 0, 0, 24),
			decimal.NewFromInt(10000), 12, decimal.NewFromInt(5))

		var profileErr *valueobject.InvalidProfileError
		assert.ErrorAs(t, err, &profileErr)
	})

	t.Run("non-positive loan amount", func(t *testing.T) {
		_, err := eval.Evaluate(profile, decimal.Zero, 12, decimal.NewFromInt(5))

		var amountErr *valueobject.InvalidAmountError
		assert.ErrorAs(t, err, &amountErr)
	})

	t.Run("non-positive term", func(t *testing.T) {
		_, err := eval.Evaluate(profile, decimal.NewFromInt(10000), 0, decimal.NewFromInt(5))

		var termErr *valueobject.InvalidTermError
		assert.ErrorAs(t, err, &termErr)
	})

	t.Run("negative rate", func(t *testing.T) {
		_, err := eval.Evaluate(profile, decimal.NewFromInt(10000), 12, decimal.NewFromInt(-1))

		var amountErr *valueobject.InvalidAmountError
		assert.ErrorAs(t, err, &amountErr)
	})
}
