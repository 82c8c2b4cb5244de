package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crestbank/underwriting-service/internal/application/dto"
	"github.com/crestbank/underwriting-service/internal/domain/service"
)

func TestComputePenaltyUseCase_Execute(t *testing.T) {
	uc := NewComputePenaltyUseCase(service.NewPenaltyCalculator(service.DefaultPolicy()))

	t.Run("default policy rate", func(t *testing.T) {
		resp, err := uc.Execute(context.Background(), dto.ComputePenaltyRequest{
			OverdueAmount: decimal.NewFromInt(1000),
			DaysPastDue:   30,
		})
		require.NoError(t, err)
		assert.True(t, resp.Penalty.Equal(decimal.NewFromInt(20)), "got %s, want 20", resp.Penalty)
	})

	t.Run("explicit rate overrides the default", func(t *testing.T) {
		rate := decimal.NewFromInt(5)
		resp, err := uc.Execute(context.Background(), dto.ComputePenaltyRequest{
			OverdueAmount:              decimal.NewFromInt(1000),
			DaysPastDue:                30,
			PenaltyRatePercentPerMonth: &rate,
		})
		require.NoError(t, err)
		assert.True(t, resp.Penalty.Equal(decimal.NewFromInt(50)), "got %s, want 50", resp.Penalty)
	})

	t.Run("not overdue", func(t *testing.T) {
		resp, err := uc.Execute(context.Background(), dto.ComputePenaltyRequest{
			OverdueAmount: decimal.NewFromInt(1000),
			DaysPastDue:   0,
		})
		require.NoError(t, err)
		assert.True(t, resp.Penalty.IsZero())
	})
}
