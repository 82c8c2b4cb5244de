package usecase

import (
	"context"

	"github.com/crestbank/underwriting-service/internal/application/dto"
	"github.com/crestbank/underwriting-service/internal/domain/service"
)

// ComputePenaltyUseCase accrues an overdue-payment penalty.
type ComputePenaltyUseCase struct {
	calculator *service.PenaltyCalculator
}

// NewComputePenaltyUseCase wires dependencies.
func NewComputePenaltyUseCase(calculator *service.PenaltyCalculator) *ComputePenaltyUseCase {
	return &ComputePenaltyUseCase{calculator: calculator}
}

// Execute computes the penalty, applying the policy default rate when the
// request does not carry one.
func (uc *ComputePenaltyUseCase) Execute(_ context.Context, req dto.ComputePenaltyRequest) (dto.PenaltyResponse, error) {
	if req.PenaltyRatePercentPerMonth != nil {
		return dto.PenaltyResponse{
			Penalty: uc.calculator.ComputeAtRate(req.OverdueAmount, req.DaysPastDue, *req.PenaltyRatePercentPerMonth),
		}, nil
	}

	return dto.PenaltyResponse{
		Penalty: uc.calculator.Compute(req.OverdueAmount, req.DaysPastDue),
	}, nil
}
