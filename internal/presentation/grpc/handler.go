package grpc

import (
	"context"
	"errors"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/crestbank/underwriting-service/internal/application/usecase"
	"github.com/crestbank/underwriting-service/internal/domain/valueobject"
)

// UnderwritingHandler exposes the underwriting engine over gRPC.
type UnderwritingHandler struct {
	UnimplementedUnderwritingServiceServer

	quote         *usecase.QuoteLoanUseCase
	schedule      *usecase.GenerateScheduleUseCase
	penalty       *usecase.ComputePenaltyUseCase
	risk          *usecase.AssessCreditRiskUseCase
	affordability *usecase.EvaluateAffordabilityUseCase
	logger        *slog.Logger
}

// NewUnderwritingHandler creates a handler with all use-case dependencies.
func NewUnderwritingHandler(
	quote *usecase.QuoteLoanUseCase,
	schedule *usecase.GenerateScheduleUseCase,
	penalty *usecase.ComputePenaltyUseCase,
	risk *usecase.AssessCreditRiskUseCase,
	affordability *usecase.EvaluateAffordabilityUseCase,
	logger *slog.Logger,
) *UnderwritingHandler {
	return &UnderwritingHandler{
		quote:         quote,
		schedule:      schedule,
		penalty:       penalty,
		risk:          risk,
		affordability: affordability,
		logger:        logger,
	}
}

// ComputePayment returns the periodic payment for the requested terms.
func (h *UnderwritingHandler) ComputePayment(ctx context.Context, req *ComputePaymentRequest) (*ComputePaymentResponse, error) {
	resp, err := h.quote.Execute(ctx, *req)
	if err != nil {
		return nil, toStatus(err)
	}
	return &ComputePaymentResponse{MonthlyPayment: resp.MonthlyPayment}, nil
}

// ComputeTotalCost returns the full quote: payment, total repayment, and
// total interest.
func (h *UnderwritingHandler) ComputeTotalCost(ctx context.Context, req *ComputeTotalCostRequest) (*ComputeTotalCostResponse, error) {
	resp, err := h.quote.Execute(ctx, *req)
	if err != nil {
		return nil, toStatus(err)
	}
	return &resp, nil
}

// GenerateSchedule returns the full amortization schedule.
func (h *UnderwritingHandler) GenerateSchedule(ctx context.Context, req *GenerateScheduleRequest) (*GenerateScheduleResponse, error) {
	resp, err := h.schedule.Execute(ctx, *req)
	if err != nil {
		return nil, toStatus(err)
	}
	return &resp, nil
}

// ComputePenalty returns the accrued overdue penalty.
func (h *UnderwritingHandler) ComputePenalty(ctx context.Context, req *ComputePenaltyRequest) (*ComputePenaltyResponse, error) {
	resp, err := h.penalty.Execute(ctx, *req)
	if err != nil {
		return nil, toStatus(err)
	}
	return &resp, nil
}

// AssessRisk returns the credit-risk assessment for a financial profile.
func (h *UnderwritingHandler) AssessRisk(ctx context.Context, req *AssessRiskRequest) (*AssessRiskResponse, error) {
	resp, err := h.risk.Execute(ctx, *req)
	if err != nil {
		return nil, toStatus(err)
	}
	return &resp, nil
}

// EvaluateAffordability returns the affordability verdict for a proposed loan.
func (h *UnderwritingHandler) EvaluateAffordability(ctx context.Context, req *EvaluateAffordabilityRequest) (*EvaluateAffordabilityResponse, error) {
	resp, err := h.affordability.Execute(ctx, *req)
	if err != nil {
		return nil, toStatus(err)
	}
	return &resp, nil
}

// toStatus maps engine validation errors to InvalidArgument; anything else is
// Internal.
func toStatus(err error) error {
	var amountErr *valueobject.InvalidAmountError
	var termErr *valueobject.InvalidTermError
	var profileErr *valueobject.InvalidProfileError

	switch {
	case errors.As(err, &amountErr), errors.As(err, &termErr), errors.As(err, &profileErr):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
