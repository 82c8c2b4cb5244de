package usecase

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/crestbank/underwriting-service/internal/application/dto"
	"github.com/crestbank/underwriting-service/internal/domain/event"
	"github.com/crestbank/underwriting-service/internal/domain/port"
	"github.com/crestbank/underwriting-service/internal/domain/service"
)

// EvaluateAffordabilityUseCase judges whether a proposed loan fits a
// borrower's budget.
type EvaluateAffordabilityUseCase struct {
	evaluator *service.AffordabilityEvaluator
	publisher port.EventPublisher
	logger    *slog.Logger
}

// NewEvaluateAffordabilityUseCase wires dependencies.
func NewEvaluateAffordabilityUseCase(
	evaluator *service.AffordabilityEvaluator,
	publisher port.EventPublisher,
	logger *slog.Logger,
) *EvaluateAffordabilityUseCase {
	return &EvaluateAffordabilityUseCase{
		evaluator: evaluator,
		publisher: publisher,
		logger:    logger,
	}
}

// Execute validates inputs, evaluates affordability, and publishes the
// verdict event. Publication is best-effort.
func (uc *EvaluateAffordabilityUseCase) Execute(ctx context.Context, req dto.EvaluateAffordabilityRequest) (dto.AffordabilityResponse, error) {
	result, err := uc.evaluator.Evaluate(toProfile(req.Profile), req.LoanAmount, req.TermMonths, req.AnnualRatePercent)
	if err != nil {
		return dto.AffordabilityResponse{}, err
	}

	resp := dto.AffordabilityResponse{
		EvaluationID:       uuid.New().String(),
		MonthlyPayment:     result.MonthlyPayment,
		DebtToIncomeRatio:  result.DebtToIncomeRatio,
		AffordabilityScore: result.AffordabilityScore,
		IsAffordable:       result.IsAffordable,
		Recommendations:    result.Recommendations,
	}

	evt := event.NewAffordabilityEvaluated(resp.EvaluationID, resp.MonthlyPayment,
		resp.DebtToIncomeRatio, resp.AffordabilityScore, resp.IsAffordable)
	if pubErr := uc.publisher.Publish(ctx, evt); pubErr != nil {
		uc.logger.WarnContext(ctx, "failed to publish affordability event", "evaluation_id", resp.EvaluationID, "error", pubErr)
	}

	return resp, nil
}
