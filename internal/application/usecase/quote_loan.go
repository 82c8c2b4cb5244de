package usecase

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/crestbank/underwriting-service/internal/application/dto"
	"github.com/crestbank/underwriting-service/internal/domain/event"
	"github.com/crestbank/underwriting-service/internal/domain/model"
	"github.com/crestbank/underwriting-service/internal/domain/port"
)

// QuoteLoanUseCase prices a proposed loan: periodic payment plus nominal
// total cost. It serves both the payment-only and total-cost operations.
type QuoteLoanUseCase struct {
	publisher port.EventPublisher
	logger    *slog.Logger
}

// NewQuoteLoanUseCase wires dependencies.
func NewQuoteLoanUseCase(publisher port.EventPublisher, logger *slog.Logger) *QuoteLoanUseCase {
	return &QuoteLoanUseCase{publisher: publisher, logger: logger}
}

// Execute validates the terms and computes the quote. Event publication is
// best-effort: the quote itself is a pure computation and is returned even
// when the event bus is unavailable.
func (uc *QuoteLoanUseCase) Execute(ctx context.Context, req dto.QuoteLoanRequest) (dto.LoanQuoteResponse, error) {
	cost, err := model.ComputeTotalCost(req.Principal, req.AnnualRatePercent, req.TermMonths)
	if err != nil {
		return dto.LoanQuoteResponse{}, err
	}

	quoteID := uuid.New().String()

	evt := event.NewLoanQuoted(quoteID, req.Principal, req.AnnualRatePercent,
		cost.MonthlyPayment, cost.TotalAmount, req.TermMonths)
	if pubErr := uc.publisher.Publish(ctx, evt); pubErr != nil {
		uc.logger.WarnContext(ctx, "failed to publish quote event", "quote_id", quoteID, "error", pubErr)
	}

	return dto.LoanQuoteResponse{
		QuoteID:        quoteID,
		MonthlyPayment: cost.MonthlyPayment,
		TotalAmount:    cost.TotalAmount,
		TotalInterest:  cost.TotalInterest,
	}, nil
}
