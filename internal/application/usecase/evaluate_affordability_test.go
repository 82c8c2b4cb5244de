package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crestbank/underwriting-service/internal/application/dto"
	"github.com/crestbank/underwriting-service/internal/domain/service"
	"github.com/crestbank/underwriting-service/internal/domain/valueobject"
)

func newAffordabilityUseCase(publisher *stubPublisher) *EvaluateAffordabilityUseCase {
	evaluator := service.NewAffordabilityEvaluator(service.DefaultPolicy())
	return NewEvaluateAffordabilityUseCase(evaluator, publisher, testLogger())
}

func TestEvaluateAffordabilityUseCase_Execute(t *testing.T) {
	publisher := &stubPublisher{}
	uc := newAffordabilityUseCase(publisher)

	resp, err := uc.Execute(context.Background(), dto.EvaluateAffordabilityRequest{
		Profile:           profileRequest(),
		LoanAmount:        decimal.NewFromInt(50000),
		AnnualRatePercent: decimal.NewFromFloat(8.5),
		TermMonths:        36,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.EvaluationID)
	assert.True(t, resp.IsAffordable)
	assert.Equal(t, 100, resp.AffordabilityScore)
	assert.True(t, resp.MonthlyPayment.IsPositive())

	require.Len(t, publisher.events, 1)
	assert.Equal(t, "underwriting.affordability.evaluated", publisher.events[0].EventType())
	assert.Equal(t, resp.EvaluationID, publisher.events[0].AggregateID())
}

func TestEvaluateAffordabilityUseCase_Execute_InvalidLoan(t *testing.T) {
	publisher := &stubPublisher{}
	uc := newAffordabilityUseCase(publisher)

	_, err := uc.Execute(context.Background(), dto.EvaluateAffordabilityRequest{
		Profile:           profileRequest(),
		LoanAmount:        decimal.Zero,
		AnnualRatePercent: decimal.NewFromFloat(8.5),
		TermMonths:        36,
	})

	var amountErr *valueobject.InvalidAmountError
	require.ErrorAs(t, err, &amountErr)
	assert.Empty(t, publisher.events)
}
