package usecase

import (
	"context"
	"io"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/crestbank/underwriting-service/internal/application/dto"
	"github.com/crestbank/underwriting-service/internal/domain/event"
)

// stubPublisher records published events; a non-nil err makes every Publish
// call fail, modelling an unavailable event bus.
type stubPublisher struct {
	events []event.DomainEvent
	err    error
}

func (s *stubPublisher) Publish(_ context.Context, events ...event.DomainEvent) error {
	if s.err != nil {
		return s.err
	}
	s.events = append(s.events, events...)
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func profileRequest() dto.FinancialProfileRequest {
	return dto.FinancialProfileRequest{
		CreditScore:      760,
		MonthlyIncome:    decimal.NewFromInt(10000),
		MonthlyExpenses:  decimal.NewFromInt(2000),
		ExistingDebts:    decimal.NewFromInt(500),
		Assets:           decimal.NewFromInt(120000),
		EmploymentMonths: 36,
	}
}
