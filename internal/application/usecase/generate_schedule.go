package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/crestbank/underwriting-service/internal/application/dto"
	"github.com/crestbank/underwriting-service/internal/domain/model"
)

// GenerateScheduleUseCase produces the full amortization schedule for a loan.
type GenerateScheduleUseCase struct{}

// NewGenerateScheduleUseCase wires dependencies.
func NewGenerateScheduleUseCase() *GenerateScheduleUseCase {
	return &GenerateScheduleUseCase{}
}

// Execute validates the terms and generates the schedule. A loan ID is
// generated when the caller does not supply one.
func (uc *GenerateScheduleUseCase) Execute(_ context.Context, req dto.GenerateScheduleRequest) (dto.ScheduleResponse, error) {
	loanID := req.LoanID
	if loanID == "" {
		loanID = uuid.New().String()
	}

	schedule, err := model.GenerateSchedule(loanID, req.Principal, req.AnnualRatePercent, req.TermMonths, req.StartDate)
	if err != nil {
		return dto.ScheduleResponse{}, err
	}

	entries := make([]dto.ScheduleEntryResponse, 0, len(schedule))
	for _, e := range schedule {
		entries = append(entries, dto.ScheduleEntryResponse{
			ID:                e.ID,
			LoanID:            e.LoanID,
			InstallmentNumber: e.InstallmentNumber,
			DueDate:           e.DueDate,
			PrincipalPortion:  e.PrincipalPortion,
			InterestPortion:   e.InterestPortion,
			TotalAmount:       e.TotalAmount,
			Status:            e.Status.String(),
			PenaltyAmount:     e.PenaltyAmount,
		})
	}

	return dto.ScheduleResponse{LoanID: loanID, Entries: entries}, nil
}
