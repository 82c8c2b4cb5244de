package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/crestbank/underwriting-service/internal/application/dto"
	"github.com/crestbank/underwriting-service/internal/domain/event"
	"github.com/crestbank/underwriting-service/internal/domain/port"
	"github.com/crestbank/underwriting-service/internal/domain/service"
	"github.com/crestbank/underwriting-service/internal/domain/valueobject"
)

// AssessCreditRiskUseCase scores a financial profile. Because the scorer is a
// pure function of the profile, results are memoized by input tuple; the
// cache is an optimization only and every miss recomputes identically.
type AssessCreditRiskUseCase struct {
	scorer    *service.RiskScorer
	cache     port.AssessmentCache
	publisher port.EventPublisher
	logger    *slog.Logger
}

// NewAssessCreditRiskUseCase wires dependencies.
func NewAssessCreditRiskUseCase(
	scorer *service.RiskScorer,
	cache port.AssessmentCache,
	publisher port.EventPublisher,
	logger *slog.Logger,
) *AssessCreditRiskUseCase {
	return &AssessCreditRiskUseCase{
		scorer:    scorer,
		cache:     cache,
		publisher: publisher,
		logger:    logger,
	}
}

// Execute validates the profile, scores it, and publishes a RiskAssessed
// event for downstream workflow consumers. Publication is best-effort.
func (uc *AssessCreditRiskUseCase) Execute(ctx context.Context, req dto.AssessRiskRequest) (dto.RiskAssessmentResponse, error) {
	profile := toProfile(req.Profile)
	if err := profile.Validate(); err != nil {
		return dto.RiskAssessmentResponse{}, err
	}

	key := profileCacheKey(profile)
	if cached, ok := uc.cache.Get(ctx, key); ok {
		var resp dto.RiskAssessmentResponse
		if err := json.Unmarshal([]byte(cached), &resp); err == nil {
			uc.logger.DebugContext(ctx, "risk assessment cache hit", "key", key)
			return resp, nil
		}
		uc.logger.WarnContext(ctx, "discarding unreadable cached assessment", "key", key)
	}

	assessment, err := uc.scorer.Assess(profile)
	if err != nil {
		return dto.RiskAssessmentResponse{}, err
	}

	resp := dto.RiskAssessmentResponse{
		AssessmentID:           uuid.New().String(),
		OverallRisk:            assessment.OverallRisk.String(),
		RiskScore:              assessment.RiskScore,
		RiskFactors:            assessment.RiskFactors,
		RecommendedAmount:      assessment.RecommendedAmount,
		RecommendedRatePercent: assessment.RecommendedRatePercent,
		DebtToIncomeRatio:      assessment.DebtToIncomeRatio,
	}

	if payload, marshalErr := json.Marshal(resp); marshalErr == nil {
		if cacheErr := uc.cache.Set(ctx, key, string(payload)); cacheErr != nil {
			uc.logger.WarnContext(ctx, "failed to cache assessment", "key", key, "error", cacheErr)
		}
	}

	evt := event.NewRiskAssessed(resp.AssessmentID, resp.OverallRisk, resp.RiskScore,
		resp.RiskFactors, resp.RecommendedAmount, resp.RecommendedRatePercent)
	if pubErr := uc.publisher.Publish(ctx, evt); pubErr != nil {
		uc.logger.WarnContext(ctx, "failed to publish risk event", "assessment_id", resp.AssessmentID, "error", pubErr)
	}

	return resp, nil
}

func toProfile(req dto.FinancialProfileRequest) valueobject.FinancialProfile {
	return valueobject.FinancialProfile{
		CreditScore:      req.CreditScore,
		MonthlyIncome:    req.MonthlyIncome,
		MonthlyExpenses:  req.MonthlyExpenses,
		ExistingDebts:    req.ExistingDebts,
		Assets:           req.Assets,
		EmploymentMonths: req.EmploymentMonths,
	}
}

// profileCacheKey derives a deterministic key from the full input tuple.
func profileCacheKey(p valueobject.FinancialProfile) string {
	return fmt.Sprintf("risk:%d:%s:%s:%s:%s:%d",
		p.CreditScore, p.MonthlyIncome, p.MonthlyExpenses, p.ExistingDebts, p.Assets, p.EmploymentMonths)
}
