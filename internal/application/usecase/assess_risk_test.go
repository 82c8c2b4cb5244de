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
	"github.com/crestbank/underwriting-service/internal/infrastructure/cache"
)

func newRiskUseCase(publisher *stubPublisher) (*AssessCreditRiskUseCase, *cache.MemoryCache) {
	memCache := cache.NewMemoryCache()
	scorer := service.NewRiskScorer(service.DefaultPolicy())
	return NewAssessCreditRiskUseCase(scorer, memCache, publisher, testLogger()), memCache
}

func TestAssessCreditRiskUseCase_Execute(t *testing.T) {
	publisher := &stubPublisher{}
	uc, _ := newRiskUseCase(publisher)

	resp, err := uc.Execute(context.Background(), dto.AssessRiskRequest{Profile: profileRequest()})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AssessmentID)
	assert.Equal(t, "low", resp.OverallRisk)
	assert.Equal(t, 100, resp.RiskScore)
	assert.Empty(t, resp.RiskFactors)
	assert.True(t, resp.RecommendedRatePercent.Equal(decimal.NewFromFloat(8.5)))

	require.Len(t, publisher.events, 1)
	assert.Equal(t, "underwriting.risk.assessed", publisher.events[0].EventType())
}

func TestAssessCreditRiskUseCase_Execute_Memoizes(t *testing.T) {
	publisher := &stubPublisher{}
	uc, _ := newRiskUseCase(publisher)
	req := dto.AssessRiskRequest{Profile: profileRequest()}

	first, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// The cached response is returned verbatim, assessment ID included, and no
	// second event is published.
	assert.Equal(t, first.AssessmentID, second.AssessmentID)
	assert.Equal(t, first.RiskScore, second.RiskScore)
	assert.Len(t, publisher.events, 1)

	// A different profile misses the cache.
	other := req
	other.Profile.CreditScore = 580
	third, err := uc.Execute(context.Background(), other)
	require.NoError(t, err)
	assert.NotEqual(t, first.AssessmentID, third.AssessmentID)
	assert.Len(t, publisher.events, 2)
}

func TestAssessCreditRiskUseCase_Execute_CorruptCacheEntry(t *testing.T) {
	publisher := &stubPublisher{}
	uc, memCache := newRiskUseCase(publisher)
	req := dto.AssessRiskRequest{Profile: profileRequest()}

	key := profileCacheKey(toProfile(req.Profile))
	require.NoError(t, memCache.Set(context.Background(), key, "{not json"))

	// An unreadable entry is discarded and the assessment recomputed.
	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 100, resp.RiskScore)

	cached, ok := memCache.Get(context.Background(), key)
	require.True(t, ok)
	assert.NotEqual(t, "{not json", cached)
}

func TestAssessCreditRiskUseCase_Execute_InvalidProfile(t *testing.T) {
	publisher := &stubPublisher{}
	uc, memCache := newRiskUseCase(publisher)

	profile := profileRequest()
	profile.MonthlyIncome = decimal.Zero

	_, err := uc.Execute(context.Background(), dto.AssessRiskRequest{Profile: profile})

	var profileErr *valueobject.InvalidProfileError
	require.ErrorAs(t, err, &profileErr)
	assert.Empty(t, publisher.events)

	_, ok := memCache.Get(context.Background(), profileCacheKey(toProfile(profile)))
	assert.False(t, ok)
}
