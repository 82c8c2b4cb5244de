package event

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewBaseEvent(t *testing.T) {
	before := time.Now().UTC()
	evt := NewBaseEvent("underwriting.loan.quoted", "quote-1")

	assert.NotEmpty(t, evt.EventID())
	assert.Equal(t, "underwriting.loan.quoted", evt.EventType())
	assert.Equal(t, "quote-1", evt.AggregateID())
	assert.False(t, evt.OccurredAt().Before(before))

	other := NewBaseEvent("underwriting.loan.quoted", "quote-1")
	assert.NotEqual(t, evt.EventID(), other.EventID())
}

func TestDecisionEventTypes(t *testing.T) {
	quoted := NewLoanQuoted("q1", decimal.NewFromInt(25000), decimal.NewFromFloat(8.5),
		decimal.NewFromFloat(512.91), decimal.NewFromFloat(30774.6), 60)
	assert.Equal(t, "underwriting.loan.quoted", quoted.EventType())
	assert.Equal(t, "q1", quoted.AggregateID())

	assessed := NewRiskAssessed("a1", "medium", 67, []string{"High debt-to-income ratio"},
		decimal.Zero, decimal.NewFromFloat(9.5))
	assert.Equal(t, "underwriting.risk.assessed", assessed.EventType())

	evaluated := NewAffordabilityEvaluated("e1", decimal.NewFromInt(1600),
		decimal.NewFromFloat(0.45), 80, true)
	assert.Equal(t, "underwriting.affordability.evaluated", evaluated.EventType())
	assert.True(t, evaluated.IsAffordable)
}
