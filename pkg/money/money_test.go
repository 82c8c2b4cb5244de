package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crestbank/underwriting-service/pkg/money"
)

func TestRound_TiesAwayFromZero(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"exact two places", "10.25", "10.25"},
		{"round down", "2.674", "2.67"},
		{"round up", "2.676", "2.68"},
		{"tie rounds up", "2.675", "2.68"},
		{"tie at half cent", "1.005", "1.01"},
		{"negative tie rounds away from zero", "-1.005", "-1.01"},
		{"zero", "0", "0.00"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in, err := decimal.NewFromString(tc.in)
			require.NoError(t, err)
			want, err := decimal.NewFromString(tc.want)
			require.NoError(t, err)

			assert.True(t, money.Round(in).Equal(want),
				"Round(%s) = %s, want %s", tc.in, money.Round(in), tc.want)
		})
	}
}

func TestRound_Idempotent(t *testing.T) {
	in := decimal.NewFromFloat(513.754999)
	once := money.Round(in)
	twice := money.Round(once)
	assert.True(t, once.Equal(twice))
}

func TestMonthlyRate(t *testing.T) {
	rate := money.MonthlyRate(decimal.NewFromInt(12))
	assert.True(t, rate.Equal(decimal.NewFromFloat(0.01)),
		"12%% annual should be 1%% monthly, got %s", rate)

	zero := money.MonthlyRate(decimal.Zero)
	assert.True(t, zero.IsZero())
}

func TestRoundRatio(t *testing.T) {
	ratio, err := decimal.NewFromString("2.1411764705882353")
	require.NoError(t, err)
	assert.True(t, money.RoundRatio(ratio).Equal(decimal.NewFromFloat(2.14)))
}
