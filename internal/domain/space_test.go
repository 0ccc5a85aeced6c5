package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSpace_RateFor(t *testing.T) {
	space := &Space{HourlyRate: 12, DailyRate: 80, MonthlyRate: 1500}

	require.Equal(t, 12.0, space.RateFor(BookingHourly))
	require.Equal(t, 80.0, space.RateFor(BookingDaily))
	require.Equal(t, 1500.0, space.RateFor(BookingMonthly))
	require.Equal(t, 0.0, space.RateFor(BookingType("weekly")))
}

func TestSpace_HasConsistentRates(t *testing.T) {
	tests := []struct {
		name    string
		hourly  float64
		daily   float64
		monthly float64
		want    bool
	}{
		{"suggested rates", 10, 80, 1600, true},
		{"zero card", 0, 0, 0, true},
		{"day at the 24h cap", 10, 240, 1000, true},
		{"day above 24 hours", 10, 241, 1000, false},
		{"month above 31 days", 10, 80, 2481, false},
		{"month at the 31d cap", 10, 80, 2480, true},
		{"negative rate", -1, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			space := &Space{HourlyRate: tt.hourly, DailyRate: tt.daily, MonthlyRate: tt.monthly}
			require.Equal(t, tt.want, space.HasConsistentRates())
		})
	}
}

func TestSuggestRates(t *testing.T) {
	suggestion := SuggestRates(10)
	require.Equal(t, 80.0, suggestion.DailyRate)
	require.Equal(t, 1600.0, suggestion.MonthlyRate)

	// предложенная сетка всегда проходит проверку согласованности
	space := &Space{HourlyRate: 10, DailyRate: suggestion.DailyRate, MonthlyRate: suggestion.MonthlyRate}
	require.True(t, space.HasConsistentRates())

	zero := SuggestRates(0)
	require.Equal(t, 0.0, zero.DailyRate)
	require.Equal(t, 0.0, zero.MonthlyRate)
}
