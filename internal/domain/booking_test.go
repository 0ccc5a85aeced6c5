package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, value string) time.Time {
	t.Helper()

	ts, err := time.Parse(DateTimeFormat, value)
	require.NoError(t, err)
	return ts
}

func TestBooking_Overlaps(t *testing.T) {
	booking := &Booking{
		StartDate: mustParse(t, "2025-06-10 09:00"),
		EndDate:   mustParse(t, "2025-06-10 11:00"),
	}

	tests := []struct {
		name  string
		start string
		end   string
		want  bool
	}{
		{"inside", "2025-06-10 09:30", "2025-06-10 10:30", true},
		{"covers", "2025-06-10 08:00", "2025-06-10 12:00", true},
		{"starts before ends inside", "2025-06-10 08:00", "2025-06-10 10:00", true},
		{"starts inside ends after", "2025-06-10 10:00", "2025-06-10 12:00", true},
		{"touches end", "2025-06-10 11:00", "2025-06-10 13:00", false},
		{"touches start", "2025-06-10 07:00", "2025-06-10 09:00", false},
		{"fully before", "2025-06-10 06:00", "2025-06-10 07:00", false},
		{"fully after", "2025-06-10 12:00", "2025-06-10 13:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := booking.Overlaps(mustParse(t, tt.start), mustParse(t, tt.end))
			require.Equal(t, tt.want, got)
		})
	}
}

func TestBooking_IsActive(t *testing.T) {
	require.True(t, (&Booking{Status: StatusPending}).IsActive())
	require.True(t, (&Booking{Status: StatusConfirmed}).IsActive())
	require.True(t, (&Booking{Status: StatusCompleted}).IsActive())
	require.False(t, (&Booking{Status: StatusCancelled}).IsActive())
}

func TestBooking_Transitions(t *testing.T) {
	pending := &Booking{Status: StatusPending}
	confirmed := &Booking{Status: StatusConfirmed}
	cancelled := &Booking{Status: StatusCancelled}
	completed := &Booking{Status: StatusCompleted}

	require.True(t, pending.CanBeCancelled())
	require.True(t, confirmed.CanBeCancelled())
	require.False(t, cancelled.CanBeCancelled())
	require.False(t, completed.CanBeCancelled())

	require.True(t, pending.CanBeUpdated())
	require.True(t, confirmed.CanBeUpdated())
	require.False(t, cancelled.CanBeUpdated())
	require.False(t, completed.CanBeUpdated())

	require.True(t, pending.CanBeCompleted())
	require.True(t, confirmed.CanBeCompleted())
	require.False(t, cancelled.CanBeCompleted())
	require.False(t, completed.CanBeCompleted())
}

func TestBookingType_Unit(t *testing.T) {
	require.Equal(t, time.Hour, BookingHourly.Unit())
	require.Equal(t, 24*time.Hour, BookingDaily.Unit())
	require.Equal(t, 720*time.Hour, BookingMonthly.Unit())
	require.Equal(t, time.Duration(0), BookingType("weekly").Unit())
}

func TestBookingType_DurationBounds(t *testing.T) {
	min, max := BookingHourly.DurationBounds()
	require.Equal(t, 0.5, min)
	require.Equal(t, float64(168), max)

	min, max = BookingDaily.DurationBounds()
	require.Equal(t, 0.5, min)
	require.Equal(t, float64(90), max)

	min, max = BookingMonthly.DurationBounds()
	require.Equal(t, 0.5, min)
	require.Equal(t, float64(24), max)
}

func TestComputeEndDate(t *testing.T) {
	start := mustParse(t, "2025-06-10 09:00")

	require.Equal(t, mustParse(t, "2025-06-10 11:30"), ComputeEndDate(start, BookingHourly, 2.5))
	require.Equal(t, mustParse(t, "2025-06-12 09:00"), ComputeEndDate(start, BookingDaily, 2))
	require.Equal(t, start.Add(720*time.Hour), ComputeEndDate(start, BookingMonthly, 1))
	// half a day
	require.Equal(t, mustParse(t, "2025-06-10 21:00"), ComputeEndDate(start, BookingDaily, 0.5))
}

func TestComputeTotalPrice(t *testing.T) {
	space := &Space{HourlyRate: 10, DailyRate: 70, MonthlyRate: 1200}

	require.Equal(t, 25.0, ComputeTotalPrice(space, BookingHourly, 2.5))
	require.Equal(t, 210.0, ComputeTotalPrice(space, BookingDaily, 3))
	require.Equal(t, 600.0, ComputeTotalPrice(space, BookingMonthly, 0.5))
	require.Equal(t, 0.0, ComputeTotalPrice(space, BookingType("weekly"), 2))
}

func TestSuggestBookingDefaults(t *testing.T) {
	require.Equal(t, 1.0, SuggestBookingDefaults(BookingHourly))
	require.Equal(t, 1.0, SuggestBookingDefaults(BookingDaily))
	require.Equal(t, 1.0, SuggestBookingDefaults(BookingMonthly))
	require.Equal(t, 0.0, SuggestBookingDefaults(BookingType("weekly")))
}
