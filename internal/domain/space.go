package domain

import "time"

// SpaceType represents a category of bookable spaces (desk, office, meeting room)
type SpaceType struct {
	ID          int64
	Name        string
	Code        string
	Description *string
}

// Amenity represents an amenity that spaces can offer
type Amenity struct {
	ID   int64
	Name string
	Icon *string // Font Awesome icon class
}

// SpaceAmenity links a space to an amenity with a quantity
type SpaceAmenity struct {
	AmenityID int64
	Name      string
	Quantity  int
}

// Space represents a bookable physical area with a rate card
type Space struct {
	ID          int64
	Name        string
	TypeID      int64
	Floor       *string
	Zone        *string
	Capacity    int
	HourlyRate  float64
	DailyRate   float64
	MonthlyRate float64
	Description *string
	IsActive    bool
	Amenities   []SpaceAmenity

	CreatedAt time.Time
	UpdatedAt time.Time
}

// RateFor returns the rate applicable to the booking type
func (s *Space) RateFor(bookingType BookingType) float64 {
	switch bookingType {
	case BookingHourly:
		return s.HourlyRate
	case BookingDaily:
		return s.DailyRate
	case BookingMonthly:
		return s.MonthlyRate
	default:
		return 0
	}
}

// HasConsistentRates checks the rate card invariant: a day never costs more
// than 24 hours, a month never more than 31 days
func (s *Space) HasConsistentRates() bool {
	if s.HourlyRate < 0 || s.DailyRate < 0 || s.MonthlyRate < 0 {
		return false
	}
	if s.DailyRate > s.HourlyRate*24 {
		return false
	}
	if s.MonthlyRate > s.DailyRate*31 {
		return false
	}
	return true
}

// RateSuggestion suggested daily and monthly rates derived from an hourly rate
type RateSuggestion struct {
	DailyRate   float64
	MonthlyRate float64
}

// SuggestRates returns a consistent rate card suggestion for a new hourly rate.
// Like SuggestBookingDefaults, this replaces the legacy onchange hook: the
// caller decides whether to apply the suggestion.
func SuggestRates(hourlyRate float64) RateSuggestion {
	daily := hourlyRate * SuggestedHoursPerDay
	return RateSuggestion{
		DailyRate:   daily,
		MonthlyRate: daily * SuggestedDaysPerMonth,
	}
}
