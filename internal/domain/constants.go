package domain

import "time"

// Booking duration bounds, in units of the booking type
const (
	MinBookingDuration = 0.5
	MaxHourlyDuration  = 168 // one week of hours
	MaxDailyDuration   = 90
	MaxMonthlyDuration = 24
)

// Suggested durations for a freshly selected booking type
const (
	DefaultHourlyDuration = 1.0
	DefaultUnitDuration   = 1.0
)

// MaxStartInPast how far in the past a booking may start
const MaxStartInPast = 24 * time.Hour

// Space validation constants
const (
	MinSpaceCapacity = 1
	MaxSpaceCapacity = 500
)

// Library validation constants
const (
	MinItemQuantity   = 1
	MaxItemQuantity   = 9999
	MinItemNameLength = 3
)

// LimitedStatusRatio threshold of available/total at or below which an item
// is reported as limited
const LimitedStatusRatio = 0.5

// Rate suggestion multipliers: a day is billed as eight bookable hours,
// a month as twenty working days
const (
	SuggestedHoursPerDay  = 8
	SuggestedDaysPerMonth = 20
)

// Time format constants
const (
	DateTimeFormat = "2006-01-02 15:04"
	DateFormat     = "2006-01-02"
)

// ActiveStatuses статусы бронирований, занимающих пространство
// Используются при проверке пересечений
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
}
