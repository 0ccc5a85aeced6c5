package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// BookingType represents the billing unit of a booking
type BookingType string

const (
	BookingHourly  BookingType = "hourly"
	BookingDaily   BookingType = "daily"
	BookingMonthly BookingType = "monthly"
)

// Booking represents a reservation of a space by a customer
type Booking struct {
	ID         int64
	SpaceID    int64
	CustomerID int64

	BookingType BookingType
	Duration    float64 // in units of BookingType
	StartDate   time.Time
	EndDate     time.Time // derived: StartDate + Duration * unit
	TotalPrice  float64   // derived: Duration * rate for BookingType

	Status BookingStatus
	Notes  *string

	// Link to the external calendar event, set on confirmation
	CalendarEventID *int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking occupies its space
// Cancelled bookings leave the conflict set
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeUpdated returns true if the booking dates can still be edited
func (b *Booking) CanBeUpdated() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeCompleted returns true if the booking can transition to completed
func (b *Booking) CanBeCompleted() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsConfirmed returns true if the booking is confirmed
func (b *Booking) IsConfirmed() bool {
	return b.Status == StatusConfirmed
}

// HasCalendarEvent returns true if a calendar event is linked
func (b *Booking) HasCalendarEvent() bool {
	return b.CalendarEventID != nil
}

// Overlaps reports whether the booking interval intersects [start, end)
// Half-open semantics: touching endpoints do not overlap
func (b *Booking) Overlaps(start, end time.Time) bool {
	return b.StartDate.Before(end) && b.EndDate.After(start)
}

// Unit returns the time span of one duration unit for the booking type
func (t BookingType) Unit() time.Duration {
	switch t {
	case BookingHourly:
		return time.Hour
	case BookingDaily:
		return 24 * time.Hour
	case BookingMonthly:
		return 30 * 24 * time.Hour
	default:
		return 0
	}
}

// IsValid returns true for a known booking type
func (t BookingType) IsValid() bool {
	switch t {
	case BookingHourly, BookingDaily, BookingMonthly:
		return true
	default:
		return false
	}
}

// DurationBounds returns the allowed [min, max] duration for the booking type
func (t BookingType) DurationBounds() (min, max float64) {
	switch t {
	case BookingHourly:
		return MinBookingDuration, MaxHourlyDuration
	case BookingDaily:
		return MinBookingDuration, MaxDailyDuration
	case BookingMonthly:
		return MinBookingDuration, MaxMonthlyDuration
	default:
		return 0, 0
	}
}

// ComputeEndDate derives the end of a booking from its start, type and duration
func ComputeEndDate(start time.Time, bookingType BookingType, duration float64) time.Time {
	return start.Add(time.Duration(duration * float64(bookingType.Unit())))
}

// ComputeTotalPrice derives the booking price from the space rate card
func ComputeTotalPrice(space *Space, bookingType BookingType, duration float64) float64 {
	return duration * space.RateFor(bookingType)
}

// SuggestBookingDefaults returns the suggested duration for a freshly selected
// booking type. Replaces the onchange behavior of the legacy forms: the caller
// receives a suggestion instead of having fields mutated under it.
func SuggestBookingDefaults(bookingType BookingType) float64 {
	switch bookingType {
	case BookingHourly:
		return DefaultHourlyDuration
	case BookingDaily, BookingMonthly:
		return DefaultUnitDuration
	default:
		return 0
	}
}

// SpaceBookingsFilter фильтр для получения бронирований пространства
type SpaceBookingsFilter struct {
	SpaceID          int64
	From             *time.Time // начало периода (опционально)
	To               *time.Time // конец периода (опционально)
	Status           *BookingStatus
	IncludeCancelled bool  // включать ли отменённые бронирования
	ExcludeBookingID int64 // исключить бронирование из выборки (0 = не исключать)
}
