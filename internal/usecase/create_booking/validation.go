package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SpaceID <= 0 {
		return fmt.Errorf("%w: spaceID must be positive", ErrInvalidInput)
	}

	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}

	if !req.BookingType.IsValid() {
		return fmt.Errorf("%w: unknown booking type %q", ErrInvalidBookingType, req.BookingType)
	}

	if req.StartDate.IsZero() {
		return fmt.Errorf("%w: startDate is required", ErrInvalidInput)
	}

	return nil
}

// validateDuration проверяет длительность по границам типа бронирования
func validateDuration(bookingType domain.BookingType, duration float64) error {
	min, max := bookingType.DurationBounds()
	if duration < min || duration > max {
		return fmt.Errorf("%w: duration for %s must be between %g and %g",
			ErrInvalidDuration, bookingType, min, max)
	}
	return nil
}

// validateDateRange проверяет интервал бронирования
// Начало не может лежать дальше суток в прошлом, конец должен быть после начала
func validateDateRange(start, end, now time.Time) error {
	if start.Before(now.Add(-domain.MaxStartInPast)) {
		return fmt.Errorf("%w: start date is too far in the past", ErrInvalidDateRange)
	}

	if !end.After(start) {
		return fmt.Errorf("%w: end date must be after start date", ErrInvalidDateRange)
	}

	return nil
}

// hasOverlap ищет пересечение интервала [start, end) с активными бронированиями
// Касание границ пересечением не считается
func hasOverlap(start, end time.Time, bookings []*domain.Booking) bool {
	for _, booking := range bookings {
		if !booking.IsActive() {
			continue
		}
		if booking.Overlaps(start, end) {
			return true
		}
	}
	return false
}
