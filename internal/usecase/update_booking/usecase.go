package update_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CoworkingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-CoworkingService/internal/integrations/calendarservice"
	"github.com/m04kA/SMC-CoworkingService/pkg/ptr"
)

const warnCalendarUnavailable = "calendar service is unavailable, event was not updated"

// UseCase use case для обновления бронирования
type UseCase struct {
	bookingRepo    BookingRepository
	spaceRepo      SpaceRepository
	calendarClient CalendarClient
	txManager      TransactionManager
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	spaceRepo SpaceRepository,
	calendarClient CalendarClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		spaceRepo:      spaceRepo,
		calendarClient: calendarClient,
		txManager:      txManager,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// SetTimeProvider устанавливает провайдер времени (используется в тестах)
func (uc *UseCase) SetTimeProvider(provider TimeProvider) {
	uc.timeProvider = provider
}

// Execute выполняет use case обновления бронирования
// Интервал и цена пересчитываются, новый интервал проверяется на пересечения
// в сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateBooking: booking=%d", req.BookingID)

	if req.BookingID <= 0 {
		return nil, fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	if req.BookingType != nil && !req.BookingType.IsValid() {
		uc.logger.Warn("UpdateBooking: unknown booking type %q", *req.BookingType)
		return nil, fmt.Errorf("%w: unknown booking type %q", ErrInvalidBookingType, *req.BookingType)
	}

	now := uc.timeProvider.Now()

	var result *domain.Booking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Текущее бронирование с блокировкой (FOR UPDATE)
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("UpdateBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateBooking: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		if !booking.CanBeUpdated() {
			uc.logger.Warn("UpdateBooking: booking id=%d in status %s cannot be updated",
				req.BookingID, booking.Status)
			return ErrCannotUpdate
		}

		// 2. Применяем изменения
		startChanged := false
		if req.BookingType != nil {
			booking.BookingType = *req.BookingType
		}
		if req.Duration != nil {
			booking.Duration = *req.Duration
		}
		if req.StartDate != nil && !req.StartDate.Equal(booking.StartDate) {
			booking.StartDate = *req.StartDate
			startChanged = true
		}
		if req.Notes != nil {
			booking.Notes = req.Notes
		}

		// 3. Пересчитываем производные поля
		if err := validateDuration(booking.BookingType, booking.Duration); err != nil {
			uc.logger.Warn("UpdateBooking: duration validation failed: %v", err)
			return err
		}

		booking.EndDate = domain.ComputeEndDate(booking.StartDate, booking.BookingType, booking.Duration)

		// Ограничение на начало в прошлом проверяется только для нового начала:
		// существующие бронирования могли начаться сколь угодно давно
		if err := validateDateRange(booking.StartDate, booking.EndDate, now, startChanged); err != nil {
			uc.logger.Warn("UpdateBooking: date range validation failed: %v", err)
			return err
		}

		space, err := uc.spaceRepo.GetByID(txCtx, booking.SpaceID)
		if err != nil {
			uc.logger.Error("UpdateBooking: failed to get space id=%d: %v", booking.SpaceID, err)
			return fmt.Errorf("%w: failed to get space: %v", ErrInternal, err)
		}
		booking.TotalPrice = domain.ComputeTotalPrice(space, booking.BookingType, booking.Duration)

		// 4. Новый интервал не должен пересекаться с чужими активными бронированиями
		filter := domain.SpaceBookingsFilter{
			SpaceID:          booking.SpaceID,
			From:             &booking.StartDate,
			To:               &booking.EndDate,
			ExcludeBookingID: booking.ID,
		}

		bookings, err := uc.bookingRepo.GetBySpaceWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("UpdateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		if hasOverlap(booking.StartDate, booking.EndDate, bookings) {
			uc.logger.Warn("UpdateBooking: space id=%d already booked for [%s, %s)",
				booking.SpaceID, booking.StartDate.Format(domain.DateTimeFormat),
				booking.EndDate.Format(domain.DateTimeFormat))
			return ErrSpaceConflict
		}

		// 5. Сохраняем
		if err := uc.bookingRepo.Update(txCtx, booking); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateBooking: failed to update booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}

		result = booking
		return nil
	})

	if err != nil {
		return nil, err
	}

	// 6. Синхронизируем календарное событие, если оно есть
	// Ошибки календаря не откатывают обновление
	var warning *string
	if result.IsConfirmed() && result.HasCalendarEvent() {
		update := &calendarservice.EventUpdate{
			Start:       ptr.Ptr(result.StartDate),
			End:         ptr.Ptr(result.EndDate),
			Description: ptr.Ptr(eventDescription(result)),
		}
		if err := uc.calendarClient.UpdateEventWithGracefulDegradation(ctx, *result.CalendarEventID, update); err != nil {
			uc.logger.Warn("UpdateBooking: calendar event id=%d not updated for booking id=%d: %v",
				*result.CalendarEventID, result.ID, err)
			warning = ptr.Ptr(warnCalendarUnavailable)
		}
	}

	uc.logger.Info("UpdateBooking: successfully updated booking id=%d, price=%.2f", result.ID, result.TotalPrice)

	return toResponse(result, warning), nil
}

// eventDescription собирает описание календарного события из бронирования
func eventDescription(booking *domain.Booking) string {
	return fmt.Sprintf("Type: %s\nDuration: %g\nTotal price: %.2f",
		booking.BookingType, booking.Duration, booking.TotalPrice)
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
func validateDateRange(start, end, now time.Time, checkPast bool) error {
	if checkPast && start.Before(now.Add(-domain.MaxStartInPast)) {
		return fmt.Errorf("%w: start date is too far in the past", ErrInvalidDateRange)
	}

	if !end.After(start) {
		return fmt.Errorf("%w: end date must be after start date", ErrInvalidDateRange)
	}

	return nil
}

// hasOverlap ищет пересечение интервала [start, end) с активными бронированиями
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
