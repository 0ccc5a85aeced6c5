package confirm_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CoworkingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-CoworkingService/internal/integrations/calendarservice"
	"github.com/m04kA/SMC-CoworkingService/pkg/ptr"
)

const warnCalendarUnavailable = "calendar service is unavailable, event was not created"

// UseCase use case для подтверждения бронирования
type UseCase struct {
	bookingRepo    BookingRepository
	spaceRepo      SpaceRepository
	customerRepo   CustomerRepository
	calendarClient CalendarClient
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	spaceRepo SpaceRepository,
	customerRepo CustomerRepository,
	calendarClient CalendarClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		spaceRepo:      spaceRepo,
		customerRepo:   customerRepo,
		calendarClient: calendarClient,
		logger:         logger,
	}
}

// Execute выполняет use case подтверждения бронирования
// Повторное подтверждение идемпотентно: уже привязанное событие календаря
// не создается заново. Недоступность календаря не откатывает подтверждение
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ConfirmBooking: booking=%d", req.BookingID)

	if req.BookingID <= 0 {
		return nil, fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	// 1. Получаем бронирование
	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("ConfirmBooking: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("ConfirmBooking: failed to get booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	// 2. Подтвердить можно только pending или уже подтвержденное бронирование
	if booking.Status != domain.StatusPending && !booking.IsConfirmed() {
		uc.logger.Warn("ConfirmBooking: booking id=%d in status %s cannot be confirmed",
			req.BookingID, booking.Status)
		return nil, ErrCannotConfirm
	}

	// 3. Уже подтверждено и событие привязано - ничего не делаем
	if booking.IsConfirmed() && booking.HasCalendarEvent() {
		uc.logger.Info("ConfirmBooking: booking id=%d already confirmed with event id=%d",
			req.BookingID, *booking.CalendarEventID)
		return toResponse(booking, nil), nil
	}

	// 4. Переводим в confirmed
	if !booking.IsConfirmed() {
		if err := uc.bookingRepo.UpdateStatus(ctx, booking.ID, domain.StatusConfirmed); err != nil {
			uc.logger.Error("ConfirmBooking: failed to update status for booking id=%d: %v", booking.ID, err)
			return nil, fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
		}
		booking.Status = domain.StatusConfirmed
	}

	// 5. Создаем событие в календаре
	event, err := uc.buildEvent(ctx, booking)
	if err != nil {
		return nil, err
	}

	var warning *string
	eventID, err := uc.calendarClient.CreateEventWithGracefulDegradation(ctx, event)
	if err != nil {
		uc.logger.Warn("ConfirmBooking: calendar event not created for booking id=%d: %v", booking.ID, err)
		warning = ptr.Ptr(warnCalendarUnavailable)
	} else {
		if err := uc.bookingRepo.SetCalendarEvent(ctx, booking.ID, ptr.Ptr(eventID)); err != nil {
			uc.logger.Error("ConfirmBooking: failed to link event id=%d to booking id=%d: %v",
				eventID, booking.ID, err)
			return nil, fmt.Errorf("%w: failed to link calendar event: %v", ErrInternal, err)
		}
		booking.CalendarEventID = ptr.Ptr(eventID)
		uc.logger.Info("ConfirmBooking: created calendar event id=%d for booking id=%d", eventID, booking.ID)
	}

	uc.logger.Info("ConfirmBooking: successfully confirmed booking id=%d", booking.ID)

	return toResponse(booking, warning), nil
}

// buildEvent собирает календарное событие из бронирования
func (uc *UseCase) buildEvent(ctx context.Context, booking *domain.Booking) (*calendarservice.Event, error) {
	space, err := uc.spaceRepo.GetByID(ctx, booking.SpaceID)
	if err != nil {
		uc.logger.Error("ConfirmBooking: failed to get space id=%d: %v", booking.SpaceID, err)
		return nil, fmt.Errorf("%w: failed to get space: %v", ErrInternal, err)
	}

	customer, err := uc.customerRepo.GetByID(ctx, booking.CustomerID)
	if err != nil {
		uc.logger.Error("ConfirmBooking: failed to get customer id=%d: %v", booking.CustomerID, err)
		return nil, fmt.Errorf("%w: failed to get customer: %v", ErrInternal, err)
	}

	return &calendarservice.Event{
		Title: fmt.Sprintf("%s - %s", space.Name, customer.Name),
		Start: booking.StartDate,
		End:   booking.EndDate,
		Description: fmt.Sprintf("Type: %s\nDuration: %g\nTotal price: %.2f",
			booking.BookingType, booking.Duration, booking.TotalPrice),
		Location:    eventLocation(space),
		ExternalRef: booking.ID,
	}, nil
}

// eventLocation собирает место проведения из этажа и зоны пространства
func eventLocation(space *domain.Space) string {
	switch {
	case space.Floor != nil && space.Zone != nil:
		return fmt.Sprintf("Floor %s, Zone %s", *space.Floor, *space.Zone)
	case space.Floor != nil:
		return fmt.Sprintf("Floor %s", *space.Floor)
	case space.Zone != nil:
		return fmt.Sprintf("Zone %s", *space.Zone)
	default:
		return ""
	}
}
