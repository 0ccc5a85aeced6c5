package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CoworkingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-CoworkingService/internal/service/bookings/models"
)

const warnCalendarUnavailable = "календарный сервис недоступен, событие будет удалено при следующей синхронизации"

// Service сервис для работы с бронированиями
// Создание и изменение дат вынесены в отдельные use case'ы с сериализуемыми
// транзакциями; здесь живут чтение и простые переходы статусов
type Service struct {
	bookingRepo    BookingRepository
	calendarClient CalendarClient
	logger         Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	calendarClient CalendarClient,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:    bookingRepo,
		calendarClient: calendarClient,
		logger:         logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// GetCustomerBookings получает историю бронирований клиента
// Опционально фильтрует по статусу
func (s *Service) GetCustomerBookings(ctx context.Context, req *models.GetCustomerBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetCustomerBookings: fetching bookings for customer=%d, status=%v", req.CustomerID, req.Status)

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetCustomerBookings: invalid status=%s for customer=%d", *req.Status, req.CustomerID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByCustomerID(ctx, req.CustomerID, domainStatus)
	if err != nil {
		s.logger.Error("GetCustomerBookings: repository error for customer=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: GetCustomerBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetCustomerBookings: successfully fetched %d bookings for customer=%d", len(bookings), req.CustomerID)
	return models.FromDomainBookingList(bookings), nil
}

// GetSpaceBookings получает бронирования пространства с фильтрацией
// по периоду и статусу
func (s *Service) GetSpaceBookings(ctx context.Context, req *models.GetSpaceBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetSpaceBookings: fetching bookings for space=%d", req.SpaceID)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetSpaceBookings: invalid filter for space=%d: %v", req.SpaceID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetBySpaceWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetSpaceBookings: repository error for space=%d: %v", req.SpaceID, err)
		return nil, fmt.Errorf("%w: GetSpaceBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetSpaceBookings: successfully fetched %d bookings for space=%d", len(bookings), req.SpaceID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование
// Отменённое бронирование выходит из конфликтного множества пересечений.
// Связанное событие календаря удаляется после перехода статуса; недоступность
// календарного сервиса не откатывает отмену и поднимается как предупреждение
func (s *Service) Cancel(ctx context.Context, bookingID int64) (*models.TransitionResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%d", bookingID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return nil, ErrCannotCancel
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, domain.StatusCancelled); err != nil {
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}
	booking.Status = domain.StatusCancelled

	// Переход зафиксирован; дальше только best-effort работа с календарем
	var warning *string
	if booking.HasCalendarEvent() {
		eventID := *booking.CalendarEventID
		if err := s.calendarClient.DeleteEventWithGracefulDegradation(ctx, eventID); err != nil {
			s.logger.Warn("Cancel: failed to delete calendar event id=%d for booking id=%d: %v",
				eventID, bookingID, err)
			w := warnCalendarUnavailable
			warning = &w
		}

		if err := s.bookingRepo.SetCalendarEvent(ctx, bookingID, nil); err != nil {
			s.logger.Error("Cancel: failed to clear calendar link for booking id=%d: %v", bookingID, err)
			return nil, fmt.Errorf("%w: Cancel - failed to clear calendar link: %v", ErrInternal, err)
		}
		booking.CalendarEventID = nil
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return &models.TransitionResponse{
		Booking: models.FromDomainBooking(booking),
		Warning: warning,
	}, nil
}

// Complete завершает бронирование
// Из completed переходов больше нет
func (s *Service) Complete(ctx context.Context, bookingID int64) (*models.TransitionResponse, error) {
	s.logger.Info("Complete: completing booking id=%d", bookingID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Complete: booking id=%d not found", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Complete: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Complete - repository error: %v", ErrInternal, err)
	}

	if !booking.CanBeCompleted() {
		s.logger.Warn("Complete: booking id=%d cannot be completed, status=%s", bookingID, booking.Status)
		return nil, ErrCannotComplete
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, domain.StatusCompleted); err != nil {
		s.logger.Error("Complete: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Complete - repository error: %v", ErrInternal, err)
	}
	booking.Status = domain.StatusCompleted

	s.logger.Info("Complete: successfully completed booking id=%d", bookingID)
	return &models.TransitionResponse{
		Booking: models.FromDomainBooking(booking),
	}, nil
}
