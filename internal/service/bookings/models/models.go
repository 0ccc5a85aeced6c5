package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// GetCustomerBookingsRequest запрос на получение бронирований клиента
type GetCustomerBookingsRequest struct {
	CustomerID int64   `json:"customerId"`
	Status     *string `json:"status,omitempty"`
}

// GetSpaceBookingsRequest запрос на получение бронирований пространства
type GetSpaceBookingsRequest struct {
	SpaceID          int64      `json:"spaceId"`
	From             *time.Time `json:"from,omitempty"`             // Начало периода (опционально)
	To               *time.Time `json:"to,omitempty"`               // Конец периода (опционально)
	Status           *string    `json:"status,omitempty"`           // Фильтр по статусу (опционально)
	IncludeCancelled bool       `json:"includeCancelled,omitempty"` // Включить отменённые бронирования
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetSpaceBookingsRequest) ToDomainFilter() (domain.SpaceBookingsFilter, error) {
	filter := domain.SpaceBookingsFilter{
		SpaceID:          r.SpaceID,
		From:             r.From,
		To:               r.To,
		IncludeCancelled: r.IncludeCancelled,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID         int64 `json:"id"`
	SpaceID    int64 `json:"spaceId"`
	CustomerID int64 `json:"customerId"`

	BookingType string  `json:"bookingType"`
	Duration    float64 `json:"duration"`
	StartDate   string  `json:"startDate"` // ISO 8601
	EndDate     string  `json:"endDate"`   // производное, ISO 8601
	TotalPrice  float64 `json:"totalPrice"`

	Status string  `json:"status"`
	Notes  *string `json:"notes,omitempty"`

	CalendarEventID *int64 `json:"calendarEventId,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// TransitionResponse ответ на переход статуса бронирования
// Warning заполняется, когда сам переход успешен, но календарный сервис
// недоступен
type TransitionResponse struct {
	Booking *BookingResponse `json:"booking"`
	Warning *string          `json:"warning,omitempty"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:              b.ID,
		SpaceID:         b.SpaceID,
		CustomerID:      b.CustomerID,
		BookingType:     string(b.BookingType),
		Duration:        b.Duration,
		StartDate:       b.StartDate.Format(time.RFC3339),
		EndDate:         b.EndDate.Format(time.RFC3339),
		TotalPrice:      b.TotalPrice,
		Status:          string(b.Status),
		Notes:           b.Notes,
		CalendarEventID: b.CalendarEventID,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	if bookings == nil {
		return &BookingListResponse{
			Bookings: []BookingResponse{},
		}
	}

	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, len(bookings)),
	}

	for i, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings[i] = *bookingResp
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)

	validStatuses := []domain.BookingStatus{
		domain.StatusPending,
		domain.StatusConfirmed,
		domain.StatusCancelled,
		domain.StatusCompleted,
	}

	for _, valid := range validStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
