package update_booking

import (
	"time"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
	updateBooking "github.com/m04kA/SMC-CoworkingService/internal/usecase/update_booking"
)

// UpdateBookingRequest HTTP request model
// Заполненные поля меняются, отсутствующие остаются как есть
type UpdateBookingRequest struct {
	BookingType *string  `json:"bookingType,omitempty"`
	Duration    *float64 `json:"duration,omitempty"`
	StartDate   *string  `json:"startDate,omitempty"` // "2026-03-10 09:00"
	Notes       *string  `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID          int64   `json:"id"`
	SpaceID     int64   `json:"spaceId"`
	CustomerID  int64   `json:"customerId"`
	BookingType string  `json:"bookingType"`
	Duration    float64 `json:"duration"`
	StartDate   string  `json:"startDate"`
	EndDate     string  `json:"endDate"`
	TotalPrice  float64 `json:"totalPrice"`
	Status      string  `json:"status"`
	Notes       *string `json:"notes,omitempty"`
	Warning     *string `json:"warning,omitempty"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateBookingRequest) ToUseCaseRequest(bookingID int64) (*updateBooking.Request, error) {
	req := &updateBooking.Request{
		BookingID: bookingID,
		Duration:  r.Duration,
		Notes:     r.Notes,
	}

	if r.BookingType != nil {
		bookingType := domain.BookingType(*r.BookingType)
		req.BookingType = &bookingType
	}

	if r.StartDate != nil {
		startDate, err := time.Parse(domain.DateTimeFormat, *r.StartDate)
		if err != nil {
			return nil, err
		}
		req.StartDate = &startDate
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:          resp.ID,
		SpaceID:     resp.SpaceID,
		CustomerID:  resp.CustomerID,
		BookingType: resp.BookingType,
		Duration:    resp.Duration,
		StartDate:   resp.StartDate.Format(time.RFC3339),
		EndDate:     resp.EndDate.Format(time.RFC3339),
		TotalPrice:  resp.TotalPrice,
		Status:      resp.Status,
		Notes:       resp.Notes,
		Warning:     resp.Warning,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   resp.UpdatedAt.Format(time.RFC3339),
	}
}
