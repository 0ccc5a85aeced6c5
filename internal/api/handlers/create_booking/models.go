package create_booking

import (
	"time"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
	createBooking "github.com/m04kA/SMC-CoworkingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	SpaceID     int64    `json:"spaceId"`
	CustomerID  int64    `json:"customerId"`
	BookingType string   `json:"bookingType"`        // hourly | daily | monthly
	Duration    *float64 `json:"duration,omitempty"` // nil = предложенная по умолчанию
	StartDate   string   `json:"startDate"`          // "2026-03-10 09:00"
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
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	startDate, err := time.Parse(domain.DateTimeFormat, r.StartDate)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		SpaceID:     r.SpaceID,
		CustomerID:  r.CustomerID,
		BookingType: domain.BookingType(r.BookingType),
		Duration:    r.Duration,
		StartDate:   startDate,
		Notes:       r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
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
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   resp.UpdatedAt.Format(time.RFC3339),
	}
}
