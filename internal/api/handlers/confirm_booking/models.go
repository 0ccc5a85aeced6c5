package confirm_booking

import (
	"time"

	confirmBooking "github.com/m04kA/SMC-CoworkingService/internal/usecase/confirm_booking"
)

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64   `json:"id"`
	SpaceID         int64   `json:"spaceId"`
	CustomerID      int64   `json:"customerId"`
	BookingType     string  `json:"bookingType"`
	Duration        float64 `json:"duration"`
	StartDate       string  `json:"startDate"`
	EndDate         string  `json:"endDate"`
	TotalPrice      float64 `json:"totalPrice"`
	Status          string  `json:"status"`
	Notes           *string `json:"notes,omitempty"`
	CalendarEventID *int64  `json:"calendarEventId,omitempty"`
	Warning         *string `json:"warning,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *confirmBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		SpaceID:         resp.SpaceID,
		CustomerID:      resp.CustomerID,
		BookingType:     resp.BookingType,
		Duration:        resp.Duration,
		StartDate:       resp.StartDate.Format(time.RFC3339),
		EndDate:         resp.EndDate.Format(time.RFC3339),
		TotalPrice:      resp.TotalPrice,
		Status:          resp.Status,
		Notes:           resp.Notes,
		CalendarEventID: resp.CalendarEventID,
		Warning:         resp.Warning,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
