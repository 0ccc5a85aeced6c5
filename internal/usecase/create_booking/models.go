package create_booking

import (
	"time"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	SpaceID     int64              // ID пространства
	CustomerID  int64              // ID клиента
	BookingType domain.BookingType // Тип бронирования (hourly/daily/monthly)
	Duration    *float64           // Длительность в единицах типа (nil = предложенная по умолчанию)
	StartDate   time.Time          // Начало бронирования
	Notes       *string            // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          int64     // ID созданного бронирования
	SpaceID     int64     // ID пространства
	CustomerID  int64     // ID клиента
	BookingType string    // Тип бронирования
	Duration    float64   // Длительность
	StartDate   time.Time // Начало бронирования
	EndDate     time.Time // Конец бронирования (производное)
	TotalPrice  float64   // Итоговая цена (производное)
	Status      string    // Статус бронирования
	Notes       *string   // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}

func toResponse(booking *domain.Booking) *Response {
	return &Response{
		ID:          booking.ID,
		SpaceID:     booking.SpaceID,
		CustomerID:  booking.CustomerID,
		BookingType: string(booking.BookingType),
		Duration:    booking.Duration,
		StartDate:   booking.StartDate,
		EndDate:     booking.EndDate,
		TotalPrice:  booking.TotalPrice,
		Status:      string(booking.Status),
		Notes:       booking.Notes,
		CreatedAt:   booking.CreatedAt,
		UpdatedAt:   booking.UpdatedAt,
	}
}
