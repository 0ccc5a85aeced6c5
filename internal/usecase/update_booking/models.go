package update_booking

import (
	"time"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
)

// Request модель запроса на обновление бронирования
// Заполненные поля меняются, nil-поля остаются как есть
type Request struct {
	BookingID   int64               // ID бронирования
	BookingType *domain.BookingType // Новый тип бронирования (опционально)
	Duration    *float64            // Новая длительность (опционально)
	StartDate   *time.Time          // Новое начало (опционально)
	Notes       *string             // Новые заметки (опционально)
}

// Response модель ответа с обновленным бронированием
type Response struct {
	ID          int64     // ID бронирования
	SpaceID     int64     // ID пространства
	CustomerID  int64     // ID клиента
	BookingType string    // Тип бронирования
	Duration    float64   // Длительность
	StartDate   time.Time // Начало бронирования
	EndDate     time.Time // Конец бронирования (производное)
	TotalPrice  float64   // Итоговая цена (производное)
	Status      string    // Статус бронирования
	Notes       *string   // Заметки

	// Предупреждение о недоступности календарного сервиса
	Warning *string

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}

func toResponse(booking *domain.Booking, warning *string) *Response {
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
		Warning:     warning,
		CreatedAt:   booking.CreatedAt,
		UpdatedAt:   booking.UpdatedAt,
	}
}
