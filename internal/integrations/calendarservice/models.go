package calendarservice

import "time"

// Event модель события календаря
type Event struct {
	Title       string    `json:"title"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	ExternalRef int64     `json:"external_ref"` // ID бронирования в нашем сервисе
}

// EventUpdate модель частичного обновления события
// Передаются только заполненные поля
type EventUpdate struct {
	Title       *string    `json:"title,omitempty"`
	Start       *time.Time `json:"start,omitempty"`
	End         *time.Time `json:"end,omitempty"`
	Description *string    `json:"description,omitempty"`
	Location    *string    `json:"location,omitempty"`
}

// createEventResponse ответ календарного сервиса на создание события
type createEventResponse struct {
	ID int64 `json:"id"`
}

// ErrorResponse модель ошибки календарного сервиса
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
