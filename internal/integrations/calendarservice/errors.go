package calendarservice

import "errors"

var (
	// ErrEventNotFound возвращается, когда событие не найдено в календаре
	ErrEventNotFound = errors.New("calendarservice client: event not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("calendarservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("calendarservice client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что календарный сервис недоступен; переход статуса бронирования
	// при этом не откатывается, ошибка поднимается как предупреждение
	ErrServiceDegraded = errors.New("calendarservice unavailable: graceful degradation applied")
)
