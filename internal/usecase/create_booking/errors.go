package create_booking

import "errors"

var (
	// ErrSpaceNotFound возвращается, когда пространство не найдено
	ErrSpaceNotFound = errors.New("create_booking: space not found")

	// ErrSpaceInactive возвращается при попытке забронировать неактивное пространство
	ErrSpaceInactive = errors.New("create_booking: space is not active")

	// ErrCustomerNotFound возвращается, когда клиент не найден
	ErrCustomerNotFound = errors.New("create_booking: customer not found")

	// ErrInvalidBookingType возвращается при неизвестном типе бронирования
	ErrInvalidBookingType = errors.New("create_booking: invalid booking type")

	// ErrInvalidDuration возвращается, когда длительность вне допустимых границ типа
	ErrInvalidDuration = errors.New("create_booking: invalid duration")

	// ErrInvalidDateRange возвращается при некорректном интервале бронирования
	ErrInvalidDateRange = errors.New("create_booking: invalid date range")

	// ErrSpaceConflict возвращается, когда интервал пересекается с активным бронированием
	ErrSpaceConflict = errors.New("create_booking: space is already booked for this period")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
