package update_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("update_booking: booking not found")

	// ErrCannotUpdate возвращается, когда бронирование уже нельзя менять
	ErrCannotUpdate = errors.New("update_booking: booking cannot be updated in its current status")

	// ErrInvalidBookingType возвращается при неизвестном типе бронирования
	ErrInvalidBookingType = errors.New("update_booking: invalid booking type")

	// ErrInvalidDuration возвращается, когда длительность вне допустимых границ типа
	ErrInvalidDuration = errors.New("update_booking: invalid duration")

	// ErrInvalidDateRange возвращается при некорректном интервале бронирования
	ErrInvalidDateRange = errors.New("update_booking: invalid date range")

	// ErrSpaceConflict возвращается, когда новый интервал пересекается с активным бронированием
	ErrSpaceConflict = errors.New("update_booking: space is already booked for this period")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_booking: internal error")
)
