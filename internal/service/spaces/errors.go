package spaces

import "errors"

var (
	// ErrSpaceNotFound возвращается, когда пространство не найдено
	ErrSpaceNotFound = errors.New("space not found")

	// ErrTypeNotFound возвращается, когда тип пространства не найден
	ErrTypeNotFound = errors.New("space type not found")

	// ErrInvalidName возвращается при пустом имени пространства
	ErrInvalidName = errors.New("invalid space name")

	// ErrInvalidCapacity возвращается при вместимости вне допустимых границ
	ErrInvalidCapacity = errors.New("invalid space capacity")

	// ErrInvalidRates возвращается при несогласованной тарифной сетке
	ErrInvalidRates = errors.New("invalid rate card")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
