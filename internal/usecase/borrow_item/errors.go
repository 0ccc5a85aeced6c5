package borrow_item

import "errors"

var (
	// ErrItemNotFound возвращается, когда предмет не найден
	ErrItemNotFound = errors.New("borrow_item: item not found")

	// ErrCustomerNotFound возвращается, когда клиент не найден
	ErrCustomerNotFound = errors.New("borrow_item: customer not found")

	// ErrCapacityExceeded возвращается, когда все экземпляры предмета уже выданы
	ErrCapacityExceeded = errors.New("borrow_item: all units of this item are already borrowed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("borrow_item: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("borrow_item: internal error")
)
