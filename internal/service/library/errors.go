package library

import "errors"

var (
	// ErrItemNotFound возвращается, когда предмет не найден
	ErrItemNotFound = errors.New("item not found")

	// ErrRecordNotFound возвращается, когда запись о выдаче не найдена
	ErrRecordNotFound = errors.New("borrow record not found")

	// ErrInvalidName возвращается при слишком коротком названии предмета
	ErrInvalidName = errors.New("invalid item name")

	// ErrInvalidCategory возвращается при неизвестной категории предмета
	ErrInvalidCategory = errors.New("invalid item category")

	// ErrInvalidCondition возвращается при неизвестном состоянии предмета
	ErrInvalidCondition = errors.New("invalid item condition")

	// ErrInvalidQuantity возвращается при некорректном общем количестве
	ErrInvalidQuantity = errors.New("invalid item quantity")

	// ErrQuantityBelowBorrowed возвращается, когда общее количество меньше
	// числа открытых выдач
	ErrQuantityBelowBorrowed = errors.New("total quantity below open borrows")

	// ErrAlreadyReturned возвращается при повторном возврате предмета
	ErrAlreadyReturned = errors.New("item already returned")

	// ErrCannotDeleteReturned возвращается при попытке удалить закрытую
	// запись о выдаче
	ErrCannotDeleteReturned = errors.New("cannot delete returned borrow record")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
