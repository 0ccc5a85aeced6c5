package borrow

import "errors"

var (
	// ErrRecordNotFound возвращается, когда запись о выдаче не найдена
	ErrRecordNotFound = errors.New("borrow.repository: borrow record not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("borrow.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("borrow.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("borrow.repository: failed to scan row")
)
