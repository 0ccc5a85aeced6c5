package libraryitem

import "errors"

var (
	// ErrItemNotFound возвращается, когда предмет не найден
	ErrItemNotFound = errors.New("libraryitem.repository: item not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("libraryitem.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("libraryitem.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("libraryitem.repository: failed to scan row")
)
