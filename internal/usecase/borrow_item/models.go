package borrow_item

import (
	"time"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
)

// Request модель запроса на выдачу предмета
type Request struct {
	ItemID     int64 // ID предмета
	CustomerID int64 // ID клиента
}

// Response модель ответа с созданной записью о выдаче
type Response struct {
	RecordID   int64     // ID записи о выдаче
	ItemID     int64     // ID предмета
	CustomerID int64     // ID клиента
	BorrowedAt time.Time // Время выдачи

	// Состояние предмета после выдачи
	AvailableQuantity int    // Оставшееся доступное количество
	ItemStatus        string // Пересчитанный статус предмета
}

func toResponse(record *domain.BorrowRecord, item *domain.LibraryItem) *Response {
	return &Response{
		RecordID:          record.ID,
		ItemID:            record.ItemID,
		CustomerID:        record.CustomerID,
		BorrowedAt:        record.BorrowedAt,
		AvailableQuantity: item.AvailableQuantity,
		ItemStatus:        string(item.Status),
	}
}
