package borrow_item

import (
	"time"

	borrowItem "github.com/m04kA/SMC-CoworkingService/internal/usecase/borrow_item"
)

// BorrowItemRequest HTTP request model
type BorrowItemRequest struct {
	CustomerID int64 `json:"customerId"`
}

// BorrowRecordResponse HTTP response model
type BorrowRecordResponse struct {
	RecordID   int64  `json:"recordId"`
	ItemID     int64  `json:"itemId"`
	CustomerID int64  `json:"customerId"`
	BorrowedAt string `json:"borrowedAt"`

	AvailableQuantity int    `json:"availableQuantity"`
	ItemStatus        string `json:"itemStatus"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *borrowItem.Response) *BorrowRecordResponse {
	return &BorrowRecordResponse{
		RecordID:          resp.RecordID,
		ItemID:            resp.ItemID,
		CustomerID:        resp.CustomerID,
		BorrowedAt:        resp.BorrowedAt.Format(time.RFC3339),
		AvailableQuantity: resp.AvailableQuantity,
		ItemStatus:        resp.ItemStatus,
	}
}
