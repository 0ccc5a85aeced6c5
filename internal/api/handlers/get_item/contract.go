package get_item

import (
	"context"

	"github.com/m04kA/SMC-CoworkingService/internal/service/library/models"
)

type LibraryService interface {
	GetItem(ctx context.Context, id int64) (*models.ItemResponse, error)
	ListItems(ctx context.Context, status, category string) (*models.ItemListResponse, error)
	ItemHistory(ctx context.Context, itemID int64, onlyOpen bool) (*models.BorrowRecordListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
