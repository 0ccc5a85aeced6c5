package delete_borrow_record

import (
	"context"

	"github.com/m04kA/SMC-CoworkingService/internal/service/library/models"
)

type LibraryService interface {
	DeleteBorrowRecord(ctx context.Context, recordID int64) (*models.ItemResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
