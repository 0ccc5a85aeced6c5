package get_customer_borrows

import (
	"context"

	"github.com/m04kA/SMC-CoworkingService/internal/service/library/models"
)

type LibraryService interface {
	CustomerBorrows(ctx context.Context, customerID int64, onlyOpen bool) (*models.BorrowRecordListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
