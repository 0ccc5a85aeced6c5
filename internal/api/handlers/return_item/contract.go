package return_item

import (
	"context"

	"github.com/m04kA/SMC-CoworkingService/internal/service/library/models"
)

type LibraryService interface {
	Return(ctx context.Context, recordID int64) (*models.ReturnItemResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
