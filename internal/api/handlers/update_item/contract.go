package update_item

import (
	"context"

	"github.com/m04kA/SMC-CoworkingService/internal/service/library/models"
)

type LibraryService interface {
	UpdateItem(ctx context.Context, id int64, req *models.UpdateItemRequest) (*models.ItemResponse, error)
	SetCondition(ctx context.Context, id int64, req *models.SetConditionRequest) (*models.ItemResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
