package borrow_item

import (
	"context"

	borrowItem "github.com/m04kA/SMC-CoworkingService/internal/usecase/borrow_item"
)

type BorrowItemUseCase interface {
	Execute(ctx context.Context, req *borrowItem.Request) (*borrowItem.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
