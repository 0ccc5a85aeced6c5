package spaces

import (
	"context"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
)

// SpaceRepository интерфейс репозитория пространств
type SpaceRepository interface {
	Create(ctx context.Context, space *domain.Space) (*domain.Space, error)
	GetByID(ctx context.Context, id int64) (*domain.Space, error)
	List(ctx context.Context, onlyActive bool) ([]*domain.Space, error)
	Update(ctx context.Context, space *domain.Space) error
	SetActive(ctx context.Context, id int64, active bool) error
	GetTypeByID(ctx context.Context, id int64) (*domain.SpaceType, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
