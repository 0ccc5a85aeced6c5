package library

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
)

// ItemRepository интерфейс репозитория предметов библиотеки
type ItemRepository interface {
	Create(ctx context.Context, item *domain.LibraryItem) (*domain.LibraryItem, error)
	GetByID(ctx context.Context, id int64) (*domain.LibraryItem, error)
	List(ctx context.Context, status *domain.ItemStatus, category *domain.ItemCategory) ([]*domain.LibraryItem, error)
	Update(ctx context.Context, item *domain.LibraryItem) error
	UpdateAvailability(ctx context.Context, id int64, available int, status domain.ItemStatus) error
}

// BorrowRepository интерфейс репозитория записей о выдаче
type BorrowRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.BorrowRecord, error)
	CountOpenByItem(ctx context.Context, itemID int64) (int, error)
	GetByItem(ctx context.Context, itemID int64, onlyOpen bool) ([]*domain.BorrowRecord, error)
	GetByCustomer(ctx context.Context, customerID int64, onlyOpen bool) ([]*domain.BorrowRecord, error)
	SetReturned(ctx context.Context, id int64, returnedAt time.Time) error
	Delete(ctx context.Context, id int64) error
}

// TxManager интерфейс менеджера транзакций
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
