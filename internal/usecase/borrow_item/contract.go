package borrow_item

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
)

// ItemRepository интерфейс репозитория предметов библиотеки
type ItemRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.LibraryItem, error)
	UpdateAvailability(ctx context.Context, id int64, available int, status domain.ItemStatus) error
}

// BorrowRepository интерфейс репозитория записей о выдаче
type BorrowRepository interface {
	Create(ctx context.Context, record *domain.BorrowRecord) (*domain.BorrowRecord, error)
	CountOpenByItem(ctx context.Context, itemID int64) (int, error)
}

// CustomerRepository интерфейс репозитория клиентов
type CustomerRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
