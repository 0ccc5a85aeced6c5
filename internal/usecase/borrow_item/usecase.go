package borrow_item

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
	customerRepo "github.com/m04kA/SMC-CoworkingService/internal/infra/storage/customer"
	itemRepo "github.com/m04kA/SMC-CoworkingService/internal/infra/storage/libraryitem"
)

// UseCase use case для выдачи предмета библиотеки
type UseCase struct {
	itemRepo     ItemRepository
	borrowRepo   BorrowRepository
	customerRepo CustomerRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	itemRepo ItemRepository,
	borrowRepo BorrowRepository,
	customerRepo CustomerRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		itemRepo:     itemRepo,
		borrowRepo:   borrowRepo,
		customerRepo: customerRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// SetTimeProvider устанавливает провайдер времени (используется в тестах)
func (uc *UseCase) SetTimeProvider(provider TimeProvider) {
	uc.timeProvider = provider
}

// Execute выполняет use case выдачи предмета
// Лимит проверяется в сериализуемой транзакции: строка предмета блокируется
// (FOR UPDATE), так что параллельные выдачи одного предмета сериализуются
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BorrowItem: item=%d, customer=%d", req.ItemID, req.CustomerID)

	// 1. Валидация входных данных
	if req.ItemID <= 0 {
		return nil, fmt.Errorf("%w: itemID must be positive", ErrInvalidInput)
	}
	if req.CustomerID <= 0 {
		return nil, fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}

	// 2. Проверяем существование клиента
	if _, err := uc.customerRepo.GetByID(ctx, req.CustomerID); err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			uc.logger.Warn("BorrowItem: customer id=%d not found", req.CustomerID)
			return nil, ErrCustomerNotFound
		}
		uc.logger.Error("BorrowItem: failed to get customer id=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: failed to get customer: %v", ErrInternal, err)
	}

	var record *domain.BorrowRecord
	var item *domain.LibraryItem

	// 3. Проверка лимита и запись в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		var err error

		// 3.1. Предмет с блокировкой (FOR UPDATE)
		item, err = uc.itemRepo.GetByID(txCtx, req.ItemID)
		if err != nil {
			if errors.Is(err, itemRepo.ErrItemNotFound) {
				uc.logger.Warn("BorrowItem: item id=%d not found", req.ItemID)
				return ErrItemNotFound
			}
			uc.logger.Error("BorrowItem: failed to get item id=%d: %v", req.ItemID, err)
			return fmt.Errorf("%w: failed to get item: %v", ErrInternal, err)
		}

		// 3.2. Открытые выдачи против общего количества
		openBorrows, err := uc.borrowRepo.CountOpenByItem(txCtx, req.ItemID)
		if err != nil {
			uc.logger.Error("BorrowItem: failed to count open borrows for item id=%d: %v", req.ItemID, err)
			return fmt.Errorf("%w: failed to count open borrows: %v", ErrInternal, err)
		}

		if openBorrows >= item.TotalQuantity {
			uc.logger.Warn("BorrowItem: item id=%d capacity exceeded, %d/%d units borrowed",
				req.ItemID, openBorrows, item.TotalQuantity)
			return ErrCapacityExceeded
		}

		// 3.3. Создаем запись о выдаче
		record, err = uc.borrowRepo.Create(txCtx, &domain.BorrowRecord{
			ItemID:     req.ItemID,
			CustomerID: req.CustomerID,
			BorrowedAt: uc.timeProvider.Now(),
		})
		if err != nil {
			uc.logger.Error("BorrowItem: failed to create borrow record: %v", err)
			return fmt.Errorf("%w: failed to create borrow record: %v", ErrInternal, err)
		}

		// 3.4. Пересчитываем доступность предмета
		available, status := item.ComputeAvailability(openBorrows + 1)
		if err := uc.itemRepo.UpdateAvailability(txCtx, req.ItemID, available, status); err != nil {
			uc.logger.Error("BorrowItem: failed to update availability for item id=%d: %v", req.ItemID, err)
			return fmt.Errorf("%w: failed to update availability: %v", ErrInternal, err)
		}

		item.AvailableQuantity = available
		item.Status = status

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("BorrowItem: successfully created record id=%d, item id=%d now %s (%d left)",
		record.ID, item.ID, item.Status, item.AvailableQuantity)

	return toResponse(record, item), nil
}
