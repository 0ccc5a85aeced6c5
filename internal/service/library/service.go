package library

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
	borrowRepo "github.com/m04kA/SMC-CoworkingService/internal/infra/storage/borrow"
	itemRepo "github.com/m04kA/SMC-CoworkingService/internal/infra/storage/libraryitem"
	"github.com/m04kA/SMC-CoworkingService/internal/service/library/models"
)

// Service сервис библиотеки оборудования
// Выдача предметов вынесена в отдельный usecase: там требуется
// сериализуемая проверка лимита
type Service struct {
	itemRepo     ItemRepository
	borrowRepo   BorrowRepository
	txManager    TxManager
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса библиотеки
func NewService(
	itemRepo ItemRepository,
	borrowRepo BorrowRepository,
	txManager TxManager,
	logger Logger,
) *Service {
	return &Service{
		itemRepo:     itemRepo,
		borrowRepo:   borrowRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// SetTimeProvider устанавливает провайдер времени (используется в тестах)
func (s *Service) SetTimeProvider(provider TimeProvider) {
	s.timeProvider = provider
}

// CreateItem создает новый предмет библиотеки
// Новый предмет считается полностью доступным: открытых выдач у него нет
func (s *Service) CreateItem(ctx context.Context, req *models.CreateItemRequest) (*models.ItemResponse, error) {
	s.logger.Info("CreateItem: creating item name=%q category=%q", req.Name, req.Category)

	item := req.ToDomainItem()
	if item.Condition == "" {
		item.Condition = domain.ConditionGood
	}

	if err := s.validateItem(item); err != nil {
		s.logger.Warn("CreateItem: validation failed for item name=%q: %v", req.Name, err)
		return nil, err
	}

	item.AvailableQuantity = item.TotalQuantity
	item.Status = domain.ComputeItemStatus(item.Condition, item.AvailableQuantity, item.TotalQuantity)

	created, err := s.itemRepo.Create(ctx, item)
	if err != nil {
		s.logger.Error("CreateItem: repository error for item name=%q: %v", req.Name, err)
		return nil, fmt.Errorf("%w: CreateItem - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateItem: successfully created item id=%d", created.ID)
	return models.FromDomainItem(created), nil
}

// GetItem получает предмет по ID
func (s *Service) GetItem(ctx context.Context, id int64) (*models.ItemResponse, error) {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, itemRepo.ErrItemNotFound) {
			s.logger.Warn("GetItem: item id=%d not found", id)
			return nil, ErrItemNotFound
		}
		s.logger.Error("GetItem: repository error for item id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetItem - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainItem(item), nil
}

// ListItems получает список предметов с опциональными фильтрами
func (s *Service) ListItems(ctx context.Context, status, category string) (*models.ItemListResponse, error) {
	var statusFilter *domain.ItemStatus
	if status != "" {
		st := domain.ItemStatus(status)
		statusFilter = &st
	}

	var categoryFilter *domain.ItemCategory
	if category != "" {
		cat := domain.ItemCategory(category)
		if !cat.IsValid() {
			return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidCategory, category)
		}
		categoryFilter = &cat
	}

	items, err := s.itemRepo.List(ctx, statusFilter, categoryFilter)
	if err != nil {
		s.logger.Error("ListItems: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListItems - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainItemList(items), nil
}

// UpdateItem обновляет редактируемые поля предмета и пересчитывает
// его доступность. Общее количество нельзя опустить ниже числа
// открытых выдач
func (s *Service) UpdateItem(ctx context.Context, id int64, req *models.UpdateItemRequest) (*models.ItemResponse, error) {
	s.logger.Info("UpdateItem: updating item id=%d", id)

	var updated *domain.LibraryItem

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		item, err := s.itemRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, itemRepo.ErrItemNotFound) {
				return ErrItemNotFound
			}
			return fmt.Errorf("%w: UpdateItem - get item: %v", ErrInternal, err)
		}

		item.Name = req.Name
		item.Category = domain.ItemCategory(req.Category)
		item.TotalQuantity = req.TotalQuantity
		item.Notes = req.Notes

		if err := s.validateItem(item); err != nil {
			return err
		}

		openBorrows, err := s.borrowRepo.CountOpenByItem(ctx, id)
		if err != nil {
			return fmt.Errorf("%w: UpdateItem - count open borrows: %v", ErrInternal, err)
		}

		if item.TotalQuantity < openBorrows {
			return fmt.Errorf("%w: total=%d, open borrows=%d",
				ErrQuantityBelowBorrowed, item.TotalQuantity, openBorrows)
		}

		if err := s.itemRepo.Update(ctx, item); err != nil {
			if errors.Is(err, itemRepo.ErrItemNotFound) {
				return ErrItemNotFound
			}
			return fmt.Errorf("%w: UpdateItem - update item: %v", ErrInternal, err)
		}

		available, status := item.ComputeAvailability(openBorrows)
		if err := s.itemRepo.UpdateAvailability(ctx, id, available, status); err != nil {
			return fmt.Errorf("%w: UpdateItem - update availability: %v", ErrInternal, err)
		}

		item.AvailableQuantity = available
		item.Status = status
		updated = item

		return nil
	})

	if err != nil {
		s.logger.Warn("UpdateItem: failed to update item id=%d: %v", id, err)
		return nil, err
	}

	s.logger.Info("UpdateItem: successfully updated item id=%d", id)
	return models.FromDomainItem(updated), nil
}

// SetCondition меняет состояние предмета и пересчитывает его статус
// Перевод в maintenance убирает предмет из выдачи, открытые выдачи
// при этом не трогаются
func (s *Service) SetCondition(ctx context.Context, id int64, req *models.SetConditionRequest) (*models.ItemResponse, error) {
	s.logger.Info("SetCondition: item id=%d condition=%q", id, req.Condition)

	condition := domain.ItemCondition(req.Condition)
	if !condition.IsValid() {
		return nil, fmt.Errorf("%w: unknown condition %q", ErrInvalidCondition, req.Condition)
	}

	var updated *domain.LibraryItem

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		item, err := s.itemRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, itemRepo.ErrItemNotFound) {
				return ErrItemNotFound
			}
			return fmt.Errorf("%w: SetCondition - get item: %v", ErrInternal, err)
		}

		item.Condition = condition
		if err := s.itemRepo.Update(ctx, item); err != nil {
			return fmt.Errorf("%w: SetCondition - update item: %v", ErrInternal, err)
		}

		openBorrows, err := s.borrowRepo.CountOpenByItem(ctx, id)
		if err != nil {
			return fmt.Errorf("%w: SetCondition - count open borrows: %v", ErrInternal, err)
		}

		available, status := item.ComputeAvailability(openBorrows)
		if err := s.itemRepo.UpdateAvailability(ctx, id, available, status); err != nil {
			return fmt.Errorf("%w: SetCondition - update availability: %v", ErrInternal, err)
		}

		item.AvailableQuantity = available
		item.Status = status
		updated = item

		return nil
	})

	if err != nil {
		s.logger.Warn("SetCondition: failed for item id=%d: %v", id, err)
		return nil, err
	}

	return models.FromDomainItem(updated), nil
}

// Return закрывает запись о выдаче и возвращает предмет в оборот
func (s *Service) Return(ctx context.Context, recordID int64) (*models.ReturnItemResponse, error) {
	s.logger.Info("Return: returning borrow record id=%d", recordID)

	var record *domain.BorrowRecord
	var item *domain.LibraryItem

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error

		record, err = s.borrowRepo.GetByID(ctx, recordID)
		if err != nil {
			if errors.Is(err, borrowRepo.ErrRecordNotFound) {
				return ErrRecordNotFound
			}
			return fmt.Errorf("%w: Return - get record: %v", ErrInternal, err)
		}

		if !record.IsOpen() {
			return fmt.Errorf("%w: record id=%d", ErrAlreadyReturned, recordID)
		}

		returnedAt := s.timeProvider.Now()
		if err := s.borrowRepo.SetReturned(ctx, recordID, returnedAt); err != nil {
			if errors.Is(err, borrowRepo.ErrRecordNotFound) {
				return fmt.Errorf("%w: record id=%d", ErrAlreadyReturned, recordID)
			}
			return fmt.Errorf("%w: Return - set returned: %v", ErrInternal, err)
		}
		record.ReturnedAt = &returnedAt

		item, err = s.recomputeItem(ctx, record.ItemID)
		return err
	})

	if err != nil {
		s.logger.Warn("Return: failed to return record id=%d: %v", recordID, err)
		return nil, err
	}

	s.logger.Info("Return: successfully returned record id=%d item id=%d", recordID, record.ItemID)
	return &models.ReturnItemResponse{
		Record: models.FromDomainBorrowRecord(record),
		Item:   models.FromDomainItem(item),
	}, nil
}

// DeleteBorrowRecord удаляет открытую запись о выдаче (исправление
// ошибочной выдачи). Закрытые записи неизменяемы: это история
func (s *Service) DeleteBorrowRecord(ctx context.Context, recordID int64) (*models.ItemResponse, error) {
	s.logger.Info("DeleteBorrowRecord: deleting borrow record id=%d", recordID)

	var item *domain.LibraryItem

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		record, err := s.borrowRepo.GetByID(ctx, recordID)
		if err != nil {
			if errors.Is(err, borrowRepo.ErrRecordNotFound) {
				return ErrRecordNotFound
			}
			return fmt.Errorf("%w: DeleteBorrowRecord - get record: %v", ErrInternal, err)
		}

		if !record.IsOpen() {
			return fmt.Errorf("%w: record id=%d", ErrCannotDeleteReturned, recordID)
		}

		if err := s.borrowRepo.Delete(ctx, recordID); err != nil {
			if errors.Is(err, borrowRepo.ErrRecordNotFound) {
				return fmt.Errorf("%w: record id=%d", ErrCannotDeleteReturned, recordID)
			}
			return fmt.Errorf("%w: DeleteBorrowRecord - delete record: %v", ErrInternal, err)
		}

		item, err = s.recomputeItem(ctx, record.ItemID)
		return err
	})

	if err != nil {
		s.logger.Warn("DeleteBorrowRecord: failed to delete record id=%d: %v", recordID, err)
		return nil, err
	}

	return models.FromDomainItem(item), nil
}

// ItemHistory возвращает записи о выдаче предмета
func (s *Service) ItemHistory(ctx context.Context, itemID int64, onlyOpen bool) (*models.BorrowRecordListResponse, error) {
	if _, err := s.itemRepo.GetByID(ctx, itemID); err != nil {
		if errors.Is(err, itemRepo.ErrItemNotFound) {
			s.logger.Warn("ItemHistory: item id=%d not found", itemID)
			return nil, ErrItemNotFound
		}
		s.logger.Error("ItemHistory: repository error for item id=%d: %v", itemID, err)
		return nil, fmt.Errorf("%w: ItemHistory - repository error: %v", ErrInternal, err)
	}

	records, err := s.borrowRepo.GetByItem(ctx, itemID, onlyOpen)
	if err != nil {
		s.logger.Error("ItemHistory: repository error for item id=%d: %v", itemID, err)
		return nil, fmt.Errorf("%w: ItemHistory - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBorrowRecordList(records), nil
}

// CustomerBorrows возвращает записи о выдачах клиенту
func (s *Service) CustomerBorrows(ctx context.Context, customerID int64, onlyOpen bool) (*models.BorrowRecordListResponse, error) {
	records, err := s.borrowRepo.GetByCustomer(ctx, customerID, onlyOpen)
	if err != nil {
		s.logger.Error("CustomerBorrows: repository error for customer id=%d: %v", customerID, err)
		return nil, fmt.Errorf("%w: CustomerBorrows - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBorrowRecordList(records), nil
}

// recomputeItem пересчитывает доступность предмета от числа открытых выдач
// Вызывается только внутри транзакции, строка предмета уже заблокирована
func (s *Service) recomputeItem(ctx context.Context, itemID int64) (*domain.LibraryItem, error) {
	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("%w: recomputeItem - get item: %v", ErrInternal, err)
	}

	openBorrows, err := s.borrowRepo.CountOpenByItem(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("%w: recomputeItem - count open borrows: %v", ErrInternal, err)
	}

	available, status := item.ComputeAvailability(openBorrows)
	if err := s.itemRepo.UpdateAvailability(ctx, itemID, available, status); err != nil {
		return nil, fmt.Errorf("%w: recomputeItem - update availability: %v", ErrInternal, err)
	}

	item.AvailableQuantity = available
	item.Status = status

	return item, nil
}

// validateItem валидирует редактируемые поля предмета
func (s *Service) validateItem(item *domain.LibraryItem) error {
	if len(strings.TrimSpace(item.Name)) < domain.MinItemNameLength {
		return fmt.Errorf("%w: name must be at least %d characters", ErrInvalidName, domain.MinItemNameLength)
	}

	if !item.Category.IsValid() {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidCategory, item.Category)
	}

	if !item.Condition.IsValid() {
		return fmt.Errorf("%w: unknown condition %q", ErrInvalidCondition, item.Condition)
	}

	if item.TotalQuantity < domain.MinItemQuantity || item.TotalQuantity > domain.MaxItemQuantity {
		return fmt.Errorf("%w: total quantity must be between %d and %d",
			ErrInvalidQuantity, domain.MinItemQuantity, domain.MaxItemQuantity)
	}

	return nil
}
