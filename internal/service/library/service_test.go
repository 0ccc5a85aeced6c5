package library

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
	borrowstorage "github.com/m04kA/SMC-CoworkingService/internal/infra/storage/borrow"
	itemstorage "github.com/m04kA/SMC-CoworkingService/internal/infra/storage/libraryitem"
	"github.com/m04kA/SMC-CoworkingService/internal/service/library/models"
)

type mockItemRepo struct {
	createFn             func(ctx context.Context, item *domain.LibraryItem) (*domain.LibraryItem, error)
	getByIDFn            func(ctx context.Context, id int64) (*domain.LibraryItem, error)
	listFn               func(ctx context.Context, status *domain.ItemStatus, category *domain.ItemCategory) ([]*domain.LibraryItem, error)
	updateFn             func(ctx context.Context, item *domain.LibraryItem) error
	updateAvailabilityFn func(ctx context.Context, id int64, available int, status domain.ItemStatus) error
}

var _ ItemRepository = (*mockItemRepo)(nil)

func (m *mockItemRepo) Create(ctx context.Context, item *domain.LibraryItem) (*domain.LibraryItem, error) {
	if m.createFn == nil {
		created := *item
		created.ID = 1
		return &created, nil
	}
	return m.createFn(ctx, item)
}

func (m *mockItemRepo) GetByID(ctx context.Context, id int64) (*domain.LibraryItem, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockItemRepo) List(ctx context.Context, status *domain.ItemStatus, category *domain.ItemCategory) ([]*domain.LibraryItem, error) {
	if m.listFn == nil {
		return nil, nil
	}
	return m.listFn(ctx, status, category)
}

func (m *mockItemRepo) Update(ctx context.Context, item *domain.LibraryItem) error {
	if m.updateFn == nil {
		return nil
	}
	return m.updateFn(ctx, item)
}

func (m *mockItemRepo) UpdateAvailability(ctx context.Context, id int64, available int, status domain.ItemStatus) error {
	if m.updateAvailabilityFn == nil {
		return nil
	}
	return m.updateAvailabilityFn(ctx, id, available, status)
}

type mockBorrowRepo struct {
	getByIDFn       func(ctx context.Context, id int64) (*domain.BorrowRecord, error)
	countOpenByItem func(ctx context.Context, itemID int64) (int, error)
	getByItemFn     func(ctx context.Context, itemID int64, onlyOpen bool) ([]*domain.BorrowRecord, error)
	getByCustomerFn func(ctx context.Context, customerID int64, onlyOpen bool) ([]*domain.BorrowRecord, error)
	setReturnedFn   func(ctx context.Context, id int64, returnedAt time.Time) error
	deleteFn        func(ctx context.Context, id int64) error
}

var _ BorrowRepository = (*mockBorrowRepo)(nil)

func (m *mockBorrowRepo) GetByID(ctx context.Context, id int64) (*domain.BorrowRecord, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockBorrowRepo) CountOpenByItem(ctx context.Context, itemID int64) (int, error) {
	if m.countOpenByItem == nil {
		return 0, nil
	}
	return m.countOpenByItem(ctx, itemID)
}

func (m *mockBorrowRepo) GetByItem(ctx context.Context, itemID int64, onlyOpen bool) ([]*domain.BorrowRecord, error) {
	if m.getByItemFn == nil {
		return nil, nil
	}
	return m.getByItemFn(ctx, itemID, onlyOpen)
}

func (m *mockBorrowRepo) GetByCustomer(ctx context.Context, customerID int64, onlyOpen bool) ([]*domain.BorrowRecord, error) {
	if m.getByCustomerFn == nil {
		return nil, nil
	}
	return m.getByCustomerFn(ctx, customerID, onlyOpen)
}

func (m *mockBorrowRepo) SetReturned(ctx context.Context, id int64, returnedAt time.Time) error {
	if m.setReturnedFn == nil {
		return nil
	}
	return m.setReturnedFn(ctx, id, returnedAt)
}

func (m *mockBorrowRepo) Delete(ctx context.Context, id int64) error {
	if m.deleteFn == nil {
		return nil
	}
	return m.deleteFn(ctx, id)
}

type mockTxManager struct{}

var _ TxManager = (*mockTxManager)(nil)

func (m *mockTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func testItem(total, available int) *domain.LibraryItem {
	return &domain.LibraryItem{
		ID:                3,
		Name:              "Dell Monitor",
		Category:          domain.CategoryMonitor,
		Condition:         domain.ConditionGood,
		TotalQuantity:     total,
		AvailableQuantity: available,
		Status:            domain.ComputeItemStatus(domain.ConditionGood, available, total),
	}
}

func newTestService(itemRepo *mockItemRepo, borrowRepo *mockBorrowRepo, now time.Time) *Service {
	svc := NewService(itemRepo, borrowRepo, &mockTxManager{}, nopLogger{})
	svc.SetTimeProvider(&fixedTimeProvider{now: now})
	return svc
}

func TestCreateItem(t *testing.T) {
	var created *domain.LibraryItem
	itemRepo := &mockItemRepo{
		createFn: func(ctx context.Context, item *domain.LibraryItem) (*domain.LibraryItem, error) {
			copied := *item
			copied.ID = 5
			created = &copied
			return &copied, nil
		},
	}
	svc := newTestService(itemRepo, &mockBorrowRepo{}, time.Now())

	resp, err := svc.CreateItem(context.Background(), &models.CreateItemRequest{
		Name:          "HDMI Cable",
		Category:      "cable",
		TotalQuantity: 10,
	})
	require.NoError(t, err)
	require.Equal(t, int64(5), resp.ID)
	// без явного состояния предмет заводится как good и полностью доступен
	require.Equal(t, "good", resp.Condition)
	require.Equal(t, 10, resp.AvailableQuantity)
	require.Equal(t, "available", resp.Status)
	require.NotNil(t, created)
}

func TestCreateItem_Validation(t *testing.T) {
	svc := newTestService(&mockItemRepo{}, &mockBorrowRepo{}, time.Now())

	tests := []struct {
		name    string
		req     *models.CreateItemRequest
		wantErr error
	}{
		{"short name", &models.CreateItemRequest{Name: "ab", Category: "cable", TotalQuantity: 1}, ErrInvalidName},
		{"blank name", &models.CreateItemRequest{Name: "   ", Category: "cable", TotalQuantity: 1}, ErrInvalidName},
		{"unknown category", &models.CreateItemRequest{Name: "HDMI Cable", Category: "laptop", TotalQuantity: 1}, ErrInvalidCategory},
		{"unknown condition", &models.CreateItemRequest{Name: "HDMI Cable", Category: "cable", Condition: "broken", TotalQuantity: 1}, ErrInvalidCondition},
		{"zero quantity", &models.CreateItemRequest{Name: "HDMI Cable", Category: "cable", TotalQuantity: 0}, ErrInvalidQuantity},
		{"over limit", &models.CreateItemRequest{Name: "HDMI Cable", Category: "cable", TotalQuantity: 10000}, ErrInvalidQuantity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateItem(context.Background(), tt.req)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreateItem_MaintenanceCondition(t *testing.T) {
	svc := newTestService(&mockItemRepo{}, &mockBorrowRepo{}, time.Now())

	resp, err := svc.CreateItem(context.Background(), &models.CreateItemRequest{
		Name:          "Logitech Webcam",
		Category:      "webcam",
		Condition:     "maintenance",
		TotalQuantity: 2,
	})
	require.NoError(t, err)
	require.Equal(t, "maintenance", resp.Status)
}

func TestUpdateItem_QuantityBelowBorrowed(t *testing.T) {
	itemRepo := &mockItemRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.LibraryItem, error) {
			return testItem(4, 1), nil
		},
	}
	borrowRepo := &mockBorrowRepo{
		countOpenByItem: func(ctx context.Context, itemID int64) (int, error) {
			return 3, nil
		},
	}
	svc := newTestService(itemRepo, borrowRepo, time.Now())

	_, err := svc.UpdateItem(context.Background(), 3, &models.UpdateItemRequest{
		Name:          "Dell Monitor",
		Category:      "monitor",
		TotalQuantity: 2,
	})
	require.ErrorIs(t, err, ErrQuantityBelowBorrowed)
}

func TestUpdateItem_RecomputesAvailability(t *testing.T) {
	itemRepo := &mockItemRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.LibraryItem, error) {
			return testItem(4, 1), nil
		},
	}
	borrowRepo := &mockBorrowRepo{
		countOpenByItem: func(ctx context.Context, itemID int64) (int, error) {
			return 3, nil
		},
	}
	svc := newTestService(itemRepo, borrowRepo, time.Now())

	// рост общего количества до 8 при трех открытых выдачах
	resp, err := svc.UpdateItem(context.Background(), 3, &models.UpdateItemRequest{
		Name:          "Dell Monitor",
		Category:      "monitor",
		TotalQuantity: 8,
	})
	require.NoError(t, err)
	require.Equal(t, 5, resp.AvailableQuantity)
	require.Equal(t, "available", resp.Status)
}

func TestUpdateItem_TotalEqualsBorrowed(t *testing.T) {
	itemRepo := &mockItemRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.LibraryItem, error) {
			return testItem(4, 1), nil
		},
	}
	borrowRepo := &mockBorrowRepo{
		countOpenByItem: func(ctx context.Context, itemID int64) (int, error) {
			return 3, nil
		},
	}
	svc := newTestService(itemRepo, borrowRepo, time.Now())

	// общее количество ровно по числу выдач допускается, остаток нулевой
	resp, err := svc.UpdateItem(context.Background(), 3, &models.UpdateItemRequest{
		Name:          "Dell Monitor",
		Category:      "monitor",
		TotalQuantity: 3,
	})
	require.NoError(t, err)
	require.Equal(t, 0, resp.AvailableQuantity)
	require.Equal(t, "unavailable", resp.Status)
}

func TestSetCondition_Maintenance(t *testing.T) {
	itemRepo := &mockItemRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.LibraryItem, error) {
			return testItem(4, 4), nil
		},
	}
	svc := newTestService(itemRepo, &mockBorrowRepo{}, time.Now())

	resp, err := svc.SetCondition(context.Background(), 3, &models.SetConditionRequest{Condition: "maintenance"})
	require.NoError(t, err)
	require.Equal(t, "maintenance", resp.Condition)
	require.Equal(t, "maintenance", resp.Status)
}

func TestSetCondition_BackFromMaintenance(t *testing.T) {
	item := testItem(4, 4)
	item.Condition = domain.ConditionMaintenance
	item.Status = domain.ItemMaintenance

	itemRepo := &mockItemRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.LibraryItem, error) {
			return item, nil
		},
	}
	borrowRepo := &mockBorrowRepo{
		countOpenByItem: func(ctx context.Context, itemID int64) (int, error) {
			return 2, nil
		},
	}
	svc := newTestService(itemRepo, borrowRepo, time.Now())

	resp, err := svc.SetCondition(context.Background(), 3, &models.SetConditionRequest{Condition: "good"})
	require.NoError(t, err)
	require.Equal(t, 2, resp.AvailableQuantity)
	require.Equal(t, "limited", resp.Status)
}

func TestSetCondition_Invalid(t *testing.T) {
	svc := newTestService(&mockItemRepo{}, &mockBorrowRepo{}, time.Now())

	_, err := svc.SetCondition(context.Background(), 3, &models.SetConditionRequest{Condition: "broken"})
	require.ErrorIs(t, err, ErrInvalidCondition)
}

func TestReturn(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	var returnedAt time.Time
	borrowRepo := &mockBorrowRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.BorrowRecord, error) {
			return &domain.BorrowRecord{ID: 21, ItemID: 3, CustomerID: 7, BorrowedAt: now.Add(-48 * time.Hour)}, nil
		},
		setReturnedFn: func(ctx context.Context, id int64, ts time.Time) error {
			returnedAt = ts
			return nil
		},
	}
	itemRepo := &mockItemRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.LibraryItem, error) {
			return testItem(4, 3), nil
		},
	}
	svc := newTestService(itemRepo, borrowRepo, now)

	resp, err := svc.Return(context.Background(), 21)
	require.NoError(t, err)
	require.Equal(t, now, returnedAt)
	require.False(t, resp.Record.Open)
	require.NotNil(t, resp.Record.ReturnedAt)
	require.Equal(t, 4, resp.Item.AvailableQuantity)
	require.Equal(t, "available", resp.Item.Status)
}

func TestReturn_AlreadyReturned(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	returned := now.Add(-time.Hour)

	borrowRepo := &mockBorrowRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.BorrowRecord, error) {
			return &domain.BorrowRecord{ID: 21, ItemID: 3, ReturnedAt: &returned}, nil
		},
	}
	svc := newTestService(&mockItemRepo{}, borrowRepo, now)

	_, err := svc.Return(context.Background(), 21)
	require.ErrorIs(t, err, ErrAlreadyReturned)
}

func TestReturn_NotFound(t *testing.T) {
	borrowRepo := &mockBorrowRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.BorrowRecord, error) {
			return nil, borrowstorage.ErrRecordNotFound
		},
	}
	svc := newTestService(&mockItemRepo{}, borrowRepo, time.Now())

	_, err := svc.Return(context.Background(), 99)
	require.ErrorIs(t, err, ErrRecordNotFound)
}

func TestDeleteBorrowRecord(t *testing.T) {
	deleted := false
	borrowRepo := &mockBorrowRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.BorrowRecord, error) {
			return &domain.BorrowRecord{ID: 21, ItemID: 3}, nil
		},
		deleteFn: func(ctx context.Context, id int64) error {
			deleted = true
			return nil
		},
	}
	itemRepo := &mockItemRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.LibraryItem, error) {
			return testItem(4, 3), nil
		},
	}
	svc := newTestService(itemRepo, borrowRepo, time.Now())

	resp, err := svc.DeleteBorrowRecord(context.Background(), 21)
	require.NoError(t, err)
	require.True(t, deleted)
	require.Equal(t, 4, resp.AvailableQuantity)
}

func TestDeleteBorrowRecord_Returned(t *testing.T) {
	returned := time.Now()
	borrowRepo := &mockBorrowRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.BorrowRecord, error) {
			return &domain.BorrowRecord{ID: 21, ItemID: 3, ReturnedAt: &returned}, nil
		},
	}
	svc := newTestService(&mockItemRepo{}, borrowRepo, time.Now())

	_, err := svc.DeleteBorrowRecord(context.Background(), 21)
	require.ErrorIs(t, err, ErrCannotDeleteReturned)
}

func TestListItems_CategoryValidation(t *testing.T) {
	svc := newTestService(&mockItemRepo{}, &mockBorrowRepo{}, time.Now())

	_, err := svc.ListItems(context.Background(), "", "laptop")
	require.ErrorIs(t, err, ErrInvalidCategory)
}

func TestListItems_Filters(t *testing.T) {
	var gotStatus *domain.ItemStatus
	var gotCategory *domain.ItemCategory
	itemRepo := &mockItemRepo{
		listFn: func(ctx context.Context, status *domain.ItemStatus, category *domain.ItemCategory) ([]*domain.LibraryItem, error) {
			gotStatus = status
			gotCategory = category
			return []*domain.LibraryItem{testItem(4, 4)}, nil
		},
	}
	svc := newTestService(itemRepo, &mockBorrowRepo{}, time.Now())

	resp, err := svc.ListItems(context.Background(), "available", "monitor")
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	require.NotNil(t, gotStatus)
	require.Equal(t, domain.ItemAvailable, *gotStatus)
	require.NotNil(t, gotCategory)
	require.Equal(t, domain.CategoryMonitor, *gotCategory)
}

func TestItemHistory_ItemNotFound(t *testing.T) {
	itemRepo := &mockItemRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.LibraryItem, error) {
			return nil, itemstorage.ErrItemNotFound
		},
	}
	svc := newTestService(itemRepo, &mockBorrowRepo{}, time.Now())

	_, err := svc.ItemHistory(context.Background(), 99, false)
	require.ErrorIs(t, err, ErrItemNotFound)
}

func TestCustomerBorrows(t *testing.T) {
	borrowRepo := &mockBorrowRepo{
		getByCustomerFn: func(ctx context.Context, customerID int64, onlyOpen bool) ([]*domain.BorrowRecord, error) {
			require.True(t, onlyOpen)
			return []*domain.BorrowRecord{
				{ID: 21, ItemID: 3, CustomerID: customerID, BorrowedAt: time.Now()},
			}, nil
		},
	}
	svc := newTestService(&mockItemRepo{}, borrowRepo, time.Now())

	resp, err := svc.CustomerBorrows(context.Background(), 7, true)
	require.NoError(t, err)
	require.Len(t, resp.Records, 1)
	require.True(t, resp.Records[0].Open)
}
