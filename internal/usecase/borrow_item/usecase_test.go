package borrow_item

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
	customerstorage "github.com/m04kA/SMC-CoworkingService/internal/infra/storage/customer"
	itemstorage "github.com/m04kA/SMC-CoworkingService/internal/infra/storage/libraryitem"
)

type mockItemRepo struct {
	getByIDFn            func(ctx context.Context, id int64) (*domain.LibraryItem, error)
	updateAvailabilityFn func(ctx context.Context, id int64, available int, status domain.ItemStatus) error
}

var _ ItemRepository = (*mockItemRepo)(nil)

func (m *mockItemRepo) GetByID(ctx context.Context, id int64) (*domain.LibraryItem, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockItemRepo) UpdateAvailability(ctx context.Context, id int64, available int, status domain.ItemStatus) error {
	if m.updateAvailabilityFn == nil {
		return nil
	}
	return m.updateAvailabilityFn(ctx, id, available, status)
}

type mockBorrowRepo struct {
	createFn        func(ctx context.Context, record *domain.BorrowRecord) (*domain.BorrowRecord, error)
	countOpenByItem func(ctx context.Context, itemID int64) (int, error)
}

var _ BorrowRepository = (*mockBorrowRepo)(nil)

func (m *mockBorrowRepo) Create(ctx context.Context, record *domain.BorrowRecord) (*domain.BorrowRecord, error) {
	if m.createFn == nil {
		created := *record
		created.ID = 1
		return &created, nil
	}
	return m.createFn(ctx, record)
}

func (m *mockBorrowRepo) CountOpenByItem(ctx context.Context, itemID int64) (int, error) {
	if m.countOpenByItem == nil {
		return 0, nil
	}
	return m.countOpenByItem(ctx, itemID)
}

type mockCustomerRepo struct {
	getByIDFn func(ctx context.Context, id int64) (*domain.Customer, error)
}

var _ CustomerRepository = (*mockCustomerRepo)(nil)

func (m *mockCustomerRepo) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	if m.getByIDFn == nil {
		return &domain.Customer{ID: id, Name: "Test Customer", IsActive: true}, nil
	}
	return m.getByIDFn(ctx, id)
}

type mockTxManager struct{}

var _ TransactionManager = (*mockTxManager)(nil)

func (m *mockTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
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

func testItem(total int) *domain.LibraryItem {
	return &domain.LibraryItem{
		ID:                3,
		Name:              "Dell Monitor",
		Category:          domain.CategoryMonitor,
		Condition:         domain.ConditionGood,
		TotalQuantity:     total,
		AvailableQuantity: total,
		Status:            domain.ItemAvailable,
	}
}

func newTestUseCase(itemRepo *mockItemRepo, borrowRepo *mockBorrowRepo, customerRepo *mockCustomerRepo, now time.Time) *UseCase {
	uc := NewUseCase(itemRepo, borrowRepo, customerRepo, &mockTxManager{}, nopLogger{})
	uc.SetTimeProvider(&fixedTimeProvider{now: now})
	return uc
}

func TestExecute_Success(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	var gotAvailable int
	var gotStatus domain.ItemStatus
	itemRepo := &mockItemRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.LibraryItem, error) {
			return testItem(4), nil
		},
		updateAvailabilityFn: func(ctx context.Context, id int64, available int, status domain.ItemStatus) error {
			gotAvailable = available
			gotStatus = status
			return nil
		},
	}
	var createdRecord *domain.BorrowRecord
	borrowRepo := &mockBorrowRepo{
		createFn: func(ctx context.Context, record *domain.BorrowRecord) (*domain.BorrowRecord, error) {
			created := *record
			created.ID = 21
			createdRecord = &created
			return &created, nil
		},
	}

	uc := newTestUseCase(itemRepo, borrowRepo, &mockCustomerRepo{}, now)

	resp, err := uc.Execute(context.Background(), &Request{ItemID: 3, CustomerID: 7})
	require.NoError(t, err)
	require.Equal(t, int64(21), resp.RecordID)
	require.Equal(t, now, resp.BorrowedAt)
	require.Equal(t, 3, resp.AvailableQuantity)
	require.Equal(t, "available", resp.ItemStatus)
	require.Equal(t, 3, gotAvailable)
	require.Equal(t, domain.ItemAvailable, gotStatus)
	require.NotNil(t, createdRecord)
	require.Nil(t, createdRecord.ReturnedAt)
}

func TestExecute_StatusDropsToLimited(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	itemRepo := &mockItemRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.LibraryItem, error) {
			return testItem(4), nil
		},
	}
	borrowRepo := &mockBorrowRepo{
		countOpenByItem: func(ctx context.Context, itemID int64) (int, error) {
			return 1, nil
		},
	}

	uc := newTestUseCase(itemRepo, borrowRepo, &mockCustomerRepo{}, now)

	// вторая выдача из четырех: остаток 2 из 4 — порог limited
	resp, err := uc.Execute(context.Background(), &Request{ItemID: 3, CustomerID: 7})
	require.NoError(t, err)
	require.Equal(t, 2, resp.AvailableQuantity)
	require.Equal(t, "limited", resp.ItemStatus)
}

func TestExecute_LastUnitBecomesUnavailable(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	itemRepo := &mockItemRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.LibraryItem, error) {
			return testItem(1), nil
		},
	}

	uc := newTestUseCase(itemRepo, &mockBorrowRepo{}, &mockCustomerRepo{}, now)

	resp, err := uc.Execute(context.Background(), &Request{ItemID: 3, CustomerID: 7})
	require.NoError(t, err)
	require.Equal(t, 0, resp.AvailableQuantity)
	require.Equal(t, "unavailable", resp.ItemStatus)
}

func TestExecute_CapacityExceeded(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	itemRepo := &mockItemRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.LibraryItem, error) {
			return testItem(1), nil
		},
	}
	createCalled := false
	borrowRepo := &mockBorrowRepo{
		countOpenByItem: func(ctx context.Context, itemID int64) (int, error) {
			return 1, nil
		},
		createFn: func(ctx context.Context, record *domain.BorrowRecord) (*domain.BorrowRecord, error) {
			createCalled = true
			return record, nil
		},
	}

	uc := newTestUseCase(itemRepo, borrowRepo, &mockCustomerRepo{}, now)

	_, err := uc.Execute(context.Background(), &Request{ItemID: 3, CustomerID: 7})
	require.ErrorIs(t, err, ErrCapacityExceeded)
	require.False(t, createCalled)
}

func TestExecute_ItemNotFound(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	itemRepo := &mockItemRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.LibraryItem, error) {
			return nil, itemstorage.ErrItemNotFound
		},
	}

	uc := newTestUseCase(itemRepo, &mockBorrowRepo{}, &mockCustomerRepo{}, now)

	_, err := uc.Execute(context.Background(), &Request{ItemID: 99, CustomerID: 7})
	require.ErrorIs(t, err, ErrItemNotFound)
}

func TestExecute_CustomerNotFound(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	customerRepo := &mockCustomerRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Customer, error) {
			return nil, customerstorage.ErrCustomerNotFound
		},
	}

	uc := newTestUseCase(&mockItemRepo{}, &mockBorrowRepo{}, customerRepo, now)

	_, err := uc.Execute(context.Background(), &Request{ItemID: 3, CustomerID: 99})
	require.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&mockItemRepo{}, &mockBorrowRepo{}, &mockCustomerRepo{}, now)

	_, err := uc.Execute(context.Background(), &Request{ItemID: 0, CustomerID: 7})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{ItemID: 3, CustomerID: 0})
	require.ErrorIs(t, err, ErrInvalidInput)
}
