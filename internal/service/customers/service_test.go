package customers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
	customerstorage "github.com/m04kA/SMC-CoworkingService/internal/infra/storage/customer"
	"github.com/m04kA/SMC-CoworkingService/internal/service/customers/models"
	"github.com/m04kA/SMC-CoworkingService/pkg/ptr"
)

type mockCustomerRepo struct {
	createFn  func(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	getByIDFn func(ctx context.Context, id int64) (*domain.Customer, error)
	listFn    func(ctx context.Context, onlyActive bool) ([]*domain.Customer, error)
	updateFn  func(ctx context.Context, customer *domain.Customer) error
}

var _ CustomerRepository = (*mockCustomerRepo)(nil)

func (m *mockCustomerRepo) Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	if m.createFn == nil {
		created := *customer
		created.ID = 1
		return &created, nil
	}
	return m.createFn(ctx, customer)
}

func (m *mockCustomerRepo) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockCustomerRepo) List(ctx context.Context, onlyActive bool) ([]*domain.Customer, error) {
	if m.listFn == nil {
		return nil, nil
	}
	return m.listFn(ctx, onlyActive)
}

func (m *mockCustomerRepo) Update(ctx context.Context, customer *domain.Customer) error {
	if m.updateFn == nil {
		return nil
	}
	return m.updateFn(ctx, customer)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestCreate(t *testing.T) {
	var created *domain.Customer
	repo := &mockCustomerRepo{
		createFn: func(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
			copied := *customer
			copied.ID = 7
			created = &copied
			return &copied, nil
		},
	}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Create(context.Background(), &models.CreateCustomerRequest{
		Name:    "Acme Corp",
		Email:   ptr.Ptr("billing@acme.test"),
		Company: ptr.Ptr("Acme Corp GmbH"),
	})
	require.NoError(t, err)
	require.Equal(t, int64(7), resp.ID)
	require.True(t, resp.IsActive)
	require.NotNil(t, created)
	require.True(t, created.IsActive)
}

func TestCreate_EmptyName(t *testing.T) {
	svc := NewService(&mockCustomerRepo{}, nopLogger{})

	_, err := svc.Create(context.Background(), &models.CreateCustomerRequest{Name: "   "})
	require.ErrorIs(t, err, ErrInvalidName)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := &mockCustomerRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Customer, error) {
			return nil, customerstorage.ErrCustomerNotFound
		},
	}
	svc := NewService(repo, nopLogger{})

	_, err := svc.GetByID(context.Background(), 99)
	require.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestGetByID_Counters(t *testing.T) {
	repo := &mockCustomerRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Customer, error) {
			return &domain.Customer{
				ID:              7,
				Name:            "Acme Corp",
				IsActive:        true,
				BookingCount:    3,
				OpenBorrowCount: 2,
			}, nil
		},
	}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 7)
	require.NoError(t, err)
	require.Equal(t, 3, resp.BookingCount)
	require.Equal(t, 2, resp.OpenBorrowCount)
}

func TestUpdate(t *testing.T) {
	existing := &domain.Customer{ID: 7, Name: "Acme Corp", IsActive: true}

	var saved *domain.Customer
	repo := &mockCustomerRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Customer, error) {
			copied := *existing
			return &copied, nil
		},
		updateFn: func(ctx context.Context, customer *domain.Customer) error {
			saved = customer
			return nil
		},
	}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Update(context.Background(), 7, &models.UpdateCustomerRequest{
		Name:     "Acme Corporation",
		Phone:    ptr.Ptr("+49 30 1234567"),
		IsActive: false,
	})
	require.NoError(t, err)
	require.NotNil(t, resp)
	require.NotNil(t, saved)
	require.Equal(t, "Acme Corporation", saved.Name)
	require.False(t, saved.IsActive)
	// незаполненные поля затираются, обновление полное
	require.Nil(t, saved.Email)
}

func TestUpdate_NotFound(t *testing.T) {
	repo := &mockCustomerRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Customer, error) {
			return nil, customerstorage.ErrCustomerNotFound
		},
	}
	svc := NewService(repo, nopLogger{})

	_, err := svc.Update(context.Background(), 99, &models.UpdateCustomerRequest{Name: "Acme Corp"})
	require.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestList(t *testing.T) {
	var gotOnlyActive bool
	repo := &mockCustomerRepo{
		listFn: func(ctx context.Context, onlyActive bool) ([]*domain.Customer, error) {
			gotOnlyActive = onlyActive
			return []*domain.Customer{
				{ID: 7, Name: "Acme Corp", IsActive: true},
				{ID: 8, Name: "Globex", IsActive: true},
			}, nil
		},
	}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.List(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, resp.Customers, 2)
	require.True(t, gotOnlyActive)
}
