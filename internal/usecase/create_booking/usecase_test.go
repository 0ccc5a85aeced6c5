package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
	customerstorage "github.com/m04kA/SMC-CoworkingService/internal/infra/storage/customer"
	spacestorage "github.com/m04kA/SMC-CoworkingService/internal/infra/storage/space"
	"github.com/m04kA/SMC-CoworkingService/pkg/ptr"
)

type mockBookingRepo struct {
	createFn             func(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	getBySpaceWithFilter func(ctx context.Context, filter domain.SpaceBookingsFilter) ([]*domain.Booking, error)
}

var _ BookingRepository = (*mockBookingRepo)(nil)

func (m *mockBookingRepo) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if m.createFn == nil {
		created := *booking
		created.ID = 1
		return &created, nil
	}
	return m.createFn(ctx, booking)
}

func (m *mockBookingRepo) GetBySpaceWithFilter(ctx context.Context, filter domain.SpaceBookingsFilter) ([]*domain.Booking, error) {
	if m.getBySpaceWithFilter == nil {
		return nil, nil
	}
	return m.getBySpaceWithFilter(ctx, filter)
}

type mockSpaceRepo struct {
	getByIDFn func(ctx context.Context, id int64) (*domain.Space, error)
}

var _ SpaceRepository = (*mockSpaceRepo)(nil)

func (m *mockSpaceRepo) GetByID(ctx context.Context, id int64) (*domain.Space, error) {
	return m.getByIDFn(ctx, id)
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

func mustParse(t *testing.T, value string) time.Time {
	t.Helper()

	ts, err := time.Parse(domain.DateTimeFormat, value)
	require.NoError(t, err)
	return ts
}

func activeSpace() *domain.Space {
	return &domain.Space{
		ID:          1,
		Name:        "Meeting Room A",
		Capacity:    8,
		HourlyRate:  10,
		DailyRate:   80,
		MonthlyRate: 1600,
		IsActive:    true,
	}
}

func newTestUseCase(bookingRepo *mockBookingRepo, spaceRepo *mockSpaceRepo, customerRepo *mockCustomerRepo, now time.Time) *UseCase {
	uc := NewUseCase(bookingRepo, spaceRepo, customerRepo, &mockTxManager{}, nopLogger{})
	uc.SetTimeProvider(&fixedTimeProvider{now: now})
	return uc
}

func TestExecute_Success(t *testing.T) {
	now := mustParse(t, "2025-06-10 08:00")

	var created *domain.Booking
	bookingRepo := &mockBookingRepo{
		createFn: func(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
			copied := *booking
			copied.ID = 42
			created = &copied
			return &copied, nil
		},
	}
	spaceRepo := &mockSpaceRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Space, error) {
			return activeSpace(), nil
		},
	}

	uc := newTestUseCase(bookingRepo, spaceRepo, &mockCustomerRepo{}, now)

	resp, err := uc.Execute(context.Background(), &Request{
		SpaceID:     1,
		CustomerID:  7,
		BookingType: domain.BookingHourly,
		Duration:    ptr.Ptr(2.5),
		StartDate:   mustParse(t, "2025-06-10 09:00"),
	})
	require.NoError(t, err)
	require.NotNil(t, resp)
	require.Equal(t, int64(42), resp.ID)
	require.Equal(t, "pending", resp.Status)
	require.Equal(t, 2.5, resp.Duration)
	require.Equal(t, mustParse(t, "2025-06-10 11:30"), resp.EndDate)
	require.Equal(t, 25.0, resp.TotalPrice)
	require.NotNil(t, created)
	require.Equal(t, domain.StatusPending, created.Status)
}

func TestExecute_DefaultDuration(t *testing.T) {
	now := mustParse(t, "2025-06-10 08:00")
	spaceRepo := &mockSpaceRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Space, error) {
			return activeSpace(), nil
		},
	}

	uc := newTestUseCase(&mockBookingRepo{}, spaceRepo, &mockCustomerRepo{}, now)

	resp, err := uc.Execute(context.Background(), &Request{
		SpaceID:     1,
		CustomerID:  7,
		BookingType: domain.BookingDaily,
		StartDate:   mustParse(t, "2025-06-11 09:00"),
	})
	require.NoError(t, err)
	require.Equal(t, 1.0, resp.Duration)
	require.Equal(t, mustParse(t, "2025-06-12 09:00"), resp.EndDate)
	require.Equal(t, 80.0, resp.TotalPrice)
}

func TestExecute_InvalidDuration(t *testing.T) {
	now := mustParse(t, "2025-06-10 08:00")
	uc := newTestUseCase(&mockBookingRepo{}, &mockSpaceRepo{}, &mockCustomerRepo{}, now)

	tests := []struct {
		name        string
		bookingType domain.BookingType
		duration    float64
	}{
		{"below minimum", domain.BookingHourly, 0.25},
		{"hourly above week", domain.BookingHourly, 169},
		{"daily above limit", domain.BookingDaily, 91},
		{"monthly above limit", domain.BookingMonthly, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), &Request{
				SpaceID:     1,
				CustomerID:  7,
				BookingType: tt.bookingType,
				Duration:    ptr.Ptr(tt.duration),
				StartDate:   mustParse(t, "2025-06-10 09:00"),
			})
			require.ErrorIs(t, err, ErrInvalidDuration)
		})
	}
}

func TestExecute_InvalidBookingType(t *testing.T) {
	now := mustParse(t, "2025-06-10 08:00")
	uc := newTestUseCase(&mockBookingRepo{}, &mockSpaceRepo{}, &mockCustomerRepo{}, now)

	_, err := uc.Execute(context.Background(), &Request{
		SpaceID:     1,
		CustomerID:  7,
		BookingType: "weekly",
		StartDate:   mustParse(t, "2025-06-10 09:00"),
	})
	require.ErrorIs(t, err, ErrInvalidBookingType)
}

func TestExecute_StartTooFarInPast(t *testing.T) {
	now := mustParse(t, "2025-06-10 08:00")
	uc := newTestUseCase(&mockBookingRepo{}, &mockSpaceRepo{}, &mockCustomerRepo{}, now)

	// более суток назад
	_, err := uc.Execute(context.Background(), &Request{
		SpaceID:     1,
		CustomerID:  7,
		BookingType: domain.BookingHourly,
		StartDate:   mustParse(t, "2025-06-09 07:00"),
	})
	require.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestExecute_StartWithinPastWindow(t *testing.T) {
	now := mustParse(t, "2025-06-10 08:00")
	spaceRepo := &mockSpaceRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Space, error) {
			return activeSpace(), nil
		},
	}
	uc := newTestUseCase(&mockBookingRepo{}, spaceRepo, &mockCustomerRepo{}, now)

	// ровно сутки назад — еще допускается
	_, err := uc.Execute(context.Background(), &Request{
		SpaceID:     1,
		CustomerID:  7,
		BookingType: domain.BookingHourly,
		StartDate:   mustParse(t, "2025-06-09 08:00"),
	})
	require.NoError(t, err)
}

func TestExecute_SpaceNotFound(t *testing.T) {
	now := mustParse(t, "2025-06-10 08:00")
	spaceRepo := &mockSpaceRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Space, error) {
			return nil, spacestorage.ErrSpaceNotFound
		},
	}
	uc := newTestUseCase(&mockBookingRepo{}, spaceRepo, &mockCustomerRepo{}, now)

	_, err := uc.Execute(context.Background(), &Request{
		SpaceID:     99,
		CustomerID:  7,
		BookingType: domain.BookingHourly,
		StartDate:   mustParse(t, "2025-06-10 09:00"),
	})
	require.ErrorIs(t, err, ErrSpaceNotFound)
}

func TestExecute_SpaceInactive(t *testing.T) {
	now := mustParse(t, "2025-06-10 08:00")
	spaceRepo := &mockSpaceRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Space, error) {
			space := activeSpace()
			space.IsActive = false
			return space, nil
		},
	}
	uc := newTestUseCase(&mockBookingRepo{}, spaceRepo, &mockCustomerRepo{}, now)

	_, err := uc.Execute(context.Background(), &Request{
		SpaceID:     1,
		CustomerID:  7,
		BookingType: domain.BookingHourly,
		StartDate:   mustParse(t, "2025-06-10 09:00"),
	})
	require.ErrorIs(t, err, ErrSpaceInactive)
}

func TestExecute_CustomerNotFound(t *testing.T) {
	now := mustParse(t, "2025-06-10 08:00")
	spaceRepo := &mockSpaceRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Space, error) {
			return activeSpace(), nil
		},
	}
	customerRepo := &mockCustomerRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Customer, error) {
			return nil, customerstorage.ErrCustomerNotFound
		},
	}
	uc := newTestUseCase(&mockBookingRepo{}, spaceRepo, customerRepo, now)

	_, err := uc.Execute(context.Background(), &Request{
		SpaceID:     1,
		CustomerID:  99,
		BookingType: domain.BookingHourly,
		StartDate:   mustParse(t, "2025-06-10 09:00"),
	})
	require.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestExecute_SpaceConflict(t *testing.T) {
	now := mustParse(t, "2025-06-10 08:00")

	existing := &domain.Booking{
		ID:        5,
		SpaceID:   1,
		Status:    domain.StatusConfirmed,
		StartDate: mustParse(t, "2025-06-10 09:00"),
		EndDate:   mustParse(t, "2025-06-10 11:00"),
	}
	bookingRepo := &mockBookingRepo{
		getBySpaceWithFilter: func(ctx context.Context, filter domain.SpaceBookingsFilter) ([]*domain.Booking, error) {
			return []*domain.Booking{existing}, nil
		},
	}
	spaceRepo := &mockSpaceRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Space, error) {
			return activeSpace(), nil
		},
	}
	uc := newTestUseCase(bookingRepo, spaceRepo, &mockCustomerRepo{}, now)

	// пересечение с существующим [09:00, 11:00)
	_, err := uc.Execute(context.Background(), &Request{
		SpaceID:     1,
		CustomerID:  7,
		BookingType: domain.BookingHourly,
		Duration:    ptr.Ptr(2.0),
		StartDate:   mustParse(t, "2025-06-10 10:00"),
	})
	require.ErrorIs(t, err, ErrSpaceConflict)

	// начало ровно в момент окончания — касание допускается
	resp, err := uc.Execute(context.Background(), &Request{
		SpaceID:     1,
		CustomerID:  7,
		BookingType: domain.BookingHourly,
		Duration:    ptr.Ptr(2.0),
		StartDate:   mustParse(t, "2025-06-10 11:00"),
	})
	require.NoError(t, err)
	require.NotNil(t, resp)
}

func TestExecute_CancelledBookingDoesNotConflict(t *testing.T) {
	now := mustParse(t, "2025-06-10 08:00")

	cancelled := &domain.Booking{
		ID:        5,
		SpaceID:   1,
		Status:    domain.StatusCancelled,
		StartDate: mustParse(t, "2025-06-10 09:00"),
		EndDate:   mustParse(t, "2025-06-10 11:00"),
	}
	bookingRepo := &mockBookingRepo{
		getBySpaceWithFilter: func(ctx context.Context, filter domain.SpaceBookingsFilter) ([]*domain.Booking, error) {
			return []*domain.Booking{cancelled}, nil
		},
	}
	spaceRepo := &mockSpaceRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Space, error) {
			return activeSpace(), nil
		},
	}
	uc := newTestUseCase(bookingRepo, spaceRepo, &mockCustomerRepo{}, now)

	resp, err := uc.Execute(context.Background(), &Request{
		SpaceID:     1,
		CustomerID:  7,
		BookingType: domain.BookingHourly,
		Duration:    ptr.Ptr(2.0),
		StartDate:   mustParse(t, "2025-06-10 10:00"),
	})
	require.NoError(t, err)
	require.NotNil(t, resp)
}

func TestExecute_InvalidInput(t *testing.T) {
	now := mustParse(t, "2025-06-10 08:00")
	uc := newTestUseCase(&mockBookingRepo{}, &mockSpaceRepo{}, &mockCustomerRepo{}, now)

	_, err := uc.Execute(context.Background(), &Request{
		SpaceID:     0,
		CustomerID:  7,
		BookingType: domain.BookingHourly,
		StartDate:   mustParse(t, "2025-06-10 09:00"),
	})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{
		SpaceID:     1,
		CustomerID:  7,
		BookingType: domain.BookingHourly,
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}
