package update_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
	bookingstorage "github.com/m04kA/SMC-CoworkingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-CoworkingService/internal/integrations/calendarservice"
	"github.com/m04kA/SMC-CoworkingService/pkg/ptr"
)

type mockBookingRepo struct {
	getByIDFn            func(ctx context.Context, id int64) (*domain.Booking, error)
	getBySpaceWithFilter func(ctx context.Context, filter domain.SpaceBookingsFilter) ([]*domain.Booking, error)
	updateFn             func(ctx context.Context, booking *domain.Booking) error
}

var _ BookingRepository = (*mockBookingRepo)(nil)

func (m *mockBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockBookingRepo) GetBySpaceWithFilter(ctx context.Context, filter domain.SpaceBookingsFilter) ([]*domain.Booking, error) {
	if m.getBySpaceWithFilter == nil {
		return nil, nil
	}
	return m.getBySpaceWithFilter(ctx, filter)
}

func (m *mockBookingRepo) Update(ctx context.Context, booking *domain.Booking) error {
	if m.updateFn == nil {
		return nil
	}
	return m.updateFn(ctx, booking)
}

type mockSpaceRepo struct {
	getByIDFn func(ctx context.Context, id int64) (*domain.Space, error)
}

var _ SpaceRepository = (*mockSpaceRepo)(nil)

func (m *mockSpaceRepo) GetByID(ctx context.Context, id int64) (*domain.Space, error) {
	if m.getByIDFn == nil {
		return &domain.Space{ID: id, HourlyRate: 10, DailyRate: 80, MonthlyRate: 1600, IsActive: true}, nil
	}
	return m.getByIDFn(ctx, id)
}

type mockCalendarClient struct {
	updateFn func(ctx context.Context, eventID int64, update *calendarservice.EventUpdate) error
}

var _ CalendarClient = (*mockCalendarClient)(nil)

func (m *mockCalendarClient) UpdateEventWithGracefulDegradation(ctx context.Context, eventID int64, update *calendarservice.EventUpdate) error {
	if m.updateFn == nil {
		return nil
	}
	return m.updateFn(ctx, eventID, update)
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

func pendingBooking(t *testing.T) *domain.Booking {
	t.Helper()

	return &domain.Booking{
		ID:          10,
		SpaceID:     1,
		CustomerID:  7,
		BookingType: domain.BookingHourly,
		Duration:    2,
		StartDate:   mustParse(t, "2025-06-10 09:00"),
		EndDate:     mustParse(t, "2025-06-10 11:00"),
		TotalPrice:  20,
		Status:      domain.StatusPending,
	}
}

func newTestUseCase(bookingRepo *mockBookingRepo, calendarClient *mockCalendarClient, now time.Time) *UseCase {
	uc := NewUseCase(bookingRepo, &mockSpaceRepo{}, calendarClient, &mockTxManager{}, nopLogger{})
	uc.SetTimeProvider(&fixedTimeProvider{now: now})
	return uc
}

func TestExecute_RecomputesDerivedFields(t *testing.T) {
	now := mustParse(t, "2025-06-10 08:00")

	var saved *domain.Booking
	bookingRepo := &mockBookingRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Booking, error) {
			return pendingBooking(t), nil
		},
		updateFn: func(ctx context.Context, booking *domain.Booking) error {
			saved = booking
			return nil
		},
	}
	uc := newTestUseCase(bookingRepo, &mockCalendarClient{}, now)

	resp, err := uc.Execute(context.Background(), &Request{
		BookingID: 10,
		Duration:  ptr.Ptr(4.0),
	})
	require.NoError(t, err)
	require.Equal(t, 4.0, resp.Duration)
	require.Equal(t, mustParse(t, "2025-06-10 13:00"), resp.EndDate)
	require.Equal(t, 40.0, resp.TotalPrice)
	require.Nil(t, resp.Warning)
	require.NotNil(t, saved)
	require.Equal(t, mustParse(t, "2025-06-10 13:00"), saved.EndDate)
}

func TestExecute_ChangeTypeRecomputesPrice(t *testing.T) {
	now := mustParse(t, "2025-06-10 08:00")
	bookingRepo := &mockBookingRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Booking, error) {
			return pendingBooking(t), nil
		},
	}
	uc := newTestUseCase(bookingRepo, &mockCalendarClient{}, now)

	resp, err := uc.Execute(context.Background(), &Request{
		BookingID:   10,
		BookingType: ptr.Ptr(domain.BookingDaily),
		Duration:    ptr.Ptr(1.0),
	})
	require.NoError(t, err)
	require.Equal(t, "daily", resp.BookingType)
	require.Equal(t, mustParse(t, "2025-06-11 09:00"), resp.EndDate)
	require.Equal(t, 80.0, resp.TotalPrice)
}

func TestExecute_CannotUpdate(t *testing.T) {
	now := mustParse(t, "2025-06-10 08:00")

	for _, status := range []domain.BookingStatus{domain.StatusCancelled, domain.StatusCompleted} {
		t.Run(string(status), func(t *testing.T) {
			bookingRepo := &mockBookingRepo{
				getByIDFn: func(ctx context.Context, id int64) (*domain.Booking, error) {
					booking := pendingBooking(t)
					booking.Status = status
					return booking, nil
				},
			}
			uc := newTestUseCase(bookingRepo, &mockCalendarClient{}, now)

			_, err := uc.Execute(context.Background(), &Request{
				BookingID: 10,
				Duration:  ptr.Ptr(4.0),
			})
			require.ErrorIs(t, err, ErrCannotUpdate)
		})
	}
}

func TestExecute_NotFound(t *testing.T) {
	now := mustParse(t, "2025-06-10 08:00")
	bookingRepo := &mockBookingRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Booking, error) {
			return nil, bookingstorage.ErrBookingNotFound
		},
	}
	uc := newTestUseCase(bookingRepo, &mockCalendarClient{}, now)

	_, err := uc.Execute(context.Background(), &Request{BookingID: 99})
	require.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_ConflictExcludesSelf(t *testing.T) {
	now := mustParse(t, "2025-06-10 08:00")

	var gotFilter domain.SpaceBookingsFilter
	bookingRepo := &mockBookingRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Booking, error) {
			return pendingBooking(t), nil
		},
		getBySpaceWithFilter: func(ctx context.Context, filter domain.SpaceBookingsFilter) ([]*domain.Booking, error) {
			gotFilter = filter
			return nil, nil
		},
	}
	uc := newTestUseCase(bookingRepo, &mockCalendarClient{}, now)

	_, err := uc.Execute(context.Background(), &Request{
		BookingID: 10,
		Duration:  ptr.Ptr(3.0),
	})
	require.NoError(t, err)
	require.Equal(t, int64(10), gotFilter.ExcludeBookingID)
}

func TestExecute_SpaceConflict(t *testing.T) {
	now := mustParse(t, "2025-06-10 08:00")
	other := &domain.Booking{
		ID:        11,
		SpaceID:   1,
		Status:    domain.StatusConfirmed,
		StartDate: mustParse(t, "2025-06-10 12:00"),
		EndDate:   mustParse(t, "2025-06-10 14:00"),
	}
	bookingRepo := &mockBookingRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Booking, error) {
			return pendingBooking(t), nil
		},
		getBySpaceWithFilter: func(ctx context.Context, filter domain.SpaceBookingsFilter) ([]*domain.Booking, error) {
			return []*domain.Booking{other}, nil
		},
	}
	uc := newTestUseCase(bookingRepo, &mockCalendarClient{}, now)

	// расширение до 5 часов задевает [12:00, 14:00)
	_, err := uc.Execute(context.Background(), &Request{
		BookingID: 10,
		Duration:  ptr.Ptr(5.0),
	})
	require.ErrorIs(t, err, ErrSpaceConflict)

	// до 3 часов — касание границы, конфликта нет
	_, err = uc.Execute(context.Background(), &Request{
		BookingID: 10,
		Duration:  ptr.Ptr(3.0),
	})
	require.NoError(t, err)
}

func TestExecute_PastStartCheckedOnlyWhenChanged(t *testing.T) {
	now := mustParse(t, "2025-06-20 08:00")

	bookingRepo := &mockBookingRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Booking, error) {
			// бронирование началось десять дней назад
			return pendingBooking(t), nil
		},
	}
	uc := newTestUseCase(bookingRepo, &mockCalendarClient{}, now)

	// без смены начала давность не проверяется
	_, err := uc.Execute(context.Background(), &Request{
		BookingID: 10,
		Duration:  ptr.Ptr(4.0),
	})
	require.NoError(t, err)

	// то же самое начало, переданное явно, сменой не считается
	_, err = uc.Execute(context.Background(), &Request{
		BookingID: 10,
		StartDate: ptr.Ptr(mustParse(t, "2025-06-10 09:00")),
	})
	require.NoError(t, err)

	// новое начало дальше суток в прошлом отклоняется
	_, err = uc.Execute(context.Background(), &Request{
		BookingID: 10,
		StartDate: ptr.Ptr(mustParse(t, "2025-06-12 09:00")),
	})
	require.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestExecute_CalendarSyncForConfirmed(t *testing.T) {
	now := mustParse(t, "2025-06-10 08:00")

	confirmed := pendingBooking(t)
	confirmed.Status = domain.StatusConfirmed
	confirmed.CalendarEventID = ptr.Ptr(int64(555))

	var gotEventID int64
	var gotUpdate *calendarservice.EventUpdate
	calendarClient := &mockCalendarClient{
		updateFn: func(ctx context.Context, eventID int64, update *calendarservice.EventUpdate) error {
			gotEventID = eventID
			gotUpdate = update
			return nil
		},
	}
	bookingRepo := &mockBookingRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Booking, error) {
			return confirmed, nil
		},
	}
	uc := newTestUseCase(bookingRepo, calendarClient, now)

	resp, err := uc.Execute(context.Background(), &Request{
		BookingID: 10,
		Duration:  ptr.Ptr(3.0),
	})
	require.NoError(t, err)
	require.Nil(t, resp.Warning)
	require.Equal(t, int64(555), gotEventID)
	require.NotNil(t, gotUpdate)
	require.Equal(t, mustParse(t, "2025-06-10 12:00"), *gotUpdate.End)
}

func TestExecute_CalendarFailureProducesWarning(t *testing.T) {
	now := mustParse(t, "2025-06-10 08:00")

	confirmed := pendingBooking(t)
	confirmed.Status = domain.StatusConfirmed
	confirmed.CalendarEventID = ptr.Ptr(int64(555))

	calendarClient := &mockCalendarClient{
		updateFn: func(ctx context.Context, eventID int64, update *calendarservice.EventUpdate) error {
			return errors.New("connection refused")
		},
	}
	bookingRepo := &mockBookingRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Booking, error) {
			return confirmed, nil
		},
	}
	uc := newTestUseCase(bookingRepo, calendarClient, now)

	resp, err := uc.Execute(context.Background(), &Request{
		BookingID: 10,
		Duration:  ptr.Ptr(3.0),
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Warning)
	require.Equal(t, warnCalendarUnavailable, *resp.Warning)
}

func TestExecute_NoCalendarSyncForPending(t *testing.T) {
	now := mustParse(t, "2025-06-10 08:00")

	called := false
	calendarClient := &mockCalendarClient{
		updateFn: func(ctx context.Context, eventID int64, update *calendarservice.EventUpdate) error {
			called = true
			return nil
		},
	}
	bookingRepo := &mockBookingRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Booking, error) {
			return pendingBooking(t), nil
		},
	}
	uc := newTestUseCase(bookingRepo, calendarClient, now)

	_, err := uc.Execute(context.Background(), &Request{
		BookingID: 10,
		Duration:  ptr.Ptr(3.0),
	})
	require.NoError(t, err)
	require.False(t, called)
}

func TestExecute_InvalidInput(t *testing.T) {
	now := mustParse(t, "2025-06-10 08:00")
	uc := newTestUseCase(&mockBookingRepo{}, &mockCalendarClient{}, now)

	_, err := uc.Execute(context.Background(), &Request{BookingID: 0})
	require.ErrorIs(t, err, ErrInvalidInput)

	badType := domain.BookingType("weekly")
	_, err = uc.Execute(context.Background(), &Request{BookingID: 10, BookingType: &badType})
	require.ErrorIs(t, err, ErrInvalidBookingType)
}
