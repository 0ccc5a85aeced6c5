package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
	customerRepo "github.com/m04kA/SMC-CoworkingService/internal/infra/storage/customer"
	spaceRepo "github.com/m04kA/SMC-CoworkingService/internal/infra/storage/space"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	spaceRepo    SpaceRepository
	customerRepo CustomerRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	spaceRepo SpaceRepository,
	customerRepo CustomerRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		spaceRepo:    spaceRepo,
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

// Execute выполняет use case создания бронирования
// Использует сериализуемую транзакцию для предотвращения гонки данных
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: space=%d, customer=%d, type=%s, start=%s",
		req.SpaceID, req.CustomerID, req.BookingType, req.StartDate.Format(domain.DateTimeFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Длительность: явная либо предложенная для типа
	duration := domain.SuggestBookingDefaults(req.BookingType)
	if req.Duration != nil {
		duration = *req.Duration
	}

	if err := validateDuration(req.BookingType, duration); err != nil {
		uc.logger.Warn("CreateBooking: duration validation failed: %v", err)
		return nil, err
	}

	// 3. Интервал бронирования
	now := uc.timeProvider.Now()
	endDate := domain.ComputeEndDate(req.StartDate, req.BookingType, duration)

	if err := validateDateRange(req.StartDate, endDate, now); err != nil {
		uc.logger.Warn("CreateBooking: date range validation failed: %v", err)
		return nil, err
	}

	// 4. Получаем пространство
	space, err := uc.spaceRepo.GetByID(ctx, req.SpaceID)
	if err != nil {
		if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
			uc.logger.Warn("CreateBooking: space id=%d not found", req.SpaceID)
			return nil, ErrSpaceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get space id=%d: %v", req.SpaceID, err)
		return nil, fmt.Errorf("%w: failed to get space: %v", ErrInternal, err)
	}

	if !space.IsActive {
		uc.logger.Warn("CreateBooking: space id=%d is not active", req.SpaceID)
		return nil, ErrSpaceInactive
	}

	// 5. Проверяем существование клиента
	if _, err := uc.customerRepo.GetByID(ctx, req.CustomerID); err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			uc.logger.Warn("CreateBooking: customer id=%d not found", req.CustomerID)
			return nil, ErrCustomerNotFound
		}
		uc.logger.Error("CreateBooking: failed to get customer id=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: failed to get customer: %v", ErrInternal, err)
	}

	// 6. Цена по тарифной сетке пространства
	totalPrice := domain.ComputeTotalPrice(space, req.BookingType, duration)

	// Переменная для хранения результата
	var result *domain.Booking

	// 7. Проверка пересечений и запись в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 7.1. Активные бронирования пространства за период с блокировкой (FOR UPDATE)
		filter := domain.SpaceBookingsFilter{
			SpaceID: req.SpaceID,
			From:    &req.StartDate,
			To:      &endDate,
		}

		bookings, err := uc.bookingRepo.GetBySpaceWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 7.2. Пересечение с любым активным бронированием запрещено
		if hasOverlap(req.StartDate, endDate, bookings) {
			uc.logger.Warn("CreateBooking: space id=%d already booked for [%s, %s)",
				req.SpaceID, req.StartDate.Format(domain.DateTimeFormat), endDate.Format(domain.DateTimeFormat))
			return ErrSpaceConflict
		}

		// 7.3. Создаем бронирование в статусе pending
		booking := &domain.Booking{
			SpaceID:     req.SpaceID,
			CustomerID:  req.CustomerID,
			BookingType: req.BookingType,
			Duration:    duration,
			StartDate:   req.StartDate,
			EndDate:     endDate,
			TotalPrice:  totalPrice,
			Status:      domain.StatusPending,
			Notes:       req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, price=%.2f", result.ID, result.TotalPrice)

	return toResponse(result), nil
}
