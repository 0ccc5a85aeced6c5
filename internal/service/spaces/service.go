package spaces

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
	spaceRepo "github.com/m04kA/SMC-CoworkingService/internal/infra/storage/space"
	"github.com/m04kA/SMC-CoworkingService/internal/service/spaces/models"
)

// Service сервис каталога пространств
type Service struct {
	spaceRepo SpaceRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса пространств
func NewService(spaceRepo SpaceRepository, logger Logger) *Service {
	return &Service{
		spaceRepo: spaceRepo,
		logger:    logger,
	}
}

// Create создает новое пространство
func (s *Service) Create(ctx context.Context, req *models.CreateSpaceRequest) (*models.SpaceResponse, error) {
	s.logger.Info("Create: creating space name=%q type=%d", req.Name, req.TypeID)

	space := req.ToDomainSpace()
	if err := s.validateSpace(ctx, space); err != nil {
		s.logger.Warn("Create: validation failed for space name=%q: %v", req.Name, err)
		return nil, err
	}

	created, err := s.spaceRepo.Create(ctx, space)
	if err != nil {
		s.logger.Error("Create: repository error for space name=%q: %v", req.Name, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created space id=%d", created.ID)
	return models.FromDomainSpace(created), nil
}

// GetByID получает пространство по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.SpaceResponse, error) {
	space, err := s.spaceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
			s.logger.Warn("GetByID: space id=%d not found", id)
			return nil, ErrSpaceNotFound
		}
		s.logger.Error("GetByID: repository error for space id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSpace(space), nil
}

// List получает список пространств
func (s *Service) List(ctx context.Context, onlyActive bool) (*models.SpaceListResponse, error) {
	spaces, err := s.spaceRepo.List(ctx, onlyActive)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSpaceList(spaces), nil
}

// Update обновляет пространство
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateSpaceRequest) (*models.SpaceResponse, error) {
	s.logger.Info("Update: updating space id=%d", id)

	space, err := s.spaceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
			s.logger.Warn("Update: space id=%d not found", id)
			return nil, ErrSpaceNotFound
		}
		s.logger.Error("Update: repository error for space id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	space.Name = req.Name
	space.TypeID = req.TypeID
	space.Floor = req.Floor
	space.Zone = req.Zone
	space.Capacity = req.Capacity
	space.HourlyRate = req.HourlyRate
	space.DailyRate = req.DailyRate
	space.MonthlyRate = req.MonthlyRate
	space.Description = req.Description
	space.IsActive = req.IsActive
	space.Amenities = make([]domain.SpaceAmenity, len(req.Amenities))
	for i, ref := range req.Amenities {
		space.Amenities[i] = domain.SpaceAmenity{AmenityID: ref.AmenityID, Quantity: ref.Quantity}
	}

	if err := s.validateSpace(ctx, space); err != nil {
		s.logger.Warn("Update: validation failed for space id=%d: %v", id, err)
		return nil, err
	}

	if err := s.spaceRepo.Update(ctx, space); err != nil {
		if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
			return nil, ErrSpaceNotFound
		}
		s.logger.Error("Update: repository error for space id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated space id=%d", id)
	return s.GetByID(ctx, id)
}

// Deactivate деактивирует пространство
// Пространства никогда не удаляются физически: у них остаётся история
// бронирований
func (s *Service) Deactivate(ctx context.Context, id int64) error {
	s.logger.Info("Deactivate: deactivating space id=%d", id)

	if err := s.spaceRepo.SetActive(ctx, id, false); err != nil {
		if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
			s.logger.Warn("Deactivate: space id=%d not found", id)
			return ErrSpaceNotFound
		}
		s.logger.Error("Deactivate: repository error for space id=%d: %v", id, err)
		return fmt.Errorf("%w: Deactivate - repository error: %v", ErrInternal, err)
	}

	return nil
}

// SuggestRates возвращает согласованную тарифную сетку для нового часового
// тарифа. Клиент решает сам, применять ли предложение
func (s *Service) SuggestRates(hourlyRate float64) (*models.RateSuggestionResponse, error) {
	if hourlyRate < 0 {
		return nil, fmt.Errorf("%w: hourly rate must be non-negative", ErrInvalidRates)
	}

	suggestion := domain.SuggestRates(hourlyRate)
	return &models.RateSuggestionResponse{
		HourlyRate:  hourlyRate,
		DailyRate:   suggestion.DailyRate,
		MonthlyRate: suggestion.MonthlyRate,
	}, nil
}

// validateSpace валидирует пространство перед записью
func (s *Service) validateSpace(ctx context.Context, space *domain.Space) error {
	if strings.TrimSpace(space.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidName)
	}

	if space.Capacity < domain.MinSpaceCapacity || space.Capacity > domain.MaxSpaceCapacity {
		return fmt.Errorf("%w: capacity must be between %d and %d",
			ErrInvalidCapacity, domain.MinSpaceCapacity, domain.MaxSpaceCapacity)
	}

	if !space.HasConsistentRates() {
		return fmt.Errorf("%w: rates must be non-negative, daily <= hourly*24, monthly <= daily*31", ErrInvalidRates)
	}

	if _, err := s.spaceRepo.GetTypeByID(ctx, space.TypeID); err != nil {
		if errors.Is(err, spaceRepo.ErrTypeNotFound) {
			return ErrTypeNotFound
		}
		return fmt.Errorf("%w: validateSpace - repository error: %v", ErrInternal, err)
	}

	return nil
}
