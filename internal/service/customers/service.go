package customers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	customerRepo "github.com/m04kA/SMC-CoworkingService/internal/infra/storage/customer"
	"github.com/m04kA/SMC-CoworkingService/internal/service/customers/models"
)

// Service сервис справочника клиентов
type Service struct {
	customerRepo CustomerRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса клиентов
func NewService(customerRepo CustomerRepository, logger Logger) *Service {
	return &Service{
		customerRepo: customerRepo,
		logger:       logger,
	}
}

// Create создает нового клиента
func (s *Service) Create(ctx context.Context, req *models.CreateCustomerRequest) (*models.CustomerResponse, error) {
	s.logger.Info("Create: creating customer name=%q", req.Name)

	if strings.TrimSpace(req.Name) == "" {
		s.logger.Warn("Create: empty customer name")
		return nil, fmt.Errorf("%w: name is required", ErrInvalidName)
	}

	created, err := s.customerRepo.Create(ctx, req.ToDomainCustomer())
	if err != nil {
		s.logger.Error("Create: repository error for customer name=%q: %v", req.Name, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created customer id=%d", created.ID)
	return models.FromDomainCustomer(created), nil
}

// GetByID получает клиента по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.CustomerResponse, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			s.logger.Warn("GetByID: customer id=%d not found", id)
			return nil, ErrCustomerNotFound
		}
		s.logger.Error("GetByID: repository error for customer id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCustomer(customer), nil
}

// List получает список клиентов
func (s *Service) List(ctx context.Context, onlyActive bool) (*models.CustomerListResponse, error) {
	customers, err := s.customerRepo.List(ctx, onlyActive)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCustomerList(customers), nil
}

// Update обновляет клиента
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateCustomerRequest) (*models.CustomerResponse, error) {
	s.logger.Info("Update: updating customer id=%d", id)

	if strings.TrimSpace(req.Name) == "" {
		s.logger.Warn("Update: empty customer name for id=%d", id)
		return nil, fmt.Errorf("%w: name is required", ErrInvalidName)
	}

	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			s.logger.Warn("Update: customer id=%d not found", id)
			return nil, ErrCustomerNotFound
		}
		s.logger.Error("Update: repository error for customer id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	customer.Name = req.Name
	customer.Email = req.Email
	customer.Phone = req.Phone
	customer.Company = req.Company
	customer.VAT = req.VAT
	customer.Notes = req.Notes
	customer.IsActive = req.IsActive

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			return nil, ErrCustomerNotFound
		}
		s.logger.Error("Update: repository error for customer id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated customer id=%d", id)
	return s.GetByID(ctx, id)
}
