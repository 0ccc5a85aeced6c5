package models

import (
	"time"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
)

// CreateCustomerRequest запрос на создание клиента
type CreateCustomerRequest struct {
	Name    string  `json:"name"`
	Email   *string `json:"email,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Company *string `json:"company,omitempty"`
	VAT     *string `json:"vat,omitempty"`
	Notes   *string `json:"notes,omitempty"`
}

// UpdateCustomerRequest запрос на обновление клиента
type UpdateCustomerRequest struct {
	Name     string  `json:"name"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Company  *string `json:"company,omitempty"`
	VAT      *string `json:"vat,omitempty"`
	Notes    *string `json:"notes,omitempty"`
	IsActive bool    `json:"isActive"`
}

// ToDomainCustomer конвертирует запрос в domain модель
func (r *CreateCustomerRequest) ToDomainCustomer() *domain.Customer {
	return &domain.Customer{
		Name:     r.Name,
		Email:    r.Email,
		Phone:    r.Phone,
		Company:  r.Company,
		VAT:      r.VAT,
		Notes:    r.Notes,
		IsActive: true,
	}
}

// CustomerResponse ответ с данными клиента
type CustomerResponse struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Company  *string `json:"company,omitempty"`
	VAT      *string `json:"vat,omitempty"`
	Notes    *string `json:"notes,omitempty"`
	IsActive bool    `json:"isActive"`

	BookingCount    int `json:"bookingCount"`
	OpenBorrowCount int `json:"openBorrowCount"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CustomerListResponse ответ со списком клиентов
type CustomerListResponse struct {
	Customers []CustomerResponse `json:"customers"`
}

// FromDomainCustomer конвертирует domain модель в DTO
func FromDomainCustomer(c *domain.Customer) *CustomerResponse {
	if c == nil {
		return nil
	}

	return &CustomerResponse{
		ID:              c.ID,
		Name:            c.Name,
		Email:           c.Email,
		Phone:           c.Phone,
		Company:         c.Company,
		VAT:             c.VAT,
		Notes:           c.Notes,
		IsActive:        c.IsActive,
		BookingCount:    c.BookingCount,
		OpenBorrowCount: c.OpenBorrowCount,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

// FromDomainCustomerList конвертирует список domain моделей в DTO
func FromDomainCustomerList(customers []*domain.Customer) *CustomerListResponse {
	resp := &CustomerListResponse{
		Customers: make([]CustomerResponse, 0, len(customers)),
	}

	for _, customer := range customers {
		if customerResp := FromDomainCustomer(customer); customerResp != nil {
			resp.Customers = append(resp.Customers, *customerResp)
		}
	}

	return resp
}
