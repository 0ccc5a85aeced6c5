package models

import (
	"time"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
)

// CreateItemRequest запрос на создание предмета
type CreateItemRequest struct {
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Condition     string  `json:"condition"`
	TotalQuantity int     `json:"totalQuantity"`
	Notes         *string `json:"notes,omitempty"`
}

// UpdateItemRequest запрос на обновление предмета
type UpdateItemRequest struct {
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	TotalQuantity int     `json:"totalQuantity"`
	Notes         *string `json:"notes,omitempty"`
}

// SetConditionRequest запрос на смену состояния предмета
type SetConditionRequest struct {
	Condition string `json:"condition"`
}

// ToDomainItem конвертирует запрос в domain модель
func (r *CreateItemRequest) ToDomainItem() *domain.LibraryItem {
	return &domain.LibraryItem{
		Name:          r.Name,
		Category:      domain.ItemCategory(r.Category),
		Condition:     domain.ItemCondition(r.Condition),
		TotalQuantity: r.TotalQuantity,
		Notes:         r.Notes,
	}
}

// ItemResponse ответ с данными предмета
type ItemResponse struct {
	ID                int64   `json:"id"`
	Name              string  `json:"name"`
	Category          string  `json:"category"`
	Condition         string  `json:"condition"`
	TotalQuantity     int     `json:"totalQuantity"`
	AvailableQuantity int     `json:"availableQuantity"`
	Status            string  `json:"status"`
	Notes             *string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ItemListResponse ответ со списком предметов
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
}

// FromDomainItem конвертирует domain модель в DTO
func FromDomainItem(item *domain.LibraryItem) *ItemResponse {
	if item == nil {
		return nil
	}

	return &ItemResponse{
		ID:                item.ID,
		Name:              item.Name,
		Category:          string(item.Category),
		Condition:         string(item.Condition),
		TotalQuantity:     item.TotalQuantity,
		AvailableQuantity: item.AvailableQuantity,
		Status:            string(item.Status),
		Notes:             item.Notes,
		CreatedAt:         item.CreatedAt,
		UpdatedAt:         item.UpdatedAt,
	}
}

// FromDomainItemList конвертирует список domain моделей в DTO
func FromDomainItemList(items []*domain.LibraryItem) *ItemListResponse {
	resp := &ItemListResponse{
		Items: make([]ItemResponse, 0, len(items)),
	}

	for _, item := range items {
		if itemResp := FromDomainItem(item); itemResp != nil {
			resp.Items = append(resp.Items, *itemResp)
		}
	}

	return resp
}

// BorrowRecordResponse ответ с данными записи о выдаче
type BorrowRecordResponse struct {
	ID         int64      `json:"id"`
	ItemID     int64      `json:"itemId"`
	CustomerID int64      `json:"customerId"`
	BorrowedAt time.Time  `json:"borrowedAt"`
	ReturnedAt *time.Time `json:"returnedAt,omitempty"`
	Open       bool       `json:"open"`
}

// BorrowRecordListResponse ответ со списком записей о выдаче
type BorrowRecordListResponse struct {
	Records []BorrowRecordResponse `json:"records"`
}

// FromDomainBorrowRecord конвертирует domain модель в DTO
func FromDomainBorrowRecord(record *domain.BorrowRecord) *BorrowRecordResponse {
	if record == nil {
		return nil
	}

	return &BorrowRecordResponse{
		ID:         record.ID,
		ItemID:     record.ItemID,
		CustomerID: record.CustomerID,
		BorrowedAt: record.BorrowedAt,
		ReturnedAt: record.ReturnedAt,
		Open:       record.IsOpen(),
	}
}

// FromDomainBorrowRecordList конвертирует список domain моделей в DTO
func FromDomainBorrowRecordList(records []*domain.BorrowRecord) *BorrowRecordListResponse {
	resp := &BorrowRecordListResponse{
		Records: make([]BorrowRecordResponse, 0, len(records)),
	}

	for _, record := range records {
		if recordResp := FromDomainBorrowRecord(record); recordResp != nil {
			resp.Records = append(resp.Records, *recordResp)
		}
	}

	return resp
}

// ReturnItemResponse ответ на возврат предмета
type ReturnItemResponse struct {
	Record *BorrowRecordResponse `json:"record"`
	Item   *ItemResponse         `json:"item"`
}
