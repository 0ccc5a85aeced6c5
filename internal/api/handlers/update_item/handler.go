package update_item

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CoworkingService/internal/api/handlers"
	"github.com/m04kA/SMC-CoworkingService/internal/service/library"
	"github.com/m04kA/SMC-CoworkingService/internal/service/library/models"
)

const (
	msgInvalidItemID       = "некорректный ID предмета"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgNotFound            = "предмет не найден"
	msgInvalidName         = "название предмета слишком короткое"
	msgInvalidCategory     = "некорректная категория предмета"
	msgInvalidCondition    = "некорректное состояние предмета"
	msgInvalidQuantity     = "некорректное количество предмета"
	msgQuantityBelowBorrow = "общее количество меньше числа выданных экземпляров"
)

type Handler struct {
	service LibraryService
	logger  Logger
}

func NewHandler(service LibraryService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/library/items/{itemId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	itemID, err := strconv.ParseInt(vars["itemId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /library/items/{id} - Invalid item ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidItemID)
		return
	}

	var req models.UpdateItemRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /library/items/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateItem(r.Context(), itemID, &req)
	if err != nil {
		switch {
		case errors.Is(err, library.ErrItemNotFound):
			h.logger.Warn("PUT /library/items/{id} - Item not found: item_id=%d", itemID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, library.ErrInvalidName):
			h.logger.Warn("PUT /library/items/{id} - Invalid name: item_id=%d", itemID)
			handlers.RespondBadRequest(w, msgInvalidName)

		case errors.Is(err, library.ErrInvalidCategory):
			h.logger.Warn("PUT /library/items/{id} - Invalid category: item_id=%d", itemID)
			handlers.RespondBadRequest(w, msgInvalidCategory)

		case errors.Is(err, library.ErrInvalidQuantity):
			h.logger.Warn("PUT /library/items/{id} - Invalid quantity: item_id=%d", itemID)
			handlers.RespondBadRequest(w, msgInvalidQuantity)

		case errors.Is(err, library.ErrQuantityBelowBorrowed):
			h.logger.Warn("PUT /library/items/{id} - Quantity below open borrows: item_id=%d", itemID)
			handlers.RespondConflict(w, msgQuantityBelowBorrow)

		default:
			h.logger.Error("PUT /library/items/{id} - Failed to update item: item_id=%d, error=%v", itemID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /library/items/{id} - Item updated successfully: item_id=%d", itemID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleSetCondition PATCH /api/v1/library/items/{itemId}/condition
func (h *Handler) HandleSetCondition(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	itemID, err := strconv.ParseInt(vars["itemId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /library/items/{id}/condition - Invalid item ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidItemID)
		return
	}

	var req models.SetConditionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /library/items/{id}/condition - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.SetCondition(r.Context(), itemID, &req)
	if err != nil {
		switch {
		case errors.Is(err, library.ErrItemNotFound):
			h.logger.Warn("PATCH /library/items/{id}/condition - Item not found: item_id=%d", itemID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, library.ErrInvalidCondition):
			h.logger.Warn("PATCH /library/items/{id}/condition - Invalid condition: item_id=%d, condition=%q",
				itemID, req.Condition)
			handlers.RespondBadRequest(w, msgInvalidCondition)

		default:
			h.logger.Error("PATCH /library/items/{id}/condition - Failed to set condition: item_id=%d, error=%v",
				itemID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /library/items/{id}/condition - Condition set successfully: item_id=%d, status=%s",
		itemID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}
