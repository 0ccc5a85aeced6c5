package borrow_item

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CoworkingService/internal/api/handlers"
	borrowItem "github.com/m04kA/SMC-CoworkingService/internal/usecase/borrow_item"
)

const (
	msgInvalidItemID      = "некорректный ID предмета"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgItemNotFound       = "предмет не найден"
	msgCustomerNotFound   = "клиент не найден"
	msgCapacityExceeded   = "все экземпляры предмета уже выданы"
)

type Handler struct {
	useCase BorrowItemUseCase
	logger  Logger
}

func NewHandler(useCase BorrowItemUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/library/items/{itemId}/borrow
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	itemID, err := strconv.ParseInt(vars["itemId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /library/items/{id}/borrow - Invalid item ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidItemID)
		return
	}

	var req BorrowItemRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /library/items/{id}/borrow - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &borrowItem.Request{
		ItemID:     itemID,
		CustomerID: req.CustomerID,
	})
	if err != nil {
		switch {
		case errors.Is(err, borrowItem.ErrItemNotFound):
			h.logger.Warn("POST /library/items/{id}/borrow - Item not found: item_id=%d", itemID)
			handlers.RespondNotFound(w, msgItemNotFound)

		case errors.Is(err, borrowItem.ErrCustomerNotFound):
			h.logger.Warn("POST /library/items/{id}/borrow - Customer not found: customer_id=%d", req.CustomerID)
			handlers.RespondNotFound(w, msgCustomerNotFound)

		case errors.Is(err, borrowItem.ErrCapacityExceeded):
			h.logger.Warn("POST /library/items/{id}/borrow - Capacity exceeded: item_id=%d", itemID)
			handlers.RespondConflict(w, msgCapacityExceeded)

		case errors.Is(err, borrowItem.ErrInvalidInput):
			h.logger.Warn("POST /library/items/{id}/borrow - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /library/items/{id}/borrow - Failed to borrow item: item_id=%d, customer_id=%d, error=%v",
				itemID, req.CustomerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /library/items/{id}/borrow - Item borrowed successfully: record_id=%d, item_id=%d, customer_id=%d",
		result.RecordID, itemID, req.CustomerID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
