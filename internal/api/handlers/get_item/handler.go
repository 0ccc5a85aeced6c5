package get_item

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CoworkingService/internal/api/handlers"
	"github.com/m04kA/SMC-CoworkingService/internal/service/library"
)

const (
	msgInvalidItemID   = "некорректный ID предмета"
	msgNotFound        = "предмет не найден"
	msgInvalidCategory = "некорректная категория предмета"
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

// Handle GET /api/v1/library/items/{itemId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	itemID, err := strconv.ParseInt(vars["itemId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /library/items/{id} - Invalid item ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidItemID)
		return
	}

	item, err := h.service.GetItem(r.Context(), itemID)
	if err != nil {
		switch {
		case errors.Is(err, library.ErrItemNotFound):
			h.logger.Warn("GET /library/items/{id} - Item not found: item_id=%d", itemID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /library/items/{id} - Failed to get item: item_id=%d, error=%v", itemID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, item)
}

// HandleList GET /api/v1/library/items?status=available&category=monitor
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	result, err := h.service.ListItems(r.Context(), query.Get("status"), query.Get("category"))
	if err != nil {
		switch {
		case errors.Is(err, library.ErrInvalidCategory):
			h.logger.Warn("GET /library/items - Invalid category filter: %q", query.Get("category"))
			handlers.RespondBadRequest(w, msgInvalidCategory)

		default:
			h.logger.Error("GET /library/items - Failed to list items: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleHistory GET /api/v1/library/items/{itemId}/history?onlyOpen=true
func (h *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	itemID, err := strconv.ParseInt(vars["itemId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /library/items/{id}/history - Invalid item ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidItemID)
		return
	}

	onlyOpen := r.URL.Query().Get("onlyOpen") == "true"

	result, err := h.service.ItemHistory(r.Context(), itemID, onlyOpen)
	if err != nil {
		switch {
		case errors.Is(err, library.ErrItemNotFound):
			h.logger.Warn("GET /library/items/{id}/history - Item not found: item_id=%d", itemID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /library/items/{id}/history - Failed to get history: item_id=%d, error=%v",
				itemID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
