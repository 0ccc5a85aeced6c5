package create_item

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CoworkingService/internal/api/handlers"
	"github.com/m04kA/SMC-CoworkingService/internal/service/library"
	"github.com/m04kA/SMC-CoworkingService/internal/service/library/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidName        = "название предмета слишком короткое"
	msgInvalidCategory    = "некорректная категория предмета"
	msgInvalidCondition   = "некорректное состояние предмета"
	msgInvalidQuantity    = "некорректное количество предмета"
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

// Handle POST /api/v1/library/items
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateItemRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /library/items - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateItem(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, library.ErrInvalidName):
			h.logger.Warn("POST /library/items - Invalid name: %q", req.Name)
			handlers.RespondBadRequest(w, msgInvalidName)

		case errors.Is(err, library.ErrInvalidCategory):
			h.logger.Warn("POST /library/items - Invalid category: %q", req.Category)
			handlers.RespondBadRequest(w, msgInvalidCategory)

		case errors.Is(err, library.ErrInvalidCondition):
			h.logger.Warn("POST /library/items - Invalid condition: %q", req.Condition)
			handlers.RespondBadRequest(w, msgInvalidCondition)

		case errors.Is(err, library.ErrInvalidQuantity):
			h.logger.Warn("POST /library/items - Invalid quantity: %d", req.TotalQuantity)
			handlers.RespondBadRequest(w, msgInvalidQuantity)

		default:
			h.logger.Error("POST /library/items - Failed to create item: name=%q, error=%v", req.Name, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /library/items - Item created successfully: item_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
