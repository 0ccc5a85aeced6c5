package create_space

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CoworkingService/internal/api/handlers"
	"github.com/m04kA/SMC-CoworkingService/internal/service/spaces"
	"github.com/m04kA/SMC-CoworkingService/internal/service/spaces/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidName        = "имя пространства обязательно"
	msgInvalidCapacity    = "вместимость вне допустимых границ"
	msgInvalidRates       = "несогласованная тарифная сетка"
	msgTypeNotFound       = "тип пространства не найден"
)

type Handler struct {
	service SpaceService
	logger  Logger
}

func NewHandler(service SpaceService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/spaces
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSpaceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /spaces - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, spaces.ErrInvalidName):
			h.logger.Warn("POST /spaces - Invalid name: %q", req.Name)
			handlers.RespondBadRequest(w, msgInvalidName)

		case errors.Is(err, spaces.ErrInvalidCapacity):
			h.logger.Warn("POST /spaces - Invalid capacity: %d", req.Capacity)
			handlers.RespondBadRequest(w, msgInvalidCapacity)

		case errors.Is(err, spaces.ErrInvalidRates):
			h.logger.Warn("POST /spaces - Invalid rates: name=%q", req.Name)
			handlers.RespondBadRequest(w, msgInvalidRates)

		case errors.Is(err, spaces.ErrTypeNotFound):
			h.logger.Warn("POST /spaces - Space type not found: type_id=%d", req.TypeID)
			handlers.RespondNotFound(w, msgTypeNotFound)

		default:
			h.logger.Error("POST /spaces - Failed to create space: name=%q, error=%v", req.Name, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /spaces - Space created successfully: space_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
