package update_space

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CoworkingService/internal/api/handlers"
	"github.com/m04kA/SMC-CoworkingService/internal/service/spaces"
	"github.com/m04kA/SMC-CoworkingService/internal/service/spaces/models"
)

const (
	msgInvalidSpaceID     = "некорректный ID пространства"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "пространство не найдено"
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

// Handle PUT /api/v1/spaces/{spaceId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	spaceID, err := strconv.ParseInt(vars["spaceId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /spaces/{id} - Invalid space ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpaceID)
		return
	}

	var req models.UpdateSpaceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /spaces/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), spaceID, &req)
	if err != nil {
		switch {
		case errors.Is(err, spaces.ErrSpaceNotFound):
			h.logger.Warn("PUT /spaces/{id} - Space not found: space_id=%d", spaceID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, spaces.ErrInvalidName):
			h.logger.Warn("PUT /spaces/{id} - Invalid name: space_id=%d", spaceID)
			handlers.RespondBadRequest(w, msgInvalidName)

		case errors.Is(err, spaces.ErrInvalidCapacity):
			h.logger.Warn("PUT /spaces/{id} - Invalid capacity: space_id=%d", spaceID)
			handlers.RespondBadRequest(w, msgInvalidCapacity)

		case errors.Is(err, spaces.ErrInvalidRates):
			h.logger.Warn("PUT /spaces/{id} - Invalid rates: space_id=%d", spaceID)
			handlers.RespondBadRequest(w, msgInvalidRates)

		case errors.Is(err, spaces.ErrTypeNotFound):
			h.logger.Warn("PUT /spaces/{id} - Space type not found: space_id=%d, type_id=%d", spaceID, req.TypeID)
			handlers.RespondNotFound(w, msgTypeNotFound)

		default:
			h.logger.Error("PUT /spaces/{id} - Failed to update space: space_id=%d, error=%v", spaceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /spaces/{id} - Space updated successfully: space_id=%d", spaceID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleDeactivate DELETE /api/v1/spaces/{spaceId}
// Пространства не удаляются физически, а деактивируются
func (h *Handler) HandleDeactivate(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	spaceID, err := strconv.ParseInt(vars["spaceId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /spaces/{id} - Invalid space ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpaceID)
		return
	}

	if err := h.service.Deactivate(r.Context(), spaceID); err != nil {
		switch {
		case errors.Is(err, spaces.ErrSpaceNotFound):
			h.logger.Warn("DELETE /spaces/{id} - Space not found: space_id=%d", spaceID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /spaces/{id} - Failed to deactivate space: space_id=%d, error=%v", spaceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /spaces/{id} - Space deactivated successfully: space_id=%d", spaceID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
