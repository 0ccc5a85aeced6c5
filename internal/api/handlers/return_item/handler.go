package return_item

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CoworkingService/internal/api/handlers"
	"github.com/m04kA/SMC-CoworkingService/internal/service/library"
)

const (
	msgInvalidRecordID = "некорректный ID записи о выдаче"
	msgNotFound        = "запись о выдаче не найдена"
	msgAlreadyReturned = "предмет уже возвращен"
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

// Handle PATCH /api/v1/library/borrows/{recordId}/return
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	recordID, err := strconv.ParseInt(vars["recordId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /library/borrows/{id}/return - Invalid record ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRecordID)
		return
	}

	result, err := h.service.Return(r.Context(), recordID)
	if err != nil {
		switch {
		case errors.Is(err, library.ErrRecordNotFound):
			h.logger.Warn("PATCH /library/borrows/{id}/return - Record not found: record_id=%d", recordID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, library.ErrAlreadyReturned):
			h.logger.Warn("PATCH /library/borrows/{id}/return - Already returned: record_id=%d", recordID)
			handlers.RespondConflict(w, msgAlreadyReturned)

		default:
			h.logger.Error("PATCH /library/borrows/{id}/return - Failed to return item: record_id=%d, error=%v",
				recordID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /library/borrows/{id}/return - Item returned successfully: record_id=%d", recordID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
