package delete_borrow_record

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CoworkingService/internal/api/handlers"
	"github.com/m04kA/SMC-CoworkingService/internal/service/library"
)

const (
	msgInvalidRecordID    = "некорректный ID записи о выдаче"
	msgNotFound           = "запись о выдаче не найдена"
	msgCannotDeleteClosed = "закрытую запись о выдаче нельзя удалить"
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

// Handle DELETE /api/v1/library/borrows/{recordId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	recordID, err := strconv.ParseInt(vars["recordId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /library/borrows/{id} - Invalid record ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRecordID)
		return
	}

	result, err := h.service.DeleteBorrowRecord(r.Context(), recordID)
	if err != nil {
		switch {
		case errors.Is(err, library.ErrRecordNotFound):
			h.logger.Warn("DELETE /library/borrows/{id} - Record not found: record_id=%d", recordID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, library.ErrCannotDeleteReturned):
			h.logger.Warn("DELETE /library/borrows/{id} - Cannot delete returned record: record_id=%d", recordID)
			handlers.RespondConflict(w, msgCannotDeleteClosed)

		default:
			h.logger.Error("DELETE /library/borrows/{id} - Failed to delete record: record_id=%d, error=%v",
				recordID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /library/borrows/{id} - Record deleted successfully: record_id=%d", recordID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
