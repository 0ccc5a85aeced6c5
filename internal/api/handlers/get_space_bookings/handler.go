package get_space_bookings

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CoworkingService/internal/api/handlers"
	"github.com/m04kA/SMC-CoworkingService/internal/domain"
	"github.com/m04kA/SMC-CoworkingService/internal/service/bookings"
	"github.com/m04kA/SMC-CoworkingService/internal/service/bookings/models"
)

const (
	msgInvalidSpaceID = "некорректный ID пространства"
	msgInvalidPeriod  = "некорректный формат периода, ожидается YYYY-MM-DD HH:MM"
	msgInvalidStatus  = "некорректный статус бронирования"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/spaces/{spaceId}/bookings?from=...&to=...&status=...&includeCancelled=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	spaceID, err := strconv.ParseInt(vars["spaceId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /spaces/{id}/bookings - Invalid space ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpaceID)
		return
	}

	req, err := parseQuery(r, spaceID)
	if err != nil {
		h.logger.Warn("GET /spaces/{id}/bookings - Invalid period: space_id=%d, error=%v", spaceID, err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	result, err := h.service.GetSpaceBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidStatus):
			h.logger.Warn("GET /spaces/{id}/bookings - Invalid status filter: space_id=%d", spaceID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /spaces/{id}/bookings - Failed to get bookings: space_id=%d, error=%v",
				spaceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// parseQuery собирает фильтр из query-параметров запроса
func parseQuery(r *http.Request, spaceID int64) (*models.GetSpaceBookingsRequest, error) {
	query := r.URL.Query()

	req := &models.GetSpaceBookingsRequest{
		SpaceID:          spaceID,
		IncludeCancelled: query.Get("includeCancelled") == "true",
	}

	if from := query.Get("from"); from != "" {
		parsed, err := time.Parse(domain.DateTimeFormat, from)
		if err != nil {
			return nil, err
		}
		req.From = &parsed
	}

	if to := query.Get("to"); to != "" {
		parsed, err := time.Parse(domain.DateTimeFormat, to)
		if err != nil {
			return nil, err
		}
		req.To = &parsed
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	return req, nil
}
