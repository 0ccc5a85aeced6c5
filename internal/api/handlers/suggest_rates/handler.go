package suggest_rates

import (
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-CoworkingService/internal/api/handlers"
)

const msgInvalidHourlyRate = "некорректный часовой тариф"

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

// Handle GET /api/v1/spaces/rates/suggestion?hourlyRate=10.5
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	hourlyRate, err := strconv.ParseFloat(r.URL.Query().Get("hourlyRate"), 64)
	if err != nil {
		h.logger.Warn("GET /spaces/rates/suggestion - Invalid hourly rate: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHourlyRate)
		return
	}

	result, err := h.service.SuggestRates(hourlyRate)
	if err != nil {
		h.logger.Warn("GET /spaces/rates/suggestion - Invalid hourly rate: %.2f", hourlyRate)
		handlers.RespondBadRequest(w, msgInvalidHourlyRate)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
