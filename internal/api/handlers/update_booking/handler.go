package update_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CoworkingService/internal/api/handlers"
	updateBooking "github.com/m04kA/SMC-CoworkingService/internal/usecase/update_booking"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStartDate   = "некорректный формат даты начала, ожидается YYYY-MM-DD HH:MM"
	msgNotFound           = "бронирование не найдено"
	msgCannotUpdate       = "бронирование нельзя изменить в текущем статусе"
	msgSpaceConflict      = "пространство уже забронировано на этот период"
	msgInvalidBookingType = "некорректный тип бронирования"
	msgInvalidDuration    = "длительность вне допустимых границ"
	msgInvalidDateRange   = "некорректный интервал бронирования"
)

type Handler struct {
	useCase UpdateBookingUseCase
	logger  Logger
}

func NewHandler(useCase UpdateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(bookingID)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id} - Failed to parse start date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStartDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateBooking.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id} - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateBooking.ErrCannotUpdate):
			h.logger.Warn("PATCH /bookings/{id} - Cannot update: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgCannotUpdate)

		case errors.Is(err, updateBooking.ErrSpaceConflict):
			h.logger.Warn("PATCH /bookings/{id} - Space conflict: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgSpaceConflict)

		case errors.Is(err, updateBooking.ErrInvalidBookingType):
			h.logger.Warn("PATCH /bookings/{id} - Invalid booking type: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgInvalidBookingType)

		case errors.Is(err, updateBooking.ErrInvalidDuration):
			h.logger.Warn("PATCH /bookings/{id} - Invalid duration: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, updateBooking.ErrInvalidDateRange):
			h.logger.Warn("PATCH /bookings/{id} - Invalid date range: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, updateBooking.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PATCH /bookings/{id} - Failed to update booking: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("PATCH /bookings/{id} - Booking updated successfully: booking_id=%d", bookingID)
	handlers.RespondJSON(w, http.StatusOK, response)
}
