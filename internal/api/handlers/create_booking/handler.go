package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CoworkingService/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-CoworkingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStartDate   = "некорректный формат даты начала, ожидается YYYY-MM-DD HH:MM"
	msgSpaceConflict      = "пространство уже забронировано на этот период"
	msgSpaceNotFound      = "пространство не найдено"
	msgSpaceInactive      = "пространство неактивно"
	msgCustomerNotFound   = "клиент не найден"
	msgInvalidBookingType = "некорректный тип бронирования"
	msgInvalidDuration    = "длительность вне допустимых границ"
	msgInvalidDateRange   = "некорректный интервал бронирования"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse start date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStartDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSpaceConflict):
			h.logger.Warn("POST /bookings - Space conflict: space_id=%d, customer_id=%d", req.SpaceID, req.CustomerID)
			handlers.RespondConflict(w, msgSpaceConflict)

		case errors.Is(err, createBooking.ErrSpaceNotFound):
			h.logger.Warn("POST /bookings - Space not found: space_id=%d", req.SpaceID)
			handlers.RespondNotFound(w, msgSpaceNotFound)

		case errors.Is(err, createBooking.ErrSpaceInactive):
			h.logger.Warn("POST /bookings - Space inactive: space_id=%d", req.SpaceID)
			handlers.RespondBadRequest(w, msgSpaceInactive)

		case errors.Is(err, createBooking.ErrCustomerNotFound):
			h.logger.Warn("POST /bookings - Customer not found: customer_id=%d", req.CustomerID)
			handlers.RespondNotFound(w, msgCustomerNotFound)

		case errors.Is(err, createBooking.ErrInvalidBookingType):
			h.logger.Warn("POST /bookings - Invalid booking type: %q", req.BookingType)
			handlers.RespondBadRequest(w, msgInvalidBookingType)

		case errors.Is(err, createBooking.ErrInvalidDuration):
			h.logger.Warn("POST /bookings - Invalid duration: space_id=%d, customer_id=%d", req.SpaceID, req.CustomerID)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, createBooking.ErrInvalidDateRange):
			h.logger.Warn("POST /bookings - Invalid date range: space_id=%d, customer_id=%d", req.SpaceID, req.CustomerID)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: space_id=%d, customer_id=%d, error=%v",
				req.SpaceID, req.CustomerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, space_id=%d, customer_id=%d",
		result.ID, req.SpaceID, req.CustomerID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
