package create_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/haruyasu/booking-service/internal/api/handlers"
	createReservation "github.com/haruyasu/booking-service/internal/usecase/create_reservation"
)

const (
	msgInvalidStaffID     = "некорректный ID сотрудника"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgStaffNotFound      = "сотрудник не найден"
	msgSlotTaken          = "извините, это время уже занято - попробуйте выбрать другое"
	msgSlotOutsideWindow  = "время начала вне рабочих часов"
	msgSlotNotAligned     = "время начала должно быть выровнено на час"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/staff/{staffId}/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	staffID, err := strconv.ParseInt(vars["staffId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /staff/{id}/reservations - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /staff/{id}/reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(staffID)
	if err != nil {
		h.logger.Warn("POST /staff/{id}/reservations - Failed to parse date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrSlotTaken):
			h.logger.Warn("POST /staff/{id}/reservations - Slot taken: staff_id=%d, slot=%s", staffID, req.Date)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, createReservation.ErrStaffNotFound):
			h.logger.Warn("POST /staff/{id}/reservations - Staff not found: staff_id=%d", staffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, createReservation.ErrSlotOutsideWindow):
			h.logger.Warn("POST /staff/{id}/reservations - Slot outside window: staff_id=%d, hour=%d", staffID, req.Hour)
			handlers.RespondBadRequest(w, msgSlotOutsideWindow)

		case errors.Is(err, createReservation.ErrSlotNotAligned):
			h.logger.Warn("POST /staff/{id}/reservations - Slot not aligned: staff_id=%d", staffID)
			handlers.RespondBadRequest(w, msgSlotNotAligned)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /staff/{id}/reservations - Invalid input: staff_id=%d, error=%v", staffID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /staff/{id}/reservations - Failed to create reservation: staff_id=%d, error=%v",
				staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /staff/{id}/reservations - Reservation created successfully: reservation_id=%d, staff_id=%d",
		result.ID, staffID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
