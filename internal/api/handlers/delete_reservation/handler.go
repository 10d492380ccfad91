package delete_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/haruyasu/booking-service/internal/api/handlers"
	"github.com/haruyasu/booking-service/internal/api/middleware"
	"github.com/haruyasu/booking-service/internal/service/reservations"
)

const (
	msgInvalidReservationID = "некорректный ID резервации"
	msgNotFound             = "резервация не найдена"
	msgForbidden            = "доступ запрещен"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/reservations/{reservationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем reservationId из URL
	vars := mux.Vars(r)

	reservationID, err := strconv.ParseInt(vars["reservationId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /reservations/{id} - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	// ID пользователя проставлен middleware аутентификации
	actingUserID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Error("DELETE /reservations/{id} - Missing user ID in context: reservation_id=%d", reservationID)
		handlers.RespondInternalError(w)
		return
	}

	err = h.service.Delete(r.Context(), reservationID, actingUserID)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("DELETE /reservations/{id} - Reservation not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("DELETE /reservations/{id} - Access denied: reservation_id=%d, user_id=%d",
				reservationID, actingUserID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /reservations/{id} - Failed to delete reservation: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /reservations/{id} - Reservation deleted successfully: reservation_id=%d, user_id=%d",
		reservationID, actingUserID)
	handlers.RespondNoContent(w)
}
