package get_staff_reservations

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
	msgInvalidStaffID = "некорректный ID сотрудника"
	msgStaffNotFound  = "сотрудник не найден"
	msgForbidden      = "доступ запрещен"
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

// Handle GET /api/v1/staff/{staffId}/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем staffId из URL
	vars := mux.Vars(r)

	staffID, err := strconv.ParseInt(vars["staffId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /staff/{id}/reservations - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	// ID пользователя проставлен middleware аутентификации
	actingUserID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Error("GET /staff/{id}/reservations - Missing user ID in context: staff_id=%d", staffID)
		handlers.RespondInternalError(w)
		return
	}

	result, err := h.service.ListUpcomingByStaff(r.Context(), staffID, actingUserID)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrStaffNotFound):
			h.logger.Warn("GET /staff/{id}/reservations - Staff not found: staff_id=%d", staffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("GET /staff/{id}/reservations - Access denied: staff_id=%d, user_id=%d",
				staffID, actingUserID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /staff/{id}/reservations - Failed to list reservations: staff_id=%d, error=%v",
				staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /staff/{id}/reservations - Successfully listed %d reservations: staff_id=%d",
		len(result.Reservations), staffID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
