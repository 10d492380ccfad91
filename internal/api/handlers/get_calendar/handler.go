package get_calendar

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/haruyasu/booking-service/internal/api/handlers"
	buildCalendar "github.com/haruyasu/booking-service/internal/usecase/build_calendar"
)

const (
	msgInvalidStaffID = "некорректный ID сотрудника"
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgStaffNotFound  = "сотрудник не найден"
)

type Handler struct {
	useCase BuildCalendarUseCase
	logger  Logger
}

func NewHandler(useCase BuildCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/staff/{staffId}/calendar
// Query params: date (optional, YYYY-MM-DD) - первый день окна, по умолчанию сегодня
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	staffID, err := strconv.ParseInt(vars["staffId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /staff/{id}/calendar - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	useCaseReq, err := ToUseCaseRequest(staffID, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /staff/{id}/calendar - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, buildCalendar.ErrStaffNotFound):
			h.logger.Warn("GET /staff/{id}/calendar - Staff not found: staff_id=%d", staffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, buildCalendar.ErrInvalidInput):
			h.logger.Warn("GET /staff/{id}/calendar - Invalid input: staff_id=%d, error=%v", staffID, err)
			handlers.RespondBadRequest(w, msgInvalidStaffID)

		default:
			h.logger.Error("GET /staff/{id}/calendar - Failed to build calendar: staff_id=%d, error=%v", staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /staff/{id}/calendar - Calendar built successfully: staff_id=%d, window=%s..%s",
		staffID, response.FirstDay, response.LastDay)
	handlers.RespondJSON(w, http.StatusOK, response)
}
