package block_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/haruyasu/booking-service/internal/api/handlers"
	"github.com/haruyasu/booking-service/internal/api/middleware"
	blockSlot "github.com/haruyasu/booking-service/internal/usecase/block_slot"
)

const (
	msgInvalidStaffID     = "некорректный ID сотрудника"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgStaffNotFound      = "сотрудник не найден"
	msgForbidden          = "доступ запрещен"
	msgSlotTaken          = "слот уже занят"
	msgSlotOutsideWindow  = "время начала вне рабочих часов"
	msgSlotNotAligned     = "время начала должно быть выровнено на час"
)

type Handler struct {
	useCase BlockSlotUseCase
	logger  Logger
}

func NewHandler(useCase BlockSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/staff/{staffId}/blocks
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем staffId из URL
	vars := mux.Vars(r)

	staffID, err := strconv.ParseInt(vars["staffId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /staff/{id}/blocks - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	// ID пользователя проставлен middleware аутентификации
	actingUserID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Error("POST /staff/{id}/blocks - Missing user ID in context: staff_id=%d", staffID)
		handlers.RespondInternalError(w)
		return
	}

	var req BlockSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /staff/{id}/blocks - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(staffID, actingUserID)
	if err != nil {
		h.logger.Warn("POST /staff/{id}/blocks - Failed to parse date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, blockSlot.ErrStaffNotFound):
			h.logger.Warn("POST /staff/{id}/blocks - Staff not found: staff_id=%d", staffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, blockSlot.ErrAccessDenied):
			h.logger.Warn("POST /staff/{id}/blocks - Access denied: staff_id=%d, user_id=%d",
				staffID, actingUserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, blockSlot.ErrSlotTaken):
			h.logger.Warn("POST /staff/{id}/blocks - Slot taken: staff_id=%d, slot=%s", staffID, req.Date)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, blockSlot.ErrSlotOutsideWindow):
			h.logger.Warn("POST /staff/{id}/blocks - Slot outside window: staff_id=%d, hour=%d", staffID, req.Hour)
			handlers.RespondBadRequest(w, msgSlotOutsideWindow)

		case errors.Is(err, blockSlot.ErrSlotNotAligned):
			h.logger.Warn("POST /staff/{id}/blocks - Slot not aligned: staff_id=%d", staffID)
			handlers.RespondBadRequest(w, msgSlotNotAligned)

		case errors.Is(err, blockSlot.ErrInvalidInput):
			h.logger.Warn("POST /staff/{id}/blocks - Invalid input: staff_id=%d, error=%v", staffID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /staff/{id}/blocks - Failed to block slot: staff_id=%d, error=%v",
				staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /staff/{id}/blocks - Slot blocked successfully: reservation_id=%d, staff_id=%d, user_id=%d",
		result.ID, staffID, actingUserID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
