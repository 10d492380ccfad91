package get_staff

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/haruyasu/booking-service/internal/api/handlers"
	directoryService "github.com/haruyasu/booking-service/internal/service/directory"
)

const (
	msgInvalidStoreID = "некорректный ID магазина"
	msgStoreNotFound  = "магазин не найден"
)

type Handler struct {
	service DirectoryService
	logger  Logger
}

func NewHandler(service DirectoryService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/stores/{storeId}/staff
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	storeID, err := strconv.ParseInt(vars["storeId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /stores/{id}/staff - Invalid store ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStoreID)
		return
	}

	result, err := h.service.ListStaff(r.Context(), storeID)
	if err != nil {
		switch {
		case errors.Is(err, directoryService.ErrStoreNotFound):
			h.logger.Warn("GET /stores/{id}/staff - Store not found: store_id=%d", storeID)
			handlers.RespondNotFound(w, msgStoreNotFound)

		default:
			h.logger.Error("GET /stores/{id}/staff - Failed to list staff: store_id=%d, error=%v", storeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /stores/{id}/staff - Staff retrieved successfully: store_id=%d, count=%d",
		storeID, len(result.Staff))
	handlers.RespondJSON(w, http.StatusOK, result)
}
