package get_stores

import (
	"net/http"

	"github.com/haruyasu/booking-service/internal/api/handlers"
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

// Handle GET /api/v1/stores
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListStores(r.Context())
	if err != nil {
		h.logger.Error("GET /stores - Failed to list stores: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /stores - Stores retrieved successfully: count=%d", len(result.Stores))
	handlers.RespondJSON(w, http.StatusOK, result)
}
