package get_categories

import (
	"net/http"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
)

type Handler struct {
	service POSService
	logger  Logger
}

func NewHandler(service POSService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/pos/categories
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetCategories(r.Context())
	if err != nil {
		h.logger.Error("GET /pos/categories - Failed to get categories: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /pos/categories - Retrieved %d categories", len(result.Categories))
	handlers.RespondJSON(w, http.StatusOK, result)
}
