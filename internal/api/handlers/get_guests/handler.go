package get_guests

import (
	"net/http"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
)

type Handler struct {
	service GuestService
	logger  Logger
}

func NewHandler(service GuestService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/guests
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetAll(r.Context())
	if err != nil {
		h.logger.Error("GET /guests - Failed to get guests: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /guests - Retrieved %d guests", len(result.Guests))
	handlers.RespondJSON(w, http.StatusOK, result)
}
