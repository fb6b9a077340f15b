package search_active_bookings

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

// Handle GET /api/v1/pos/charge-targets?q=205
// Пустой q не ошибка: возвращаются все активные бронирования
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	result, err := h.service.SearchChargeTargets(r.Context(), query)
	if err != nil {
		h.logger.Error("GET /pos/charge-targets - Search failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /pos/charge-targets - %d of %d active bookings matched %q",
		len(result.Matches), result.TotalActive, query)
	handlers.RespondJSON(w, http.StatusOK, result)
}
