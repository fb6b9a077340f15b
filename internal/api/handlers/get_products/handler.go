package get_products

import (
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/service/pos/models"
)

const msgInvalidCategoryID = "некорректный ID категории"

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

// Handle GET /api/v1/pos/products?categoryId=3
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.GetProductsRequest{}
	if categoryIDStr := r.URL.Query().Get("categoryId"); categoryIDStr != "" {
		categoryID, err := strconv.ParseInt(categoryIDStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /pos/products - Invalid category ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCategoryID)
			return
		}
		req.CategoryID = &categoryID
	}

	result, err := h.service.GetProducts(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /pos/products - Failed to get products: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /pos/products - Retrieved %d products", len(result.Products))
	handlers.RespondJSON(w, http.StatusOK, result)
}
