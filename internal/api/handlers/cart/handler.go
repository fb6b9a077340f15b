package cart

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/service/pos"
)

// SessionHeader заголовок с ID сессии терминала
const SessionHeader = "X-Session-Id"

const (
	msgMissingSession     = "отсутствует заголовок X-Session-Id"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidProductID   = "некорректный ID товара"
	msgInvalidDelta       = "изменение количества не может быть нулевым"
	msgProductNotFound    = "товар не найден"
	msgItemNotInCart      = "товар отсутствует в корзине"
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

// HandleGet GET /api/v1/pos/cart
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	result, err := h.service.GetCart(sessionID)
	if err != nil {
		h.respondCartError(w, r, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleAddItem POST /api/v1/pos/cart/items
func (h *Handler) HandleAddItem(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	var req AddItemRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /pos/cart/items - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.AddToCart(r.Context(), sessionID, req.ProductID)
	if err != nil {
		h.respondCartError(w, r, err)
		return
	}

	h.logger.Info("POST /pos/cart/items - Product added: session=%s, product_id=%d", sessionID, req.ProductID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleUpdateItem PATCH /api/v1/pos/cart/items/{productId}
func (h *Handler) HandleUpdateItem(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	productID, ok := h.productID(w, r)
	if !ok {
		return
	}

	var req UpdateItemRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /pos/cart/items/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateCartItem(sessionID, productID, req.Delta)
	if err != nil {
		h.respondCartError(w, r, err)
		return
	}

	h.logger.Info("PATCH /pos/cart/items/{id} - Quantity updated: session=%s, product_id=%d, delta=%d",
		sessionID, productID, req.Delta)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleRemoveItem DELETE /api/v1/pos/cart/items/{productId}
func (h *Handler) HandleRemoveItem(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	productID, ok := h.productID(w, r)
	if !ok {
		return
	}

	result, err := h.service.RemoveCartItem(sessionID, productID)
	if err != nil {
		h.respondCartError(w, r, err)
		return
	}

	h.logger.Info("DELETE /pos/cart/items/{id} - Item removed: session=%s, product_id=%d", sessionID, productID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleClear DELETE /api/v1/pos/cart
func (h *Handler) HandleClear(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	result, err := h.service.ClearCart(sessionID)
	if err != nil {
		h.respondCartError(w, r, err)
		return
	}

	h.logger.Info("DELETE /pos/cart - Cart cleared: session=%s", sessionID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) sessionID(w http.ResponseWriter, r *http.Request) (string, bool) {
	sessionID := r.Header.Get(SessionHeader)
	if sessionID == "" {
		h.logger.Warn("%s %s - Missing session header", r.Method, r.URL.Path)
		handlers.RespondBadRequest(w, msgMissingSession)
		return "", false
	}
	return sessionID, true
}

func (h *Handler) productID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	vars := mux.Vars(r)
	productID, err := strconv.ParseInt(vars["productId"], 10, 64)
	if err != nil {
		h.logger.Warn("%s %s - Invalid product ID: %v", r.Method, r.URL.Path, err)
		handlers.RespondBadRequest(w, msgInvalidProductID)
		return 0, false
	}
	return productID, true
}

func (h *Handler) respondCartError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, pos.ErrProductNotFound):
		h.logger.Warn("%s %s - Product not found: %v", r.Method, r.URL.Path, err)
		handlers.RespondNotFound(w, msgProductNotFound)

	case errors.Is(err, pos.ErrItemNotInCart):
		h.logger.Warn("%s %s - Item not in cart: %v", r.Method, r.URL.Path, err)
		handlers.RespondNotFound(w, msgItemNotInCart)

	case errors.Is(err, pos.ErrInvalidInput):
		h.logger.Warn("%s %s - Invalid input: %v", r.Method, r.URL.Path, err)
		handlers.RespondBadRequest(w, msgInvalidDelta)

	default:
		h.logger.Error("%s %s - Cart operation failed: %v", r.Method, r.URL.Path, err)
		handlers.RespondInternalError(w)
	}
}
