package checkout

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/api/handlers/cart"
	checkoutUseCase "github.com/m04kA/SMC-HotelService/internal/usecase/checkout"
)

const (
	msgMissingSession     = "отсутствует заголовок X-Session-Id"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidPayment     = "некорректный способ оплаты"
	msgEmptyCart          = "корзина пуста"
	msgBookingRequired    = "для списания на номер требуется бронирование"
	msgBookingNotFound    = "бронирование не найдено"
	msgBookingNotActive   = "бронирование не активно"
	msgTransactionFailed  = "не удалось записать чек, корзина сохранена"
)

type Handler struct {
	useCase CheckoutUseCase
	logger  Logger
}

func NewHandler(useCase CheckoutUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/pos/checkout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := r.Header.Get(cart.SessionHeader)
	if sessionID == "" {
		h.logger.Warn("POST /pos/checkout - Missing session header")
		handlers.RespondBadRequest(w, msgMissingSession)
		return
	}

	var req CheckoutRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /pos/checkout - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &checkoutUseCase.Request{
		SessionID:     sessionID,
		PaymentMethod: req.PaymentMethod,
		BookingID:     req.BookingID,
	})
	if err != nil {
		switch {
		case errors.Is(err, checkoutUseCase.ErrEmptyCart):
			h.logger.Warn("POST /pos/checkout - Empty cart: session=%s", sessionID)
			handlers.RespondBadRequest(w, msgEmptyCart)

		case errors.Is(err, checkoutUseCase.ErrBookingRequired):
			h.logger.Warn("POST /pos/checkout - Booking required for room charge: session=%s", sessionID)
			handlers.RespondBadRequest(w, msgBookingRequired)

		case errors.Is(err, checkoutUseCase.ErrBookingNotFound):
			h.logger.Warn("POST /pos/checkout - Booking not found: session=%s", sessionID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, checkoutUseCase.ErrBookingNotActive):
			h.logger.Warn("POST /pos/checkout - Booking not active: session=%s", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgBookingNotActive)

		case errors.Is(err, checkoutUseCase.ErrInvalidInput):
			h.logger.Warn("POST /pos/checkout - Invalid payment method: session=%s", sessionID)
			handlers.RespondBadRequest(w, msgInvalidPayment)

		case errors.Is(err, checkoutUseCase.ErrTransactionFailed):
			h.logger.Error("POST /pos/checkout - Transaction failed: session=%s, error=%v", sessionID, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgTransactionFailed)

		default:
			h.logger.Error("POST /pos/checkout - Checkout failed: session=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /pos/checkout - Transaction recorded: session=%s, transaction_id=%d, total=%.2f",
		sessionID, result.TransactionID, result.Total)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
