package checkout

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) (domain.PaymentMethod, error) {
	if req == nil {
		return "", fmt.Errorf("%w: empty request", ErrInvalidInput)
	}

	if strings.TrimSpace(req.SessionID) == "" {
		return "", fmt.Errorf("%w: session id is required", ErrInvalidInput)
	}

	method := domain.PaymentMethod(req.PaymentMethod)
	if !method.IsValid() {
		return "", fmt.Errorf("%w: unknown payment method %q", ErrInvalidInput, req.PaymentMethod)
	}

	if method.RequiresBooking() && req.BookingID == nil {
		return "", ErrBookingRequired
	}

	return method, nil
}
