package update_booking_status

import (
	"fmt"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) (domain.BookingStatus, error) {
	if req == nil {
		return "", fmt.Errorf("%w: empty request", ErrInvalidInput)
	}

	if req.BookingID <= 0 {
		return "", fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	target := domain.BookingStatus(req.Status)
	if !target.IsValid() {
		return "", fmt.Errorf("%w: unknown status %q", ErrInvalidInput, req.Status)
	}

	return target, nil
}
