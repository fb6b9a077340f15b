package create_booking

import (
	"fmt"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: empty request", ErrInvalidInput)
	}

	if req.GuestID <= 0 {
		return fmt.Errorf("%w: guestID must be positive", ErrInvalidInput)
	}

	if req.RoomID <= 0 {
		return fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	if req.CheckIn.IsZero() {
		return fmt.Errorf("%w: checkIn is required", ErrInvalidInput)
	}

	if req.CheckOut.IsZero() {
		return fmt.Errorf("%w: checkOut is required", ErrInvalidInput)
	}

	if !req.CheckOut.After(req.CheckIn) {
		return fmt.Errorf("%w: checkOut must be after checkIn", ErrInvalidRange)
	}

	nights := int(req.CheckOut.Sub(req.CheckIn).Hours() / 24)
	if nights > domain.MaxStayNights {
		return fmt.Errorf("%w: stay exceeds %d nights", ErrInvalidRange, domain.MaxStayNights)
	}

	if req.NumGuests < domain.MinGuestsPerBooking || req.NumGuests > domain.MaxGuestsPerBooking {
		return fmt.Errorf("%w: numGuests must be between %d and %d",
			ErrInvalidInput, domain.MinGuestsPerBooking, domain.MaxGuestsPerBooking)
	}

	if req.TotalAmount < 0 {
		return fmt.Errorf("%w: totalAmount must not be negative", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}
