package create_booking

import (
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	createBooking "github.com/m04kA/SMC-HotelService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	GuestID     int64   `json:"guestId"`
	RoomID      int64   `json:"roomId"`
	CheckIn     string  `json:"checkIn"`  // "2025-12-15"
	CheckOut    string  `json:"checkOut"` // "2025-12-18"
	NumGuests   int     `json:"numGuests"`
	TotalAmount float64 `json:"totalAmount"`
	Notes       *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            int64   `json:"id"`
	BookingNumber string  `json:"bookingNumber"`
	GuestID       int64   `json:"guestId"`
	RoomID        int64   `json:"roomId"`
	CheckIn       string  `json:"checkIn"`
	CheckOut      string  `json:"checkOut"`
	Nights        int     `json:"nights"`
	NumGuests     int     `json:"numGuests"`
	TotalAmount   float64 `json:"totalAmount"`
	Status        string  `json:"status"`
	Notes         *string `json:"notes,omitempty"`
	CreatedAt     string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	checkIn, err := time.Parse(domain.DateFormat, r.CheckIn)
	if err != nil {
		return nil, err
	}

	checkOut, err := time.Parse(domain.DateFormat, r.CheckOut)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		GuestID:     r.GuestID,
		RoomID:      r.RoomID,
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		NumGuests:   r.NumGuests,
		TotalAmount: r.TotalAmount,
		Notes:       r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		BookingNumber: resp.BookingNumber,
		GuestID:       resp.GuestID,
		RoomID:        resp.RoomID,
		CheckIn:       resp.CheckIn.Format(domain.DateFormat),
		CheckOut:      resp.CheckOut.Format(domain.DateFormat),
		Nights:        resp.Nights,
		NumGuests:     resp.NumGuests,
		TotalAmount:   resp.TotalAmount,
		Status:        resp.Status,
		Notes:         resp.Notes,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
	}
}
