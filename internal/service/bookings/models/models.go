package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// GetBookingsRequest запрос на получение списка бронирований
type GetBookingsRequest struct {
	Status *string `json:"status,omitempty"` // Фильтр по статусу (опционально)
}

// Response модели

// GuestInfo краткие данные гостя для списка бронирований
type GuestInfo struct {
	ID        int64   `json:"id"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
}

// RoomInfo краткие данные номера для списка бронирований
type RoomInfo struct {
	ID         int64  `json:"id"`
	RoomNumber string `json:"roomNumber"`
	RoomType   string `json:"roomType"`
	Floor      int    `json:"floor"`
	Status     string `json:"status"`
}

// ActionResponse доступное действие над бронированием
// Destructive-действия требуют второго подтверждения в UI
type ActionResponse struct {
	Status      string `json:"status"`
	Destructive bool   `json:"destructive"`
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID            int64   `json:"id"`
	BookingNumber string  `json:"bookingNumber"`
	GuestID       int64   `json:"guestId"`
	RoomID        int64   `json:"roomId"`
	CheckInDate   string  `json:"checkInDate"`  // "2024-12-15"
	CheckOutDate  string  `json:"checkOutDate"` // "2024-12-18"
	Nights        int     `json:"nights"`
	NumGuests     int     `json:"numGuests"`
	TotalAmount   float64 `json:"totalAmount"`
	Status        string  `json:"status"`
	Notes         *string `json:"notes,omitempty"`

	// Обогащение связанными сущностями
	Guest *GuestInfo `json:"guest,omitempty"`
	Room  *RoomInfo  `json:"room,omitempty"`

	// Доступные действия, выведенные из таблицы переходов
	AvailableActions []ActionResponse `json:"availableActions"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking, guest *domain.Guest, room *domain.Room) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:               b.ID,
		BookingNumber:    b.BookingNumber,
		GuestID:          b.GuestID,
		RoomID:           b.RoomID,
		CheckInDate:      b.CheckInDate.Format(domain.DateFormat),
		CheckOutDate:     b.CheckOutDate.Format(domain.DateFormat),
		Nights:           b.Nights(),
		NumGuests:        b.NumGuests,
		TotalAmount:      b.TotalAmount,
		Status:           string(b.Status),
		Notes:            b.Notes,
		AvailableActions: actionsFromStatus(b.Status),
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}

	if guest != nil {
		resp.Guest = &GuestInfo{
			ID:        guest.ID,
			FirstName: guest.FirstName,
			LastName:  guest.LastName,
			Email:     guest.Email,
			Phone:     guest.Phone,
		}
	}

	if room != nil {
		resp.Room = &RoomInfo{
			ID:         room.ID,
			RoomNumber: room.RoomNumber,
			RoomType:   room.RoomType,
			Floor:      room.Floor,
			Status:     string(room.Status),
		}
	}

	return resp
}

// actionsFromStatus выводит доступные действия из таблицы переходов
func actionsFromStatus(status domain.BookingStatus) []ActionResponse {
	next := status.NextStatuses()
	actions := make([]ActionResponse, len(next))
	for i, target := range next {
		actions[i] = ActionResponse{
			Status:      string(target),
			Destructive: target.IsDestructive(),
		}
	}
	return actions
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
