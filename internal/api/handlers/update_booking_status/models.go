package update_booking_status

import (
	updateBookingStatus "github.com/m04kA/SMC-HotelService/internal/usecase/update_booking_status"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ActionResponse доступное действие над бронированием
type ActionResponse struct {
	Status      string `json:"status"`
	Destructive bool   `json:"destructive"`
}

// UpdateStatusResponse HTTP response model
type UpdateStatusResponse struct {
	BookingID     int64            `json:"bookingId"`
	BookingNumber string           `json:"bookingNumber"`
	PrevStatus    string           `json:"prevStatus"`
	Status        string           `json:"status"`
	RoomID        int64            `json:"roomId"`
	RoomStatus    *string          `json:"roomStatus,omitempty"`
	NextActions   []ActionResponse `json:"nextActions"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateBookingStatus.Response) *UpdateStatusResponse {
	out := &UpdateStatusResponse{
		BookingID:     resp.BookingID,
		BookingNumber: resp.BookingNumber,
		PrevStatus:    resp.PrevStatus,
		Status:        resp.Status,
		RoomID:        resp.RoomID,
		RoomStatus:    resp.RoomStatus,
		NextActions:   make([]ActionResponse, 0, len(resp.NextActions)),
	}
	for _, action := range resp.NextActions {
		out.NextActions = append(out.NextActions, ActionResponse{
			Status:      action.Status,
			Destructive: action.Destructive,
		})
	}
	return out
}
