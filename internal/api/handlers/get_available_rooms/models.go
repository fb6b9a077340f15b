package get_available_rooms

import (
	"github.com/m04kA/SMC-HotelService/internal/domain"
	getAvailableRooms "github.com/m04kA/SMC-HotelService/internal/usecase/get_available_rooms"
)

// RoomResponse свободный номер
type RoomResponse struct {
	ID         int64  `json:"id"`
	RoomNumber string `json:"roomNumber"`
	RoomType   string `json:"roomType"`
	Floor      int    `json:"floor"`
}

// AvailableRoomsResponse HTTP response model
type AvailableRoomsResponse struct {
	CheckIn  string         `json:"checkIn"`
	CheckOut string         `json:"checkOut"`
	Nights   int            `json:"nights"`
	Rooms    []RoomResponse `json:"rooms"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableRooms.Response) *AvailableRoomsResponse {
	out := &AvailableRoomsResponse{
		CheckIn:  resp.CheckIn.Format(domain.DateFormat),
		CheckOut: resp.CheckOut.Format(domain.DateFormat),
		Nights:   resp.Nights,
		Rooms:    make([]RoomResponse, 0, len(resp.Rooms)),
	}
	for _, room := range resp.Rooms {
		out.Rooms = append(out.Rooms, RoomResponse{
			ID:         room.ID,
			RoomNumber: room.RoomNumber,
			RoomType:   room.RoomType,
			Floor:      room.Floor,
		})
	}
	return out
}
