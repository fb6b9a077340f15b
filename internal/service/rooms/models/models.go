package models

import (
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// GetRoomsRequest параметры запроса списка номеров
type GetRoomsRequest struct {
	Status *string
}

// RoomResponse ответ с данными номера
type RoomResponse struct {
	ID         int64     `json:"id"`
	RoomNumber string    `json:"roomNumber"`
	RoomType   string    `json:"roomType"`
	Floor      int       `json:"floor"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

// RoomListResponse ответ со списком номеров
type RoomListResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

// FromDomainRoom конвертирует domain модель в DTO
func FromDomainRoom(r *domain.Room) *RoomResponse {
	if r == nil {
		return nil
	}
	return &RoomResponse{
		ID:         r.ID,
		RoomNumber: r.RoomNumber,
		RoomType:   r.RoomType,
		Floor:      r.Floor,
		Status:     string(r.Status),
		CreatedAt:  r.CreatedAt,
	}
}

// FromDomainRoomList конвертирует список domain моделей в DTO
func FromDomainRoomList(rooms []*domain.Room) *RoomListResponse {
	resp := &RoomListResponse{
		Rooms: make([]RoomResponse, 0, len(rooms)),
	}
	for _, r := range rooms {
		if roomResp := FromDomainRoom(r); roomResp != nil {
			resp.Rooms = append(resp.Rooms, *roomResp)
		}
	}
	return resp
}
