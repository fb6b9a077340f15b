package domain

import "time"

// RoomStatus represents the operational status of a room
type RoomStatus string

const (
	RoomStatusAvailable   RoomStatus = "available"
	RoomStatusOccupied    RoomStatus = "occupied"
	RoomStatusMaintenance RoomStatus = "maintenance"
	RoomStatusCleaning    RoomStatus = "cleaning"
)

// Room represents a physical hotel room
type Room struct {
	ID         int64
	RoomNumber string
	RoomType   string
	Floor      int
	Status     RoomStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBookable returns true if the room can accept new bookings
// Rooms under maintenance or cleaning are excluded regardless of date overlap
func (r *Room) IsBookable() bool {
	return r.Status == RoomStatusAvailable
}

// ValidRoomStatuses lists every known operational room status
var ValidRoomStatuses = []RoomStatus{
	RoomStatusAvailable,
	RoomStatusOccupied,
	RoomStatusMaintenance,
	RoomStatusCleaning,
}

// IsValid returns true if the status is a known room status
func (s RoomStatus) IsValid() bool {
	for _, valid := range ValidRoomStatuses {
		if s == valid {
			return true
		}
	}
	return false
}
