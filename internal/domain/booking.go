package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending    BookingStatus = "pending"
	StatusConfirmed  BookingStatus = "confirmed"
	StatusCheckedIn  BookingStatus = "checked_in"
	StatusCheckedOut BookingStatus = "checked_out"
	StatusCancelled  BookingStatus = "cancelled"
)

// Booking represents a room reservation
type Booking struct {
	ID            int64
	BookingNumber string
	GuestID       int64
	RoomID        int64
	CheckInDate   time.Time
	CheckOutDate  time.Time
	NumGuests     int
	TotalAmount   float64
	Status        BookingStatus
	Notes         *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking holds its room-date range
// (pending, confirmed or checked_in)
func (b *Booking) IsActive() bool {
	return b.Status.IsActive()
}

// Nights returns the number of nights of the stay
func (b *Booking) Nights() int {
	return int(b.CheckOutDate.Sub(b.CheckInDate).Hours() / 24)
}

// OverlapsRange reports whether the booking's stay overlaps [checkIn, checkOut)
// Half-open semantics: a stay ending on the day another begins does not overlap
func (b *Booking) OverlapsRange(checkIn, checkOut time.Time) bool {
	return DateRangesOverlap(b.CheckInDate, b.CheckOutDate, checkIn, checkOut)
}

// DateRangesOverlap half-open interval overlap test for two stays
func DateRangesOverlap(aIn, aOut, bIn, bOut time.Time) bool {
	return aIn.Before(bOut) && aOut.After(bIn)
}

// IsValid returns true if the status is a known booking status
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCheckedIn, StatusCheckedOut, StatusCancelled:
		return true
	}
	return false
}

// IsActive returns true if the status marks a booking that holds its room
func (s BookingStatus) IsActive() bool {
	for _, active := range ActiveStatuses {
		if s == active {
			return true
		}
	}
	return false
}

// IsTerminal returns true if no transitions leave the status
func (s BookingStatus) IsTerminal() bool {
	return s == StatusCheckedOut || s == StatusCancelled
}

// IsDestructive returns true for transitions that require a second
// confirmation step in the UI
func (s BookingStatus) IsDestructive() bool {
	return s == StatusCancelled
}

// transitions таблица допустимых переходов статусов
// Единственный источник правды для жизненного цикла бронирования:
// и валидация переходов, и доступные действия в UI считаются из неё
var transitions = map[BookingStatus][]BookingStatus{
	StatusPending:    {StatusConfirmed, StatusCancelled},
	StatusConfirmed:  {StatusCheckedIn, StatusCancelled},
	StatusCheckedIn:  {StatusCheckedOut},
	StatusCheckedOut: {},
	StatusCancelled:  {},
}

// CanTransitionTo reports whether the transition s -> to is legal
func (s BookingStatus) CanTransitionTo(to BookingStatus) bool {
	for _, next := range transitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// NextStatuses returns the set of legal target statuses from s
// The presentation layer derives its action buttons from this list
func (s BookingStatus) NextStatuses() []BookingStatus {
	next := transitions[s]
	out := make([]BookingStatus, len(next))
	copy(out, next)
	return out
}

// RoomStatusAfterTransition returns the room status that must be written
// together with the booking status, or nil when the transition has no
// room side effect. Cancellation releases the hold implicitly: availability
// ignores cancelled bookings, the room row itself is untouched
func RoomStatusAfterTransition(from, to BookingStatus) *RoomStatus {
	if from == StatusConfirmed && to == StatusCheckedIn {
		status := RoomStatusOccupied
		return &status
	}
	if from == StatusCheckedIn && to == StatusCheckedOut {
		status := RoomStatusAvailable
		return &status
	}
	return nil
}
