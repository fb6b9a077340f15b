package domain

import "time"

// PaymentMethod represents how a POS transaction was paid
type PaymentMethod string

const (
	PaymentCash       PaymentMethod = "cash"
	PaymentCard       PaymentMethod = "card"
	PaymentRoomCharge PaymentMethod = "room_charge"
)

// IsValid returns true if the method is a known payment method
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentRoomCharge:
		return true
	}
	return false
}

// RequiresBooking returns true if the method must be linked to an active booking
func (m PaymentMethod) RequiresBooking() bool {
	return m == PaymentRoomCharge
}

// TransactionStatus represents the state of a POS transaction
type TransactionStatus string

const (
	TransactionCompleted TransactionStatus = "completed"
)

// Transaction represents a completed POS sale
// Created atomically together with its items at checkout; immutable afterward
type Transaction struct {
	ID            int64
	Subtotal      float64
	Tax           float64
	Total         float64
	PaymentMethod PaymentMethod
	Status        TransactionStatus

	// Set only for room charge
	GuestID   *int64
	BookingID *int64

	Items []TransactionItem

	CreatedAt time.Time
}

// TransactionItem represents one sold line with the unit price
// snapshotted at the time of sale
type TransactionItem struct {
	ID            int64
	TransactionID int64
	ProductID     int64
	ProductName   string
	Quantity      int
	UnitPrice     float64
}
