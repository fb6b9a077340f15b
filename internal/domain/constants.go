package domain

// Default configuration values
const (
	// DefaultTaxRate ставка налога POS-продаж по умолчанию (10%)
	DefaultTaxRate = 0.10
)

// Business validation constants
const (
	MinGuestsPerBooking = 1
	MaxGuestsPerBooking = 10
	MaxNotesLength      = 500
	MaxStayNights       = 365
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses список статусов активных бронирований
// Активное бронирование - допустимая цель для room charge
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCheckedIn,
}

// TerminalStatuses список терминальных статусов - из них нет переходов
var TerminalStatuses = []BookingStatus{
	StatusCheckedOut,
	StatusCancelled,
}
