package update_booking_status

// Request модель запроса на смену статуса бронирования
type Request struct {
	BookingID int64  // ID бронирования
	Status    string // Целевой статус
}

// Response модель ответа со сменившимся статусом
type Response struct {
	BookingID     int64    // ID бронирования
	BookingNumber string   // Номер бронирования
	PrevStatus    string   // Статус до перехода
	Status        string   // Статус после перехода
	RoomID        int64    // ID номера
	RoomStatus    *string  // Новый статус номера, если переход его меняет
	NextActions   []Action // Доступные действия из нового статуса
}

// Action доступное действие над бронированием
type Action struct {
	Status      string // Целевой статус действия
	Destructive bool   // Требует второго подтверждения в UI
}
