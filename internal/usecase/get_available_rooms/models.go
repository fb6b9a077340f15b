package get_available_rooms

import "time"

// Request модель запроса на подбор свободных номеров
type Request struct {
	CheckIn  time.Time // Дата заезда (без времени)
	CheckOut time.Time // Дата выезда (без времени)
}

// Response модель ответа со списком свободных номеров
type Response struct {
	CheckIn  time.Time // Дата заезда, на которую выполнялся подбор
	CheckOut time.Time // Дата выезда
	Nights   int       // Количество ночей в диапазоне
	Rooms    []Room    // Свободные номера, отсортированные по номеру комнаты
}

// Room модель свободного номера
type Room struct {
	ID         int64  // ID номера
	RoomNumber string // Номер комнаты
	RoomType   string // Тип номера
	Floor      int    // Этаж
}
