package create_booking

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	GuestID     int64     // ID гостя
	RoomID      int64     // ID номера
	CheckIn     time.Time // Дата заезда (без времени)
	CheckOut    time.Time // Дата выезда (без времени)
	NumGuests   int       // Количество гостей
	TotalAmount float64   // Стоимость проживания
	Notes       *string   // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID            int64     // ID созданного бронирования
	BookingNumber string    // Человекочитаемый номер бронирования
	GuestID       int64     // ID гостя
	RoomID        int64     // ID номера
	CheckIn       time.Time // Дата заезда
	CheckOut      time.Time // Дата выезда
	Nights        int       // Количество ночей
	NumGuests     int       // Количество гостей
	TotalAmount   float64   // Стоимость проживания
	Status        string    // Статус бронирования (всегда pending при создании)
	Notes         *string   // Заметки

	CreatedAt time.Time // Время создания
}
