package checkout

import "time"

// Request модель запроса на оплату корзины
type Request struct {
	SessionID     string // ID сессии терминала
	PaymentMethod string // Способ оплаты: cash, card или room_charge
	BookingID     *int64 // ID бронирования (обязателен для room_charge)
}

// Response модель ответа с записанным чеком
type Response struct {
	TransactionID int64   // ID чека
	Subtotal      float64 // Сумма без налога
	Tax           float64 // Налог
	Total         float64 // Итог к оплате
	PaymentMethod string  // Способ оплаты
	Status        string  // Статус чека
	GuestID       *int64  // Гость (для room_charge)
	BookingID     *int64  // Бронирование (для room_charge)
	Items         []Item  // Строки чека

	CreatedAt time.Time // Время записи чека
}

// Item строка чека
type Item struct {
	ProductID   int64   // ID товара
	ProductName string  // Название на момент продажи
	Quantity    int     // Количество
	UnitPrice   float64 // Цена за единицу на момент продажи
}
