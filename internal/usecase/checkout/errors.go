package checkout

import "errors"

var (
	// ErrEmptyCart возвращается при попытке оплатить пустую корзину
	ErrEmptyCart = errors.New("checkout: cart is empty")

	// ErrBookingRequired возвращается, когда для room charge не указано
	// бронирование
	ErrBookingRequired = errors.New("checkout: booking is required for room charge")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("checkout: booking not found")

	// ErrBookingNotActive возвращается при попытке списать на номер
	// по выехавшему или отмененному бронированию
	ErrBookingNotActive = errors.New("checkout: booking is not active")

	// ErrTransactionFailed возвращается, когда запись чека не удалась;
	// корзина при этом не очищается
	ErrTransactionFailed = errors.New("checkout: transaction failed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("checkout: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("checkout: internal error")
)
