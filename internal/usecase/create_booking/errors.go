package create_booking

import "errors"

var (
	// ErrGuestNotFound возвращается, когда гость не найден
	ErrGuestNotFound = errors.New("create_booking: guest not found")

	// ErrRoomNotFound возвращается, когда номер не найден
	ErrRoomNotFound = errors.New("create_booking: room not found")

	// ErrRoomNotBookable возвращается, когда номер выведен из продажи
	// (maintenance или cleaning)
	ErrRoomNotBookable = errors.New("create_booking: room is not bookable")

	// ErrRoomNotAvailable возвращается, когда на диапазон дат уже есть
	// пересекающееся неотмененное бронирование
	ErrRoomNotAvailable = errors.New("create_booking: room is not available for these dates")

	// ErrInvalidRange возвращается при некорректном диапазоне дат
	ErrInvalidRange = errors.New("create_booking: invalid date range")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
