package update_booking_status

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("update_booking_status: booking not found")

	// ErrIllegalTransition возвращается, когда переход статусов не разрешен
	// таблицей жизненного цикла
	ErrIllegalTransition = errors.New("update_booking_status: illegal status transition")

	// ErrUpdateFailed возвращается, когда запись нового статуса не удалась;
	// состояние бронирования при этом не изменилось
	ErrUpdateFailed = errors.New("update_booking_status: status update failed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_booking_status: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_booking_status: internal error")
)
