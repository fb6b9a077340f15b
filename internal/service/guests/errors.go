package guests

import "errors"

var (
	// ErrGuestNotFound гость не найден
	ErrGuestNotFound = errors.New("service.guests: guest not found")
	// ErrInvalidInput некорректные входные данные
	ErrInvalidInput = errors.New("service.guests: invalid input")
	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("service.guests: internal error")
)
