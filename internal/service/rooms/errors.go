package rooms

import "errors"

var (
	// ErrInvalidInput некорректные входные данные
	ErrInvalidInput = errors.New("service.rooms: invalid input")
	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("service.rooms: internal error")
)
