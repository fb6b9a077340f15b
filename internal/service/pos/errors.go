package pos

import "errors"

var (
	// ErrProductNotFound товар не найден или снят с продажи
	ErrProductNotFound = errors.New("service.pos: product not found")
	// ErrItemNotInCart товар отсутствует в корзине
	ErrItemNotInCart = errors.New("service.pos: item not in cart")
	// ErrInvalidInput некорректные входные данные
	ErrInvalidInput = errors.New("service.pos: invalid input")
	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("service.pos: internal error")
)
