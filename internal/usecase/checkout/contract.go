package checkout

import (
	"context"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// CartProvider интерфейс доступа к корзине терминала
type CartProvider interface {
	CartSnapshot(sessionID string) ([]domain.CartItem, domain.CartTotals)
	DropCart(sessionID string)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}

// TransactionRepository интерфейс репозитория чеков
type TransactionRepository interface {
	Create(ctx context.Context, t *domain.Transaction) (*domain.Transaction, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
