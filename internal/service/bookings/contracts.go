package bookings

import (
	"context"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetAll(ctx context.Context, status *domain.BookingStatus) ([]*domain.Booking, error)
}

// GuestRepository интерфейс репозитория гостей
type GuestRepository interface {
	GetByIDs(ctx context.Context, ids []int64) ([]*domain.Guest, error)
}

// RoomRepository интерфейс репозитория номеров
type RoomRepository interface {
	GetByIDs(ctx context.Context, ids []int64) ([]*domain.Room, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
