package pos

import (
	"context"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// ProductRepository интерфейс репозитория товаров
type ProductRepository interface {
	GetCategories(ctx context.Context) ([]*domain.ProductCategory, error)
	GetProducts(ctx context.Context, categoryID *int64) ([]*domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetActive(ctx context.Context) ([]*domain.Booking, error)
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
