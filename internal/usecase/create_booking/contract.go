package create_booking

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetOverlapping(ctx context.Context, roomID *int64, checkIn, checkOut time.Time) ([]*domain.Booking, error)
}

// GuestRepository интерфейс репозитория гостей
type GuestRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Guest, error)
}

// RoomRepository интерфейс репозитория номеров
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// NumberGenerator интерфейс генерации номера бронирования (для тестирования)
type NumberGenerator interface {
	Generate(now time.Time) string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// RandomNumberGenerator генератор номеров вида BK-YYYYMMDD-xxxx
type RandomNumberGenerator struct{}

// Generate возвращает новый номер бронирования
func (g *RandomNumberGenerator) Generate(now time.Time) string {
	return fmt.Sprintf("BK-%s-%04d", now.Format("20060102"), rand.Intn(10000))
}
