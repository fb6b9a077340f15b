package get_available_rooms_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	getAvailableRooms "github.com/m04kA/SMC-HotelService/internal/usecase/get_available_rooms"
)

type fakeRoomRepo struct {
	rooms []*domain.Room
	err   error
}

func (f *fakeRoomRepo) GetAll(_ context.Context, _ *domain.RoomStatus) ([]*domain.Room, error) {
	return f.rooms, f.err
}

type fakeBookingRepo struct {
	overlapping []*domain.Booking
	err         error

	gotCheckIn  time.Time
	gotCheckOut time.Time
}

func (f *fakeBookingRepo) GetOverlapping(_ context.Context, _ *int64, checkIn, checkOut time.Time) ([]*domain.Booking, error) {
	f.gotCheckIn = checkIn
	f.gotCheckOut = checkOut
	return f.overlapping, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func availableRooms() []*domain.Room {
	return []*domain.Room{
		{ID: 1, RoomNumber: "101", RoomType: "standard", Floor: 1, Status: domain.RoomStatusAvailable},
		{ID: 2, RoomNumber: "102", RoomType: "standard", Floor: 1, Status: domain.RoomStatusAvailable},
		{ID: 3, RoomNumber: "205", RoomType: "deluxe", Floor: 2, Status: domain.RoomStatusAvailable},
	}
}

func TestGetAvailableRooms_ExcludesOverlappingBookings(t *testing.T) {
	// Номер 101 занят 15-18 декабря
	bookingRepo := &fakeBookingRepo{
		overlapping: []*domain.Booking{
			{ID: 10, RoomID: 1, Status: domain.StatusConfirmed,
				CheckInDate: date(2025, time.December, 15), CheckOutDate: date(2025, time.December, 18)},
		},
	}
	uc := getAvailableRooms.NewUseCase(&fakeRoomRepo{rooms: availableRooms()}, bookingRepo, nopLogger{})

	// Запрос 16-17 декабря попадает внутрь проживания
	resp, err := uc.Execute(context.Background(), &getAvailableRooms.Request{
		CheckIn:  date(2025, time.December, 16),
		CheckOut: date(2025, time.December, 17),
	})

	require.NoError(t, err)
	require.Len(t, resp.Rooms, 2)
	assert.Equal(t, "102", resp.Rooms[0].RoomNumber)
	assert.Equal(t, "205", resp.Rooms[1].RoomNumber)
	assert.Equal(t, 1, resp.Nights)
}

func TestGetAvailableRooms_CheckoutDayDoesNotBlock(t *testing.T) {
	// Запрос с заездом в день выезда: репозиторий с полуоткрытым
	// сравнением не вернет это бронирование
	bookingRepo := &fakeBookingRepo{overlapping: nil}
	uc := getAvailableRooms.NewUseCase(&fakeRoomRepo{rooms: availableRooms()}, bookingRepo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &getAvailableRooms.Request{
		CheckIn:  date(2025, time.December, 18),
		CheckOut: date(2025, time.December, 20),
	})

	require.NoError(t, err)
	assert.Len(t, resp.Rooms, 3)
	assert.Equal(t, date(2025, time.December, 18), bookingRepo.gotCheckIn)
	assert.Equal(t, date(2025, time.December, 20), bookingRepo.gotCheckOut)
}

func TestGetAvailableRooms_InvalidRange(t *testing.T) {
	uc := getAvailableRooms.NewUseCase(&fakeRoomRepo{}, &fakeBookingRepo{}, nopLogger{})

	// Выезд раньше заезда
	_, err := uc.Execute(context.Background(), &getAvailableRooms.Request{
		CheckIn:  date(2025, time.December, 18),
		CheckOut: date(2025, time.December, 15),
	})
	assert.ErrorIs(t, err, getAvailableRooms.ErrInvalidRange)

	// Выезд в день заезда
	_, err = uc.Execute(context.Background(), &getAvailableRooms.Request{
		CheckIn:  date(2025, time.December, 15),
		CheckOut: date(2025, time.December, 15),
	})
	assert.ErrorIs(t, err, getAvailableRooms.ErrInvalidRange)
}

func TestGetAvailableRooms_MissingDates(t *testing.T) {
	uc := getAvailableRooms.NewUseCase(&fakeRoomRepo{}, &fakeBookingRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &getAvailableRooms.Request{
		CheckOut: date(2025, time.December, 15),
	})
	assert.ErrorIs(t, err, getAvailableRooms.ErrInvalidInput)
}

func TestGetAvailableRooms_RepoError(t *testing.T) {
	uc := getAvailableRooms.NewUseCase(
		&fakeRoomRepo{err: errors.New("connection refused")},
		&fakeBookingRepo{},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &getAvailableRooms.Request{
		CheckIn:  date(2025, time.December, 15),
		CheckOut: date(2025, time.December, 18),
	})
	assert.ErrorIs(t, err, getAvailableRooms.ErrInternal)
}
