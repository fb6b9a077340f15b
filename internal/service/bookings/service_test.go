package bookings_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	bookingRepository "github.com/m04kA/SMC-HotelService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-HotelService/internal/service/bookings"
	"github.com/m04kA/SMC-HotelService/internal/service/bookings/models"
	"github.com/m04kA/SMC-HotelService/pkg/ptr"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking

	gotStatus *domain.BookingStatus
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	for _, b := range f.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, bookingRepository.ErrBookingNotFound
}

func (f *fakeBookingRepo) GetAll(_ context.Context, status *domain.BookingStatus) ([]*domain.Booking, error) {
	f.gotStatus = status
	if status == nil {
		return f.bookings, nil
	}
	out := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if b.Status == *status {
			out = append(out, b)
		}
	}
	return out, nil
}

type fakeGuestRepo struct {
	guests []*domain.Guest
}

func (f *fakeGuestRepo) GetByIDs(_ context.Context, ids []int64) ([]*domain.Guest, error) {
	out := make([]*domain.Guest, 0)
	for _, g := range f.guests {
		for _, id := range ids {
			if g.ID == id {
				out = append(out, g)
			}
		}
	}
	return out, nil
}

type fakeRoomRepo struct {
	rooms []*domain.Room
}

func (f *fakeRoomRepo) GetByIDs(_ context.Context, ids []int64) ([]*domain.Room, error) {
	out := make([]*domain.Room, 0)
	for _, r := range f.rooms {
		for _, id := range ids {
			if r.ID == id {
				out = append(out, r)
			}
		}
	}
	return out, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newService() *bookings.Service {
	bookingRepo := &fakeBookingRepo{
		bookings: []*domain.Booking{
			{ID: 1, BookingNumber: "BK-20251201-0001", GuestID: 1, RoomID: 1,
				Status:      domain.StatusPending,
				CheckInDate: time.Date(2025, 12, 15, 0, 0, 0, 0, time.UTC),
				CheckOutDate: time.Date(2025, 12, 18, 0, 0, 0, 0, time.UTC)},
			{ID: 2, BookingNumber: "BK-20251202-0002", GuestID: 2, RoomID: 2,
				Status:      domain.StatusCheckedIn,
				CheckInDate: time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
				CheckOutDate: time.Date(2025, 12, 5, 0, 0, 0, 0, time.UTC)},
		},
	}
	guestRepo := &fakeGuestRepo{
		guests: []*domain.Guest{
			{ID: 1, FirstName: "John", LastName: "Smith"},
			{ID: 2, FirstName: "Maria", LastName: "Garcia"},
		},
	}
	roomRepo := &fakeRoomRepo{
		rooms: []*domain.Room{
			{ID: 1, RoomNumber: "101", RoomType: "standard", Floor: 1, Status: domain.RoomStatusAvailable},
			{ID: 2, RoomNumber: "205", RoomType: "deluxe", Floor: 2, Status: domain.RoomStatusOccupied},
		},
	}
	return bookings.NewService(bookingRepo, guestRepo, roomRepo, nopLogger{})
}

func TestGetByID_EnrichesGuestAndRoom(t *testing.T) {
	svc := newService()

	resp, err := svc.GetByID(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, "BK-20251201-0001", resp.BookingNumber)
	assert.Equal(t, 3, resp.Nights)
	require.NotNil(t, resp.Guest)
	assert.Equal(t, "John", resp.Guest.FirstName)
	require.NotNil(t, resp.Room)
	assert.Equal(t, "101", resp.Room.RoomNumber)
}

func TestGetByID_DerivesAvailableActions(t *testing.T) {
	svc := newService()

	resp, err := svc.GetByID(context.Background(), 1)

	require.NoError(t, err)
	// pending: подтвердить или отменить, отмена деструктивна
	require.Len(t, resp.AvailableActions, 2)
	actions := map[string]bool{}
	for _, a := range resp.AvailableActions {
		actions[a.Status] = a.Destructive
	}
	destructive, ok := actions["cancelled"]
	require.True(t, ok)
	assert.True(t, destructive)
	destructive, ok = actions["confirmed"]
	require.True(t, ok)
	assert.False(t, destructive)
}

func TestGetByID_Fail_NotFound(t *testing.T) {
	svc := newService()

	_, err := svc.GetByID(context.Background(), 99)

	assert.ErrorIs(t, err, bookings.ErrBookingNotFound)
}

func TestGetAll_FiltersByStatus(t *testing.T) {
	svc := newService()

	resp, err := svc.GetAll(context.Background(), &models.GetBookingsRequest{
		Status: ptr.Ptr("checked_in"),
	})

	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, int64(2), resp.Bookings[0].ID)
}

func TestGetAll_Fail_UnknownStatus(t *testing.T) {
	svc := newService()

	_, err := svc.GetAll(context.Background(), &models.GetBookingsRequest{
		Status: ptr.Ptr("archived"),
	})

	assert.ErrorIs(t, err, bookings.ErrInvalidInput)
}

func TestGetAll_NoFilter(t *testing.T) {
	svc := newService()

	resp, err := svc.GetAll(context.Background(), &models.GetBookingsRequest{})

	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 2)
}
