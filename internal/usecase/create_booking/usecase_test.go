package create_booking_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	guestRepository "github.com/m04kA/SMC-HotelService/internal/infra/storage/guest"
	roomRepository "github.com/m04kA/SMC-HotelService/internal/infra/storage/room"
	createBooking "github.com/m04kA/SMC-HotelService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-HotelService/pkg/ptr"
)

type fakeBookingRepo struct {
	overlapping []*domain.Booking
	created     *domain.Booking
	createCalls int
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	f.createCalls++
	created := *booking
	created.ID = 42
	created.CreatedAt = time.Now()
	f.created = &created
	return &created, nil
}

func (f *fakeBookingRepo) GetOverlapping(_ context.Context, _ *int64, _, _ time.Time) ([]*domain.Booking, error) {
	return f.overlapping, nil
}

type fakeGuestRepo struct {
	guest *domain.Guest
}

func (f *fakeGuestRepo) GetByID(_ context.Context, id int64) (*domain.Guest, error) {
	if f.guest == nil || f.guest.ID != id {
		return nil, guestRepository.ErrGuestNotFound
	}
	return f.guest, nil
}

type fakeRoomRepo struct {
	room *domain.Room
}

func (f *fakeRoomRepo) GetByID(_ context.Context, id int64) (*domain.Room, error) {
	if f.room == nil || f.room.ID != id {
		return nil, roomRepository.ErrRoomNotFound
	}
	return f.room, nil
}

// fakeTxManager выполняет fn без реальной транзакции
type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func validRequest() *createBooking.Request {
	return &createBooking.Request{
		GuestID:     1,
		RoomID:      7,
		CheckIn:     date(2025, time.December, 15),
		CheckOut:    date(2025, time.December, 18),
		NumGuests:   2,
		TotalAmount: 450.00,
	}
}

func newUseCase(bookingRepo *fakeBookingRepo) *createBooking.UseCase {
	return createBooking.NewUseCase(
		bookingRepo,
		&fakeGuestRepo{guest: &domain.Guest{ID: 1, FirstName: "John", LastName: "Smith"}},
		&fakeRoomRepo{room: &domain.Room{ID: 7, RoomNumber: "205", Status: domain.RoomStatusAvailable}},
		fakeTxManager{},
		nopLogger{},
	)
}

func TestCreateBooking_Success(t *testing.T) {
	bookingRepo := &fakeBookingRepo{}
	uc := newUseCase(bookingRepo)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, 3, resp.Nights)
	assert.Regexp(t, `^BK-\d{8}-\d{4}$`, resp.BookingNumber)
	require.NotNil(t, bookingRepo.created)
	assert.Equal(t, domain.StatusPending, bookingRepo.created.Status)
}

func TestCreateBooking_Fail_RoomNotAvailable(t *testing.T) {
	// Пересекающееся бронирование найдено внутри транзакции
	bookingRepo := &fakeBookingRepo{
		overlapping: []*domain.Booking{
			{ID: 10, RoomID: 7, Status: domain.StatusConfirmed},
		},
	}
	uc := newUseCase(bookingRepo)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, createBooking.ErrRoomNotAvailable)
	assert.Zero(t, bookingRepo.createCalls)
}

func TestCreateBooking_Fail_GuestNotFound(t *testing.T) {
	bookingRepo := &fakeBookingRepo{}
	uc := createBooking.NewUseCase(
		bookingRepo,
		&fakeGuestRepo{},
		&fakeRoomRepo{room: &domain.Room{ID: 7, Status: domain.RoomStatusAvailable}},
		fakeTxManager{},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, createBooking.ErrGuestNotFound)
	assert.Zero(t, bookingRepo.createCalls)
}

func TestCreateBooking_Fail_RoomNotFound(t *testing.T) {
	bookingRepo := &fakeBookingRepo{}
	uc := createBooking.NewUseCase(
		bookingRepo,
		&fakeGuestRepo{guest: &domain.Guest{ID: 1}},
		&fakeRoomRepo{},
		fakeTxManager{},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, createBooking.ErrRoomNotFound)
}

func TestCreateBooking_Fail_RoomNotBookable(t *testing.T) {
	bookingRepo := &fakeBookingRepo{}
	uc := createBooking.NewUseCase(
		bookingRepo,
		&fakeGuestRepo{guest: &domain.Guest{ID: 1}},
		&fakeRoomRepo{room: &domain.Room{ID: 7, Status: domain.RoomStatusMaintenance}},
		fakeTxManager{},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, createBooking.ErrRoomNotBookable)
	assert.Zero(t, bookingRepo.createCalls)
}

func TestCreateBooking_Validation(t *testing.T) {
	bookingRepo := &fakeBookingRepo{}
	uc := newUseCase(bookingRepo)

	tests := []struct {
		name    string
		mutate  func(req *createBooking.Request)
		wantErr error
	}{
		{
			name:    "checkout before checkin",
			mutate:  func(req *createBooking.Request) { req.CheckOut = date(2025, time.December, 10) },
			wantErr: createBooking.ErrInvalidRange,
		},
		{
			name:    "zero night stay",
			mutate:  func(req *createBooking.Request) { req.CheckOut = req.CheckIn },
			wantErr: createBooking.ErrInvalidRange,
		},
		{
			name:    "zero guests",
			mutate:  func(req *createBooking.Request) { req.NumGuests = 0 },
			wantErr: createBooking.ErrInvalidInput,
		},
		{
			name:    "too many guests",
			mutate:  func(req *createBooking.Request) { req.NumGuests = domain.MaxGuestsPerBooking + 1 },
			wantErr: createBooking.ErrInvalidInput,
		},
		{
			name:    "negative amount",
			mutate:  func(req *createBooking.Request) { req.TotalAmount = -1 },
			wantErr: createBooking.ErrInvalidInput,
		},
		{
			name: "notes too long",
			mutate: func(req *createBooking.Request) {
				req.Notes = ptr.Ptr(fmt.Sprintf("%*s", domain.MaxNotesLength+1, "x"))
			},
			wantErr: createBooking.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
	assert.Zero(t, bookingRepo.createCalls)
}
