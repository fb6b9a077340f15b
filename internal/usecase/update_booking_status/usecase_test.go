package update_booking_status_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	bookingRepository "github.com/m04kA/SMC-HotelService/internal/infra/storage/booking"
	updateBookingStatus "github.com/m04kA/SMC-HotelService/internal/usecase/update_booking_status"
)

type fakeBookingRepo struct {
	booking   *domain.Booking
	updateErr error

	updateCalls int
	gotStatus   domain.BookingStatus
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	if f.booking == nil || f.booking.ID != id {
		return nil, bookingRepository.ErrBookingNotFound
	}
	return f.booking, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, _ int64, status domain.BookingStatus) error {
	f.updateCalls++
	f.gotStatus = status
	return f.updateErr
}

type fakeRoomRepo struct {
	updateErr error

	updateCalls int
	gotRoomID   int64
	gotStatus   domain.RoomStatus
}

func (f *fakeRoomRepo) UpdateStatus(_ context.Context, id int64, status domain.RoomStatus) error {
	f.updateCalls++
	f.gotRoomID = id
	f.gotStatus = status
	return f.updateErr
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func booking(status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:            5,
		BookingNumber: "BK-20251215-0042",
		RoomID:        7,
		Status:        status,
	}
}

func TestUpdateBookingStatus_ConfirmPending(t *testing.T) {
	bookingRepo := &fakeBookingRepo{booking: booking(domain.StatusPending)}
	roomRepo := &fakeRoomRepo{}
	uc := updateBookingStatus.NewUseCase(bookingRepo, roomRepo, fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &updateBookingStatus.Request{
		BookingID: 5,
		Status:    "confirmed",
	})

	require.NoError(t, err)
	assert.Equal(t, "pending", resp.PrevStatus)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, domain.StatusConfirmed, bookingRepo.gotStatus)
	// Подтверждение не трогает номер
	assert.Zero(t, roomRepo.updateCalls)
	assert.Nil(t, resp.RoomStatus)
}

func TestUpdateBookingStatus_CheckInOccupiesRoom(t *testing.T) {
	bookingRepo := &fakeBookingRepo{booking: booking(domain.StatusConfirmed)}
	roomRepo := &fakeRoomRepo{}
	uc := updateBookingStatus.NewUseCase(bookingRepo, roomRepo, fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &updateBookingStatus.Request{
		BookingID: 5,
		Status:    "checked_in",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, roomRepo.updateCalls)
	assert.Equal(t, int64(7), roomRepo.gotRoomID)
	assert.Equal(t, domain.RoomStatusOccupied, roomRepo.gotStatus)
	require.NotNil(t, resp.RoomStatus)
	assert.Equal(t, "occupied", *resp.RoomStatus)
}

func TestUpdateBookingStatus_CheckOutFreesRoom(t *testing.T) {
	bookingRepo := &fakeBookingRepo{booking: booking(domain.StatusCheckedIn)}
	roomRepo := &fakeRoomRepo{}
	uc := updateBookingStatus.NewUseCase(bookingRepo, roomRepo, fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &updateBookingStatus.Request{
		BookingID: 5,
		Status:    "checked_out",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.RoomStatusAvailable, roomRepo.gotStatus)
	assert.Empty(t, resp.NextActions)
}

func TestUpdateBookingStatus_CancelLeavesRoomUntouched(t *testing.T) {
	bookingRepo := &fakeBookingRepo{booking: booking(domain.StatusConfirmed)}
	roomRepo := &fakeRoomRepo{}
	uc := updateBookingStatus.NewUseCase(bookingRepo, roomRepo, fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &updateBookingStatus.Request{
		BookingID: 5,
		Status:    "cancelled",
	})

	require.NoError(t, err)
	assert.Zero(t, roomRepo.updateCalls)
	assert.Nil(t, resp.RoomStatus)
}

func TestUpdateBookingStatus_RejectsIllegalTransitions(t *testing.T) {
	allStatuses := []domain.BookingStatus{
		domain.StatusPending,
		domain.StatusConfirmed,
		domain.StatusCheckedIn,
		domain.StatusCheckedOut,
		domain.StatusCancelled,
	}

	// Полный перебор пар: каждый запрещенный таблицей переход отклоняется
	// без единого обращения к записи
	for _, from := range allStatuses {
		for _, to := range allStatuses {
			if from.CanTransitionTo(to) {
				continue
			}
			t.Run(string(from)+"_to_"+string(to), func(t *testing.T) {
				bookingRepo := &fakeBookingRepo{booking: booking(from)}
				roomRepo := &fakeRoomRepo{}
				uc := updateBookingStatus.NewUseCase(bookingRepo, roomRepo, fakeTxManager{}, nopLogger{})

				_, err := uc.Execute(context.Background(), &updateBookingStatus.Request{
					BookingID: 5,
					Status:    string(to),
				})

				assert.ErrorIs(t, err, updateBookingStatus.ErrIllegalTransition)
				assert.Zero(t, bookingRepo.updateCalls)
				assert.Zero(t, roomRepo.updateCalls)
			})
		}
	}
}

func TestUpdateBookingStatus_Fail_BookingNotFound(t *testing.T) {
	uc := updateBookingStatus.NewUseCase(&fakeBookingRepo{}, &fakeRoomRepo{}, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &updateBookingStatus.Request{
		BookingID: 99,
		Status:    "confirmed",
	})

	assert.ErrorIs(t, err, updateBookingStatus.ErrBookingNotFound)
}

func TestUpdateBookingStatus_Fail_UnknownStatus(t *testing.T) {
	bookingRepo := &fakeBookingRepo{booking: booking(domain.StatusPending)}
	uc := updateBookingStatus.NewUseCase(bookingRepo, &fakeRoomRepo{}, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &updateBookingStatus.Request{
		BookingID: 5,
		Status:    "archived",
	})

	assert.ErrorIs(t, err, updateBookingStatus.ErrInvalidInput)
	assert.Zero(t, bookingRepo.updateCalls)
}

func TestUpdateBookingStatus_Fail_UpdateFailed(t *testing.T) {
	bookingRepo := &fakeBookingRepo{
		booking:   booking(domain.StatusPending),
		updateErr: errors.New("connection reset"),
	}
	uc := updateBookingStatus.NewUseCase(bookingRepo, &fakeRoomRepo{}, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &updateBookingStatus.Request{
		BookingID: 5,
		Status:    "confirmed",
	})

	assert.ErrorIs(t, err, updateBookingStatus.ErrUpdateFailed)
}

func TestUpdateBookingStatus_Fail_RoomUpdateFailed(t *testing.T) {
	bookingRepo := &fakeBookingRepo{booking: booking(domain.StatusConfirmed)}
	roomRepo := &fakeRoomRepo{updateErr: errors.New("connection reset")}
	uc := updateBookingStatus.NewUseCase(bookingRepo, roomRepo, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &updateBookingStatus.Request{
		BookingID: 5,
		Status:    "checked_in",
	})

	assert.ErrorIs(t, err, updateBookingStatus.ErrUpdateFailed)
}
