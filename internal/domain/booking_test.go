package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBookingStatus_CanTransitionTo(t *testing.T) {
	allStatuses := []domain.BookingStatus{
		domain.StatusPending,
		domain.StatusConfirmed,
		domain.StatusCheckedIn,
		domain.StatusCheckedOut,
		domain.StatusCancelled,
	}

	legal := map[domain.BookingStatus][]domain.BookingStatus{
		domain.StatusPending:    {domain.StatusConfirmed, domain.StatusCancelled},
		domain.StatusConfirmed:  {domain.StatusCheckedIn, domain.StatusCancelled},
		domain.StatusCheckedIn:  {domain.StatusCheckedOut},
		domain.StatusCheckedOut: {},
		domain.StatusCancelled:  {},
	}

	// Полный перебор пар: каждый переход либо разрешен таблицей, либо запрещен
	for _, from := range allStatuses {
		for _, to := range allStatuses {
			want := false
			for _, allowed := range legal[from] {
				if allowed == to {
					want = true
				}
			}
			assert.Equal(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestBookingStatus_NextStatuses(t *testing.T) {
	assert.ElementsMatch(t,
		[]domain.BookingStatus{domain.StatusConfirmed, domain.StatusCancelled},
		domain.StatusPending.NextStatuses())
	assert.ElementsMatch(t,
		[]domain.BookingStatus{domain.StatusCheckedIn, domain.StatusCancelled},
		domain.StatusConfirmed.NextStatuses())
	assert.ElementsMatch(t,
		[]domain.BookingStatus{domain.StatusCheckedOut},
		domain.StatusCheckedIn.NextStatuses())
	assert.Empty(t, domain.StatusCheckedOut.NextStatuses())
	assert.Empty(t, domain.StatusCancelled.NextStatuses())
}

func TestBookingStatus_NextStatuses_ReturnsCopy(t *testing.T) {
	next := domain.StatusPending.NextStatuses()
	require.Len(t, next, 2)
	next[0] = domain.StatusCheckedOut

	assert.ElementsMatch(t,
		[]domain.BookingStatus{domain.StatusConfirmed, domain.StatusCancelled},
		domain.StatusPending.NextStatuses())
}

func TestBookingStatus_IsTerminal(t *testing.T) {
	assert.False(t, domain.StatusPending.IsTerminal())
	assert.False(t, domain.StatusConfirmed.IsTerminal())
	assert.False(t, domain.StatusCheckedIn.IsTerminal())
	assert.True(t, domain.StatusCheckedOut.IsTerminal())
	assert.True(t, domain.StatusCancelled.IsTerminal())
}

func TestBookingStatus_IsDestructive(t *testing.T) {
	assert.True(t, domain.StatusCancelled.IsDestructive())
	assert.False(t, domain.StatusConfirmed.IsDestructive())
	assert.False(t, domain.StatusCheckedOut.IsDestructive())
}

func TestRoomStatusAfterTransition(t *testing.T) {
	// Заселение занимает номер
	status := domain.RoomStatusAfterTransition(domain.StatusConfirmed, domain.StatusCheckedIn)
	require.NotNil(t, status)
	assert.Equal(t, domain.RoomStatusOccupied, *status)

	// Выселение освобождает номер
	status = domain.RoomStatusAfterTransition(domain.StatusCheckedIn, domain.StatusCheckedOut)
	require.NotNil(t, status)
	assert.Equal(t, domain.RoomStatusAvailable, *status)

	// Остальные переходы номер не трогают, включая отмену
	assert.Nil(t, domain.RoomStatusAfterTransition(domain.StatusPending, domain.StatusConfirmed))
	assert.Nil(t, domain.RoomStatusAfterTransition(domain.StatusPending, domain.StatusCancelled))
	assert.Nil(t, domain.RoomStatusAfterTransition(domain.StatusConfirmed, domain.StatusCancelled))
}

func TestDateRangesOverlap(t *testing.T) {
	stayIn := date(2025, time.December, 15)
	stayOut := date(2025, time.December, 18)

	// Диапазон внутри проживания пересекается
	assert.True(t, domain.DateRangesOverlap(stayIn, stayOut,
		date(2025, time.December, 16), date(2025, time.December, 17)))

	// Заезд в день выезда не пересекается (полуоткрытые интервалы)
	assert.False(t, domain.DateRangesOverlap(stayIn, stayOut,
		date(2025, time.December, 18), date(2025, time.December, 20)))

	// Выезд в день заезда не пересекается
	assert.False(t, domain.DateRangesOverlap(stayIn, stayOut,
		date(2025, time.December, 12), date(2025, time.December, 15)))

	// Частичное пересечение с обеих сторон
	assert.True(t, domain.DateRangesOverlap(stayIn, stayOut,
		date(2025, time.December, 14), date(2025, time.December, 16)))
	assert.True(t, domain.DateRangesOverlap(stayIn, stayOut,
		date(2025, time.December, 17), date(2025, time.December, 19)))

	// Полное покрытие
	assert.True(t, domain.DateRangesOverlap(stayIn, stayOut,
		date(2025, time.December, 10), date(2025, time.December, 25)))
}

func TestBooking_OverlapsRange(t *testing.T) {
	booking := &domain.Booking{
		CheckInDate:  date(2025, time.December, 15),
		CheckOutDate: date(2025, time.December, 18),
	}

	assert.True(t, booking.OverlapsRange(date(2025, time.December, 16), date(2025, time.December, 17)))
	assert.False(t, booking.OverlapsRange(date(2025, time.December, 18), date(2025, time.December, 20)))
}

func TestBooking_Nights(t *testing.T) {
	booking := &domain.Booking{
		CheckInDate:  date(2025, time.December, 15),
		CheckOutDate: date(2025, time.December, 18),
	}

	assert.Equal(t, 3, booking.Nights())
}

func TestBooking_IsActive(t *testing.T) {
	for _, status := range domain.ActiveStatuses {
		booking := &domain.Booking{Status: status}
		assert.True(t, booking.IsActive(), "status %s", status)
	}
	for _, status := range domain.TerminalStatuses {
		booking := &domain.Booking{Status: status}
		assert.False(t, booking.IsActive(), "status %s", status)
	}
}

func TestRoomStatus_IsValid(t *testing.T) {
	for _, status := range domain.ValidRoomStatuses {
		assert.True(t, status.IsValid())
	}
	assert.False(t, domain.RoomStatus("suite").IsValid())
}

func TestRoom_IsBookable(t *testing.T) {
	assert.True(t, (&domain.Room{Status: domain.RoomStatusAvailable}).IsBookable())
	assert.False(t, (&domain.Room{Status: domain.RoomStatusOccupied}).IsBookable())
	assert.False(t, (&domain.Room{Status: domain.RoomStatusMaintenance}).IsBookable())
	assert.False(t, (&domain.Room{Status: domain.RoomStatusCleaning}).IsBookable())
}

func TestGuest_FullName(t *testing.T) {
	guest := &domain.Guest{FirstName: "John", LastName: "Smith"}
	assert.Equal(t, "John Smith", guest.FullName())

	noLast := &domain.Guest{FirstName: "Madonna"}
	assert.Equal(t, "Madonna", noLast.FullName())
}
