package update_booking_status

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/booking"
)

// UseCase use case для перевода бронирования по жизненному циклу
type UseCase struct {
	bookingRepo BookingRepository
	roomRepo    RoomRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет переход статуса бронирования.
// Допустимость перехода проверяется по таблице жизненного цикла до любой
// записи в БД. Статус бронирования и сопутствующий статус номера
// (заселение занимает номер, выселение освобождает) пишутся в одной
// сериализуемой транзакции: либо меняются оба, либо ни один.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	target, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("UpdateBookingStatus: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("UpdateBookingStatus: booking=%d, target=%s", req.BookingID, target)

	var resp *Response

	// 2. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем бронирование с блокировкой (FOR UPDATE)
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("UpdateBookingStatus: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateBookingStatus: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// 2.2. Проверяем переход по таблице до записи
		if !booking.Status.CanTransitionTo(target) {
			uc.logger.Warn("UpdateBookingStatus: transition %s -> %s is not allowed, booking id=%d",
				booking.Status, target, booking.ID)
			return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, booking.Status, target)
		}

		// 2.3. Пишем новый статус бронирования
		if err := uc.bookingRepo.UpdateStatus(txCtx, booking.ID, target); err != nil {
			uc.logger.Error("UpdateBookingStatus: failed to update booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: %v", ErrUpdateFailed, err)
		}

		// 2.4. Пишем сопутствующий статус номера, если переход его меняет
		roomStatus := domain.RoomStatusAfterTransition(booking.Status, target)
		if roomStatus != nil {
			if err := uc.roomRepo.UpdateStatus(txCtx, booking.RoomID, *roomStatus); err != nil {
				uc.logger.Error("UpdateBookingStatus: failed to update room id=%d: %v", booking.RoomID, err)
				return fmt.Errorf("%w: %v", ErrUpdateFailed, err)
			}
		}

		resp = buildResponse(booking, target, roomStatus)
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateBookingStatus: booking id=%d moved %s -> %s",
		resp.BookingID, resp.PrevStatus, resp.Status)
	return resp, nil
}

func buildResponse(booking *domain.Booking, target domain.BookingStatus, roomStatus *domain.RoomStatus) *Response {
	resp := &Response{
		BookingID:     booking.ID,
		BookingNumber: booking.BookingNumber,
		PrevStatus:    string(booking.Status),
		Status:        string(target),
		RoomID:        booking.RoomID,
		NextActions:   make([]Action, 0, 2),
	}
	if roomStatus != nil {
		status := string(*roomStatus)
		resp.RoomStatus = &status
	}
	for _, next := range target.NextStatuses() {
		resp.NextActions = append(resp.NextActions, Action{
			Status:      string(next),
			Destructive: next.IsDestructive(),
		})
	}
	return resp
}
