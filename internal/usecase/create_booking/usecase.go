package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	guestRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/guest"
	roomRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/room"
	"github.com/m04kA/SMC-HotelService/pkg/ptr"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	guestRepo    GuestRepository
	roomRepo     RoomRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	numberGen    NumberGenerator
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	guestRepo GuestRepository,
	roomRepo RoomRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		guestRepo:    guestRepo,
		roomRepo:     roomRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		numberGen:    &RandomNumberGenerator{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Использует сериализуемую транзакцию для предотвращения гонки данных:
// два одновременных запроса на один номер и пересекающиеся даты не могут
// оба получить пустой список пересечений
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateBooking: guest=%d, room=%d, checkIn=%s, checkOut=%s, guests=%d",
		req.GuestID, req.RoomID,
		req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat), req.NumGuests)

	// 2. Проверяем существование гостя
	if _, err := uc.guestRepo.GetByID(ctx, req.GuestID); err != nil {
		if errors.Is(err, guestRepo.ErrGuestNotFound) {
			uc.logger.Warn("CreateBooking: guest id=%d not found", req.GuestID)
			return nil, ErrGuestNotFound
		}
		uc.logger.Error("CreateBooking: failed to get guest id=%d: %v", req.GuestID, err)
		return nil, fmt.Errorf("%w: failed to get guest: %v", ErrInternal, err)
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 3. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Получаем номер с блокировкой (FOR UPDATE)
		room, err := uc.roomRepo.GetByID(txCtx, req.RoomID)
		if err != nil {
			if errors.Is(err, roomRepo.ErrRoomNotFound) {
				uc.logger.Warn("CreateBooking: room id=%d not found", req.RoomID)
				return ErrRoomNotFound
			}
			uc.logger.Error("CreateBooking: failed to get room id=%d: %v", req.RoomID, err)
			return fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
		}

		// 3.2. Номер в maintenance или cleaning не продается
		if !room.IsBookable() {
			uc.logger.Warn("CreateBooking: room id=%d is not bookable, status=%s", room.ID, room.Status)
			return ErrRoomNotBookable
		}

		// 3.3. Перечитываем пересекающиеся бронирования с блокировкой (FOR UPDATE)
		overlapping, err := uc.bookingRepo.GetOverlapping(txCtx, ptr.Ptr(req.RoomID), req.CheckIn, req.CheckOut)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get overlapping bookings: %v", err)
			return fmt.Errorf("%w: failed to get overlapping bookings: %v", ErrInternal, err)
		}
		if len(overlapping) > 0 {
			uc.logger.Warn("CreateBooking: room id=%d has %d overlapping bookings", req.RoomID, len(overlapping))
			return ErrRoomNotAvailable
		}

		// 3.4. Создаем бронирование в статусе pending
		now := uc.timeProvider.Now()
		booking := &domain.Booking{
			BookingNumber: uc.numberGen.Generate(now),
			GuestID:       req.GuestID,
			RoomID:        req.RoomID,
			CheckInDate:   req.CheckIn,
			CheckOutDate:  req.CheckOut,
			NumGuests:     req.NumGuests,
			TotalAmount:   req.TotalAmount,
			Status:        domain.StatusPending,
			Notes:         req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, number=%s", result.ID, result.BookingNumber)

	return &Response{
		ID:            result.ID,
		BookingNumber: result.BookingNumber,
		GuestID:       result.GuestID,
		RoomID:        result.RoomID,
		CheckIn:       result.CheckInDate,
		CheckOut:      result.CheckOutDate,
		Nights:        result.Nights(),
		NumGuests:     result.NumGuests,
		TotalAmount:   result.TotalAmount,
		Status:        string(result.Status),
		Notes:         result.Notes,
		CreatedAt:     result.CreatedAt,
	}, nil
}
