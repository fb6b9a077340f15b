package get_available_rooms

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/pkg/ptr"
)

// UseCase use case подбора свободных номеров на диапазон дат
type UseCase struct {
	roomRepo    RoomRepository
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(roomRepo RoomRepository, bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		roomRepo:    roomRepo,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute выполняет подбор свободных номеров.
// Номер свободен, если он в статусе available и на него нет
// неотмененных бронирований, пересекающих запрошенный диапазон.
// Диапазоны полуоткрытые: день выезда одного бронирования может
// быть днем заезда другого.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация диапазона дат
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableRooms: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("GetAvailableRooms: checkIn=%s, checkOut=%s",
		req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat))

	// 2. Получаем номера в статусе available
	available, err := uc.roomRepo.GetAll(ctx, ptr.Ptr(domain.RoomStatusAvailable))
	if err != nil {
		uc.logger.Error("GetAvailableRooms: failed to get rooms: %v", err)
		return nil, fmt.Errorf("%w: failed to get rooms: %v", ErrInternal, err)
	}

	// 3. Получаем все бронирования, пересекающие диапазон
	overlapping, err := uc.bookingRepo.GetOverlapping(ctx, nil, req.CheckIn, req.CheckOut)
	if err != nil {
		uc.logger.Error("GetAvailableRooms: failed to get overlapping bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get overlapping bookings: %v", ErrInternal, err)
	}

	// 4. Исключаем занятые номера
	occupied := make(map[int64]struct{}, len(overlapping))
	for _, b := range overlapping {
		occupied[b.RoomID] = struct{}{}
	}

	resp := &Response{
		CheckIn:  req.CheckIn,
		CheckOut: req.CheckOut,
		Nights:   int(req.CheckOut.Sub(req.CheckIn).Hours() / 24),
		Rooms:    make([]Room, 0, len(available)),
	}
	for _, r := range available {
		if _, taken := occupied[r.ID]; taken {
			continue
		}
		resp.Rooms = append(resp.Rooms, Room{
			ID:         r.ID,
			RoomNumber: r.RoomNumber,
			RoomType:   r.RoomType,
			Floor:      r.Floor,
		})
	}

	uc.logger.Info("GetAvailableRooms: %d of %d rooms available", len(resp.Rooms), len(available))
	return resp, nil
}
