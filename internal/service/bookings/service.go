package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-HotelService/internal/service/bookings/models"
)

// Service сервис чтения бронирований для дашборда
// Списки обогащаются гостями и номерами отдельными выборками,
// без JOIN'ов - репозитории остаются односущностными
type Service struct {
	bookingRepo BookingRepository
	guestRepo   GuestRepository
	roomRepo    RoomRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	guestRepo GuestRepository,
	roomRepo RoomRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		guestRepo:   guestRepo,
		roomRepo:    roomRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID с данными гостя и номера
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	guests, rooms, err := s.loadRelations(ctx, []*domain.Booking{booking})
	if err != nil {
		return nil, err
	}

	return models.FromDomainBooking(booking, guests[booking.GuestID], rooms[booking.RoomID]), nil
}

// GetAll получает бронирования с опциональным фильтром по статусу
// Сортировка по времени создания, новые первыми
func (s *Service) GetAll(ctx context.Context, req *models.GetBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetAll: fetching bookings, status=%v", req.Status)

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetAll: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	list, err := s.bookingRepo.GetAll(ctx, domainStatus)
	if err != nil {
		s.logger.Error("GetAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAll - repository error: %v", ErrInternal, err)
	}

	guests, rooms, err := s.loadRelations(ctx, list)
	if err != nil {
		return nil, err
	}

	resp := &models.BookingListResponse{
		Bookings: make([]models.BookingResponse, 0, len(list)),
	}
	for _, b := range list {
		resp.Bookings = append(resp.Bookings, *models.FromDomainBooking(b, guests[b.GuestID], rooms[b.RoomID]))
	}

	s.logger.Info("GetAll: successfully fetched %d bookings", len(list))
	return resp, nil
}

// loadRelations загружает гостей и номера для набора бронирований
func (s *Service) loadRelations(ctx context.Context, list []*domain.Booking) (map[int64]*domain.Guest, map[int64]*domain.Room, error) {
	guestIDs := make([]int64, 0, len(list))
	roomIDs := make([]int64, 0, len(list))
	seenGuests := make(map[int64]bool)
	seenRooms := make(map[int64]bool)

	for _, b := range list {
		if !seenGuests[b.GuestID] {
			seenGuests[b.GuestID] = true
			guestIDs = append(guestIDs, b.GuestID)
		}
		if !seenRooms[b.RoomID] {
			seenRooms[b.RoomID] = true
			roomIDs = append(roomIDs, b.RoomID)
		}
	}

	guestList, err := s.guestRepo.GetByIDs(ctx, guestIDs)
	if err != nil {
		s.logger.Error("loadRelations: failed to load guests: %v", err)
		return nil, nil, fmt.Errorf("%w: loadRelations - guests: %v", ErrInternal, err)
	}

	roomList, err := s.roomRepo.GetByIDs(ctx, roomIDs)
	if err != nil {
		s.logger.Error("loadRelations: failed to load rooms: %v", err)
		return nil, nil, fmt.Errorf("%w: loadRelations - rooms: %v", ErrInternal, err)
	}

	guests := make(map[int64]*domain.Guest, len(guestList))
	for _, g := range guestList {
		guests[g.ID] = g
	}
	rooms := make(map[int64]*domain.Room, len(roomList))
	for _, r := range roomList {
		rooms[r.ID] = r
	}

	return guests, rooms, nil
}
