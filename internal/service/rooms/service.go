package rooms

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/internal/service/rooms/models"
)

// Service сервис для работы с номерами отеля
type Service struct {
	roomRepo RoomRepository
	logger   Logger
}

func NewService(roomRepo RoomRepository, logger Logger) *Service {
	return &Service{
		roomRepo: roomRepo,
		logger:   logger,
	}
}

// GetAll возвращает список номеров, отсортированный по номеру комнаты.
// Опционально фильтрует по статусу.
func (s *Service) GetAll(ctx context.Context, req *models.GetRoomsRequest) (*models.RoomListResponse, error) {
	var statusFilter *domain.RoomStatus
	if req != nil && req.Status != nil {
		status := domain.RoomStatus(*req.Status)
		if !status.IsValid() {
			s.logger.Warn("GetAll: invalid room status filter: %s", *req.Status)
			return nil, fmt.Errorf("%w: unknown room status %q", ErrInvalidInput, *req.Status)
		}
		statusFilter = &status
	}

	roomList, err := s.roomRepo.GetAll(ctx, statusFilter)
	if err != nil {
		s.logger.Error("GetAll: failed to fetch rooms: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return models.FromDomainRoomList(roomList), nil
}
