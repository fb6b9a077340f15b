package guests

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	guestrepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/guest"
	"github.com/m04kA/SMC-HotelService/internal/service/guests/models"
)

// Service сервис для работы с гостями
type Service struct {
	guestRepo GuestRepository
	logger    Logger
}

func NewService(guestRepo GuestRepository, logger Logger) *Service {
	return &Service{
		guestRepo: guestRepo,
		logger:    logger,
	}
}

// Create регистрирует нового гостя
func (s *Service) Create(ctx context.Context, req *models.CreateGuestRequest) (*models.GuestResponse, error) {
	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	guest := &domain.Guest{
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Email:     req.Email,
		Phone:     req.Phone,
	}

	created, err := s.guestRepo.Create(ctx, guest)
	if err != nil {
		s.logger.Error("Create: failed to create guest: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logger.Info("Create: guest created, id=%d", created.ID)
	return models.FromDomainGuest(created), nil
}

// GetByID возвращает гостя по идентификатору
func (s *Service) GetByID(ctx context.Context, id int64) (*models.GuestResponse, error) {
	guest, err := s.guestRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, guestrepo.ErrGuestNotFound) {
			s.logger.Warn("GetByID: guest %d not found", id)
			return nil, fmt.Errorf("%w: id %d", ErrGuestNotFound, id)
		}
		s.logger.Error("GetByID: failed to fetch guest %d: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return models.FromDomainGuest(guest), nil
}

// GetAll возвращает список гостей, отсортированный по имени
func (s *Service) GetAll(ctx context.Context) (*models.GuestListResponse, error) {
	guestList, err := s.guestRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("GetAll: failed to fetch guests: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return models.FromDomainGuestList(guestList), nil
}

func validateCreateRequest(req *models.CreateGuestRequest) error {
	if req == nil {
		return fmt.Errorf("%w: empty request", ErrInvalidInput)
	}
	if strings.TrimSpace(req.FirstName) == "" {
		return fmt.Errorf("%w: firstName is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.LastName) == "" {
		return fmt.Errorf("%w: lastName is required", ErrInvalidInput)
	}
	if req.Email != nil && !strings.Contains(*req.Email, "@") {
		return fmt.Errorf("%w: email is malformed", ErrInvalidInput)
	}
	return nil
}
