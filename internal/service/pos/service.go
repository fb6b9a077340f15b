package pos

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	productrepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/product"
	"github.com/m04kA/SMC-HotelService/internal/service/pos/models"
)

// Service сервис кассового терминала: каталог, корзины сессий
// и поиск активных бронирований для списания на номер
type Service struct {
	productRepo ProductRepository
	bookingRepo BookingRepository
	guestRepo   GuestRepository
	roomRepo    RoomRepository
	carts       *cartStore
	taxRate     float64
	logger      Logger
}

func NewService(
	productRepo ProductRepository,
	bookingRepo BookingRepository,
	guestRepo GuestRepository,
	roomRepo RoomRepository,
	taxRate float64,
	logger Logger,
) *Service {
	return &Service{
		productRepo: productRepo,
		bookingRepo: bookingRepo,
		guestRepo:   guestRepo,
		roomRepo:    roomRepo,
		carts:       newCartStore(),
		taxRate:     taxRate,
		logger:      logger,
	}
}

// TaxRate возвращает действующую налоговую ставку
func (s *Service) TaxRate() float64 {
	return s.taxRate
}

// GetCategories возвращает категории каталога в порядке сортировки
func (s *Service) GetCategories(ctx context.Context) (*models.CategoryListResponse, error) {
	categories, err := s.productRepo.GetCategories(ctx)
	if err != nil {
		s.logger.Error("GetCategories: failed to fetch categories: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	resp := &models.CategoryListResponse{
		Categories: make([]models.CategoryResponse, 0, len(categories)),
	}
	for _, c := range categories {
		if categoryResp := models.FromDomainCategory(c); categoryResp != nil {
			resp.Categories = append(resp.Categories, *categoryResp)
		}
	}
	return resp, nil
}

// GetProducts возвращает активные товары каталога,
// опционально отфильтрованные по категории
func (s *Service) GetProducts(ctx context.Context, req *models.GetProductsRequest) (*models.ProductListResponse, error) {
	var categoryID *int64
	if req != nil {
		categoryID = req.CategoryID
	}

	products, err := s.productRepo.GetProducts(ctx, categoryID)
	if err != nil {
		s.logger.Error("GetProducts: failed to fetch products: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	resp := &models.ProductListResponse{
		Products: make([]models.ProductResponse, 0, len(products)),
	}
	for _, p := range products {
		if productResp := models.FromDomainProduct(p); productResp != nil {
			resp.Products = append(resp.Products, *productResp)
		}
	}
	return resp, nil
}

// GetCart возвращает текущее состояние корзины сессии
func (s *Service) GetCart(sessionID string) (*models.CartResponse, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, fmt.Errorf("%w: session id is required", ErrInvalidInput)
	}
	return s.cartResponse(sessionID), nil
}

// AddToCart добавляет одну единицу товара в корзину сессии.
// Существующая строка инкрементируется, новая добавляется в конец.
func (s *Service) AddToCart(ctx context.Context, sessionID string, productID int64) (*models.CartResponse, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, fmt.Errorf("%w: session id is required", ErrInvalidInput)
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, productrepo.ErrProductNotFound) {
			s.logger.Warn("AddToCart: product %d not found", productID)
			return nil, fmt.Errorf("%w: id %d", ErrProductNotFound, productID)
		}
		s.logger.Error("AddToCart: failed to fetch product %d: %v", productID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	if !product.Active {
		s.logger.Warn("AddToCart: product %d is inactive", productID)
		return nil, fmt.Errorf("%w: id %d is inactive", ErrProductNotFound, productID)
	}

	s.carts.with(sessionID, func(cart *domain.Cart) {
		cart.AddProduct(product)
	})
	return s.cartResponse(sessionID), nil
}

// UpdateCartItem изменяет количество строки на delta.
// Итоговое количество <= 0 удаляет строку из корзины.
func (s *Service) UpdateCartItem(sessionID string, productID int64, delta int) (*models.CartResponse, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, fmt.Errorf("%w: session id is required", ErrInvalidInput)
	}
	if delta == 0 {
		return nil, fmt.Errorf("%w: delta must be non-zero", ErrInvalidInput)
	}

	var found bool
	s.carts.with(sessionID, func(cart *domain.Cart) {
		found = cart.UpdateQuantity(productID, delta)
	})
	if !found {
		s.logger.Warn("UpdateCartItem: product %d not in cart, session=%s", productID, sessionID)
		return nil, fmt.Errorf("%w: product %d", ErrItemNotInCart, productID)
	}
	return s.cartResponse(sessionID), nil
}

// RemoveCartItem удаляет строку из корзины независимо от количества
func (s *Service) RemoveCartItem(sessionID string, productID int64) (*models.CartResponse, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, fmt.Errorf("%w: session id is required", ErrInvalidInput)
	}

	var found bool
	s.carts.with(sessionID, func(cart *domain.Cart) {
		found = cart.RemoveItem(productID)
	})
	if !found {
		s.logger.Warn("RemoveCartItem: product %d not in cart, session=%s", productID, sessionID)
		return nil, fmt.Errorf("%w: product %d", ErrItemNotInCart, productID)
	}
	return s.cartResponse(sessionID), nil
}

// ClearCart очищает корзину сессии
func (s *Service) ClearCart(sessionID string) (*models.CartResponse, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, fmt.Errorf("%w: session id is required", ErrInvalidInput)
	}

	s.carts.drop(sessionID)
	return s.cartResponse(sessionID), nil
}

// CartSnapshot возвращает строки и итоги корзины на текущий момент.
// Используется расчётом чека, который фиксирует снимок корзины.
func (s *Service) CartSnapshot(sessionID string) ([]domain.CartItem, domain.CartTotals) {
	var items []domain.CartItem
	var totals domain.CartTotals
	s.carts.with(sessionID, func(cart *domain.Cart) {
		items = cart.Items()
		totals = cart.Totals(s.taxRate)
	})
	return items, totals
}

// DropCart удаляет корзину после успешной оплаты
func (s *Service) DropCart(sessionID string) {
	s.carts.drop(sessionID)
}

// SearchChargeTargets ищет активные бронирования по подстроке имени гостя
// или номера комнаты. Регистр не учитывается. Пустой запрос возвращает все
// активные бронирования. TotalActive в ответе заполняется всегда, даже если
// совпадений нет.
func (s *Service) SearchChargeTargets(ctx context.Context, query string) (*models.SearchChargeTargetsResponse, error) {
	query = strings.ToLower(strings.TrimSpace(query))

	active, err := s.bookingRepo.GetActive(ctx)
	if err != nil {
		s.logger.Error("SearchChargeTargets: failed to fetch active bookings: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	guestByID, roomByID, err := s.loadRelations(ctx, active)
	if err != nil {
		s.logger.Error("SearchChargeTargets: failed to load relations: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	resp := &models.SearchChargeTargetsResponse{
		Matches:     make([]models.ChargeTargetResponse, 0),
		TotalActive: len(active),
	}
	for _, b := range active {
		guest := guestByID[b.GuestID]
		room := roomByID[b.RoomID]
		if guest == nil || room == nil {
			s.logger.Warn("SearchChargeTargets: booking %d has missing relations", b.ID)
			continue
		}
		if !strings.Contains(strings.ToLower(guest.FullName()), query) &&
			!strings.Contains(strings.ToLower(room.RoomNumber), query) {
			continue
		}
		resp.Matches = append(resp.Matches, models.ChargeTargetResponse{
			BookingID:     b.ID,
			BookingNumber: b.BookingNumber,
			GuestID:       guest.ID,
			GuestName:     guest.FullName(),
			RoomID:        room.ID,
			RoomNumber:    room.RoomNumber,
			CheckInDate:   b.CheckInDate,
			CheckOutDate:  b.CheckOutDate,
			Status:        string(b.Status),
		})
	}
	return resp, nil
}

func (s *Service) cartResponse(sessionID string) *models.CartResponse {
	var items []domain.CartItem
	var totals domain.CartTotals
	s.carts.with(sessionID, func(cart *domain.Cart) {
		items = cart.Items()
		totals = cart.Totals(s.taxRate)
	})
	return models.FromDomainCart(items, totals)
}

func (s *Service) loadRelations(ctx context.Context, bookings []*domain.Booking) (map[int64]*domain.Guest, map[int64]*domain.Room, error) {
	guestIDs := make([]int64, 0, len(bookings))
	roomIDs := make([]int64, 0, len(bookings))
	seenGuests := make(map[int64]struct{}, len(bookings))
	seenRooms := make(map[int64]struct{}, len(bookings))
	for _, b := range bookings {
		if _, ok := seenGuests[b.GuestID]; !ok {
			seenGuests[b.GuestID] = struct{}{}
			guestIDs = append(guestIDs, b.GuestID)
		}
		if _, ok := seenRooms[b.RoomID]; !ok {
			seenRooms[b.RoomID] = struct{}{}
			roomIDs = append(roomIDs, b.RoomID)
		}
	}

	guestList, err := s.guestRepo.GetByIDs(ctx, guestIDs)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch guests: %w", err)
	}
	roomList, err := s.roomRepo.GetByIDs(ctx, roomIDs)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch rooms: %w", err)
	}

	guestByID := make(map[int64]*domain.Guest, len(guestList))
	for _, g := range guestList {
		guestByID[g.ID] = g
	}
	roomByID := make(map[int64]*domain.Room, len(roomList))
	for _, r := range roomList {
		roomByID[r.ID] = r
	}
	return guestByID, roomByID, nil
}
