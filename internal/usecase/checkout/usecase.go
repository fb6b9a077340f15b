package checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-HotelService/pkg/ptr"
)

// UseCase use case оплаты корзины терминала
type UseCase struct {
	carts           CartProvider
	bookingRepo     BookingRepository
	transactionRepo TransactionRepository
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	carts CartProvider,
	bookingRepo BookingRepository,
	transactionRepo TransactionRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		carts:           carts,
		bookingRepo:     bookingRepo,
		transactionRepo: transactionRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет оплату корзины.
// Чек фиксирует снимок корзины: названия и цены строк копируются в чек
// и не зависят от последующих изменений каталога. Чек и его строки
// пишутся в одной транзакции. Корзина очищается только после успешной
// записи: при любой ошибке она остается нетронутой.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	method, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("Checkout: validation failed: %v", err)
		return nil, err
	}

	// 2. Снимок корзины
	items, totals := uc.carts.CartSnapshot(req.SessionID)
	if len(items) == 0 {
		uc.logger.Warn("Checkout: cart is empty, session=%s", req.SessionID)
		return nil, ErrEmptyCart
	}

	uc.logger.Info("Checkout: session=%s, method=%s, items=%d, total=%.2f",
		req.SessionID, method, len(items), totals.Total)

	// 3. Собираем чек из снимка корзины
	transaction := &domain.Transaction{
		Subtotal:      totals.Subtotal,
		Tax:           totals.Tax,
		Total:         totals.Total,
		PaymentMethod: method,
		Status:        domain.TransactionCompleted,
		Items:         make([]domain.TransactionItem, 0, len(items)),
	}
	for _, item := range items {
		transaction.Items = append(transaction.Items, domain.TransactionItem{
			ProductID:   item.ProductID,
			ProductName: item.Name,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}

	// 4. Проверка бронирования для room charge и запись чека идут в одной
	// транзакции: бронирование блокируется FOR UPDATE, выселение между
	// проверкой и записью невозможно
	var created *domain.Transaction
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		if method.RequiresBooking() {
			booking, err := uc.bookingRepo.GetByID(txCtx, *req.BookingID)
			if err != nil {
				if errors.Is(err, bookingRepo.ErrBookingNotFound) {
					return ErrBookingNotFound
				}
				return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
			}
			if !booking.IsActive() {
				return fmt.Errorf("%w: status %s", ErrBookingNotActive, booking.Status)
			}
			transaction.GuestID = ptr.Ptr(booking.GuestID)
			transaction.BookingID = ptr.Ptr(booking.ID)
		}

		result, err := uc.transactionRepo.Create(txCtx, transaction)
		if err != nil {
			return err
		}
		created = result
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound):
			uc.logger.Warn("Checkout: booking id=%d not found", *req.BookingID)
			return nil, err
		case errors.Is(err, ErrBookingNotActive):
			uc.logger.Warn("Checkout: booking id=%d is not active: %v", *req.BookingID, err)
			return nil, err
		case errors.Is(err, ErrInternal):
			uc.logger.Error("Checkout: booking lookup failed: %v", err)
			return nil, err
		}
		uc.logger.Error("Checkout: failed to create transaction: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrTransactionFailed, err)
	}

	// 5. Очищаем корзину только после успешной записи
	uc.carts.DropCart(req.SessionID)

	uc.logger.Info("Checkout: transaction id=%d recorded, total=%.2f", created.ID, created.Total)

	resp := &Response{
		TransactionID: created.ID,
		Subtotal:      created.Subtotal,
		Tax:           created.Tax,
		Total:         created.Total,
		PaymentMethod: string(created.PaymentMethod),
		Status:        string(created.Status),
		GuestID:       created.GuestID,
		BookingID:     created.BookingID,
		Items:         make([]Item, 0, len(created.Items)),
		CreatedAt:     created.CreatedAt,
	}
	for _, item := range created.Items {
		resp.Items = append(resp.Items, Item{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}
	return resp, nil
}
