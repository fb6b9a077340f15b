package checkout_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	bookingRepository "github.com/m04kA/SMC-HotelService/internal/infra/storage/booking"
	checkoutUseCase "github.com/m04kA/SMC-HotelService/internal/usecase/checkout"
	"github.com/m04kA/SMC-HotelService/pkg/ptr"
)

type fakeCartProvider struct {
	items  []domain.CartItem
	totals domain.CartTotals

	dropped []string
}

func (f *fakeCartProvider) CartSnapshot(_ string) ([]domain.CartItem, domain.CartTotals) {
	return f.items, f.totals
}

func (f *fakeCartProvider) DropCart(sessionID string) {
	f.dropped = append(f.dropped, sessionID)
}

type fakeBookingRepo struct {
	booking *domain.Booking

	sawTxCtx bool
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	if ctx.Value(txCtxKey{}) != nil {
		f.sawTxCtx = true
	}
	if f.booking == nil || f.booking.ID != id {
		return nil, bookingRepository.ErrBookingNotFound
	}
	return f.booking, nil
}

type fakeTransactionRepo struct {
	err error

	createCalls int
	got         *domain.Transaction
}

func (f *fakeTransactionRepo) Create(_ context.Context, t *domain.Transaction) (*domain.Transaction, error) {
	f.createCalls++
	if f.err != nil {
		return nil, f.err
	}
	f.got = t
	created := *t
	created.ID = 77
	created.CreatedAt = time.Now()
	return &created, nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// markingTxManager помечает контекст транзакции, чтобы проверить,
// какие обращения к репозиториям выполняются внутри неё
type txCtxKey struct{}

type markingTxManager struct{}

func (markingTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(context.WithValue(ctx, txCtxKey{}, struct{}{}))
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func filledCart() *fakeCartProvider {
	return &fakeCartProvider{
		items: []domain.CartItem{
			{ProductID: 1, Name: "Espresso", UnitPrice: 3.50, Quantity: 2},
			{ProductID: 2, Name: "Club Sandwich", UnitPrice: 12.00, Quantity: 1},
		},
		totals: domain.CartTotals{Subtotal: 19.00, Tax: 1.90, Total: 20.90},
	}
}

func TestCheckout_Success_Cash(t *testing.T) {
	carts := filledCart()
	transactionRepo := &fakeTransactionRepo{}
	uc := checkoutUseCase.NewUseCase(carts, &fakeBookingRepo{}, transactionRepo, fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &checkoutUseCase.Request{
		SessionID:     "terminal-1",
		PaymentMethod: "cash",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(77), resp.TransactionID)
	assert.Equal(t, 19.00, resp.Subtotal)
	assert.Equal(t, 1.90, resp.Tax)
	assert.Equal(t, 20.90, resp.Total)
	assert.Equal(t, "completed", resp.Status)
	assert.Nil(t, resp.GuestID)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "Espresso", resp.Items[0].ProductName)
	assert.Equal(t, 2, resp.Items[0].Quantity)

	// Корзина очищена после успешной записи
	assert.Equal(t, []string{"terminal-1"}, carts.dropped)
}

func TestCheckout_Success_RoomCharge(t *testing.T) {
	carts := filledCart()
	bookingRepo := &fakeBookingRepo{
		booking: &domain.Booking{ID: 5, GuestID: 3, Status: domain.StatusCheckedIn},
	}
	transactionRepo := &fakeTransactionRepo{}
	uc := checkoutUseCase.NewUseCase(carts, bookingRepo, transactionRepo, fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &checkoutUseCase.Request{
		SessionID:     "terminal-1",
		PaymentMethod: "room_charge",
		BookingID:     ptr.Ptr(int64(5)),
	})

	require.NoError(t, err)
	require.NotNil(t, resp.GuestID)
	assert.Equal(t, int64(3), *resp.GuestID)
	require.NotNil(t, resp.BookingID)
	assert.Equal(t, int64(5), *resp.BookingID)
}

func TestCheckout_Fail_EmptyCart(t *testing.T) {
	carts := &fakeCartProvider{}
	transactionRepo := &fakeTransactionRepo{}
	uc := checkoutUseCase.NewUseCase(carts, &fakeBookingRepo{}, transactionRepo, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &checkoutUseCase.Request{
		SessionID:     "terminal-1",
		PaymentMethod: "cash",
	})

	assert.ErrorIs(t, err, checkoutUseCase.ErrEmptyCart)
	assert.Zero(t, transactionRepo.createCalls)
	assert.Empty(t, carts.dropped)
}

func TestCheckout_Fail_PersistenceKeepsCart(t *testing.T) {
	carts := filledCart()
	transactionRepo := &fakeTransactionRepo{err: errors.New("deadlock detected")}
	uc := checkoutUseCase.NewUseCase(carts, &fakeBookingRepo{}, transactionRepo, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &checkoutUseCase.Request{
		SessionID:     "terminal-1",
		PaymentMethod: "card",
	})

	assert.ErrorIs(t, err, checkoutUseCase.ErrTransactionFailed)
	// Корзина не очищается при сбое записи
	assert.Empty(t, carts.dropped)
}

func TestCheckout_Fail_RoomChargeWithoutBooking(t *testing.T) {
	uc := checkoutUseCase.NewUseCase(filledCart(), &fakeBookingRepo{}, &fakeTransactionRepo{}, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &checkoutUseCase.Request{
		SessionID:     "terminal-1",
		PaymentMethod: "room_charge",
	})

	assert.ErrorIs(t, err, checkoutUseCase.ErrBookingRequired)
}

func TestCheckout_Fail_BookingNotFound(t *testing.T) {
	uc := checkoutUseCase.NewUseCase(filledCart(), &fakeBookingRepo{}, &fakeTransactionRepo{}, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &checkoutUseCase.Request{
		SessionID:     "terminal-1",
		PaymentMethod: "room_charge",
		BookingID:     ptr.Ptr(int64(99)),
	})

	assert.ErrorIs(t, err, checkoutUseCase.ErrBookingNotFound)
}

func TestCheckout_Fail_BookingNotActive(t *testing.T) {
	carts := filledCart()
	bookingRepo := &fakeBookingRepo{
		booking: &domain.Booking{ID: 5, GuestID: 3, Status: domain.StatusCheckedOut},
	}
	transactionRepo := &fakeTransactionRepo{}
	uc := checkoutUseCase.NewUseCase(carts, bookingRepo, transactionRepo, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &checkoutUseCase.Request{
		SessionID:     "terminal-1",
		PaymentMethod: "room_charge",
		BookingID:     ptr.Ptr(int64(5)),
	})

	assert.ErrorIs(t, err, checkoutUseCase.ErrBookingNotActive)
	assert.Zero(t, transactionRepo.createCalls)
	assert.Empty(t, carts.dropped)
}

func TestCheckout_RoomCharge_BookingCheckedInsideTransaction(t *testing.T) {
	carts := filledCart()
	bookingRepo := &fakeBookingRepo{
		booking: &domain.Booking{ID: 5, GuestID: 3, Status: domain.StatusCheckedIn},
	}
	uc := checkoutUseCase.NewUseCase(carts, bookingRepo, &fakeTransactionRepo{}, markingTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &checkoutUseCase.Request{
		SessionID:     "terminal-1",
		PaymentMethod: "room_charge",
		BookingID:     ptr.Ptr(int64(5)),
	})

	require.NoError(t, err)
	// Статус бронирования перечитывается в той же транзакции, что и запись
	// чека: выселенное между проверкой и записью бронирование не спишется
	assert.True(t, bookingRepo.sawTxCtx)
}

func TestCheckout_Fail_UnknownPaymentMethod(t *testing.T) {
	uc := checkoutUseCase.NewUseCase(filledCart(), &fakeBookingRepo{}, &fakeTransactionRepo{}, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &checkoutUseCase.Request{
		SessionID:     "terminal-1",
		PaymentMethod: "crypto",
	})

	assert.ErrorIs(t, err, checkoutUseCase.ErrInvalidInput)
}

func TestCheckout_SnapshotsCartLines(t *testing.T) {
	carts := filledCart()
	transactionRepo := &fakeTransactionRepo{}
	uc := checkoutUseCase.NewUseCase(carts, &fakeBookingRepo{}, transactionRepo, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &checkoutUseCase.Request{
		SessionID:     "terminal-1",
		PaymentMethod: "cash",
	})

	require.NoError(t, err)
	require.NotNil(t, transactionRepo.got)
	require.Len(t, transactionRepo.got.Items, 2)
	assert.Equal(t, "Espresso", transactionRepo.got.Items[0].ProductName)
	assert.Equal(t, 3.50, transactionRepo.got.Items[0].UnitPrice)
	assert.Equal(t, domain.PaymentCash, transactionRepo.got.PaymentMethod)
	assert.Equal(t, domain.TransactionCompleted, transactionRepo.got.Status)
}
