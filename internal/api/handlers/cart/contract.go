package cart

import (
	"context"

	"github.com/m04kA/SMC-HotelService/internal/service/pos/models"
)

type POSService interface {
	GetCart(sessionID string) (*models.CartResponse, error)
	AddToCart(ctx context.Context, sessionID string, productID int64) (*models.CartResponse, error)
	UpdateCartItem(sessionID string, productID int64, delta int) (*models.CartResponse, error)
	RemoveCartItem(sessionID string, productID int64) (*models.CartResponse, error)
	ClearCart(sessionID string) (*models.CartResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
