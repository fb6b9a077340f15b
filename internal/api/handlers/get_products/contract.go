package get_products

import (
	"context"

	"github.com/m04kA/SMC-HotelService/internal/service/pos/models"
)

type POSService interface {
	GetProducts(ctx context.Context, req *models.GetProductsRequest) (*models.ProductListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
