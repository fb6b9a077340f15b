package get_categories

import (
	"context"

	"github.com/m04kA/SMC-HotelService/internal/service/pos/models"
)

type POSService interface {
	GetCategories(ctx context.Context) (*models.CategoryListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
