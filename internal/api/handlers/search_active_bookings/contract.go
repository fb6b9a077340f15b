package search_active_bookings

import (
	"context"

	"github.com/m04kA/SMC-HotelService/internal/service/pos/models"
)

type POSService interface {
	SearchChargeTargets(ctx context.Context, query string) (*models.SearchChargeTargetsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
