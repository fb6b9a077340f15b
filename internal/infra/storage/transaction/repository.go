package transaction

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HotelService/pkg/psqlbuilder"
)

// Repository репозиторий POS-транзакций
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория транзакций
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает транзакцию вместе с её позициями
// Вызывается только внутри транзакции БД (через transaction manager) -
// чек и его позиции записываются как одно целое, частичная запись недопустима
func (r *Repository) Create(ctx context.Context, t *domain.Transaction) (*domain.Transaction, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("transactions").
		Columns(
			"subtotal",
			"tax",
			"total",
			"payment_method",
			"status",
			"guest_id",
			"booking_id",
		).
		Values(
			t.Subtotal,
			t.Tax,
			t.Total,
			t.PaymentMethod,
			t.Status,
			t.GuestID,
			t.BookingID,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&t.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	t.CreatedAt = createdAt.Time

	for i := range t.Items {
		t.Items[i].TransactionID = t.ID

		itemQuery, itemArgs, err := psqlbuilder.Insert("transaction_items").
			Columns(
				"transaction_id",
				"product_id",
				"product_name",
				"quantity",
				"unit_price",
			).
			Values(
				t.Items[i].TransactionID,
				t.Items[i].ProductID,
				t.Items[i].ProductName,
				t.Items[i].Quantity,
				t.Items[i].UnitPrice,
			).
			Suffix("RETURNING id").
			ToSql()

		if err != nil {
			return nil, fmt.Errorf("%w: Create - build item insert query: %v", ErrBuildQuery, err)
		}

		if err := executor.QueryRowContext(ctx, itemQuery, itemArgs...).Scan(&t.Items[i].ID); err != nil {
			return nil, fmt.Errorf("%w: Create - execute item insert: %v", ErrExecQuery, err)
		}
	}

	return t, nil
}
