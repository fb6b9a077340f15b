package guest

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HotelService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с гостями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория гостей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает нового гостя
func (r *Repository) Create(ctx context.Context, guest *domain.Guest) (*domain.Guest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("guests").
		Columns(
			"first_name",
			"last_name",
			"email",
			"phone",
		).
		Values(
			guest.FirstName,
			guest.LastName,
			guest.Email,
			guest.Phone,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&guest.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	guest.CreatedAt = createdAt.Time
	guest.UpdatedAt = updatedAt.Time

	return guest, nil
}

// GetByID получает гостя по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Guest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"first_name",
		"last_name",
		"email",
		"phone",
		"created_at",
		"updated_at",
	).
		From("guests").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var guest domain.Guest
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&guest.ID,
		&guest.FirstName,
		&guest.LastName,
		&guest.Email,
		&guest.Phone,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrGuestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan guest: %v", ErrScanRow, err)
	}

	guest.CreatedAt = createdAt.Time
	guest.UpdatedAt = updatedAt.Time

	return &guest, nil
}

// GetAll получает всех гостей со стабильной сортировкой по имени
func (r *Repository) GetAll(ctx context.Context) ([]*domain.Guest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"first_name",
		"last_name",
		"email",
		"phone",
		"created_at",
		"updated_at",
	).
		From("guests").
		OrderBy("first_name ASC, last_name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanGuests(rows)
}

// GetByIDs получает гостей по списку ID (для обогащения списков бронирований)
func (r *Repository) GetByIDs(ctx context.Context, ids []int64) ([]*domain.Guest, error) {
	if len(ids) == 0 {
		return []*domain.Guest{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"first_name",
		"last_name",
		"email",
		"phone",
		"created_at",
		"updated_at",
	).
		From("guests").
		Where(squirrel.Eq{"id": ids}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanGuests(rows)
}

// scanGuests сканирует результаты запроса в слайс гостей
func (r *Repository) scanGuests(rows *sql.Rows) ([]*domain.Guest, error) {
	guests := make([]*domain.Guest, 0)

	for rows.Next() {
		var guest domain.Guest
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&guest.ID,
			&guest.FirstName,
			&guest.LastName,
			&guest.Email,
			&guest.Phone,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanGuests - scan row: %v", ErrScanRow, err)
		}

		guest.CreatedAt = createdAt.Time
		guest.UpdatedAt = updatedAt.Time

		guests = append(guests, &guest)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanGuests - rows error: %v", ErrScanRow, err)
	}

	return guests, nil
}
