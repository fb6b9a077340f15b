package product

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HotelService/pkg/psqlbuilder"
)

// Repository репозиторий каталога товаров POS
// Каталог read-only с точки зрения ядра - управление ассортиментом вне сервиса
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetCategories получает категории каталога в порядке отображения
func (r *Repository) GetCategories(ctx context.Context) ([]*domain.ProductCategory, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"sort_order",
	).
		From("product_categories").
		OrderBy("sort_order ASC, name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetCategories - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetCategories - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	categories := make([]*domain.ProductCategory, 0)
	for rows.Next() {
		var category domain.ProductCategory
		if err := rows.Scan(&category.ID, &category.Name, &category.SortOrder); err != nil {
			return nil, fmt.Errorf("%w: GetCategories - scan row: %v", ErrScanRow, err)
		}
		categories = append(categories, &category)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetCategories - rows error: %v", ErrScanRow, err)
	}

	return categories, nil
}

// GetProducts получает активные товары, опционально фильтруя по категории
func (r *Repository) GetProducts(ctx context.Context, categoryID *int64) ([]*domain.Product, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"category_id",
		"name",
		"price",
		"description",
		"active",
		"created_at",
	).
		From("products").
		Where(squirrel.Eq{"active": true}).
		OrderBy("name ASC")

	if categoryID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"category_id": *categoryID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetProducts - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetProducts - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	products := make([]*domain.Product, 0)
	for rows.Next() {
		product, err := r.scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetProducts - scan row: %v", ErrScanRow, err)
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetProducts - rows error: %v", ErrScanRow, err)
	}

	return products, nil
}

// GetByID получает товар по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"category_id",
		"name",
		"price",
		"description",
		"active",
		"created_at",
	).
		From("products").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var product domain.Product
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&product.ID,
		&product.CategoryID,
		&product.Name,
		&product.Price,
		&product.Description,
		&product.Active,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan product: %v", ErrScanRow, err)
	}

	product.CreatedAt = createdAt.Time

	return &product, nil
}

func (r *Repository) scanProduct(rows *sql.Rows) (*domain.Product, error) {
	var product domain.Product
	var createdAt sql.NullTime

	err := rows.Scan(
		&product.ID,
		&product.CategoryID,
		&product.Name,
		&product.Price,
		&product.Description,
		&product.Active,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	product.CreatedAt = createdAt.Time

	return &product, nil
}
