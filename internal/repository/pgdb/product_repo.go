package pgdb

import (
	"context"
	"errors"

	"github.com/easy-order/go-backend/internal/domain"
	"github.com/easy-order/go-backend/internal/repository/pgdb/converter"
	"github.com/easy-order/go-backend/pkg/e"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// ProductRepo реализует репозиторий продуктов поверх PostgreSQL.
type ProductRepo struct {
	pool *pgxpool.Pool
	conv converter.ProductConverter
}

func NewProductRepo(pool *pgxpool.Pool, conv converter.ProductConverter) *ProductRepo {
	return &ProductRepo{
		pool: pool,
		conv: conv,
	}
}

const productColumns = `id, name, price, category, is_available, is_deleted, image_key, created_at, updated_at`

func scanProduct(row pgx.Row) (*converter.ProductModel, error) {
	var model converter.ProductModel
	err := row.Scan(
		&model.ID, &model.Name, &model.Price, &model.Category,
		&model.IsAvailable, &model.IsDeleted, &model.ImageKey,
		&model.CreatedAt, &model.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &model, nil
}

// Create сохраняет новый продукт каталога.
func (p *ProductRepo) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	query := `
		INSERT INTO products (id, name, price, category, is_available)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + productColumns + `;
	`

	model, err := scanProduct(p.pool.QueryRow(ctx, query,
		product.ID, product.Name, product.Price, string(product.Category), product.IsAvailable,
	))
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(model), nil
}

// GetByID возвращает продукт по идентификатору, включая удалённые.
// Фильтрация удалённых остаётся за вызывающим слоем.
func (p *ProductRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1;`

	model, err := scanProduct(p.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(model), nil
}

// ListAll возвращает все неудалённые продукты каталога.
func (p *ProductRepo) ListAll(ctx context.Context) ([]*domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE is_deleted = FALSE
		ORDER BY created_at, name;
	`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	models := make([]*converter.ProductModel, 0)
	for rows.Next() {
		model, err := scanProduct(rows)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		models = append(models, model)
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToArrEntity(models), nil
}

// Update перезаписывает изменяемые поля продукта.
func (p *ProductRepo) Update(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	query := `
		UPDATE products
		SET name = $2, price = $3, category = $4, is_available = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + productColumns + `;
	`

	model, err := scanProduct(p.pool.QueryRow(ctx, query,
		product.ID, product.Name, product.Price, string(product.Category), product.IsAvailable,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(model), nil
}

// SoftDelete помечает продукт удалённым, строка остаётся в БД.
// Удалённый продукт также снимается с продажи.
func (p *ProductRepo) SoftDelete(ctx context.Context, id string) error {
	query := `
		UPDATE products
		SET is_deleted = TRUE, is_available = FALSE, updated_at = NOW()
		WHERE id = $1 AND is_deleted = FALSE;
	`

	result, err := p.pool.Exec(ctx, query, id)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if result.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
	}

	return nil
}

// SetImageKey запоминает ключ объекта с изображением продукта.
func (p *ProductRepo) SetImageKey(ctx context.Context, id, key string) error {
	query := `
		UPDATE products
		SET image_key = $2, updated_at = NOW()
		WHERE id = $1;
	`

	result, err := p.pool.Exec(ctx, query, id, key)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if result.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
	}

	return nil
}
