package pgdb

import (
	"context"
	"errors"

	"github.com/easy-order/go-backend/internal/domain"
	"github.com/easy-order/go-backend/internal/repository/pgdb/converter"
	"github.com/easy-order/go-backend/pkg/e"
	"github.com/easy-order/go-backend/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// OrderRepo реализует репозиторий заказов поверх PostgreSQL.
// Позиции заказа хранятся в отдельной таблице order_items.
type OrderRepo struct {
	pool *pgxpool.Pool
	conv converter.OrderConverter
}

func NewOrderRepo(pool *pgxpool.Pool, conv converter.OrderConverter) *OrderRepo {
	return &OrderRepo{
		pool: pool,
		conv: conv,
	}
}

// Create сохраняет заказ и его позиции. Требует открытой транзакции в контексте.
func (o *OrderRepo) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO orders (id, status)
		VALUES ($1, $2)
		RETURNING id, status, created_at, updated_at;
	`

	var model converter.OrderModel
	err = tx.QueryRow(ctx, query, order.ID, string(order.Status)).
		Scan(&model.ID, &model.Status, &model.CreatedAt, &model.UpdatedAt)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	itemModels, err := insertItems(ctx, tx, order.ID, order.Items)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return o.conv.ToEntity(&model, itemModels), nil
}

// GetByID возвращает заказ вместе с позициями.
func (o *OrderRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	query := `SELECT id, status, created_at, updated_at FROM orders WHERE id = $1;`

	var model converter.OrderModel
	err := o.pool.QueryRow(ctx, query, id).
		Scan(&model.ID, &model.Status, &model.CreatedAt, &model.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrOrderNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	itemsQuery := `
		SELECT id, order_id, product_id, quantity, price
		FROM order_items
		WHERE order_id = $1
		ORDER BY id;
	`

	rows, err := o.pool.Query(ctx, itemsQuery, id)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	itemModels, err := scanItems(rows)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return o.conv.ToEntity(&model, itemModels), nil
}

// ListAll возвращает все заказы с позициями.
// Позиции дочитываются одним запросом и раскладываются по заказам в памяти.
func (o *OrderRepo) ListAll(ctx context.Context) ([]*domain.Order, error) {
	query := `SELECT id, status, created_at, updated_at FROM orders ORDER BY created_at;`

	rows, err := o.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	models := make([]*converter.OrderModel, 0)
	for rows.Next() {
		var model converter.OrderModel
		if err := rows.Scan(&model.ID, &model.Status, &model.CreatedAt, &model.UpdatedAt); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		models = append(models, &model)
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	itemsQuery := `
		SELECT id, order_id, product_id, quantity, price
		FROM order_items
		ORDER BY id;
	`

	itemRows, err := o.pool.Query(ctx, itemsQuery)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer itemRows.Close()

	itemModels, err := scanItems(itemRows)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	itemsByOrder := make(map[string][]*converter.OrderItemModel, len(models))
	for _, item := range itemModels {
		itemsByOrder[item.OrderID] = append(itemsByOrder[item.OrderID], item)
	}

	result := make([]*domain.Order, 0, len(models))
	for _, model := range models {
		result = append(result, o.conv.ToEntity(model, itemsByOrder[model.ID]))
	}

	return result, nil
}

// Update перезаписывает статус и позиции заказа. Старые позиции удаляются
// и заменяются новыми в той же транзакции. Требует открытой транзакции в контексте.
func (o *OrderRepo) Update(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		UPDATE orders
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING id, status, created_at, updated_at;
	`

	var model converter.OrderModel
	err = tx.QueryRow(ctx, query, order.ID, string(order.Status)).
		Scan(&model.ID, &model.Status, &model.CreatedAt, &model.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrOrderNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM order_items WHERE order_id = $1;`, order.ID); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	itemModels, err := insertItems(ctx, tx, order.ID, order.Items)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return o.conv.ToEntity(&model, itemModels), nil
}

// Delete удаляет заказ, позиции удаляются каскадно.
// Требует открытой транзакции в контексте.
func (o *OrderRepo) Delete(ctx context.Context, id string) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	result, err := tx.Exec(ctx, `DELETE FROM orders WHERE id = $1;`, id)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if result.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrOrderNotFound)
	}

	return nil
}

func insertItems(ctx context.Context, tx pgx.Tx, orderID string, items []domain.OrderItem) ([]*converter.OrderItemModel, error) {
	query := `
		INSERT INTO order_items (order_id, product_id, quantity, price)
		VALUES ($1, $2, $3, $4)
		RETURNING id, order_id, product_id, quantity, price;
	`

	models := make([]*converter.OrderItemModel, 0, len(items))
	for _, item := range items {
		var model converter.OrderItemModel
		err := tx.QueryRow(ctx, query, orderID, item.ProductID, item.Quantity, item.Price).
			Scan(&model.ID, &model.OrderID, &model.ProductID, &model.Quantity, &model.Price)
		if err != nil {
			return nil, err
		}

		models = append(models, &model)
	}

	return models, nil
}

func scanItems(rows pgx.Rows) ([]*converter.OrderItemModel, error) {
	models := make([]*converter.OrderItemModel, 0)
	for rows.Next() {
		var model converter.OrderItemModel
		err := rows.Scan(&model.ID, &model.OrderID, &model.ProductID, &model.Quantity, &model.Price)
		if err != nil {
			return nil, err
		}

		models = append(models, &model)
	}

	return models, rows.Err()
}
