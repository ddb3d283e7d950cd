package usecase

import (
	"context"
	"encoding/json"
	"time"

	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/easy-order/go-backend/internal/domain"
	"github.com/easy-order/go-backend/pkg/e"
	"github.com/easy-order/go-backend/pkg/logger"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/errgroup"
)

// OrderUseCase реализует бизнес-логику оформления и изменения заказов.
type OrderUseCase struct {
	ordersRepo  OrdersRepository
	productRepo ProductRepository
	outboxRepo  OutboxRepository
	dbPool      transaction.Transactional
	logger      logger.Logger
}

func NewOrderUC(
	ordersRepo OrdersRepository,
	productRepo ProductRepository,
	outboxRepo OutboxRepository,
	dbPool transaction.Transactional,
	logger logger.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		ordersRepo:  ordersRepo,
		productRepo: productRepo,
		outboxRepo:  outboxRepo,
		dbPool:      dbPool,
		logger:      logger,
	}
}

// Create снимает актуальные цены с каталога, собирает заказ и сохраняет его
// вместе с outbox-событием в одной транзакции.
func (o *OrderUseCase) Create(ctx context.Context, req *CreateOrderReq) (*domain.Order, error) {
	const op = "OrderUseCase.Create"

	items, err := o.resolveItems(ctx, req.Items)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	order, err := domain.NewOrder(uuid.NewString(), req.Status, items)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, o.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	created, err := o.ordersRepo.Create(ctx, order)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if _, err = o.outboxRepo.Create(ctx, o.newOrderEvent(OrderCreated, created)); err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	return created, nil
}

// Update изменяет заказ с учётом статусного шлюза: менять можно только
// заказы в статусах OPEN и PENDING.
func (o *OrderUseCase) Update(ctx context.Context, id string, req *UpdateOrderReq) (*domain.Order, error) {
	const op = "OrderUseCase.Update"

	existing, err := o.ordersRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if !existing.Status.IsUpdatable() {
		return nil, e.Wrap(op, e.ErrOrderNotUpdatable)
	}

	// Новый список позиций переоценивается по каталогу с проверкой доступности.
	// Без нового списка позиции остаются как есть, со старыми снимками цен.
	items := existing.Items
	if req.Items != nil {
		items, err = o.resolveItems(ctx, req.Items)
		if err != nil {
			return nil, e.Wrap(op, err)
		}
	}

	status := existing.Status
	if req.Status != "" {
		status, err = domain.ParseOrderStatus(string(req.Status))
		if err != nil {
			return nil, e.Wrap(op, err)
		}
	}

	order, err := domain.NewOrder(existing.ID, status, items)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	order.CreatedAt = existing.CreatedAt

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, o.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	updated, err := o.ordersRepo.Update(ctx, order)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if _, err = o.outboxRepo.Create(ctx, o.newOrderEvent(OrderUpdated, updated)); err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	return updated, nil
}

// ListAll делегирует запрос репозиторию заказов.
func (o *OrderUseCase) ListAll(ctx context.Context) ([]*domain.Order, error) {
	const op = "OrderUseCase.ListAll"

	orders, err := o.ordersRepo.ListAll(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return orders, nil
}

// GetByID возвращает заказ с позициями.
func (o *OrderUseCase) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	const op = "OrderUseCase.GetByID"

	order, err := o.ordersRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return order, nil
}

// Delete удаляет заказ вместе с позициями и пишет событие удаления в outbox.
func (o *OrderUseCase) Delete(ctx context.Context, id string) error {
	const op = "OrderUseCase.Delete"

	existing, err := o.ordersRepo.GetByID(ctx, id)
	if err != nil {
		return e.Wrap(op, err)
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, o.dbPool)
	if err != nil {
		return e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	if err = o.ordersRepo.Delete(ctx, existing.ID); err != nil {
		return e.Wrap(op, err)
	}

	if _, err = o.outboxRepo.Create(ctx, o.newOrderEvent(OrderDeleted, existing)); err != nil {
		return e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// resolveItems превращает запрошенные позиции в доменные, снимая цену каждого
// продукта с каталога. Удалённые и недоступные продукты отвергаются.
// Продукты читаются параллельно: порядок позиций в результате совпадает с порядком запроса.
func (o *OrderUseCase) resolveItems(ctx context.Context, reqItems []OrderItemReq) ([]domain.OrderItem, error) {
	items := make([]domain.OrderItem, len(reqItems))

	g, gCtx := errgroup.WithContext(ctx)
	for i, reqItem := range reqItems {
		g.Go(func() error {
			product, err := o.productRepo.GetByID(gCtx, reqItem.ProductID)
			if err != nil {
				return err
			}

			if product.IsDeleted || !product.IsAvailable {
				return e.Wrap(product.Name, e.ErrProductUnavailable)
			}

			items[i] = domain.OrderItem{
				ProductID: reqItem.ProductID,
				Quantity:  reqItem.Quantity,
				Price:     product.Price,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return items, nil
}

// newOrderEvent собирает outbox-событие с JSON-телом по текущему состоянию заказа.
func (o *OrderUseCase) newOrderEvent(eventType OutboxEventType, order *domain.Order) *OutboxEvent {
	eventID := uuid.NewString()

	eventItems := make([]OrderEventItem, 0, len(order.Items))
	for _, item := range order.Items {
		eventItems = append(eventItems, OrderEventItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	payload, err := json.Marshal(OrderEventPayload{
		EventID:    eventID,
		EventType:  eventType,
		OrderID:    order.ID,
		Status:     order.Status,
		Total:      order.Total,
		Items:      eventItems,
		OccurredAt: time.Now().UnixNano(),
	})
	if err != nil {
		// Полезная нагрузка собирается из примитивов, сериализация не падает
		o.logger.Warnf("Failed to marshal order event payload: %v", err)
	}

	return NewOutboxEvent(eventID, eventType, order.ID, payload)
}
