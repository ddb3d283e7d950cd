package usecase

import (
	"context"

	"github.com/easy-order/go-backend/internal/domain"
)

type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	ListAll(ctx context.Context) ([]*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) (*domain.Product, error)
	SoftDelete(ctx context.Context, id string) error
	SetImageKey(ctx context.Context, id string, key string) error
}

// OrdersRepository работает с заказами. Create, Update и Delete требуют
// открытой транзакции в контексте (pkg/tr).
type OrdersRepository interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	ListAll(ctx context.Context) ([]*domain.Order, error)
	Update(ctx context.Context, order *domain.Order) (*domain.Order, error)
	Delete(ctx context.Context, id string) error
}

type CacheRepository interface {
	GetProducts(ctx context.Context, ids []string) (map[string]*domain.Product, error)
	SetProducts(ctx context.Context, products []*domain.Product) error
	DeleteProducts(ctx context.Context, ids []string) error
}

type OutboxRepository interface {
	Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error)
	GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error)
	MarkAsProcessed(ctx context.Context, id int64) error
}

type ImageRepository interface {
	Upload(ctx context.Context, image *domain.Image) (string, error)
	Delete(ctx context.Context, key string) error
}
