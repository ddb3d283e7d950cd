package usecase

import (
	"context"

	"github.com/easy-order/go-backend/internal/domain"
)

type ProductUC interface {
	Create(ctx context.Context, req *CreateProductReq) (*domain.Product, error)
	ListAll(ctx context.Context) ([]*domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Update(ctx context.Context, id string, req *UpdateProductReq) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
	AttachImage(ctx context.Context, id string, image ProductImage) (*domain.Product, error)
}

type OrderUC interface {
	Create(ctx context.Context, req *CreateOrderReq) (*domain.Order, error)
	ListAll(ctx context.Context) ([]*domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	Update(ctx context.Context, id string, req *UpdateOrderReq) (*domain.Order, error)
	Delete(ctx context.Context, id string) error
}
