package converter

import (
	"time"

	"github.com/easy-order/go-backend/internal/domain"
)

// ProductRedisModel — представление продукта в кэше Redis (JSON).
type ProductRedisModel struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Price       int64      `json:"price"`
	Category    string     `json:"category"`
	IsAvailable bool       `json:"isAvailable"`
	IsDeleted   bool       `json:"isDeleted"`
	ImageKey    string     `json:"imageKey,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

// ProductConverter преобразует продукты между domain и моделью кэша.
type ProductConverter struct{}

func NewProductConverter() ProductConverter {
	return ProductConverter{}
}

func (ProductConverter) ToRedisModel(product *domain.Product) ProductRedisModel {
	return ProductRedisModel{
		ID:          product.ID,
		Name:        product.Name,
		Price:       product.Price,
		Category:    string(product.Category),
		IsAvailable: product.IsAvailable,
		IsDeleted:   product.IsDeleted,
		ImageKey:    product.ImageKey,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}

func (c ProductConverter) ToArrRedisModel(products []*domain.Product) []ProductRedisModel {
	result := make([]ProductRedisModel, 0, len(products))
	for _, product := range products {
		result = append(result, c.ToRedisModel(product))
	}

	return result
}

func (ProductConverter) ToEntity(model *ProductRedisModel) *domain.Product {
	return &domain.Product{
		ID:          model.ID,
		Name:        model.Name,
		Price:       model.Price,
		Category:    domain.ProductCategory(model.Category),
		IsAvailable: model.IsAvailable,
		IsDeleted:   model.IsDeleted,
		ImageKey:    model.ImageKey,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}
