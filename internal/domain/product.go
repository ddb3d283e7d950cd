package domain

import (
	"strings"
	"time"

	"github.com/easy-order/go-backend/pkg/e"
)

// Product описывает позицию меню.
type Product struct {
	ID          string
	Name        string
	Price       int64 // Цена хранится в минимальных денежных единицах
	Category    ProductCategory
	IsAvailable bool
	IsDeleted   bool
	ImageKey    string // Ключ объекта в MinIO, пустой если изображение не загружено
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// NewProduct конструирует продукт, проверяя инварианты.
// Цена проверяется первой: при нескольких нарушениях возвращается ошибка цены.
func NewProduct(id string, name string, price int64, category ProductCategory, isAvailable bool) (*Product, error) {
	if price <= 0 {
		return nil, e.ErrPriceMustBePositive
	}
	if strings.TrimSpace(name) == "" {
		return nil, e.ErrProductNameRequired
	}
	if _, err := ParseProductCategory(string(category)); err != nil {
		return nil, err
	}

	return &Product{
		ID:          id,
		Name:        name,
		Price:       price,
		Category:    category,
		IsAvailable: isAvailable,
		IsDeleted:   false,
	}, nil
}
