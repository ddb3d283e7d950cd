package domain

import (
	"time"

	"github.com/easy-order/go-backend/pkg/e"
)

// OrderItem представляет одну позицию заказа.
// Price — снимок цены продукта на момент оформления, он не меняется при изменении каталога.
type OrderItem struct {
	ProductID string
	Quantity  int32
	Price     int64
}

// Order агрегирует позиции заказа и его статус.
type Order struct {
	ID        string
	Status    OrderStatus
	Items     []OrderItem
	Total     int64
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// NewOrder конструирует заказ, проверяя инварианты позиций.
// Пустой статус заменяется на OPEN.
func NewOrder(id string, status OrderStatus, items []OrderItem) (*Order, error) {
	if len(items) == 0 {
		return nil, e.ErrOrderItemsRequired
	}

	if status == "" {
		status = OrderStatusOpen
	}
	if _, err := ParseOrderStatus(string(status)); err != nil {
		return nil, err
	}

	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, e.ErrQuantityMustBePositive
		}
		if item.Price < 0 {
			return nil, e.ErrItemPriceNegative
		}
	}

	total := ItemsTotal(items)
	if total < 0 {
		return nil, e.ErrTotalNegative
	}

	return &Order{
		ID:     id,
		Status: status,
		Items:  items,
		Total:  total,
	}, nil
}

// ItemsTotal считает сумму заказа: Σ цена × количество.
func ItemsTotal(items []OrderItem) int64 {
	var total int64
	for _, item := range items {
		total += item.Price * int64(item.Quantity)
	}
	return total
}
