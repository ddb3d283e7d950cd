package domain

import "github.com/easy-order/go-backend/pkg/e"

// OrderStatus описывает жизненный цикл заказа.
type OrderStatus string

const (
	// OrderStatusOpen — заказ открыт и может изменяться.
	OrderStatusOpen OrderStatus = "OPEN"
	// OrderStatusPending — заказ передан на кухню, но ещё может изменяться.
	OrderStatusPending OrderStatus = "PENDING"
	// OrderStatusDone — заказ выполнен, изменения запрещены.
	OrderStatusDone OrderStatus = "DONE"
	// OrderStatusCanceled — заказ отменён, изменения запрещены.
	OrderStatusCanceled OrderStatus = "CANCELED"
)

// ParseOrderStatus валидирует строковое значение статуса.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case OrderStatusOpen, OrderStatusPending, OrderStatusDone, OrderStatusCanceled:
		return OrderStatus(s), nil
	default:
		return "", e.ErrUnknownOrderStatus
	}
}

// IsUpdatable сообщает, допускает ли текущий статус изменение заказа.
func (s OrderStatus) IsUpdatable() bool {
	return s == OrderStatusOpen || s == OrderStatusPending
}
