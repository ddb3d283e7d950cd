package http

import (
	"time"

	"github.com/easy-order/go-backend/internal/domain"
)

// createProductRequest — тело запроса на создание продукта.
// Цена передаётся десятичной строкой в основных единицах валюты ("599.99").
type createProductRequest struct {
	Name        string `json:"name" example:"Чизбургер"`
	Price       string `json:"price" example:"199.90"`
	Category    string `json:"category" example:"burger"`
	IsAvailable *bool  `json:"isAvailable,omitempty" example:"true"`
}

// updateProductRequest — тело частичного обновления продукта.
// Отсутствующие поля не меняются.
type updateProductRequest struct {
	Name        *string `json:"name,omitempty"`
	Price       *string `json:"price,omitempty"`
	Category    *string `json:"category,omitempty"`
	IsAvailable *bool   `json:"isAvailable,omitempty"`
}

type productResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Price       string     `json:"price" example:"199.90"`
	Category    string     `json:"category"`
	IsAvailable bool       `json:"isAvailable"`
	ImageKey    string     `json:"imageKey,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

type orderItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int32  `json:"quantity" example:"2"`
}

type createOrderRequest struct {
	Items  []orderItemRequest `json:"items"`
	Status string             `json:"status,omitempty" example:"OPEN"`
}

// updateOrderRequest — тело частичного обновления заказа.
// nil-список позиций означает "оставить как есть", пустой статус — не менять.
type updateOrderRequest struct {
	Items  []orderItemRequest `json:"items,omitempty"`
	Status string             `json:"status,omitempty"`
}

type orderItemResponse struct {
	ProductID string `json:"productId"`
	Quantity  int32  `json:"quantity"`
	Price     string `json:"price" example:"199.90"`
}

type orderResponse struct {
	ID        string              `json:"id"`
	Status    string              `json:"status"`
	Items     []orderItemResponse `json:"items"`
	Total     string              `json:"total" example:"399.80"`
	CreatedAt time.Time           `json:"createdAt"`
	UpdatedAt *time.Time          `json:"updatedAt,omitempty"`
}

func toProductResponse(product *domain.Product) productResponse {
	return productResponse{
		ID:          product.ID,
		Name:        product.Name,
		Price:       formatPrice(product.Price),
		Category:    string(product.Category),
		IsAvailable: product.IsAvailable,
		ImageKey:    product.ImageKey,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}

func toArrProductResponse(products []*domain.Product) []productResponse {
	result := make([]productResponse, 0, len(products))
	for _, product := range products {
		result = append(result, toProductResponse(product))
	}

	return result
}

func toOrderResponse(order *domain.Order) orderResponse {
	items := make([]orderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, orderItemResponse{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     formatPrice(item.Price),
		})
	}

	return orderResponse{
		ID:        order.ID,
		Status:    string(order.Status),
		Items:     items,
		Total:     formatPrice(order.Total),
		CreatedAt: order.CreatedAt,
		UpdatedAt: order.UpdatedAt,
	}
}

func toArrOrderResponse(orders []*domain.Order) []orderResponse {
	result := make([]orderResponse, 0, len(orders))
	for _, order := range orders {
		result = append(result, toOrderResponse(order))
	}

	return result
}
