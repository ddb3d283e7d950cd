package usecase

import (
	"time"

	"github.com/easy-order/go-backend/internal/domain"
)

// PRODUCT USECASE

// CreateProductReq — запрос на создание продукта.
type CreateProductReq struct {
	Name        string
	Price       int64
	Category    domain.ProductCategory
	IsAvailable bool
}

// UpdateProductReq — частичное обновление продукта: nil-поля остаются без изменений.
type UpdateProductReq struct {
	Name        *string
	Price       *int64
	Category    *domain.ProductCategory
	IsAvailable *bool
}

// ProductImage представляет изображение, загруженное через multipart/form-data.
type ProductImage struct {
	Data     []byte // байты изображения
	MimeType string // Content-Type из multipart (image/jpeg)
	Size     int64  // фактический размер в байтах
	Name     string // оригинальное имя файла (для логов)
}

// ORDER USECASE

// OrderItemReq — позиция заказа в запросе: продукт и количество.
// Цена не принимается от клиента, она снимается с каталога.
type OrderItemReq struct {
	ProductID string
	Quantity  int32
}

// CreateOrderReq — запрос на создание заказа. Пустой Status означает OPEN.
type CreateOrderReq struct {
	Items  []OrderItemReq
	Status domain.OrderStatus
}

// UpdateOrderReq — частичное обновление заказа.
// Items == nil сохраняет существующие позиции без повторной проверки каталога.
type UpdateOrderReq struct {
	Items  []OrderItemReq
	Status domain.OrderStatus
}

// OUTBOX

type OutboxStatus string

const (
	Pending    OutboxStatus = "pending"
	Processing OutboxStatus = "processing"
	Processed  OutboxStatus = "processed"
)

type OutboxEventType string

const (
	OrderCreated OutboxEventType = "order.created"
	OrderUpdated OutboxEventType = "order.updated"
	OrderDeleted OutboxEventType = "order.deleted"
)

// OutboxEvent — запись транзакционного outbox для публикации в Kafka.
type OutboxEvent struct {
	ID          int64
	EventID     string
	EventType   OutboxEventType
	OrderID     string
	Payload     []byte
	Status      OutboxStatus
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// OrderEventPayload — JSON-тело события заказа.
type OrderEventPayload struct {
	EventID    string             `json:"event_id"`
	EventType  OutboxEventType    `json:"event_type"`
	OrderID    string             `json:"order_id"`
	Status     domain.OrderStatus `json:"status,omitempty"`
	Total      int64              `json:"total"`
	Items      []OrderEventItem   `json:"items,omitempty"`
	OccurredAt int64              `json:"occurred_at"`
}

type OrderEventItem struct {
	ProductID string `json:"product_id"`
	Quantity  int32  `json:"quantity"`
	Price     int64  `json:"price"`
}

// INFRASTRUCTURE

type WriteRawMessageReq struct {
	OrderID string
	Payload []byte
}

// MAPPERS

func NewCreateProductReq(name string, price int64, category domain.ProductCategory, isAvailable bool) *CreateProductReq {
	return &CreateProductReq{
		Name:        name,
		Price:       price,
		Category:    category,
		IsAvailable: isAvailable,
	}
}

func NewProductImage(data []byte, mimeType string, size int64, name string) *ProductImage {
	return &ProductImage{
		Data:     data,
		MimeType: mimeType,
		Size:     size,
		Name:     name,
	}
}

func NewOrderItemReq(productID string, quantity int32) OrderItemReq {
	return OrderItemReq{
		ProductID: productID,
		Quantity:  quantity,
	}
}

func NewCreateOrderReq(items []OrderItemReq, status domain.OrderStatus) *CreateOrderReq {
	return &CreateOrderReq{
		Items:  items,
		Status: status,
	}
}

func NewOutboxEvent(eventID string, eventType OutboxEventType, orderID string, payload []byte) *OutboxEvent {
	return &OutboxEvent{
		EventID:   eventID,
		EventType: eventType,
		OrderID:   orderID,
		Payload:   payload,
		Status:    Pending,
		CreatedAt: time.Now().UTC(),
	}
}

func NewWriteRawMessageReq(orderID string, payload []byte) *WriteRawMessageReq {
	return &WriteRawMessageReq{
		OrderID: orderID,
		Payload: payload,
	}
}
