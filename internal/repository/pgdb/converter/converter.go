package converter

import (
	"github.com/easy-order/go-backend/internal/domain"
	"github.com/easy-order/go-backend/internal/usecase"
)

// ProductConverter преобразует сущности Product между domain и моделью PostgreSQL.
type ProductConverter struct{}

func NewProductConverter() ProductConverter {
	return ProductConverter{}
}

func (ProductConverter) ToEntity(model *ProductModel) *domain.Product {
	product := &domain.Product{
		ID:          model.ID,
		Name:        model.Name,
		Price:       model.Price,
		Category:    domain.ProductCategory(model.Category),
		IsAvailable: model.IsAvailable,
		IsDeleted:   model.IsDeleted,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
	if model.ImageKey != nil {
		product.ImageKey = *model.ImageKey
	}

	return product
}

func (c ProductConverter) ToArrEntity(models []*ProductModel) []*domain.Product {
	result := make([]*domain.Product, 0, len(models))
	for _, model := range models {
		result = append(result, c.ToEntity(model))
	}

	return result
}

// OrderConverter преобразует сущности Order между domain и моделями PostgreSQL.
type OrderConverter struct{}

func NewOrderConverter() OrderConverter {
	return OrderConverter{}
}

// ToEntity собирает заказ из строки orders и строк order_items.
// Total пересчитывается по позициям, в БД он не хранится.
func (OrderConverter) ToEntity(model *OrderModel, itemModels []*OrderItemModel) *domain.Order {
	items := make([]domain.OrderItem, 0, len(itemModels))
	for _, item := range itemModels {
		items = append(items, domain.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	return &domain.Order{
		ID:        model.ID,
		Status:    domain.OrderStatus(model.Status),
		Items:     items,
		Total:     domain.ItemsTotal(items),
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

// OutboxEventConverter преобразует записи outbox между usecase и моделью PostgreSQL.
type OutboxEventConverter struct{}

func NewOutboxEventConverter() OutboxEventConverter {
	return OutboxEventConverter{}
}

func (OutboxEventConverter) ToModel(event *usecase.OutboxEvent) *OutboxEventModel {
	return &OutboxEventModel{
		ID:          event.ID,
		EventID:     event.EventID,
		EventType:   string(event.EventType),
		OrderID:     event.OrderID,
		Payload:     event.Payload,
		Status:      string(event.Status),
		CreatedAt:   event.CreatedAt,
		ProcessedAt: event.ProcessedAt,
	}
}

func (OutboxEventConverter) ToEntity(model *OutboxEventModel) *usecase.OutboxEvent {
	return &usecase.OutboxEvent{
		ID:          model.ID,
		EventID:     model.EventID,
		EventType:   usecase.OutboxEventType(model.EventType),
		OrderID:     model.OrderID,
		Payload:     model.Payload,
		Status:      usecase.OutboxStatus(model.Status),
		CreatedAt:   model.CreatedAt,
		ProcessedAt: model.ProcessedAt,
	}
}

func (c OutboxEventConverter) ToArrEntity(models []*OutboxEventModel) []*usecase.OutboxEvent {
	result := make([]*usecase.OutboxEvent, 0, len(models))
	for _, model := range models {
		result = append(result, c.ToEntity(model))
	}

	return result
}
