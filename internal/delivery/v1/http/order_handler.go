package http

import (
	"net/http"

	"github.com/easy-order/go-backend/internal/domain"
	"github.com/easy-order/go-backend/internal/usecase"
	"github.com/easy-order/go-backend/pkg/e"
	"github.com/easy-order/go-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type OrderHandler struct {
	orderUsecase usecase.OrderUC
	logger       logger.Logger
}

func NewOrderHandler(orderUsecase usecase.OrderUC, logger logger.Logger) *OrderHandler {
	return &OrderHandler{orderUsecase: orderUsecase, logger: logger}
}

// createOrder
//
//	@Summary		Создание заказа
//	@Description	Снимает актуальные цены с каталога и фиксирует их в позициях заказа
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body		createOrderRequest	true	"Заказ"
//	@Success		201		{object}	orderResponse		"Созданный заказ"
//	@Failure		400		{object}	ErrorResponse		"Ошибка валидации"
//	@Failure		404		{object}	ErrorResponse		"Продукт не найден или недоступен"
//	@Router			/orders [post]
func (o *OrderHandler) createOrder(w http.ResponseWriter, r *http.Request) {
	var body createOrderRequest
	if err := decodeJSON(r, &body); err != nil {
		o.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	order, err := o.orderUsecase.Create(r.Context(),
		usecase.NewCreateOrderReq(toOrderItemReqs(body.Items), domain.OrderStatus(body.Status)))
	if err != nil {
		o.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toOrderResponse(order))
}

// listOrders
//
//	@Summary	Список заказов
//	@Tags		orders
//	@Produce	json
//	@Success	200	{array}		orderResponse
//	@Failure	500	{object}	ErrorResponse
//	@Router		/orders [get]
func (o *OrderHandler) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := o.orderUsecase.ListAll(r.Context())
	if err != nil {
		o.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toArrOrderResponse(orders))
}

// getOrder
//
//	@Summary	Заказ по ID
//	@Tags		orders
//	@Produce	json
//	@Param		id	path		string	true	"ID заказа"
//	@Success	200	{object}	orderResponse
//	@Failure	404	{object}	ErrorResponse	"Заказ не найден"
//	@Router		/orders/{id} [get]
func (o *OrderHandler) getOrder(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(chi.URLParam(r, "id"), e.ErrInvalidOrderID)
	if err != nil {
		WriteError(w, err)
		return
	}

	order, err := o.orderUsecase.GetByID(r.Context(), id)
	if err != nil {
		o.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toOrderResponse(order))
}

// updateOrder
//
//	@Summary		Частичное обновление заказа
//	@Description	Меняет позиции и/или статус. Заказы в статусах DONE и CANCELED менять нельзя
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"ID заказа"
//	@Param			request	body		updateOrderRequest	true	"Изменяемые поля"
//	@Success		200		{object}	orderResponse
//	@Failure		400		{object}	ErrorResponse	"Ошибка валидации"
//	@Failure		401		{object}	ErrorResponse	"Статус заказа запрещает изменение"
//	@Failure		404		{object}	ErrorResponse	"Заказ не найден"
//	@Router			/orders/{id} [patch]
func (o *OrderHandler) updateOrder(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(chi.URLParam(r, "id"), e.ErrInvalidOrderID)
	if err != nil {
		WriteError(w, err)
		return
	}

	var body updateOrderRequest
	if err := decodeJSON(r, &body); err != nil {
		o.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	order, err := o.orderUsecase.Update(r.Context(), id, &usecase.UpdateOrderReq{
		Items:  toOrderItemReqs(body.Items),
		Status: domain.OrderStatus(body.Status),
	})
	if err != nil {
		o.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toOrderResponse(order))
}

// deleteOrder
//
//	@Summary	Удаление заказа
//	@Tags		orders
//	@Produce	json
//	@Param		id	path	string	true	"ID заказа"
//	@Success	204	"Заказ удалён"
//	@Failure	404	{object}	ErrorResponse	"Заказ не найден"
//	@Router		/orders/{id} [delete]
func (o *OrderHandler) deleteOrder(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(chi.URLParam(r, "id"), e.ErrInvalidOrderID)
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := o.orderUsecase.Delete(r.Context(), id); err != nil {
		o.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusNoContent, nil)
}
