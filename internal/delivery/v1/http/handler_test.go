package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/easy-order/go-backend/internal/cfg"
	v1Http "github.com/easy-order/go-backend/internal/delivery/v1/http"
	"github.com/easy-order/go-backend/internal/domain"
	"github.com/easy-order/go-backend/internal/usecase"
	"github.com/easy-order/go-backend/pkg/e"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	productID = "6f1f09b5-4d94-4a3c-9d3c-111111111111"
	orderID   = "6f1f09b5-4d94-4a3c-9d3c-222222222222"
)

type loggerStub struct{}

func (loggerStub) Debugf(format string, args ...any)            {}
func (loggerStub) Infof(format string, args ...any)             {}
func (loggerStub) Warnf(format string, args ...any)             {}
func (loggerStub) Errorf(err error, format string, args ...any) {}

type productUCStub struct {
	createFn  func(ctx context.Context, req *usecase.CreateProductReq) (*domain.Product, error)
	listAllFn func(ctx context.Context) ([]*domain.Product, error)
	getByIDFn func(ctx context.Context, id string) (*domain.Product, error)
	updateFn  func(ctx context.Context, id string, req *usecase.UpdateProductReq) (*domain.Product, error)
	deleteFn  func(ctx context.Context, id string) error
	attachFn  func(ctx context.Context, id string, image usecase.ProductImage) (*domain.Product, error)
}

func (s *productUCStub) Create(ctx context.Context, req *usecase.CreateProductReq) (*domain.Product, error) {
	if s.createFn == nil {
		return nil, errors.New("unexpected call to Create")
	}
	return s.createFn(ctx, req)
}

func (s *productUCStub) ListAll(ctx context.Context) ([]*domain.Product, error) {
	if s.listAllFn == nil {
		return nil, errors.New("unexpected call to ListAll")
	}
	return s.listAllFn(ctx)
}

func (s *productUCStub) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	if s.getByIDFn == nil {
		return nil, errors.New("unexpected call to GetByID")
	}
	return s.getByIDFn(ctx, id)
}

func (s *productUCStub) Update(ctx context.Context, id string, req *usecase.UpdateProductReq) (*domain.Product, error) {
	if s.updateFn == nil {
		return nil, errors.New("unexpected call to Update")
	}
	return s.updateFn(ctx, id, req)
}

func (s *productUCStub) Delete(ctx context.Context, id string) error {
	if s.deleteFn == nil {
		return errors.New("unexpected call to Delete")
	}
	return s.deleteFn(ctx, id)
}

func (s *productUCStub) AttachImage(ctx context.Context, id string, image usecase.ProductImage) (*domain.Product, error) {
	if s.attachFn == nil {
		return nil, errors.New("unexpected call to AttachImage")
	}
	return s.attachFn(ctx, id, image)
}

type orderUCStub struct {
	createFn  func(ctx context.Context, req *usecase.CreateOrderReq) (*domain.Order, error)
	listAllFn func(ctx context.Context) ([]*domain.Order, error)
	getByIDFn func(ctx context.Context, id string) (*domain.Order, error)
	updateFn  func(ctx context.Context, id string, req *usecase.UpdateOrderReq) (*domain.Order, error)
	deleteFn  func(ctx context.Context, id string) error
}

func (s *orderUCStub) Create(ctx context.Context, req *usecase.CreateOrderReq) (*domain.Order, error) {
	if s.createFn == nil {
		return nil, errors.New("unexpected call to Create")
	}
	return s.createFn(ctx, req)
}

func (s *orderUCStub) ListAll(ctx context.Context) ([]*domain.Order, error) {
	if s.listAllFn == nil {
		return nil, errors.New("unexpected call to ListAll")
	}
	return s.listAllFn(ctx)
}

func (s *orderUCStub) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	if s.getByIDFn == nil {
		return nil, errors.New("unexpected call to GetByID")
	}
	return s.getByIDFn(ctx, id)
}

func (s *orderUCStub) Update(ctx context.Context, id string, req *usecase.UpdateOrderReq) (*domain.Order, error) {
	if s.updateFn == nil {
		return nil, errors.New("unexpected call to Update")
	}
	return s.updateFn(ctx, id, req)
}

func (s *orderUCStub) Delete(ctx context.Context, id string) error {
	if s.deleteFn == nil {
		return errors.New("unexpected call to Delete")
	}
	return s.deleteFn(ctx, id)
}

func newTestRouter(prUC usecase.ProductUC, orUC usecase.OrderUC) *chi.Mux {
	r := chi.NewRouter()
	router := v1Http.NewRouter(r, loggerStub{})
	router.Init(prUC, orUC, &cfg.MinIOCfg{MaxImageSize: 15 << 20})
	return r
}

func decodeErrorResponse(t *testing.T, rec *httptest.ResponseRecorder) v1Http.ErrorResponse {
	t.Helper()
	var body v1Http.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestCreateProduct_Created(t *testing.T) {
	prUC := &productUCStub{
		createFn: func(ctx context.Context, req *usecase.CreateProductReq) (*domain.Product, error) {
			assert.Equal(t, int64(19990), req.Price)
			assert.True(t, req.IsAvailable)
			return &domain.Product{
				ID:          productID,
				Name:        req.Name,
				Price:       req.Price,
				Category:    req.Category,
				IsAvailable: req.IsAvailable,
				CreatedAt:   time.Now().UTC(),
			}, nil
		},
	}
	router := newTestRouter(prUC, &orderUCStub{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/products",
		strings.NewReader(`{"name":"Maple","price":"199.90","category":"burger"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, productID, body["id"])
	assert.Equal(t, "199.90", body["price"])
}

func TestCreateProduct_BadPrice(t *testing.T) {
	// createFn не задан: запрос с невалидной ценой не должен дойти до usecase
	router := newTestRouter(&productUCStub{}, &orderUCStub{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/products",
		strings.NewReader(`{"name":"Maple","price":"12.345","category":"burger"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeErrorResponse(t, rec)
	assert.Equal(t, http.StatusBadRequest, body.StatusCode)
	assert.Equal(t, "Bad Request", body.Error)
	assert.Equal(t, e.ErrPricePrecision.Error(), body.Message)
}

func TestCreateProduct_UnknownField(t *testing.T) {
	router := newTestRouter(&productUCStub{}, &orderUCStub{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/products",
		strings.NewReader(`{"name":"Maple","price":"199.90","category":"burger","rating":5}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetProduct_InvalidID(t *testing.T) {
	router := newTestRouter(&productUCStub{}, &orderUCStub{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeErrorResponse(t, rec)
	assert.Equal(t, e.ErrInvalidProductID.Error(), body.Message)
}

func TestGetProduct_NotFound(t *testing.T) {
	prUC := &productUCStub{
		getByIDFn: func(ctx context.Context, id string) (*domain.Product, error) {
			return nil, e.Wrap("ProductUseCase.GetByID", e.ErrProductNotFound)
		},
	}
	router := newTestRouter(prUC, &orderUCStub{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/"+productID, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeErrorResponse(t, rec)
	assert.Equal(t, http.StatusNotFound, body.StatusCode)
	assert.Equal(t, e.ErrProductNotFound.Error(), body.Message)
}

func TestDeleteProduct_NoContent(t *testing.T) {
	prUC := &productUCStub{
		deleteFn: func(ctx context.Context, id string) error {
			assert.Equal(t, productID, id)
			return nil
		},
	}
	router := newTestRouter(prUC, &orderUCStub{})

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/products/"+productID, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestCreateOrder_Created(t *testing.T) {
	orUC := &orderUCStub{
		createFn: func(ctx context.Context, req *usecase.CreateOrderReq) (*domain.Order, error) {
			require.Len(t, req.Items, 1)
			assert.Equal(t, int32(2), req.Items[0].Quantity)
			return &domain.Order{
				ID:     orderID,
				Status: domain.OrderStatusOpen,
				Items: []domain.OrderItem{
					{ProductID: req.Items[0].ProductID, Quantity: 2, Price: 1550},
				},
				Total:     3100,
				CreatedAt: time.Now().UTC(),
			}, nil
		},
	}
	router := newTestRouter(&productUCStub{}, orUC)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders",
		strings.NewReader(`{"items":[{"productId":"`+productID+`","quantity":2}]}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "OPEN", body["status"])
	assert.Equal(t, "31.00", body["total"])
}

func TestCreateOrder_UnavailableProduct(t *testing.T) {
	orUC := &orderUCStub{
		createFn: func(ctx context.Context, req *usecase.CreateOrderReq) (*domain.Order, error) {
			return nil, e.Wrap("OrderUseCase.Create", e.ErrProductUnavailable)
		},
	}
	router := newTestRouter(&productUCStub{}, orUC)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders",
		strings.NewReader(`{"items":[{"productId":"`+productID+`","quantity":1}]}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeErrorResponse(t, rec)
	assert.Equal(t, e.ErrProductUnavailable.Error(), body.Message)
}

func TestUpdateOrder_StatusGate(t *testing.T) {
	orUC := &orderUCStub{
		updateFn: func(ctx context.Context, id string, req *usecase.UpdateOrderReq) (*domain.Order, error) {
			return nil, e.Wrap("OrderUseCase.Update", e.ErrOrderNotUpdatable)
		},
	}
	router := newTestRouter(&productUCStub{}, orUC)

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/orders/"+orderID,
		strings.NewReader(`{"status":"OPEN"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeErrorResponse(t, rec)
	assert.Equal(t, http.StatusUnauthorized, body.StatusCode)
	assert.Equal(t, e.ErrOrderNotUpdatable.Error(), body.Message)
}

func TestDeleteOrder_NotFound(t *testing.T) {
	orUC := &orderUCStub{
		deleteFn: func(ctx context.Context, id string) error {
			return e.Wrap("OrderUseCase.Delete", e.ErrOrderNotFound)
		},
	}
	router := newTestRouter(&productUCStub{}, orUC)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/orders/"+orderID, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListOrders_Ok(t *testing.T) {
	orUC := &orderUCStub{
		listAllFn: func(ctx context.Context) ([]*domain.Order, error) {
			return []*domain.Order{}, nil
		},
	}
	router := newTestRouter(&productUCStub{}, orUC)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}
