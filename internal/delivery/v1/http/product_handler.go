package http

import (
	"net/http"

	"github.com/easy-order/go-backend/internal/domain"
	"github.com/easy-order/go-backend/internal/usecase"
	"github.com/easy-order/go-backend/pkg/e"
	"github.com/easy-order/go-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type ProductHandler struct {
	productUsecase usecase.ProductUC
	logger         logger.Logger
	maxImageSize   int64
}

func NewProductHandler(productUsecase usecase.ProductUC, logger logger.Logger, maxImageSize int64) *ProductHandler {
	return &ProductHandler{
		productUsecase: productUsecase,
		logger:         logger,
		maxImageSize:   maxImageSize,
	}
}

// createProduct
//
//	@Summary		Создание продукта
//	@Description	Добавляет новый продукт в каталог
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			request	body		createProductRequest	true	"Продукт"
//	@Success		201		{object}	productResponse			"Созданный продукт"
//	@Failure		400		{object}	ErrorResponse			"Ошибка валидации"
//	@Router			/products [post]
func (p *ProductHandler) createProduct(w http.ResponseWriter, r *http.Request) {
	var body createProductRequest
	if err := decodeJSON(r, &body); err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	priceCents, err := parsePriceToCents(body.Price)
	if err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	// Продукт по умолчанию доступен для заказа
	isAvailable := true
	if body.IsAvailable != nil {
		isAvailable = *body.IsAvailable
	}

	product, err := p.productUsecase.Create(r.Context(),
		usecase.NewCreateProductReq(body.Name, priceCents, domain.ProductCategory(body.Category), isAvailable))
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toProductResponse(product))
}

// listProducts
//
//	@Summary	Список продуктов
//	@Description	Возвращает все неудалённые продукты каталога
//	@Tags		products
//	@Produce	json
//	@Success	200	{array}		productResponse
//	@Failure	500	{object}	ErrorResponse
//	@Router		/products [get]
func (p *ProductHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := p.productUsecase.ListAll(r.Context())
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toArrProductResponse(products))
}

// getProduct
//
//	@Summary	Продукт по ID
//	@Tags		products
//	@Produce	json
//	@Param		id	path		string	true	"ID продукта"
//	@Success	200	{object}	productResponse
//	@Failure	404	{object}	ErrorResponse	"Продукт не найден или удалён"
//	@Router		/products/{id} [get]
func (p *ProductHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(chi.URLParam(r, "id"), e.ErrInvalidProductID)
	if err != nil {
		WriteError(w, err)
		return
	}

	product, err := p.productUsecase.GetByID(r.Context(), id)
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductResponse(product))
}

// updateProduct
//
//	@Summary		Частичное обновление продукта
//	@Description	Меняет только присланные поля, остальные не трогает
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"ID продукта"
//	@Param			request	body		updateProductRequest	true	"Изменяемые поля"
//	@Success		200		{object}	productResponse
//	@Failure		400		{object}	ErrorResponse	"Ошибка валидации"
//	@Failure		404		{object}	ErrorResponse	"Продукт не найден"
//	@Router			/products/{id} [patch]
func (p *ProductHandler) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(chi.URLParam(r, "id"), e.ErrInvalidProductID)
	if err != nil {
		WriteError(w, err)
		return
	}

	var body updateProductRequest
	if err := decodeJSON(r, &body); err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	req := &usecase.UpdateProductReq{
		Name:        body.Name,
		IsAvailable: body.IsAvailable,
	}
	if body.Price != nil {
		priceCents, err := parsePriceToCents(*body.Price)
		if err != nil {
			p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
			WriteError(w, err)
			return
		}
		req.Price = &priceCents
	}
	if body.Category != nil {
		category := domain.ProductCategory(*body.Category)
		req.Category = &category
	}

	product, err := p.productUsecase.Update(r.Context(), id, req)
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductResponse(product))
}

// deleteProduct
//
//	@Summary		Удаление продукта
//	@Description	Мягкое удаление: продукт пропадает из каталога, но строка остаётся
//	@Tags			products
//	@Produce		json
//	@Param			id	path	string	true	"ID продукта"
//	@Success		204	"Продукт удалён"
//	@Failure		404	{object}	ErrorResponse	"Продукт не найден"
//	@Router			/products/{id} [delete]
func (p *ProductHandler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(chi.URLParam(r, "id"), e.ErrInvalidProductID)
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := p.productUsecase.Delete(r.Context(), id); err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusNoContent, nil)
}

// attachImage
//
//	@Summary		Загрузка изображения продукта
//	@Description	Принимает один файл в multipart-поле image, заменяет предыдущее изображение
//	@Tags			products
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			id		path		string	true	"ID продукта"
//	@Param			image	formData	file	true	"Изображение (jpeg/png/webp)"
//	@Success		200		{object}	productResponse
//	@Failure		400		{object}	ErrorResponse	"Ошибка валидации"
//	@Failure		404		{object}	ErrorResponse	"Продукт не найден"
//	@Router			/products/{id}/image [post]
func (p *ProductHandler) attachImage(w http.ResponseWriter, r *http.Request) {
	const maxMemory = 32 << 20

	id, err := parseUUIDParam(chi.URLParam(r, "id"), e.ErrInvalidProductID)
	if err != nil {
		WriteError(w, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, p.maxImageSize+maxMemory)

	if err := ensureMultipartForm(r, maxMemory); err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), r.Header.Get("Content-Type"))
		WriteError(w, err)
		return
	}

	image, err := parseImage(r.MultipartForm.File["image"], p.maxImageSize)
	if err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	product, err := p.productUsecase.AttachImage(r.Context(), id, *image)
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductResponse(product))
}
