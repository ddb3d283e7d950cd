package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/easy-order/go-backend/internal/domain"
	"github.com/easy-order/go-backend/internal/infrastructure"
	"github.com/easy-order/go-backend/pkg/e"
	"github.com/easy-order/go-backend/pkg/logger"
	"github.com/google/uuid"
)

// ProductUseCase реализует бизнес-логику управления каталогом продуктов.
type ProductUseCase struct {
	productRepo ProductRepository
	cacheRepo   CacheRepository
	imageRepo   ImageRepository
	logger      logger.Logger
}

func NewProductUC(
	productRepo ProductRepository,
	cacheRepo CacheRepository,
	imageRepo ImageRepository,
	logger logger.Logger,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo: productRepo,
		cacheRepo:   cacheRepo,
		imageRepo:   imageRepo,
		logger:      logger,
	}
}

// Create валидирует продукт через конструктор доменной сущности и сохраняет его.
func (p *ProductUseCase) Create(ctx context.Context, req *CreateProductReq) (*domain.Product, error) {
	const op = "ProductUseCase.Create"

	product, err := domain.NewProduct(uuid.NewString(), req.Name, req.Price, req.Category, req.IsAvailable)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	created, err := p.productRepo.Create(ctx, product)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return created, nil
}

// ListAll возвращает все неудалённые продукты каталога.
func (p *ProductUseCase) ListAll(ctx context.Context) ([]*domain.Product, error) {
	const op = "ProductUseCase.ListAll"

	products, err := p.productRepo.ListAll(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return products, nil
}

// GetByID возвращает продукт, сначала заглядывая в кэш.
// Промах кэша дочитывается из БД и фоново кэшируется.
func (p *ProductUseCase) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	const op = "ProductUseCase.GetByID"

	if cached, err := p.cacheRepo.GetProducts(ctx, []string{id}); err == nil {
		if product, ok := cached[id]; ok && !product.IsDeleted {
			return product, nil
		}
	}

	product, err := p.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if product.IsDeleted {
		return nil, e.Wrap(op, e.ErrProductNotFound)
	}

	// Фоновое добавление продукта в кэш
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
		defer cancel()

		if err := p.cacheRepo.SetProducts(bgCtx, []*domain.Product{product}); err != nil {
			p.logger.Warnf("Failed to cache product in background: %v", e.Wrap(op, err))
		}
	}()

	return product, nil
}

// Update накладывает присланные поля поверх существующих и пересобирает сущность,
// чтобы инварианты проверились заново.
func (p *ProductUseCase) Update(ctx context.Context, id string, req *UpdateProductReq) (*domain.Product, error) {
	const op = "ProductUseCase.Update"

	existing, err := p.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	name := existing.Name
	if req.Name != nil {
		name = *req.Name
	}
	price := existing.Price
	if req.Price != nil {
		price = *req.Price
	}
	category := existing.Category
	if req.Category != nil {
		category = *req.Category
	}
	isAvailable := existing.IsAvailable
	if req.IsAvailable != nil {
		isAvailable = *req.IsAvailable
	}

	product, err := domain.NewProduct(existing.ID, name, price, category, isAvailable)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	product.IsDeleted = existing.IsDeleted
	product.ImageKey = existing.ImageKey

	updated, err := p.productRepo.Update(ctx, product)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	p.invalidateCache(ctx, id)

	return updated, nil
}

// Delete помечает продукт удалённым (soft delete), строка остаётся в БД.
func (p *ProductUseCase) Delete(ctx context.Context, id string) error {
	const op = "ProductUseCase.Delete"

	if _, err := p.productRepo.GetByID(ctx, id); err != nil {
		return e.Wrap(op, err)
	}

	if err := p.productRepo.SoftDelete(ctx, id); err != nil {
		return e.Wrap(op, err)
	}

	p.invalidateCache(ctx, id)

	return nil
}

// AttachImage загружает изображение продукта в MinIO и запоминает ключ объекта.
// Предыдущее изображение удаляется после успешной замены.
func (p *ProductUseCase) AttachImage(ctx context.Context, id string, image ProductImage) (*domain.Product, error) {
	const op = "ProductUseCase.AttachImage"

	existing, err := p.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if existing.IsDeleted {
		return nil, e.Wrap(op, e.ErrProductNotFound)
	}

	ext, err := infrastructure.GetExtensionFromMIME(image.MimeType)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	objKey := fmt.Sprintf("products/%s/%s.%s", existing.ID, uuid.NewString(), ext)
	newImage := domain.NewImage(objKey, image.Data, image.Size, image.MimeType)

	key, err := p.imageRepo.Upload(ctx, newImage)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err := p.productRepo.SetImageKey(ctx, existing.ID, key); err != nil {
		// Откатываем загрузку, чтобы не копить осиротевшие объекты
		if delErr := p.imageRepo.Delete(ctx, key); delErr != nil {
			p.logger.Warnf("Failed to cleanup orphaned image %s: %v", key, delErr)
		}
		return nil, e.Wrap(op, err)
	}

	if existing.ImageKey != "" {
		if err := p.imageRepo.Delete(ctx, existing.ImageKey); err != nil {
			p.logger.Warnf("Failed to delete replaced image %s: %v", existing.ImageKey, err)
		}
	}

	p.invalidateCache(ctx, id)

	existing.ImageKey = key
	return existing, nil
}

// invalidateCache удаляет продукт из кэша, логируя неудачу вместо возврата ошибки.
func (p *ProductUseCase) invalidateCache(ctx context.Context, id string) {
	if err := p.cacheRepo.DeleteProducts(ctx, []string{id}); err != nil {
		p.logger.Warnf("Failed to invalidate product cache: %v", err)
	}
}
