package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/easy-order/go-backend/internal/domain"
	"github.com/easy-order/go-backend/internal/usecase"
	"github.com/easy-order/go-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeProduct(id string) *domain.Product {
	return &domain.Product{
		ID:          id,
		Name:        "Maple",
		Price:       2900,
		Category:    domain.CategoryBurger,
		IsAvailable: true,
		CreatedAt:   time.Now().UTC(),
	}
}

func TestProductUseCaseCreate_Ok(t *testing.T) {
	var created *domain.Product
	productRepo := &productRepoStub{
		createFn: func(ctx context.Context, product *domain.Product) (*domain.Product, error) {
			created = product
			return product, nil
		},
	}

	uc := usecase.NewProductUC(productRepo, &cacheRepoStub{}, &imageRepoStub{}, loggerStub{})

	product, err := uc.Create(context.Background(),
		usecase.NewCreateProductReq("Maple", 2900, domain.CategoryBurger, true))
	require.NoError(t, err)

	require.NotNil(t, created)
	assert.NotEmpty(t, product.ID)
	assert.Equal(t, "Maple", created.Name)
	assert.Equal(t, int64(2900), created.Price)
}

func TestProductUseCaseCreate_InvalidProductNotPersisted(t *testing.T) {
	// createFn не задан: обращение к репозиторию провалит тест
	uc := usecase.NewProductUC(&productRepoStub{}, &cacheRepoStub{}, &imageRepoStub{}, loggerStub{})

	_, err := uc.Create(context.Background(),
		usecase.NewCreateProductReq("Maple", 0, domain.CategoryBurger, true))
	assert.ErrorIs(t, err, e.ErrPriceMustBePositive)

	_, err = uc.Create(context.Background(),
		usecase.NewCreateProductReq("", 2900, domain.CategoryBurger, true))
	assert.ErrorIs(t, err, e.ErrProductNameRequired)
}

func TestProductUseCaseGetByID_CacheHit(t *testing.T) {
	cached := makeProduct("p-1")
	cacheRepo := &cacheRepoStub{
		getFn: func(ctx context.Context, ids []string) (map[string]*domain.Product, error) {
			return map[string]*domain.Product{"p-1": cached}, nil
		},
	}

	// getByIDFn не задан: поход в БД при попадании в кэш провалит тест
	uc := usecase.NewProductUC(&productRepoStub{}, cacheRepo, &imageRepoStub{}, loggerStub{})

	product, err := uc.GetByID(context.Background(), "p-1")
	require.NoError(t, err)
	assert.Equal(t, cached, product)
}

func TestProductUseCaseGetByID_DeletedIsNotFound(t *testing.T) {
	deleted := makeProduct("p-1")
	deleted.IsDeleted = true

	productRepo := &productRepoStub{
		getByIDFn: func(ctx context.Context, id string) (*domain.Product, error) {
			return deleted, nil
		},
	}

	uc := usecase.NewProductUC(productRepo, &cacheRepoStub{}, &imageRepoStub{}, loggerStub{})

	_, err := uc.GetByID(context.Background(), "p-1")
	assert.ErrorIs(t, err, e.ErrProductNotFound)
}

func TestProductUseCaseUpdate_MergesFields(t *testing.T) {
	existing := makeProduct("p-1")
	existing.ImageKey = "products/p-1/cover.jpg"

	var updated *domain.Product
	productRepo := &productRepoStub{
		getByIDFn: func(ctx context.Context, id string) (*domain.Product, error) {
			return existing, nil
		},
		updateFn: func(ctx context.Context, product *domain.Product) (*domain.Product, error) {
			updated = product
			return product, nil
		},
	}

	uc := usecase.NewProductUC(productRepo, &cacheRepoStub{}, &imageRepoStub{}, loggerStub{})

	newPrice := int64(3100)
	_, err := uc.Update(context.Background(), "p-1", &usecase.UpdateProductReq{Price: &newPrice})
	require.NoError(t, err)

	require.NotNil(t, updated)
	assert.Equal(t, int64(3100), updated.Price)
	// Непереданные поля остаются прежними
	assert.Equal(t, existing.Name, updated.Name)
	assert.Equal(t, existing.Category, updated.Category)
	assert.Equal(t, existing.ImageKey, updated.ImageKey)
}

func TestProductUseCaseUpdate_InvalidPriceRejected(t *testing.T) {
	productRepo := &productRepoStub{
		getByIDFn: func(ctx context.Context, id string) (*domain.Product, error) {
			return makeProduct("p-1"), nil
		},
	}

	uc := usecase.NewProductUC(productRepo, &cacheRepoStub{}, &imageRepoStub{}, loggerStub{})

	badPrice := int64(-1)
	_, err := uc.Update(context.Background(), "p-1", &usecase.UpdateProductReq{Price: &badPrice})
	assert.ErrorIs(t, err, e.ErrPriceMustBePositive)
}

func TestProductUseCaseDelete_NotFound(t *testing.T) {
	productRepo := &productRepoStub{
		getByIDFn: func(ctx context.Context, id string) (*domain.Product, error) {
			return nil, e.ErrProductNotFound
		},
		// softDeleteFn не задан: вызов при отсутствующем продукте провалит тест
	}

	uc := usecase.NewProductUC(productRepo, &cacheRepoStub{}, &imageRepoStub{}, loggerStub{})

	err := uc.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, e.ErrProductNotFound)
}

func TestProductUseCaseDelete_InvalidatesCache(t *testing.T) {
	var invalidated []string
	cacheRepo := &cacheRepoStub{
		delFn: func(ctx context.Context, ids []string) error {
			invalidated = ids
			return nil
		},
	}
	productRepo := &productRepoStub{
		getByIDFn: func(ctx context.Context, id string) (*domain.Product, error) {
			return makeProduct(id), nil
		},
		softDeleteFn: func(ctx context.Context, id string) error {
			return nil
		},
	}

	uc := usecase.NewProductUC(productRepo, cacheRepo, &imageRepoStub{}, loggerStub{})

	require.NoError(t, uc.Delete(context.Background(), "p-1"))
	assert.Equal(t, []string{"p-1"}, invalidated)
}

func TestProductUseCaseAttachImage_UnsupportedMime(t *testing.T) {
	productRepo := &productRepoStub{
		getByIDFn: func(ctx context.Context, id string) (*domain.Product, error) {
			return makeProduct(id), nil
		},
	}

	// uploadFn не задан: загрузка файла неподдерживаемого типа провалит тест
	uc := usecase.NewProductUC(productRepo, &cacheRepoStub{}, &imageRepoStub{}, loggerStub{})

	_, err := uc.AttachImage(context.Background(), "p-1", usecase.ProductImage{
		Data:     []byte("GIF89a"),
		MimeType: "image/gif",
		Size:     6,
	})
	assert.ErrorIs(t, err, e.ErrUnsupportedMediaType)
}

func TestProductUseCaseAttachImage_ReplacesOldImage(t *testing.T) {
	existing := makeProduct("p-1")
	existing.ImageKey = "products/p-1/old.jpg"

	var deletedKey, savedKey string
	productRepo := &productRepoStub{
		getByIDFn: func(ctx context.Context, id string) (*domain.Product, error) {
			return existing, nil
		},
		setImageKeyFn: func(ctx context.Context, id, key string) error {
			savedKey = key
			return nil
		},
	}
	imageRepo := &imageRepoStub{
		uploadFn: func(ctx context.Context, image *domain.Image) (string, error) {
			return image.ObjectKey, nil
		},
		deleteFn: func(ctx context.Context, key string) error {
			deletedKey = key
			return nil
		},
	}

	uc := usecase.NewProductUC(productRepo, &cacheRepoStub{}, imageRepo, loggerStub{})

	product, err := uc.AttachImage(context.Background(), "p-1", usecase.ProductImage{
		Data:     []byte{0xFF, 0xD8, 0xFF},
		MimeType: "image/jpeg",
		Size:     3,
	})
	require.NoError(t, err)

	assert.Equal(t, savedKey, product.ImageKey)
	assert.NotEqual(t, "products/p-1/old.jpg", product.ImageKey)
	assert.Equal(t, "products/p-1/old.jpg", deletedKey)
}
