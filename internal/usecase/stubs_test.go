package usecase_test

import (
	"context"
	"errors"

	"github.com/easy-order/go-backend/internal/domain"
	"github.com/easy-order/go-backend/internal/usecase"
	"github.com/jackc/pgx/v5"
)

// loggerStub — логгер-заглушка, поглощающий вывод в тестах.
type loggerStub struct{}

func (loggerStub) Debugf(format string, args ...any)            {}
func (loggerStub) Infof(format string, args ...any)             {}
func (loggerStub) Warnf(format string, args ...any)             {}
func (loggerStub) Errorf(err error, format string, args ...any) {}

// productRepoStub реализует usecase.ProductRepository через подменяемые функции.
type productRepoStub struct {
	createFn      func(ctx context.Context, product *domain.Product) (*domain.Product, error)
	getByIDFn     func(ctx context.Context, id string) (*domain.Product, error)
	listAllFn     func(ctx context.Context) ([]*domain.Product, error)
	updateFn      func(ctx context.Context, product *domain.Product) (*domain.Product, error)
	softDeleteFn  func(ctx context.Context, id string) error
	setImageKeyFn func(ctx context.Context, id, key string) error
}

func (s *productRepoStub) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if s.createFn == nil {
		return nil, errors.New("unexpected call to Create")
	}
	return s.createFn(ctx, product)
}

func (s *productRepoStub) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	if s.getByIDFn == nil {
		return nil, errors.New("unexpected call to GetByID")
	}
	return s.getByIDFn(ctx, id)
}

func (s *productRepoStub) ListAll(ctx context.Context) ([]*domain.Product, error) {
	if s.listAllFn == nil {
		return nil, errors.New("unexpected call to ListAll")
	}
	return s.listAllFn(ctx)
}

func (s *productRepoStub) Update(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if s.updateFn == nil {
		return nil, errors.New("unexpected call to Update")
	}
	return s.updateFn(ctx, product)
}

func (s *productRepoStub) SoftDelete(ctx context.Context, id string) error {
	if s.softDeleteFn == nil {
		return errors.New("unexpected call to SoftDelete")
	}
	return s.softDeleteFn(ctx, id)
}

func (s *productRepoStub) SetImageKey(ctx context.Context, id, key string) error {
	if s.setImageKeyFn == nil {
		return errors.New("unexpected call to SetImageKey")
	}
	return s.setImageKeyFn(ctx, id, key)
}

// ordersRepoStub реализует usecase.OrdersRepository.
type ordersRepoStub struct {
	createFn  func(ctx context.Context, order *domain.Order) (*domain.Order, error)
	getByIDFn func(ctx context.Context, id string) (*domain.Order, error)
	listAllFn func(ctx context.Context) ([]*domain.Order, error)
	updateFn  func(ctx context.Context, order *domain.Order) (*domain.Order, error)
	deleteFn  func(ctx context.Context, id string) error
}

func (s *ordersRepoStub) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if s.createFn == nil {
		return nil, errors.New("unexpected call to Create")
	}
	return s.createFn(ctx, order)
}

func (s *ordersRepoStub) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	if s.getByIDFn == nil {
		return nil, errors.New("unexpected call to GetByID")
	}
	return s.getByIDFn(ctx, id)
}

func (s *ordersRepoStub) ListAll(ctx context.Context) ([]*domain.Order, error) {
	if s.listAllFn == nil {
		return nil, errors.New("unexpected call to ListAll")
	}
	return s.listAllFn(ctx)
}

func (s *ordersRepoStub) Update(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if s.updateFn == nil {
		return nil, errors.New("unexpected call to Update")
	}
	return s.updateFn(ctx, order)
}

func (s *ordersRepoStub) Delete(ctx context.Context, id string) error {
	if s.deleteFn == nil {
		return errors.New("unexpected call to Delete")
	}
	return s.deleteFn(ctx, id)
}

// cacheRepoStub реализует usecase.CacheRepository.
type cacheRepoStub struct {
	getFn func(ctx context.Context, ids []string) (map[string]*domain.Product, error)
	setFn func(ctx context.Context, products []*domain.Product) error
	delFn func(ctx context.Context, ids []string) error
}

func (s *cacheRepoStub) GetProducts(ctx context.Context, ids []string) (map[string]*domain.Product, error) {
	if s.getFn == nil {
		return nil, errors.New("cache unavailable")
	}
	return s.getFn(ctx, ids)
}

func (s *cacheRepoStub) SetProducts(ctx context.Context, products []*domain.Product) error {
	if s.setFn == nil {
		return nil
	}
	return s.setFn(ctx, products)
}

func (s *cacheRepoStub) DeleteProducts(ctx context.Context, ids []string) error {
	if s.delFn == nil {
		return nil
	}
	return s.delFn(ctx, ids)
}

// outboxRepoStub реализует usecase.OutboxRepository.
type outboxRepoStub struct {
	createFn func(ctx context.Context, event *usecase.OutboxEvent) (*usecase.OutboxEvent, error)
}

func (s *outboxRepoStub) Create(ctx context.Context, event *usecase.OutboxEvent) (*usecase.OutboxEvent, error) {
	if s.createFn == nil {
		return nil, errors.New("unexpected call to Create")
	}
	return s.createFn(ctx, event)
}

func (s *outboxRepoStub) GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*usecase.OutboxEvent, error) {
	return nil, errors.New("unexpected call to GetAndMarkAsProcessing")
}

func (s *outboxRepoStub) MarkAsProcessed(ctx context.Context, id int64) error {
	return errors.New("unexpected call to MarkAsProcessed")
}

// imageRepoStub реализует usecase.ImageRepository.
type imageRepoStub struct {
	uploadFn func(ctx context.Context, image *domain.Image) (string, error)
	deleteFn func(ctx context.Context, key string) error
}

func (s *imageRepoStub) Upload(ctx context.Context, image *domain.Image) (string, error) {
	if s.uploadFn == nil {
		return "", errors.New("unexpected call to Upload")
	}
	return s.uploadFn(ctx, image)
}

func (s *imageRepoStub) Delete(ctx context.Context, key string) error {
	if s.deleteFn == nil {
		return errors.New("unexpected call to Delete")
	}
	return s.deleteFn(ctx, key)
}

// fakeTx подменяет pgx.Tx: Commit и Rollback учитываются, остальные методы не используются.
type fakeTx struct {
	pgx.Tx
	committed  *bool
	rolledBack *bool
}

func (t fakeTx) Commit(ctx context.Context) error {
	*t.committed = true
	return nil
}

func (t fakeTx) Rollback(ctx context.Context) error {
	*t.rolledBack = true
	return nil
}

// fakeTransactional подменяет пул соединений для transaction.NewTransaction.
type fakeTransactional struct {
	beginCalled bool
	committed   bool
	rolledBack  bool
}

func (f *fakeTransactional) Begin(ctx context.Context) (pgx.Tx, error) {
	f.beginCalled = true
	return fakeTx{committed: &f.committed, rolledBack: &f.rolledBack}, nil
}

func (f *fakeTransactional) BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error) {
	return f.Begin(ctx)
}
