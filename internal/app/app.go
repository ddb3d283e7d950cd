package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/easy-order/go-backend/internal/cfg"
	v1Http "github.com/easy-order/go-backend/internal/delivery/v1/http"
	"github.com/easy-order/go-backend/internal/infrastructure/kafka"
	s3Repo "github.com/easy-order/go-backend/internal/repository/minio"
	"github.com/easy-order/go-backend/internal/repository/pgdb"
	pgdbConv "github.com/easy-order/go-backend/internal/repository/pgdb/converter"
	"github.com/easy-order/go-backend/internal/repository/redis"
	redisConv "github.com/easy-order/go-backend/internal/repository/redis/converter"
	"github.com/easy-order/go-backend/internal/usecase"
	"github.com/easy-order/go-backend/pkg/clients"
	"github.com/easy-order/go-backend/pkg/closer"
	"github.com/easy-order/go-backend/pkg/e"
	"github.com/easy-order/go-backend/pkg/logger"
	"github.com/easy-order/go-backend/pkg/postgres"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

// App собирает все зависимости сервиса и управляет их жизненным циклом.
// Ресурсы регистрируются в closer и закрываются в обратном порядке (LIFO).
type App struct {
	cfg    *config.Config
	logger logger.Logger

	httpSrv *v1Http.Server
	worker  *kafka.OutboxWorker
	closer  *closer.Closer

	workerCancel context.CancelFunc
}

func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	cl := closer.NewCloser(2 * time.Second)

	db, err := initPGDB(log, cfg)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cl.Add(func(ctx context.Context) error {
		db.Close()
		log.Infof("PostgreSQL pool closed")
		return nil
	})

	prConv := pgdbConv.NewProductConverter()
	orConv := pgdbConv.NewOrderConverter()
	obConv := pgdbConv.NewOutboxEventConverter()
	cacheConv := redisConv.NewProductConverter()

	productRepo := pgdb.NewProductRepo(db.Pool, prConv)
	orderRepo := pgdb.NewOrderRepo(db.Pool, orConv)
	outboxRepo := pgdb.NewOutboxEventRepo(db.Pool, obConv)

	redisClient := clients.NewRedisClient(cfg.Redis)
	redisCtx, redisCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer redisCancel()
	if err := redisClient.Ping(redisCtx); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cl.Add(func(ctx context.Context) error {
		return redisClient.Client.Close()
	})
	cacheRepo := redis.NewCacheRepo(redisClient, cacheConv, cfg.Redis, log)

	minioClient, err := clients.NewMinIOClient(cfg.Minio)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	minioCtx, minioCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer minioCancel()
	if err := clients.EnsureBucket(minioCtx, minioClient, cfg.Minio.BucketName); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	imageRepo := s3Repo.NewImageRepo(minioClient, cfg.Minio)

	producer, err := kafka.NewProducer(log, cfg.Kafka)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	if err := producer.EnsureTopic(10 * time.Second); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cl.Add(func(ctx context.Context) error {
		return producer.Close()
	})

	app := &App{
		cfg:    cfg,
		logger: log,
		closer: cl,
	}

	app.worker = kafka.NewOutboxWorker(outboxRepo, log, producer, db.Dsn)
	cl.Add(func(ctx context.Context) error {
		if app.workerCancel != nil {
			app.workerCancel()
		}
		app.worker.Stop()
		log.Infof("Outbox worker stopped")
		return nil
	})

	productUC := usecase.NewProductUC(productRepo, cacheRepo, imageRepo, log)
	orderUC := usecase.NewOrderUC(orderRepo, productRepo, outboxRepo, db.Pool, log)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, log)
	router.Init(productUC, orderUC, cfg.Minio)

	app.httpSrv = v1Http.NewServer(r, cfg.Http)
	cl.Add(func(ctx context.Context) error {
		return app.httpSrv.Stop(ctx)
	})

	return app, nil
}

// Run запускает outbox-воркер и HTTP-сервер, блокируется до сигнала
// завершения или фатальной ошибки сервера, после чего закрывает ресурсы.
func (a *App) Run() error {
	workerCtx, workerCancel := context.WithCancel(context.Background())
	a.workerCancel = workerCancel
	a.worker.Start(workerCtx)

	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Errorf(err, "HTTP server failed")
			errCh <- err
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := a.closer.Close(shutdownCtx); err != nil {
		a.logger.Warnf("Shutdown finished with errors: %v", err)
	}

	a.logger.Infof("Application shutdown complete")
	return appErr
}

func initPGDB(logger logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(cfg.Db)
	if err != nil {
		logger.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(logger); err != nil {
		logger.Errorf(err, "failed to run migrations")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.Ping(); err != nil {
		logger.Errorf(err, "failed to ping database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}
