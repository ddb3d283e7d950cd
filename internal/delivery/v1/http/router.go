package http

import (
	_ "github.com/easy-order/go-backend/docs" // Импорт сгенерированных файлов
	"github.com/easy-order/go-backend/internal/cfg"
	"github.com/easy-order/go-backend/internal/usecase"
	"github.com/easy-order/go-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(prUC usecase.ProductUC, orUC usecase.OrderUC, minioCfg *cfg.MinIOCfg) {
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"), // ссылка на JSON
	))

	r.router.Route("/api/v1", func(v1 chi.Router) {
		prHandler := NewProductHandler(prUC, r.logger, minioCfg.MaxImageSize)
		registerProductRoutes(v1, prHandler)

		orHandler := NewOrderHandler(orUC, r.logger)
		registerOrderRoutes(v1, orHandler)
	})
}

func registerProductRoutes(router chi.Router, prHandler *ProductHandler) {
	router.Route("/products", func(pr chi.Router) {
		pr.Post("/", prHandler.createProduct)
		pr.Get("/", prHandler.listProducts)
		pr.Get("/{id}", prHandler.getProduct)
		pr.Patch("/{id}", prHandler.updateProduct)
		pr.Delete("/{id}", prHandler.deleteProduct)
		pr.Post("/{id}/image", prHandler.attachImage)
	})
}

func registerOrderRoutes(router chi.Router, orHandler *OrderHandler) {
	router.Route("/orders", func(or chi.Router) {
		or.Post("/", orHandler.createOrder)
		or.Get("/", orHandler.listOrders)
		or.Get("/{id}", orHandler.getOrder)
		or.Patch("/{id}", orHandler.updateOrder)
		or.Delete("/{id}", orHandler.deleteOrder)
	})
}
