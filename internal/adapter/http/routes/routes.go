package routes

import (
	"context"
	"fmt"
	"net/http"
	"time"

	_ "repair_orders/docs"
	"repair_orders/internal/adapter/http/handlers"
	"repair_orders/internal/adapter/persistence/repository"
	"repair_orders/internal/config"
	"repair_orders/internal/infrastructure/database"
	"repair_orders/internal/infrastructure/payments"
	"repair_orders/internal/usecase"
	"repair_orders/internal/usecase/interfaces"
	"repair_orders/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Run builds the router for cfg and serves it until the listener fails.
func Run(cfg *config.Config) error {
	router, err := NewRouter(context.Background(), cfg)
	if err != nil {
		return err
	}

	log.Info().Str("port", cfg.ServerPort).Str("store", cfg.StoreDriver).Msg("[routes][server] listening")
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		return fmt.Errorf("failed to startup the application: %w", err)
	}
	return nil
}

func NewRouter(ctx context.Context, cfg *config.Config) (*gin.Engine, error) {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if err := getRoutes(ctx, router, cfg); err != nil {
		return nil, err
	}
	return router, nil
}

type stores struct {
	orders   interfaces.IOrderRepository
	payments interfaces.IPaymentRepository
	catalog  interfaces.ICatalog
}

func openStores(ctx context.Context, cfg *config.Config) (stores, error) {
	switch cfg.StoreDriver {
	case config.StoreDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg)
		if err != nil {
			return stores{}, err
		}
		return stores{
			orders:   repository.NewOrderDynamoRepository(ddb, cfg.OrdersTable),
			payments: repository.NewPaymentDynamoRepository(ddb, cfg.PaymentsTable),
			catalog:  repository.NewCatalogDynamo(ddb, cfg.CatalogTable),
		}, nil
	case config.StorePostgres:
		db, err := database.ConnectPostgres(cfg.DBDSN, append(repository.OrderModels(), repository.SupportModels()...)...)
		if err != nil {
			return stores{}, err
		}
		return stores{
			orders:   repository.NewOrderPostgresRepository(db),
			payments: repository.NewPaymentPostgresRepository(db),
			catalog:  repository.NewCatalogPostgres(db),
		}, nil
	default:
		return stores{
			orders:   repository.NewMemoryOrderRepository(),
			payments: repository.NewMemoryPaymentRepository(),
			catalog:  repository.NewMemoryCatalog(),
		}, nil
	}
}

func getRoutes(ctx context.Context, router *gin.Engine, cfg *config.Config) error {
	st, err := openStores(ctx, cfg)
	if err != nil {
		return err
	}

	book := usecase.NewOrderBook(st.orders, st.catalog)
	instructionUseCase := usecase.NewInstructionUseCase(book)
	processUseCase := usecase.NewProcessUseCase(book)
	taskUseCase := usecase.NewTaskUseCase(book)
	ingestUseCase := usecase.NewIngestUseCase(instructionUseCase)

	var paymentGateway interfaces.IPaymentGateway
	if !cfg.PaymentGatewayMock {
		mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken)
		if err != nil {
			log.Warn().Err(err).Msg("[routes][payment] Mercado Pago gateway not configured")
		} else {
			paymentGateway = mpGateway
		}
	}
	paymentUseCase := usecase.NewPaymentUseCase(st.payments, instructionUseCase, paymentGateway, usecase.PaymentOptions{
		Mock:            cfg.PaymentGatewayMock,
		AccessToken:     cfg.MercadoPagoAccessToken,
		TestPayerEmail:  cfg.TestPayerEmail,
		TestPayerUserID: cfg.TestPayerUserID,
	})

	// Public routes
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addOrderRoutes(v1,
		handlers.NewInstructionHandler(instructionUseCase, ingestUseCase),
		handlers.NewProcessHandler(processUseCase),
		handlers.NewTaskHandler(taskUseCase),
	)
	addPaymentRoutes(v1, handlers.NewPaymentHandler(paymentUseCase, cfg.PaymentGatewayMock))
	addCatalogRoutes(v1, handlers.NewCatalogHandler(st.catalog))
	return nil
}

func setMiddlewares(router *gin.Engine) {
	router.Use(requestLogger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error().Interface("panic", recovered).Str("path", c.Request.URL.Path).Msg("[routes][middleware] recovered from panic")
		appErr := pkg.NewDomainErrorSimple("INTERNAL_ERROR", "An internal error occurred", http.StatusInternalServerError)
		c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
	}))
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		event := log.Info()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		}
		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("[routes][http] request")
	}
}
