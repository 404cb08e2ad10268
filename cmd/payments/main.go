package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/quetzapay/quetzapay/internal/pkg/config"
	"github.com/quetzapay/quetzapay/internal/pkg/database"
	"github.com/quetzapay/quetzapay/internal/pkg/health"
	"github.com/quetzapay/quetzapay/internal/pkg/logger"
	"github.com/quetzapay/quetzapay/internal/pkg/middleware"
	natspkg "github.com/quetzapay/quetzapay/internal/pkg/nats"
	"github.com/quetzapay/quetzapay/internal/pkg/server"
	wspkg "github.com/quetzapay/quetzapay/internal/pkg/websocket"

	merchantHandler "github.com/quetzapay/quetzapay/services/merchants/handler"
	merchantHTTP "github.com/quetzapay/quetzapay/services/merchants/handler/http"
	merchantRepo "github.com/quetzapay/quetzapay/services/merchants/repository"
	merchantUsecase "github.com/quetzapay/quetzapay/services/merchants/usecase"
	"github.com/quetzapay/quetzapay/services/payments/gateway"
	"github.com/quetzapay/quetzapay/services/payments/handler"
	paymentHTTP "github.com/quetzapay/quetzapay/services/payments/handler/http"
	paymentNATS "github.com/quetzapay/quetzapay/services/payments/handler/nats"
	paymentWS "github.com/quetzapay/quetzapay/services/payments/handler/websocket"
	"github.com/quetzapay/quetzapay/services/payments/repository"
	"github.com/quetzapay/quetzapay/services/payments/usecase"
)

func main() {
	appName := "payments-service"
	configPath := os.Getenv("CONFIG_PATH")
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}
	defer natsClient.Close()

	// Initialize repositories
	transactionRepo := repository.NewTransactionRepository(postgresClient.GetDB())
	merchantRepository := merchantRepo.NewMerchantRepository(postgresClient.GetDB())

	// Initialize gateway and resolve the merchant wallet. A failed bootstrap
	// is not fatal: payments fall back to offline mode until the gateway
	// comes back.
	paymentGW := gateway.NewPaymentGW(natsClient, redisClient, configs, zapLogger)
	bootstrapCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	_ = paymentGW.Bootstrap(bootstrapCtx)
	cancel()

	// Initialize usecases
	paymentUC := usecase.NewPaymentUC(transactionRepo, paymentGW, configs)
	merchantUC := merchantUsecase.NewMerchantUC(merchantRepository, configs)

	// Handlers for HTTP
	paymentHandler := paymentHTTP.NewPaymentHandler(paymentUC)
	merchantHTTPHandler := merchantHTTP.NewMerchantHandler(merchantUC)

	// Handlers for WebSocket
	wsManager := wspkg.NewManager(configs.JWT)
	wsHandler := paymentWS.NewWebSocketHandler(paymentUC, wsManager)

	// Handlers for NATS
	natsHandler := paymentNATS.NewNatsHandler(natsClient, wsManager)

	paymentsRoutes := handler.NewHandler(paymentHandler, wsHandler, natsHandler, configs)
	merchantsRoutes := merchantHandler.NewHandler(merchantHTTPHandler, configs)

	// Initialize Echo router
	e := echo.New()

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName)

	// Register service routes
	merchantsRoutes.RegisterRoutes(e)
	if err := paymentsRoutes.RegisterRoutes(e, redisClient); err != nil {
		zapLogger.Fatal("Failed to register payment routes", zap.Error(err))
	}

	// Start server with graceful shutdown
	shutdownTimeout := time.Duration(configs.Server.ShutdownTimeout) * time.Second
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port, shutdownTimeout)
	srv.RegisterCleanup(func(ctx context.Context) error {
		natsHandler.Close()
		return nil
	})

	zapLogger.Info("Starting server",
		zap.String("app", appName),
		zap.Int("port", configs.Server.Port),
	)

	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server error",
			zap.String("app", appName),
			zap.Error(err),
		)
	}
}
