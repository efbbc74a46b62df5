package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/kelasbank/internal/pkg/config"
	"github.com/piresc/kelasbank/internal/pkg/database"
	"github.com/piresc/kelasbank/internal/pkg/health"
	"github.com/piresc/kelasbank/internal/pkg/logger"
	"github.com/piresc/kelasbank/internal/pkg/middleware"
	"github.com/piresc/kelasbank/internal/pkg/nats"
	nrpkg "github.com/piresc/kelasbank/internal/pkg/newrelic"
	ledgerGateway "github.com/piresc/kelasbank/services/ledger/gateway"
	ledgerHandler "github.com/piresc/kelasbank/services/ledger/handler"
	ledgerRepository "github.com/piresc/kelasbank/services/ledger/repository"
	ledgerUsecase "github.com/piresc/kelasbank/services/ledger/usecase"
	loanGateway "github.com/piresc/kelasbank/services/loan/gateway"
	loanHandler "github.com/piresc/kelasbank/services/loan/handler"
	loanRepository "github.com/piresc/kelasbank/services/loan/repository"
	loanUsecase "github.com/piresc/kelasbank/services/loan/usecase"
	marketGateway "github.com/piresc/kelasbank/services/market/gateway"
	marketHandler "github.com/piresc/kelasbank/services/market/handler"
	marketRepository "github.com/piresc/kelasbank/services/market/repository"
	marketUsecase "github.com/piresc/kelasbank/services/market/usecase"
	rewardGateway "github.com/piresc/kelasbank/services/reward/gateway"
	rewardHandler "github.com/piresc/kelasbank/services/reward/handler"
	rewardRepository "github.com/piresc/kelasbank/services/reward/repository"
	rewardUsecase "github.com/piresc/kelasbank/services/reward/usecase"
)

func main() {
	appName := "kelasbank"
	configPath := "config/kelasbank.env"
	configs := config.InitConfig(configPath)

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	// Set global logger for application-wide access
	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// Initialize NATS client
	natsClient, err := nats.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	if !natsClient.IsConnected() {
		zapLogger.Fatal("NATS client not connected")
	}

	db := postgresClient.GetDB()

	// Ledger service
	ledgerRepo := ledgerRepository.NewLedgerRepository(configs, db)
	ledgerGW := ledgerGateway.NewLedgerGW(natsClient)
	ledgerUC, err := ledgerUsecase.NewLedgerUC(configs, ledgerRepo, ledgerGW)
	if err != nil {
		zapLogger.Fatal("Failed to initialize ledger use case", logger.Err(err))
	}
	ledgerH := ledgerHandler.NewHandler(ledgerUC, configs)

	// Seat market service
	marketRepo := marketRepository.NewMarketRepository(configs, db)
	marketGW := marketGateway.NewMarketGW(natsClient)
	marketUC, err := marketUsecase.NewMarketUC(configs, marketRepo, marketGW, redisClient)
	if err != nil {
		zapLogger.Fatal("Failed to initialize market use case", logger.Err(err))
	}
	marketH := marketHandler.NewHandler(marketUC, configs)

	// Loan service
	loanRepo := loanRepository.NewLoanRepository(configs, db)
	loanGW := loanGateway.NewLoanGW(natsClient)
	loanUC, err := loanUsecase.NewLoanUC(configs, loanRepo, loanGW)
	if err != nil {
		zapLogger.Fatal("Failed to initialize loan use case", logger.Err(err))
	}
	loanH := loanHandler.NewHandler(loanUC, configs)

	// Reward service
	rewardRepo := rewardRepository.NewRewardRepository(configs, db)
	rewardGW := rewardGateway.NewRewardGW(natsClient)
	rewardUC, err := rewardUsecase.NewRewardUC(configs, rewardRepo, rewardGW)
	if err != nil {
		zapLogger.Fatal("Failed to initialize reward use case", logger.Err(err))
	}
	rewardH := rewardHandler.NewHandler(rewardUC, natsClient, configs)

	// Consume daily quizzes from the external generator
	if err := rewardH.InitNATSConsumers(); err != nil {
		zapLogger.Fatal("Failed to initialize NATS consumers", logger.Err(err))
	}

	// Initialize Echo server
	e := echo.New()

	// Add middlewares (panic recovery should be first)
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Initialize API key middleware
	apiKeyMiddleware := middleware.NewAPIKeyMiddleware(&configs.APIKey)

	// Health checks
	healthService := health.NewHealthService(zapLogger)
	healthService.AddChecker("postgres", health.NewPostgresHealthChecker(postgresClient))
	healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))
	healthService.AddChecker("nats", health.NewNATSHealthChecker(natsClient))
	health.RegisterEnhancedHealthEndpoints(e, appName, configs.App.Version, healthService)

	// Register service routes
	ledgerH.RegisterRoutes(e, apiKeyMiddleware)
	marketH.RegisterRoutes(e, apiKeyMiddleware)
	loanH.RegisterRoutes(e, apiKeyMiddleware)
	rewardH.RegisterRoutes(e, apiKeyMiddleware)

	// Start server in goroutine
	go func() {
		addr := fmt.Sprintf(":%d", configs.Server.Port)
		zapLogger.Info("Starting HTTP server",
			logger.String("address", addr),
			logger.String("app", appName))

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server", logger.Err(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quit
	zapLogger.Info("Received shutdown signal", logger.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	zapLogger.Info("Shutting down HTTP server...")
	if err := e.Shutdown(ctx); err != nil {
		zapLogger.Error("Server forced to shutdown", logger.Err(err))
	}

	zapLogger.Info("Closing PostgreSQL connection...")
	postgresClient.Close()

	zapLogger.Info("Closing Redis connection...")
	if err := redisClient.Close(); err != nil {
		zapLogger.Error("Error closing Redis connection", logger.Err(err))
	}

	zapLogger.Info("Closing NATS connection...")
	natsClient.Close()

	if nrApp != nil {
		zapLogger.Info("Shutting down New Relic...")
		nrApp.Shutdown(10 * time.Second)
	}

	zapLogger.Info("Server exiting gracefully")
	_ = zapLogger.Sync()
}
