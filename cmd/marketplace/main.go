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
	"github.com/peermart/peermart/internal/pkg/config"
	"github.com/peermart/peermart/internal/pkg/database"
	"github.com/peermart/peermart/internal/pkg/logger"
	"github.com/peermart/peermart/internal/pkg/middleware"
	"github.com/peermart/peermart/internal/pkg/nats"
	accountsHandler "github.com/peermart/peermart/services/accounts/handler"
	accountsRepo "github.com/peermart/peermart/services/accounts/repository"
	accountsUC "github.com/peermart/peermart/services/accounts/usecase"
	disputesGW "github.com/peermart/peermart/services/disputes/gateway"
	disputesHandler "github.com/peermart/peermart/services/disputes/handler"
	disputesRepo "github.com/peermart/peermart/services/disputes/repository"
	disputesUC "github.com/peermart/peermart/services/disputes/usecase"
	listingsHandler "github.com/peermart/peermart/services/listings/handler"
	listingsRepo "github.com/peermart/peermart/services/listings/repository"
	listingsUC "github.com/peermart/peermart/services/listings/usecase"
	transactionsGW "github.com/peermart/peermart/services/transactions/gateway"
	transactionsHandler "github.com/peermart/peermart/services/transactions/handler"
	transactionsRepo "github.com/peermart/peermart/services/transactions/repository"
	transactionsUC "github.com/peermart/peermart/services/transactions/usecase"
)

func main() {
	appName := "marketplace-service"
	configPath := "config/marketplace.env"
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
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

	// Apply schema migrations before serving traffic
	if err := database.RunMigrations(configs.Database); err != nil {
		zapLogger.Fatal("Failed to run database migrations", logger.Err(err))
	}

	// Initialize NATS client
	natsClient, err := nats.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	db := postgresClient.GetDB()

	// Initialize repositories
	accountRepo := accountsRepo.NewAccountRepo(configs, db)
	listingRepo := listingsRepo.NewListingRepo(configs, db)
	transactionRepo := transactionsRepo.NewTransactionRepo(configs, db)
	disputeRepo := disputesRepo.NewDisputeRepo(configs, db)

	// Initialize gateways
	transactionGW := transactionsGW.NewTransactionGW(natsClient)
	disputeGW := disputesGW.NewDisputeGW(natsClient)

	// Initialize usecases
	accountUC := accountsUC.NewAccountUC(configs, accountRepo)
	listingUC := listingsUC.NewListingUC(configs, listingRepo)
	transactionUC := transactionsUC.NewTransactionUC(configs, transactionRepo, transactionGW)
	disputeUC := disputesUC.NewDisputeUC(configs, disputeRepo, disputeGW)

	// Initialize handlers
	accountHandler := accountsHandler.NewHandler(accountUC, configs)
	listingHandler := listingsHandler.NewHandler(listingUC, configs)
	transactionHandler := transactionsHandler.NewHandler(transactionUC, configs)
	disputeHandler := disputesHandler.NewHandler(disputeUC, configs)

	// Initialize Echo server
	e := echo.New()

	// Add middlewares (panic recovery should be first)
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Initialize JWT middleware
	jwtMiddleware := middleware.NewJWTMiddleware(configs.JWT)

	// Register service routes
	accountHandler.RegisterRoutes(e, jwtMiddleware)
	listingHandler.RegisterRoutes(e, jwtMiddleware)
	transactionHandler.RegisterRoutes(e, jwtMiddleware)
	disputeHandler.RegisterRoutes(e, jwtMiddleware)

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

	zapLogger.Info("Closing NATS connection...")
	natsClient.Close()

	zapLogger.Info("Server exiting gracefully")
	_ = zapLogger.Sync()
}
