package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/robfig/cron/v3"

	"github.com/nrattyp233/moneybuddy/internal/pkg/config"
	"github.com/nrattyp233/moneybuddy/internal/pkg/database"
	"github.com/nrattyp233/moneybuddy/internal/pkg/fee"
	"github.com/nrattyp233/moneybuddy/internal/pkg/health"
	"github.com/nrattyp233/moneybuddy/internal/pkg/logger"
	"github.com/nrattyp233/moneybuddy/internal/pkg/middleware"
	natspkg "github.com/nrattyp233/moneybuddy/internal/pkg/nats"
	"github.com/nrattyp233/moneybuddy/internal/pkg/server"
	geofenceGateway "github.com/nrattyp233/moneybuddy/services/geofence/gateway"
	geofenceHandler "github.com/nrattyp233/moneybuddy/services/geofence/handler"
	geofenceRepository "github.com/nrattyp233/moneybuddy/services/geofence/repository"
	geofenceUsecase "github.com/nrattyp233/moneybuddy/services/geofence/usecase"
	ledgerRepository "github.com/nrattyp233/moneybuddy/services/ledger/repository"
	savingsGateway "github.com/nrattyp233/moneybuddy/services/savings/gateway"
	savingsHandler "github.com/nrattyp233/moneybuddy/services/savings/handler"
	savingsRepository "github.com/nrattyp233/moneybuddy/services/savings/repository"
	savingsUsecase "github.com/nrattyp233/moneybuddy/services/savings/usecase"
	transferGateway "github.com/nrattyp233/moneybuddy/services/transfer/gateway"
	transferHandler "github.com/nrattyp233/moneybuddy/services/transfer/handler"
	transferUsecase "github.com/nrattyp233/moneybuddy/services/transfer/usecase"
)

const sweepTimeout = 30 * time.Second

func main() {
	appName := "ledger-service"
	configPath := os.Getenv("LEDGER_CONFIG")
	if configPath == "" {
		configPath = "config/ledger.env"
	}
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
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

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	// Fee engine shared by the transfer and savings paths
	feeEngine := fee.NewEngine(configs.Pricing)

	// Repositories
	ledgerRepo := ledgerRepository.NewLedgerRepository(postgresClient.GetDB())
	geofenceRepo := geofenceRepository.NewGeofenceRepository(postgresClient.GetDB())
	savingsRepo := savingsRepository.NewSavingsRepository(postgresClient.GetDB())

	// Gateways
	transferGW := transferGateway.NewTransferGW(natsClient, configs.Processor, zapLogger)
	geofenceGW := geofenceGateway.NewGeofenceGW(natsClient, redisClient)
	savingsGW := savingsGateway.NewSavingsGW(natsClient)

	// UseCases
	transferUC, err := transferUsecase.NewTransferUC(configs, ledgerRepo, transferGW, redisClient, feeEngine)
	if err != nil {
		zapLogger.Fatal("Failed to initialize transfer orchestrator", logger.Err(err))
	}
	geofenceUC := geofenceUsecase.NewGeofenceUC(configs, geofenceRepo, ledgerRepo, geofenceGW)
	savingsUC, err := savingsUsecase.NewSavingsUC(configs, savingsRepo, savingsGW, feeEngine)
	if err != nil {
		zapLogger.Fatal("Failed to initialize savings lock manager", logger.Err(err))
	}

	// Background sweeps: geofence expiry refunds and savings maturity
	scheduler := cron.New()
	geofenceSpec := configs.Scheduler.GeofenceExpirySpec
	if geofenceSpec == "" {
		geofenceSpec = "@every 1m"
	}
	if _, err := scheduler.AddFunc(geofenceSpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
		defer cancel()
		if _, err := geofenceUC.ExpireDue(ctx, time.Now()); err != nil {
			zapLogger.Error("Geofence expiry sweep failed", logger.Err(err))
		}
	}); err != nil {
		zapLogger.Fatal("Failed to schedule geofence expiry sweep", logger.Err(err))
	}

	maturitySpec := configs.Scheduler.SavingsMaturitySpec
	if maturitySpec == "" {
		maturitySpec = "@every 10m"
	}
	if _, err := scheduler.AddFunc(maturitySpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
		defer cancel()
		if _, err := savingsUC.SweepMatured(ctx, time.Now()); err != nil {
			zapLogger.Error("Savings maturity sweep failed", logger.Err(err))
		}
	}); err != nil {
		zapLogger.Fatal("Failed to schedule savings maturity sweep", logger.Err(err))
	}

	scheduler.Start()
	defer scheduler.Stop()

	// Initialize Echo router
	e := echo.New()

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName)

	// Authenticated API surface
	api := e.Group("/api/v1", middleware.JWTAuthMiddleware(configs.JWT))
	transferHandler.NewHandler(transferUC).RegisterRoutes(api)
	geofenceHandler.NewHandler(geofenceUC).RegisterRoutes(api)
	savingsHandler.NewHandler(savingsUC).RegisterRoutes(api)

	// Start server with graceful shutdown
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server terminated", logger.Err(err))
	}
}
