package main

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/arjunks/ambuconnect/internal/pkg/config"
	"github.com/arjunks/ambuconnect/internal/pkg/database"
	"github.com/arjunks/ambuconnect/internal/pkg/logger"
	"github.com/arjunks/ambuconnect/internal/pkg/middleware"
	natspkg "github.com/arjunks/ambuconnect/internal/pkg/nats"
	"github.com/arjunks/ambuconnect/internal/pkg/server"
	bookingGateway "github.com/arjunks/ambuconnect/services/booking/gateway"
	bookingRepository "github.com/arjunks/ambuconnect/services/booking/repository"
	bookingUsecase "github.com/arjunks/ambuconnect/services/booking/usecase"
	dispatchGateway "github.com/arjunks/ambuconnect/services/dispatch/gateway"
	dispatchHandler "github.com/arjunks/ambuconnect/services/dispatch/handler"
	dispatchUsecase "github.com/arjunks/ambuconnect/services/dispatch/usecase"
	fleetGateway "github.com/arjunks/ambuconnect/services/fleet/gateway"
	fleetHandler "github.com/arjunks/ambuconnect/services/fleet/handler"
	fleetRepository "github.com/arjunks/ambuconnect/services/fleet/repository"
	fleetUsecase "github.com/arjunks/ambuconnect/services/fleet/usecase"
	locationGateway "github.com/arjunks/ambuconnect/services/location/gateway"
	locationHandler "github.com/arjunks/ambuconnect/services/location/handler"
	locationRepository "github.com/arjunks/ambuconnect/services/location/repository"
	locationUsecase "github.com/arjunks/ambuconnect/services/location/usecase"
)

func main() {
	cfg := config.InitConfig(".env")

	zapLogger, err := logger.NewZapLogger(cfg.Logger)
	if err != nil {
		panic(err)
	}
	logger.SetGlobalLogger(zapLogger)
	defer zapLogger.Sync()

	logger.Info("Starting ambuconnect",
		logger.String("env", cfg.App.Environment),
		logger.String("version", cfg.App.Version))

	// Infrastructure
	db, err := database.NewPostgresDB(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to Postgres", logger.Err(err))
	}

	redisClient, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", logger.Err(err))
	}

	natsClient, err := natspkg.NewClient(cfg.NATS.URL)
	if err != nil {
		logger.Fatal("Failed to connect to NATS", logger.Err(err))
	}

	shutdown := server.NewShutdownManager(zapLogger)
	shutdown.Register(func(ctx context.Context) error { return db.Close() })
	shutdown.Register(func(ctx context.Context) error { return redisClient.Close() })
	shutdown.Register(func(ctx context.Context) error { natsClient.Close(); return nil })

	// Repositories
	locationTTL := time.Duration(cfg.Dispatch.LocationTTLMinutes) * time.Minute
	locationRepo := locationRepository.NewLocationRepository(redisClient, locationTTL)
	ambulanceRepo := fleetRepository.NewAmbulanceRepository(cfg, db)
	bookingRepo := bookingRepository.NewBookingRepository(cfg, db)

	// Gateways
	locationGW := locationGateway.NewLocationGW(natsClient)
	fleetGW := fleetGateway.NewFleetGW(natsClient)
	bookingGW := bookingGateway.NewBookingGW(natsClient)
	dispatchGW := dispatchGateway.NewDispatchGW(natsClient)

	// Usecases
	locationUC := locationUsecase.NewLocationUC(locationRepo, locationGW)
	fleetUC := fleetUsecase.NewFleetUC(cfg, ambulanceRepo, fleetGW, natsClient)
	bookingUC := bookingUsecase.NewBookingUC(cfg, bookingRepo, natsClient)
	dispatchUC := dispatchUsecase.NewDispatchUC(cfg, ambulanceRepo, bookingRepo, locationRepo, bookingGW, dispatchGW)

	// HTTP surface
	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.RequestID())

	auth := middleware.JWTAuthMiddleware(cfg.JWT)
	locationHandler.NewHandler(locationUC).RegisterRoutes(e, auth)
	fleetHandler.NewHandler(fleetUC).RegisterRoutes(e, auth)
	dispatchHandler.NewHandler(dispatchUC, bookingUC, locationUC, fleetUC).RegisterRoutes(e, auth)

	srv := server.NewGracefulServer(e, zapLogger, cfg.Server.Port)
	if err := srv.Start(); err != nil {
		logger.Error("Server exited with error", logger.Err(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	shutdown.Shutdown(ctx)
}
