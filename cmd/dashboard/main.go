package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/piresc/tripdash/internal/pkg/circuitbreaker"
	"github.com/piresc/tripdash/internal/pkg/config"
	"github.com/piresc/tripdash/internal/pkg/health"
	"github.com/piresc/tripdash/internal/pkg/logger"
	"github.com/piresc/tripdash/internal/pkg/middleware"
	nrpkg "github.com/piresc/tripdash/internal/pkg/newrelic"
	"github.com/piresc/tripdash/internal/pkg/server"
	gatewayHTTP "github.com/piresc/tripdash/services/dashboard/gateway/http"
	"github.com/piresc/tripdash/services/dashboard/handler"
	"github.com/piresc/tripdash/services/dashboard/usecase"
)

func main() {
	appName := "tripdash"
	configPath := "config/dashboard.env"
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
		logger.String("backend_url", configs.Backend.URL),
		logger.Bool("discard_stale", configs.Dashboard.DiscardStale),
	)

	shutdown := server.NewShutdownManager(zapLogger)
	shutdown.Register(func(context.Context) error {
		return zapLogger.Close()
	})

	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			zapLogger.Warn("New Relic connection timeout", logger.Err(err))
		}
		shutdown.Register(func(context.Context) error {
			nrApp.Shutdown(10 * time.Second)
			return nil
		})
	}

	// Trips API gateway and controller
	tripsGW := gatewayHTTP.NewTripsGateway(configs, zapLogger)
	dashboardUC := usecase.NewDashboardUC(configs, tripsGW, zapLogger, nrApp)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The initial unfiltered query runs once, alongside the server start
	go func() {
		if err := dashboardUC.Initialize(ctx); err != nil {
			logger.Warn("Initial trips query failed, dashboard starts empty", logger.Err(err))
		}
	}()

	e := echo.New()
	e.HideBanner = true

	if nrApp != nil {
		e.Use(nrecho.Middleware(nrApp))
	}
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	healthService := health.NewHealthService(zapLogger)
	healthService.AddChecker("trips-api", health.CheckerFunc(func(context.Context) error {
		if !tripsGW.Ready() {
			return circuitbreaker.ErrCircuitBreakerOpen
		}
		return nil
	}))
	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthService)

	handler.NewHandler(dashboardUC, zapLogger).RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Host, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	if err := srv.Start(ctx); err != nil {
		logger.Error("Server stopped with error", logger.Err(err))
	}

	cleanupCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := shutdown.Shutdown(cleanupCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
