// Package app wires the ledger features together for the API server and the CLI.
package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"parcel-ledger/internal/core/cache"
	"parcel-ledger/internal/core/config"
	"parcel-ledger/internal/core/logger"
	"parcel-ledger/internal/core/server"
	analyticshandler "parcel-ledger/internal/features/analytics/handler"
	analyticsservice "parcel-ledger/internal/features/analytics/service"
	enrichmentadapters "parcel-ledger/internal/features/enrichment/adapters"
	enrichmenthandler "parcel-ledger/internal/features/enrichment/handler"
	enrichmentservice "parcel-ledger/internal/features/enrichment/service"
	ledgeradapters "parcel-ledger/internal/features/ledger/adapters"
	ledgerhandler "parcel-ledger/internal/features/ledger/handler"
	ledgerservice "parcel-ledger/internal/features/ledger/service"

	"go.uber.org/zap"
)

// shutdownTimeout bounds how long in-flight requests get on shutdown.
const shutdownTimeout = 10 * time.Second

// App holds the services shared by every entrypoint.
type App struct {
	Config    *config.AppConfig
	Ledger    *ledgerservice.LedgerService
	Engine    *enrichmentservice.Engine
	Analytics *analyticsservice.AnalyticsService
}

// New builds the services for the ledger configured in cfg.
func New(cfg *config.AppConfig) *App {
	path := cfg.Ledger.Path()
	store := ledgeradapters.NewXlsxStore()
	courier := enrichmentadapters.NewLeopardAdapter(cfg.Leopard, cfg.Proxy)

	ledger := ledgerservice.NewLedgerService(store, store, path)

	return &App{
		Config: cfg,
		Ledger: ledger,
		Engine: enrichmentservice.NewEngine(store, courier, courier, path, enrichmentservice.Options{
			TrackingWorkers:  cfg.Sync.TrackingWorkers,
			PaymentBatchSize: cfg.Sync.PaymentBatchSize,
		}),
		Analytics: analyticsservice.NewAnalyticsService(ledger),
	}
}

// NewServer builds the HTTP server with every route registered.
// The coordinator owns background sync runs; the caller must Close it.
func (a *App) NewServer(c cache.Cache) (*server.Server, *enrichmentservice.Coordinator) {
	runs := enrichmentadapters.NewRedisRunRepository(c, a.Config.Redis.RunTTL, a.Config.Redis.LockTTL)
	coordinator := enrichmentservice.NewCoordinator(a.Engine, runs, a.Config.Ledger.Path())
	// Imports and sorts share the run lock so a sync never overwrites them.
	a.Ledger.UseLock(runs)

	ledgerHdl := ledgerhandler.NewLedgerHandler(a.Ledger)
	syncHdl := enrichmenthandler.NewSyncHandler(coordinator)
	analyticsHdl := analyticshandler.NewAnalyticsHandler(a.Analytics)

	srv := server.New(a.Config)

	// Register Routes
	srv.App.Post("/ledger/import", ledgerHdl.Import)
	srv.App.Post("/ledger/sort", ledgerHdl.Sort)
	srv.App.Get("/ledger/summary", analyticsHdl.Summary)
	srv.App.Get("/ledger/analytics", analyticsHdl.Analytics)
	srv.App.Get("/ledger/highlights", analyticsHdl.Highlights)
	srv.App.Post("/sync/:mode", syncHdl.StartRun)
	srv.App.Get("/sync/runs/:id", syncHdl.GetRun)

	return srv, coordinator
}

// Serve connects to Redis and runs the HTTP API until SIGINT or SIGTERM.
func (a *App) Serve(ctx context.Context) error {
	l := logger.Get()

	redisCache, err := cache.NewRedisAdapter(a.Config.Redis.URL)
	if err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	defer redisCache.Close()

	if err := redisCache.Ping(ctx); err != nil {
		return fmt.Errorf("redis health check failed: %w", err)
	}
	l.Info("Redis connection verified")

	srv, coordinator := a.NewServer(redisCache)
	defer coordinator.Close()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Run()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	l.Info("Shutting down server")
	if err := srv.App.ShutdownWithTimeout(shutdownTimeout); err != nil {
		l.Error("Server shutdown failed", zap.Error(err))
	}
	return nil
}
