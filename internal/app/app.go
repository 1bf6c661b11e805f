package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/bayurmdn/garuda-saham-insight/internal/common"
	"github.com/bayurmdn/garuda-saham-insight/internal/config"
	"github.com/bayurmdn/garuda-saham-insight/internal/handlers"
	"github.com/bayurmdn/garuda-saham-insight/internal/interfaces"
	"github.com/bayurmdn/garuda-saham-insight/internal/seed"
	"github.com/bayurmdn/garuda-saham-insight/internal/services/stocks"
	"github.com/bayurmdn/garuda-saham-insight/internal/storage"
	"github.com/bayurmdn/garuda-saham-insight/internal/storage/badger"
)

// App holds all application components and dependencies.
type App struct {
	Config  *config.Config
	Logger  *common.Logger
	Storage interfaces.StorageManager

	StockService *stocks.Service
	Maintenance  *badger.Maintenance

	// HTTP handlers
	StocksHandler    *handlers.StocksHandler
	ExportHandler    *handlers.ExportHandler
	WatchlistHandler *handlers.WatchlistHandler
	SectorsHandler   *handlers.SectorsHandler
	DashboardHandler *handlers.DashboardHandler
	SettingsHandler  *handlers.SettingsHandler
	HealthHandler    *handlers.HealthHandler
	VersionHandler   *handlers.VersionHandler
	WSHandler        *handlers.WebSocketHandler

	unsubscribeWS func()
}

// New initializes the application with all dependencies.
func New(cfg *config.Config, logger *common.Logger) (*App, error) {
	a := &App{
		Config: cfg,
		Logger: logger,
	}

	env := strings.ToLower(strings.TrimSpace(cfg.Environment))
	if cfg.IsDevMode() {
		logger.Warn().Msg("RUNNING IN DEV MODE — sample data seeding enabled, do not use in production")
	} else if env != "prod" && env != "" {
		logger.Warn().
			Str("environment", cfg.Environment).
			Msg("unrecognized environment value, defaulting to prod behavior")
	}

	manager, err := storage.NewStorageManager(logger, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	a.Storage = manager

	a.StockService = stocks.NewService(a.Storage, logger)
	a.Maintenance = badger.NewMaintenance(manager.DB(), logger, &cfg.Maintenance)

	a.initHandlers()

	// Stock changes fan out to connected WebSocket clients.
	a.unsubscribeWS = a.StockService.SubscribeChanges(a.WSHandler.BroadcastStockChange)

	if cfg.IsDevMode() {
		seed.DevStocks(context.Background(), a.StockService, a.Storage, logger)
	}

	logger.Info().Msg("application initialization complete")

	return a, nil
}

// Start launches background work: the storage change pump and the
// maintenance schedule. The change pump exits when ctx is cancelled.
func (a *App) Start(ctx context.Context) error {
	if err := a.Maintenance.Start(); err != nil {
		return err
	}

	go func() {
		if err := a.StockService.Start(ctx); err != nil {
			a.Logger.Warn().Str("error", err.Error()).Msg("stock change stream stopped")
		}
	}()

	return nil
}

// initHandlers initializes all HTTP handlers.
func (a *App) initHandlers() {
	a.StocksHandler = handlers.NewStocksHandler(a.StockService, a.Logger)
	a.ExportHandler = handlers.NewExportHandler(a.StockService, a.Logger)
	a.WatchlistHandler = handlers.NewWatchlistHandler(a.StockService, a.Logger)
	a.SectorsHandler = handlers.NewSectorsHandler(a.StockService, a.Logger)
	a.DashboardHandler = handlers.NewDashboardHandler(a.StockService, a.Logger)
	a.SettingsHandler = handlers.NewSettingsHandler(a.Storage.KeyValue(), a.Logger)
	a.HealthHandler = handlers.NewHealthHandler(a.Storage, a.Logger)
	a.VersionHandler = handlers.NewVersionHandler(a.Logger)
	a.WSHandler = handlers.NewWebSocketHandler(a.Logger)

	a.Logger.Debug().Msg("HTTP handlers initialized")
}

// Close closes all application resources.
func (a *App) Close() error {
	if a.unsubscribeWS != nil {
		a.unsubscribeWS()
	}
	if a.Maintenance != nil {
		a.Maintenance.Stop()
	}
	if a.Storage != nil {
		return a.Storage.Close()
	}
	return nil
}
