// Package app assembles the menu pipeline, services and HTTP routes from
// configuration. Both the server and the CLI build on it.
package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/eatwithmaddie/menu-backend/internal/assets"
	"github.com/eatwithmaddie/menu-backend/internal/config"
	"github.com/eatwithmaddie/menu-backend/internal/fetch"
	"github.com/eatwithmaddie/menu-backend/internal/menu"
	"github.com/eatwithmaddie/menu-backend/internal/metrics"
	"github.com/eatwithmaddie/menu-backend/internal/order"
	"github.com/eatwithmaddie/menu-backend/internal/repository"
	"github.com/eatwithmaddie/menu-backend/internal/service"
	"github.com/eatwithmaddie/menu-backend/internal/storage"
)

// App holds the wired components
type App struct {
	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Metrics
	Store   storage.Store
	Loader  *menu.Loader
	Zones   *order.Zones
	Repo    *repository.InMemoryMenuRepository
	Menus   *service.MenuService
	Orders  *service.OrderService
}

// New wires every component from cfg. m may be nil to skip metrics.
// Call Close when done to release the cache store.
func New(cfg *config.Config, logger *slog.Logger, m *metrics.Metrics) (*App, error) {
	store, err := openStore(cfg.Cache, logger)
	if err != nil {
		return nil, err
	}

	zones := order.DefaultZones()
	if cfg.Order.ZonesFile != "" {
		zones, err = order.LoadZones(cfg.Order.ZonesFile)
		if err != nil {
			closeStore(store)
			return nil, err
		}
	}

	var bundled *fetch.FSFetcher
	if cfg.Menu.FallbackDir != "" {
		bundled = fetch.NewFSFetcher(os.DirFS(cfg.Menu.FallbackDir))
	} else {
		bundled = fetch.NewFSFetcher(assets.FS)
	}

	loader := menu.NewLoader(
		fetch.NewHTTPFetcher(time.Duration(cfg.Menu.FetchTimeout)*time.Second),
		bundled,
		menu.NewDailyCache(store, cfg.Cache.Key, logger),
		menu.LoaderConfig{
			DailyFeedURL:         cfg.Menu.DailyURL,
			FullFeedURL:          cfg.Menu.FullURL,
			DailyDefaultCategory: cfg.Menu.DailyCategory,
			DailyFallbackPath:    assets.DailyFallbackPath,
			FullFallbackPath:     assets.FullFallbackPath,
		},
		logger,
	)

	repo := repository.NewInMemoryMenuRepository()
	menus := service.NewMenuService(loader, repo, m,
		time.Duration(cfg.Menu.RefreshInterval)*time.Second, logger)
	orders := service.NewOrderService(menus, zones, cfg.Order.WhatsAppNumber, m, logger)

	return &App{
		Config:  cfg,
		Logger:  logger,
		Metrics: m,
		Store:   store,
		Loader:  loader,
		Zones:   zones,
		Repo:    repo,
		Menus:   menus,
		Orders:  orders,
	}, nil
}

// Close releases the cache store
func (a *App) Close() error {
	if c, ok := a.Store.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func openStore(cfg config.CacheConfig, logger *slog.Logger) (storage.Store, error) {
	switch cfg.Driver {
	case config.CacheDriverMemory:
		return storage.NewMemoryStore(), nil
	case config.CacheDriverBadger:
		store, err := storage.OpenBadger(storage.BadgerConfig{Path: cfg.Path, Logger: logger})
		if err != nil {
			return nil, fmt.Errorf("failed to open menu cache: %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown cache driver: %s", cfg.Driver)
	}
}

func closeStore(store storage.Store) {
	if c, ok := store.(io.Closer); ok {
		_ = c.Close()
	}
}
