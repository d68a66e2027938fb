package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/eatwithmaddie/menu-backend/internal/metrics"
	"github.com/eatwithmaddie/menu-backend/internal/models"
	"github.com/eatwithmaddie/menu-backend/internal/repository"
)

var (
	ErrInvalidMenu     = errors.New("unknown menu")
	ErrMenuUnavailable = errors.New("menu unavailable")
)

// MenuLoader resolves a menu from its sources
type MenuLoader interface {
	LoadDaily(ctx context.Context) (models.LoadMenuResult, error)
	LoadFull(ctx context.Context) (models.LoadMenuResult, error)
}

// MenuService serves menu snapshots, reloading them at most once per
// refresh interval. Concurrent reloads of the same menu share one load.
type MenuService struct {
	loader   MenuLoader
	repo     repository.MenuRepository
	metrics  *metrics.Metrics
	interval time.Duration
	logger   *slog.Logger
	now      func() time.Time
	group    singleflight.Group
}

// NewMenuService creates a new menu service. An interval of zero reloads on
// every call; metrics may be nil.
func NewMenuService(loader MenuLoader, repo repository.MenuRepository, m *metrics.Metrics, interval time.Duration, logger *slog.Logger) *MenuService {
	if logger == nil {
		logger = slog.Default()
	}
	return &MenuService{
		loader:   loader,
		repo:     repo,
		metrics:  m,
		interval: interval,
		logger:   logger,
		now:      time.Now,
	}
}

// Daily returns the current daily menu snapshot
func (s *MenuService) Daily(ctx context.Context) (repository.Snapshot, error) {
	return s.Menu(ctx, models.MenuDaily)
}

// Full returns the current full menu snapshot
func (s *MenuService) Full(ctx context.Context) (repository.Snapshot, error) {
	return s.Menu(ctx, models.MenuFull)
}

// Menu returns a fresh enough snapshot of kind, loading it when needed.
// When a reload fails, the previous snapshot is served if there is one.
func (s *MenuService) Menu(ctx context.Context, kind models.MenuKind) (repository.Snapshot, error) {
	if !kind.Valid() {
		return repository.Snapshot{}, ErrInvalidMenu
	}

	cached, cacheErr := s.repo.Get(ctx, kind)
	if cacheErr == nil && s.interval > 0 && s.now().Sub(cached.LoadedAt) < s.interval {
		return cached, nil
	}

	snap, err := s.Refresh(ctx, kind)
	if err != nil {
		if ctx.Err() == nil && cacheErr == nil {
			s.logger.Warn("menu reload failed, serving previous snapshot",
				"menu", kind,
				"loaded_at", cached.LoadedAt,
				"error", err,
			)
			return cached, nil
		}
		return repository.Snapshot{}, err
	}
	return snap, nil
}

// Refresh loads kind now and stores the result
func (s *MenuService) Refresh(ctx context.Context, kind models.MenuKind) (repository.Snapshot, error) {
	if !kind.Valid() {
		return repository.Snapshot{}, ErrInvalidMenu
	}

	ch := s.group.DoChan(string(kind), func() (any, error) {
		// the shared load must outlive any single caller
		return s.load(context.WithoutCancel(ctx), kind)
	})

	select {
	case <-ctx.Done():
		return repository.Snapshot{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return repository.Snapshot{}, res.Err
		}
		return res.Val.(repository.Snapshot), nil
	}
}

// Item returns one row of the latest snapshot of kind
func (s *MenuService) Item(ctx context.Context, kind models.MenuKind, id string) (models.MenuRow, error) {
	if _, err := s.Menu(ctx, kind); err != nil {
		return models.MenuRow{}, err
	}
	return s.repo.GetItem(ctx, kind, id)
}

func (s *MenuService) load(ctx context.Context, kind models.MenuKind) (repository.Snapshot, error) {
	start := s.now()

	var (
		result models.LoadMenuResult
		err    error
	)
	switch kind {
	case models.MenuFull:
		result, err = s.loader.LoadFull(ctx)
	default:
		result, err = s.loader.LoadDaily(ctx)
	}

	elapsed := s.now().Sub(start).Seconds()
	if err != nil {
		s.metrics.ObserveMenuLoad(string(kind), "error", elapsed, 0)
		s.logger.Error("menu load failed", "menu", kind, "error", err)
		return repository.Snapshot{}, fmt.Errorf("%w: %v", ErrMenuUnavailable, err)
	}
	s.metrics.ObserveMenuLoad(string(kind), string(result.Source), elapsed, len(result.Rows))

	snap := repository.Snapshot{Result: result, LoadedAt: s.now()}
	if err := s.repo.Save(ctx, kind, snap); err != nil {
		return repository.Snapshot{}, fmt.Errorf("failed to store menu snapshot: %w", err)
	}

	s.logger.Info("menu loaded",
		"menu", kind,
		"source", result.Source,
		"rows", len(result.Rows),
		"duration_ms", int64(elapsed*1000),
	)
	return snap, nil
}
