package service

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/eatwithmaddie/menu-backend/internal/models"
	"github.com/eatwithmaddie/menu-backend/internal/repository"
)

// stubLoader returns canned results and counts calls per menu
type stubLoader struct {
	mu     sync.Mutex
	daily  models.LoadMenuResult
	full   models.LoadMenuResult
	err    error
	gate   chan struct{}
	dailyN atomic.Int32
	fullN  atomic.Int32
}

func (l *stubLoader) LoadDaily(ctx context.Context) (models.LoadMenuResult, error) {
	l.dailyN.Add(1)
	if l.gate != nil {
		<-l.gate
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.daily, l.err
}

func (l *stubLoader) LoadFull(ctx context.Context) (models.LoadMenuResult, error) {
	l.fullN.Add(1)
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.full, l.err
}

func (l *stubLoader) setErr(err error) {
	l.mu.Lock()
	l.err = err
	l.mu.Unlock()
}

// staticMenus serves fixed snapshots to the order service
type staticMenus struct {
	snaps map[models.MenuKind]repository.Snapshot
	err   error
}

func (m staticMenus) Menu(ctx context.Context, kind models.MenuKind) (repository.Snapshot, error) {
	if m.err != nil {
		return repository.Snapshot{}, m.err
	}
	return m.snaps[kind], nil
}

func dailyResult() models.LoadMenuResult {
	return models.LoadMenuResult{
		Source: models.SourceSheet,
		Rows: []models.MenuRow{
			{ID: "item-1", Category: "Today", Dish: "Ndole", Price: 2500, SortOrder: 1},
			{ID: "item-2", Category: "Today", Dish: "Poulet DG", Price: 3500, SortOrder: 2},
			{ID: "item-3", Category: "Drinks", Dish: "Folere", Price: 1000, SortOrder: 3},
		},
	}
}

func fullResult() models.LoadMenuResult {
	return models.LoadMenuResult{
		Source:  models.SourceFallback,
		Warning: "Using fallback data because sheet fetch failed: boom",
		Rows: []models.MenuRow{
			{ID: "item-1", Category: "Pizzas", Dish: "Margherita", Price: 6000, SortOrder: 1, OnDemand: true},
		},
	}
}
