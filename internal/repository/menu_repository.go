package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/eatwithmaddie/menu-backend/internal/models"
)

var (
	ErrSnapshotNotFound = errors.New("menu snapshot not found")
	ErrItemNotFound     = errors.New("menu item not found")
)

// Snapshot is a resolved menu together with when it was loaded
type Snapshot struct {
	Result   models.LoadMenuResult
	LoadedAt time.Time
}

// MenuRepository defines the interface for menu snapshot access
type MenuRepository interface {
	Save(ctx context.Context, kind models.MenuKind, snap Snapshot) error
	Get(ctx context.Context, kind models.MenuKind) (Snapshot, error)
	GetItem(ctx context.Context, kind models.MenuKind, id string) (models.MenuRow, error)
}

type entry struct {
	snap Snapshot
	byID map[string]int
}

// InMemoryMenuRepository keeps the latest snapshot of each menu in memory
type InMemoryMenuRepository struct {
	mu    sync.RWMutex
	menus map[models.MenuKind]entry
}

// NewInMemoryMenuRepository creates an empty repository
func NewInMemoryMenuRepository() *InMemoryMenuRepository {
	return &InMemoryMenuRepository{
		menus: make(map[models.MenuKind]entry),
	}
}

// Save replaces the snapshot for kind. Rows are copied so later edits by the
// caller do not leak in.
func (r *InMemoryMenuRepository) Save(ctx context.Context, kind models.MenuKind, snap Snapshot) error {
	rows := make([]models.MenuRow, len(snap.Result.Rows))
	copy(rows, snap.Result.Rows)
	snap.Result.Rows = rows

	byID := make(map[string]int, len(rows))
	for i, row := range rows {
		byID[row.ID] = i
	}

	r.mu.Lock()
	r.menus[kind] = entry{snap: snap, byID: byID}
	r.mu.Unlock()
	return nil
}

// Get returns the latest snapshot for kind
func (r *InMemoryMenuRepository) Get(ctx context.Context, kind models.MenuKind) (Snapshot, error) {
	r.mu.RLock()
	e, ok := r.menus[kind]
	r.mu.RUnlock()
	if !ok {
		return Snapshot{}, ErrSnapshotNotFound
	}
	return e.snap, nil
}

// GetItem returns a single row of the latest snapshot by its ID
func (r *InMemoryMenuRepository) GetItem(ctx context.Context, kind models.MenuKind, id string) (models.MenuRow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.menus[kind]
	if !ok {
		return models.MenuRow{}, ErrSnapshotNotFound
	}
	i, ok := e.byID[id]
	if !ok {
		return models.MenuRow{}, ErrItemNotFound
	}
	return e.snap.Result.Rows[i], nil
}
