package menu

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"

	"github.com/eatwithmaddie/menu-backend/internal/models"
	"github.com/eatwithmaddie/menu-backend/internal/storage"
)

// DefaultCacheKey is the storage key holding the last synced daily menu
const DefaultCacheKey = "eat_with_maddie:last_synced_daily_menu:v1"

// DailyCache remembers the last daily menu loaded from the live feed so a
// short feed outage still shows the day's dishes. It never fails: write
// errors are dropped and unreadable entries read as an empty menu.
type DailyCache struct {
	store  storage.Store
	key    string
	logger *slog.Logger
}

// NewDailyCache creates a cache over store. An empty key uses DefaultCacheKey.
func NewDailyCache(store storage.Store, key string, logger *slog.Logger) *DailyCache {
	if key == "" {
		key = DefaultCacheKey
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &DailyCache{
		store:  store,
		key:    key,
		logger: logger,
	}
}

// Write replaces the cached snapshot with rows
func (c *DailyCache) Write(ctx context.Context, rows []models.MenuRow) {
	if c == nil || c.store == nil {
		return
	}

	payload, err := json.Marshal(rows)
	if err != nil {
		c.logger.Debug("failed to encode daily menu cache", "error", err)
		return
	}
	if err := c.store.Set(ctx, c.key, payload); err != nil {
		c.logger.Debug("failed to write daily menu cache", "key", c.key, "error", err)
	}
}

// Read returns the cached snapshot, or nothing if it is missing or unreadable
func (c *DailyCache) Read(ctx context.Context) []models.MenuRow {
	if c == nil || c.store == nil {
		return nil
	}

	payload, err := c.store.Get(ctx, c.key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			c.logger.Debug("failed to read daily menu cache", "key", c.key, "error", err)
		}
		return nil
	}
	if len(payload) == 0 {
		return nil
	}

	var parsed any
	if err := json.Unmarshal(payload, &parsed); err != nil {
		c.logger.Debug("ignoring corrupt daily menu cache", "key", c.key, "error", err)
		return nil
	}
	entries, ok := parsed.([]any)
	if !ok {
		return nil
	}

	rows := make([]models.MenuRow, 0, len(entries))
	seen := make(map[string]bool, len(entries))
	for i, entry := range entries {
		obj, ok := entry.(map[string]any)
		if !ok {
			continue
		}

		category, _ := obj["category"].(string)
		dish, _ := obj["dish"].(string)
		price := coerceNumber(obj["price"])
		if !validRow(category, dish, price) {
			continue
		}

		id, _ := obj["id"].(string)
		if strings.TrimSpace(id) == "" || seen[id] {
			id = freeItemID(seen, i)
		}
		seen[id] = true
		sortOrder := coerceSortOrder(coerceNumber(obj["sortOrder"]), i+1)

		rows = append(rows, models.MenuRow{
			ID:        id,
			Category:  category,
			Dish:      dish,
			Price:     price,
			SortOrder: sortOrder,
			OnDemand:  coerceBool(obj["onDemand"]),
		})
	}
	return rows
}

// freeItemID returns the first item-<n> id not in seen, starting at index
func freeItemID(seen map[string]bool, index int) string {
	for {
		if id := itemID(index); !seen[id] {
			return id
		}
		index++
	}
}
