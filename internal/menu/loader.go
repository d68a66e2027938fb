package menu

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/eatwithmaddie/menu-backend/internal/models"
)

// DefaultDailyCategory labels daily feed rows that have no category column
const DefaultDailyCategory = "Today"

// Fetcher returns the raw bytes found at a URL or resource path
type Fetcher interface {
	Fetch(ctx context.Context, location string) ([]byte, error)
}

// LoaderConfig names the feeds and bundled snapshots for both menus
type LoaderConfig struct {
	DailyFeedURL         string
	FullFeedURL          string
	DailyDefaultCategory string
	DailyFallbackPath    string
	FullFallbackPath     string
}

// Loader resolves a menu from the live feed, the daily cache or the bundled
// snapshots, in that order. Each source is tried at most once per call.
type Loader struct {
	feed   Fetcher
	assets Fetcher
	cache  *DailyCache
	cfg    LoaderConfig
	logger *slog.Logger
}

// NewLoader creates a loader. feed serves CSV URLs, assets serves the bundled
// snapshot paths. cache may be nil, which disables daily caching.
func NewLoader(feed, assets Fetcher, cache *DailyCache, cfg LoaderConfig, logger *slog.Logger) *Loader {
	if cfg.DailyDefaultCategory == "" {
		cfg.DailyDefaultCategory = DefaultDailyCategory
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		feed:   feed,
		assets: assets,
		cache:  cache,
		cfg:    cfg,
		logger: logger,
	}
}

// Load tries feedURL first and falls back to the snapshot at fallbackPath.
// A feed error is reported in the result's Warning; an empty feed or an
// unset URL falls back without one. Only a failing fallback is an error.
func (l *Loader) Load(ctx context.Context, feedURL, fallbackPath string, opts ParseOptions) (models.LoadMenuResult, error) {
	if url := strings.TrimSpace(feedURL); url != "" {
		raw, err := l.fetchCSV(ctx, url, opts)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return models.LoadMenuResult{}, ctxErr
			}
			l.logger.Warn("menu feed failed, using fallback", "url", url, "error", err)

			rows, fbErr := l.fetchFallback(ctx, fallbackPath, opts.DefaultOnDemand)
			if fbErr != nil {
				return models.LoadMenuResult{}, fbErr
			}
			return models.LoadMenuResult{
				Rows:    rows,
				Source:  models.SourceFallback,
				Warning: fmt.Sprintf("Using fallback data because sheet fetch failed: %v", err),
			}, nil
		}

		if rows := Normalize(raw); len(rows) > 0 {
			return models.LoadMenuResult{Rows: rows, Source: models.SourceSheet}, nil
		}
		l.logger.Info("menu feed has no usable rows, using fallback", "url", url)
	}

	rows, err := l.fetchFallback(ctx, fallbackPath, opts.DefaultOnDemand)
	if err != nil {
		return models.LoadMenuResult{}, err
	}
	return models.LoadMenuResult{Rows: rows, Source: models.SourceFallback}, nil
}

// LoadFull loads the on-demand catalog. Rows default to on-demand.
func (l *Loader) LoadFull(ctx context.Context) (models.LoadMenuResult, error) {
	return l.Load(ctx, l.cfg.FullFeedURL, l.cfg.FullFallbackPath, ParseOptions{
		DefaultOnDemand: true,
	})
}

// LoadDaily loads today's menu. Failures degrade silently: live feed, then
// the last synced copy, then the bundled snapshot, then an empty menu.
// Cached rows are reported as SourceSheet since they came from the feed.
// The only error returned is the context's, when the caller gave up.
func (l *Loader) LoadDaily(ctx context.Context) (models.LoadMenuResult, error) {
	opts := ParseOptions{
		DefaultOnDemand: false,
		DefaultCategory: l.cfg.DailyDefaultCategory,
	}

	if url := strings.TrimSpace(l.cfg.DailyFeedURL); url != "" {
		raw, err := l.fetchCSV(ctx, url, opts)
		if err != nil {
			l.logger.Warn("daily menu feed failed", "url", url, "error", err)
		} else if rows := Normalize(raw); len(rows) > 0 {
			l.cache.Write(ctx, rows)
			return models.LoadMenuResult{Rows: rows, Source: models.SourceSheet}, nil
		} else {
			l.logger.Info("daily menu feed has no usable rows", "url", url)
		}
	}

	if err := ctx.Err(); err != nil {
		return models.LoadMenuResult{}, err
	}

	if cached := l.cache.Read(ctx); len(cached) > 0 {
		l.logger.Info("serving last synced daily menu", "rows", len(cached))
		return models.LoadMenuResult{Rows: cached, Source: models.SourceSheet}, nil
	}

	rows, err := l.fetchFallback(ctx, l.cfg.DailyFallbackPath, false)
	if err != nil {
		l.logger.Warn("daily menu fallback unavailable", "path", l.cfg.DailyFallbackPath, "error", err)
	} else if len(rows) > 0 {
		return models.LoadMenuResult{Rows: rows, Source: models.SourceFallback}, nil
	}

	if err := ctx.Err(); err != nil {
		return models.LoadMenuResult{}, err
	}
	return models.LoadMenuResult{Rows: []models.MenuRow{}, Source: models.SourceSheet}, nil
}

func (l *Loader) fetchCSV(ctx context.Context, url string, opts ParseOptions) ([]models.RawMenuRow, error) {
	body, err := l.feed.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	return ParseCSV(string(body), opts)
}

func (l *Loader) fetchFallback(ctx context.Context, path string, defaultOnDemand bool) ([]models.MenuRow, error) {
	data, err := l.assets.Fetch(ctx, path)
	if err != nil {
		return nil, err
	}
	raw, err := DecodeFallback(data, defaultOnDemand)
	if err != nil {
		return nil, err
	}
	return Normalize(raw), nil
}
