// Package assets bundles the static menu snapshots served when the live
// feeds are unavailable.
package assets

import "embed"

// Default paths of the bundled snapshots inside FS
const (
	DailyFallbackPath = "data/daily-menu-fallback.json"
	FullFallbackPath  = "data/full-menu-fallback.json"
)

// FS holds the bundled snapshots
//
//go:embed data/*.json
var FS embed.FS
