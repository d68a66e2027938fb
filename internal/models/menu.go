package models

// MenuKind identifies which menu a row or snapshot belongs to
type MenuKind string

const (
	MenuDaily MenuKind = "daily"
	MenuFull  MenuKind = "full"
)

// Valid reports whether k names a known menu
func (k MenuKind) Valid() bool {
	return k == MenuDaily || k == MenuFull
}

// MenuSource records where a loaded menu came from
type MenuSource string

const (
	SourceSheet    MenuSource = "sheet"
	SourceFallback MenuSource = "fallback"
)

// MenuRow is a normalized menu entry.
// ID is synthetic ("item-<n>") and only stable within one loaded snapshot.
type MenuRow struct {
	ID        string  `json:"id"`
	Category  string  `json:"category"`
	Dish      string  `json:"dish"`
	Price     float64 `json:"price"`
	SortOrder int     `json:"sortOrder"`
	OnDemand  bool    `json:"onDemand"`
}

// RawMenuRow is a candidate row before normalization; it may still be invalid
type RawMenuRow struct {
	Category  string
	Dish      string
	Price     float64
	SortOrder int
	OnDemand  bool
}

// LoadMenuResult is the outcome of a menu load
type LoadMenuResult struct {
	Rows    []MenuRow  `json:"rows"`
	Source  MenuSource `json:"source"`
	Warning string     `json:"warning,omitempty"`
}
