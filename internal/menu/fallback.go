package menu

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/eatwithmaddie/menu-backend/internal/models"
)

// DecodeFallback reads a bundled menu snapshot: a JSON array of partial rows.
// Missing or mistyped fields are coerced; a price that cannot be read becomes
// NaN and the row is dropped later by Normalize. A payload that is valid JSON
// but not an array yields no rows. Entries without an onDemand field take
// defaultOnDemand.
func DecodeFallback(data []byte, defaultOnDemand bool) ([]models.RawMenuRow, error) {
	var payload any
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode fallback JSON: %w", err)
	}

	entries, ok := payload.([]any)
	if !ok {
		return []models.RawMenuRow{}, nil
	}

	rows := make([]models.RawMenuRow, 0, len(entries))
	for i, entry := range entries {
		obj, _ := entry.(map[string]any)

		sortOrder := coerceSortOrder(coerceNumber(obj["sortOrder"]), i+1)

		onDemand := defaultOnDemand
		if v, ok := obj["onDemand"]; ok {
			onDemand = coerceBool(v)
		}

		rows = append(rows, models.RawMenuRow{
			Category:  strings.TrimSpace(coerceString(obj["category"])),
			Dish:      strings.TrimSpace(coerceString(obj["dish"])),
			Price:     coerceNumber(obj["price"]),
			SortOrder: sortOrder,
			OnDemand:  onDemand,
		})
	}
	return rows, nil
}
