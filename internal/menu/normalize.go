package menu

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/eatwithmaddie/menu-backend/internal/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Normalize drops invalid rows, orders the rest by sort order, then category,
// then dish, and numbers them item-1..item-N in that order.
func Normalize(raw []models.RawMenuRow) []models.MenuRow {
	kept := make([]models.RawMenuRow, 0, len(raw))
	for _, row := range raw {
		if validRow(row.Category, row.Dish, row.Price) {
			kept = append(kept, row)
		}
	}

	// A collator keeps internal buffers, so each call gets its own.
	coll := collate.New(language.Und)
	sort.SliceStable(kept, func(i, j int) bool {
		a, b := kept[i], kept[j]
		if a.SortOrder != b.SortOrder {
			return a.SortOrder < b.SortOrder
		}
		if c := coll.CompareString(a.Category, b.Category); c != 0 {
			return c < 0
		}
		return coll.CompareString(a.Dish, b.Dish) < 0
	})

	rows := make([]models.MenuRow, len(kept))
	for i, row := range kept {
		rows[i] = models.MenuRow{
			ID:        itemID(i),
			Category:  row.Category,
			Dish:      row.Dish,
			Price:     row.Price,
			SortOrder: row.SortOrder,
			OnDemand:  row.OnDemand,
		}
	}
	return rows
}

// CategoryGroup is a category and its rows, in menu order
type CategoryGroup struct {
	Category string           `json:"category"`
	Rows     []models.MenuRow `json:"rows"`
}

// GroupByCategory groups rows by category in order of first appearance
func GroupByCategory(rows []models.MenuRow) []CategoryGroup {
	groups := make([]CategoryGroup, 0)
	position := make(map[string]int)
	for _, row := range rows {
		idx, ok := position[row.Category]
		if !ok {
			idx = len(groups)
			position[row.Category] = idx
			groups = append(groups, CategoryGroup{Category: row.Category})
		}
		groups[idx].Rows = append(groups[idx].Rows, row)
	}
	return groups
}

// Categories lists distinct categories in order of first appearance
func Categories(rows []models.MenuRow) []string {
	groups := GroupByCategory(rows)
	categories := make([]string, len(groups))
	for i, g := range groups {
		categories[i] = g.Category
	}
	return categories
}

func validRow(category, dish string, price float64) bool {
	if strings.TrimSpace(category) == "" || strings.TrimSpace(dish) == "" {
		return false
	}
	return !math.IsNaN(price) && !math.IsInf(price, 0) && price >= 0
}

func itemID(index int) string {
	return fmt.Sprintf("item-%d", index+1)
}
