package menu

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/eatwithmaddie/menu-backend/internal/models"
)

const (
	columnCategory  = "category"
	columnDish      = "dish"
	columnPrice     = "price"
	columnSortOrder = "sort_order"
	columnOnDemand  = "on_demand"
)

var (
	lineBreak   = regexp.MustCompile(`\r?\n`)
	whitespace  = regexp.MustCompile(`\s+`)
	nonPriceRun = regexp.MustCompile(`[^\d.]`)
)

// ParseOptions carries the per-feed defaults applied when a column is absent
type ParseOptions struct {
	// DefaultOnDemand is used when the feed has no on_demand column.
	DefaultOnDemand bool
	// DefaultCategory is used when the feed has no category column.
	// Empty means the category column is required.
	DefaultCategory string
}

// ParseCSV turns a CSV export into candidate rows.
// Rows with a missing category, dish or price are skipped silently; only a
// header that cannot be mapped returns an error (*ConfigError). A feed
// without data rows is empty, whatever its header says.
func ParseCSV(text string, opts ParseOptions) ([]models.RawMenuRow, error) {
	var lines []string
	for _, line := range lineBreak.Split(text, -1) {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}

	if len(lines) < 2 {
		return []models.RawMenuRow{}, nil
	}

	headers := SplitLine(lines[0])
	for i, h := range headers {
		headers[i] = normalizeHeader(h)
	}
	index := func(name string) int {
		for i, h := range headers {
			if h == name {
				return i
			}
		}
		return -1
	}

	categoryIdx := index(columnCategory)
	dishIdx := index(columnDish)
	priceIdx := index(columnPrice)
	sortOrderIdx := index(columnSortOrder)
	onDemandIdx := index(columnOnDemand)

	var missing []string
	if dishIdx == -1 {
		missing = append(missing, columnDish)
	}
	if priceIdx == -1 {
		missing = append(missing, columnPrice)
	}
	if categoryIdx == -1 && opts.DefaultCategory == "" {
		missing = append(missing, columnCategory)
	}
	if len(missing) > 0 {
		return nil, &ConfigError{Missing: missing}
	}

	rows := make([]models.RawMenuRow, 0, len(lines)-1)
	for i := 1; i < len(lines); i++ {
		values := SplitLine(lines[i])

		category := opts.DefaultCategory
		if categoryIdx >= 0 {
			category = field(values, categoryIdx)
		}
		dish := field(values, dishIdx)
		price, ok := parsePrice(field(values, priceIdx))
		if category == "" || dish == "" || !ok {
			continue
		}

		sortOrder := i
		if sortOrderIdx >= 0 {
			sortOrder = parseSortOrder(field(values, sortOrderIdx), i)
		}

		onDemand := opts.DefaultOnDemand
		if onDemandIdx >= 0 {
			onDemand = parseBool(field(values, onDemandIdx))
		}

		rows = append(rows, models.RawMenuRow{
			Category:  category,
			Dish:      dish,
			Price:     price,
			SortOrder: sortOrder,
			OnDemand:  onDemand,
		})
	}

	return rows, nil
}

func normalizeHeader(value string) string {
	return whitespace.ReplaceAllString(strings.ToLower(strings.TrimSpace(value)), "_")
}

func field(values []string, idx int) string {
	if idx < 0 || idx >= len(values) {
		return ""
	}
	return strings.TrimSpace(values[idx])
}

// parsePrice keeps digits and dots only, so "1,200 FCFA" reads as 1200.
// Like a lenient float parse, anything after a second dot is ignored.
func parsePrice(value string) (float64, bool) {
	cleaned := nonPriceRun.ReplaceAllString(value, "")
	if first := strings.IndexByte(cleaned, '.'); first >= 0 {
		if second := strings.IndexByte(cleaned[first+1:], '.'); second >= 0 {
			cleaned = cleaned[:first+1+second]
		}
	}
	if cleaned == "" || cleaned == "." {
		return 0, false
	}

	price, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return price, true
}

// parseSortOrder reads the leading integer of value ("12", "-3", "4 (lunch)").
func parseSortOrder(value string, fallback int) int {
	value = strings.TrimSpace(value)

	end := 0
	if end < len(value) && (value[end] == '-' || value[end] == '+') {
		end++
	}
	digitsStart := end
	for end < len(value) && value[end] >= '0' && value[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return fallback
	}

	n, err := strconv.Atoi(value[:end])
	if err != nil {
		return fallback
	}
	return n
}

func parseBool(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "1", "yes":
		return true
	default:
		return false
	}
}
