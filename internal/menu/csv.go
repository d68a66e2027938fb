// Package menu loads, parses and normalizes the restaurant menu feeds.
//
// The daily menu comes from a published spreadsheet CSV export; the full
// menu comes from a bundled JSON snapshot. Both go through the same
// normalization so rows get deterministic ordering and synthetic ids.
package menu

import "strings"

// SplitLine splits a single CSV line into fields.
// Quoted fields may contain commas and "" stands for a literal quote.
// Unbalanced quotes never fail; they only toggle the quoted state.
func SplitLine(line string) []string {
	var (
		fields   []string
		current  strings.Builder
		inQuotes bool
	)

	for i := 0; i < len(line); i++ {
		ch := line[i]

		if ch == '"' {
			if inQuotes && i+1 < len(line) && line[i+1] == '"' {
				current.WriteByte('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
			continue
		}

		if ch == ',' && !inQuotes {
			fields = append(fields, strings.TrimSpace(current.String()))
			current.Reset()
			continue
		}

		current.WriteByte(ch)
	}

	return append(fields, strings.TrimSpace(current.String()))
}
