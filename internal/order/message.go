package order

import (
	"fmt"
	"strings"

	"github.com/eatwithmaddie/menu-backend/internal/i18n"
	"github.com/eatwithmaddie/menu-backend/internal/models"
)

// MessageInput is everything that goes into an order message
type MessageInput struct {
	Menu     models.MenuKind
	Language i18n.Language
	Lines    []models.OrderLine
	Zone     models.DeliveryZone
	Customer models.Customer
}

// ComposeMessage builds the human-readable order text sent to the kitchen
func ComposeMessage(in MessageInput) string {
	t := i18n.For(in.Language)
	full := in.Menu == models.MenuFull

	var b []string
	if full {
		b = append(b, t.FullTitle, t.FullSubtitle, "", t.FullItemsTitle)
	} else {
		b = append(b, t.DailyTitle, "", t.DailyItemsTitle)
	}

	count := 0
	for _, line := range in.Lines {
		count += line.Quantity
		b = append(b, fmt.Sprintf("- %d x %s (%s)", line.Quantity, line.Dish, FormatFCFA(line.UnitPrice)))
	}
	if len(in.Lines) == 0 {
		b = append(b, "-")
	}

	b = append(b,
		"",
		fmt.Sprintf("%s: %d", t.SelectedCount, count),
		fmt.Sprintf("%s: %s", t.DeliveryFee, FormatFCFA(in.Zone.Fee)),
		fmt.Sprintf("%s: %s", t.Zone, in.Zone.LocalizedName(string(in.Language))),
	)
	if !full {
		b = append(b, t.DailyPriceNote)
	}

	b = append(b,
		"",
		fmt.Sprintf("%s: %s", t.Name, orDefault(in.Customer.Name, t.NotProvided)),
		fmt.Sprintf("%s: %s", t.Phone, orDefault(in.Customer.Phone, t.NotProvided)),
		fmt.Sprintf("%s: %s", t.Address, orDefault(in.Customer.Address, t.NotProvided)),
		fmt.Sprintf("%s: %s", t.Notes, orDefault(in.Customer.Notes, "-")),
	)

	return strings.Join(b, "\n")
}

func orDefault(value, fallback string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return fallback
}
