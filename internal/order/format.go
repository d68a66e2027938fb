package order

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// FormatFCFA renders an amount with French digit grouping, e.g. "1 200 FCFA".
// Prices are always shown the French way, whatever the UI language.
func FormatFCFA(amount float64) string {
	p := message.NewPrinter(language.French)
	return p.Sprintf("%v FCFA", number.Decimal(amount, number.MaxFractionDigits(3)))
}
