package order

import (
	"net/url"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eatwithmaddie/menu-backend/internal/i18n"
	"github.com/eatwithmaddie/menu-backend/internal/models"
)

var nonDigits = regexp.MustCompile(`[^\d,]`)

func TestFormatFCFA(t *testing.T) {
	tests := []struct {
		amount float64
		digits string
	}{
		{0, "0"},
		{500, "500"},
		{1200, "1200"},
		{1500000, "1500000"},
		{12.5, "12,5"},
	}

	for _, tt := range tests {
		got := FormatFCFA(tt.amount)
		assert.True(t, strings.HasSuffix(got, " FCFA"), got)
		assert.Equal(t, tt.digits, nonDigits.ReplaceAllString(got, ""), got)
	}
}

func TestComposeMessage_Daily(t *testing.T) {
	zone, _ := DefaultZones().Lookup("bonanjo")
	cart := NewCart()
	cart.Add("item-1", 2)

	msg := ComposeMessage(MessageInput{
		Menu:     models.MenuDaily,
		Language: i18n.English,
		Lines:    cart.Lines(testMenu()),
		Zone:     zone,
		Customer: models.Customer{Name: "  Awa ", Phone: "677000000"},
	})

	lines := strings.Split(msg, "\n")
	require.GreaterOrEqual(t, len(lines), 14)
	assert.Equal(t, "New Order - Eat With Maddie", lines[0])
	assert.Equal(t, "", lines[1])
	assert.Equal(t, "Selected dishes:", lines[2])
	assert.True(t, strings.HasPrefix(lines[3], "- 2 x Ndole ("), lines[3])
	assert.Equal(t, "Selected dishes: 2", lines[5])
	assert.Equal(t, "Delivery zone: Bonanjo", lines[7])
	assert.Equal(t, "Prices are in accord to the daily menu.", lines[8])
	assert.Equal(t, "Your name: Awa", lines[10])
	assert.Equal(t, "Phone number: 677000000", lines[11])
	assert.Equal(t, "Delivery address: Not provided", lines[12])
	assert.Equal(t, "Special instructions: -", lines[13])
}

func TestComposeMessage_FullFrench(t *testing.T) {
	msg := ComposeMessage(MessageInput{
		Menu:     models.MenuFull,
		Language: i18n.French,
		Zone:     DefaultZones().Default(),
	})

	lines := strings.Split(msg, "\n")
	assert.Equal(t, "Commande menu complet - Eat With Maddie", lines[0])
	assert.Equal(t, "(Articles sur commande)", lines[1])
	assert.Equal(t, "Articles sélectionnés:", lines[3])
	assert.Equal(t, "-", lines[4], "empty cart shows a dash")
	assert.Equal(t, "Plats sélectionnés: 0", lines[6])
	assert.Equal(t, "Zone de livraison: Akwa", lines[8])
	assert.Equal(t, "Votre nom: Non renseigné", lines[10])
	assert.NotContains(t, msg, "menu du jour")
}

func TestWhatsAppLink(t *testing.T) {
	text := "New Order - Eat With Maddie\n- 2 x Ndolé (2 500 FCFA) & co!"
	link := WhatsAppLink("237679719340", text)

	require.True(t, strings.HasPrefix(link, "https://wa.me/237679719340?text="))
	encoded := strings.TrimPrefix(link, "https://wa.me/237679719340?text=")
	assert.NotContains(t, encoded, " ")
	assert.NotContains(t, encoded, "+")
	assert.Contains(t, encoded, "%20")
	assert.Contains(t, encoded, "%0A")
	assert.Contains(t, encoded, "%26")
	assert.Contains(t, encoded, "co!")

	decoded, err := url.PathUnescape(encoded)
	require.NoError(t, err)
	assert.Equal(t, text, decoded)
}

func TestEncodeURIComponent(t *testing.T) {
	assert.Equal(t, "a-b_c.d!e~f*g'h(i)j", EncodeURIComponent("a-b_c.d!e~f*g'h(i)j"))
	assert.Equal(t, "%3D%3F%2F%23%C3%A9", EncodeURIComponent("=?/#é"))
}
