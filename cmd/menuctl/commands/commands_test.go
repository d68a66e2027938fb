package commands_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eatwithmaddie/menu-backend/cmd/menuctl/commands"
	"github.com/eatwithmaddie/menu-backend/internal/app"
	"github.com/eatwithmaddie/menu-backend/internal/config"
	"github.com/eatwithmaddie/menu-backend/internal/models"
	"github.com/eatwithmaddie/menu-backend/pkg/logger"
)

func testFactory(t *testing.T, dailyCSV string) commands.AppFactory {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, dailyCSV)
	}))
	t.Cleanup(srv.Close)

	return func(opts commands.AppOptions) (*app.App, error) {
		cfg := &config.Config{
			Menu: config.MenuConfig{
				DailyURL:      srv.URL,
				DailyCategory: "Today",
			},
			Cache: config.CacheConfig{Driver: config.CacheDriverMemory, Key: "test:daily"},
			Order: config.OrderConfig{WhatsAppNumber: "237679719340", RateLimit: 1, RateBurst: 1},
		}
		return app.New(cfg, logger.Discard(), nil)
	}
}

func execute(t *testing.T, factory commands.AppFactory, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cli := commands.New(factory, &out)
	cli.SetArgs(args)
	err := cli.Execute(context.Background())
	return out.String(), err
}

const sheet = "category,dish,price\nToday,Ndole,2500\nDrinks,Folere,1000\n"

func TestDaily(t *testing.T) {
	out, err := execute(t, testFactory(t, sheet), "daily")
	require.NoError(t, err)

	assert.Contains(t, out, "source: sheet (2 rows)")
	assert.Contains(t, out, "\nToday\n")
	assert.Contains(t, out, "item-1")
	assert.Contains(t, out, "Folere")
}

func TestFull_JSON(t *testing.T) {
	out, err := execute(t, testFactory(t, sheet), "full", "--json")
	require.NoError(t, err)

	var res models.LoadMenuResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, models.SourceFallback, res.Source)
	assert.NotEmpty(t, res.Rows)
}

func TestParse(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.csv")
	content := "Dish,Price,On_Demand\nEru,3000,yes\nBroken,,\nKoki,1500,no\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	out, err := execute(t, nil, "parse", path, "--category", "Specials", "--json")
	require.NoError(t, err)

	var rows []models.MenuRow
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "Specials", rows[0].Category)
	assert.True(t, rows[0].OnDemand)
	assert.False(t, rows[1].OnDemand)
}

func TestParse_MissingColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.csv")
	require.NoError(t, os.WriteFile(path, []byte("dish\nEru\n"), 0o644))

	_, err := execute(t, nil, "parse", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required CSV headers: price, category")
}

func TestLink(t *testing.T) {
	out, err := execute(t, testFactory(t, sheet),
		"link", "--item", "item-2=2", "--item", "item-1", "--zone", "logpom", "--lang", "fr", "--name", "Awa")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "Nouvelle commande - Eat With Maddie\n"), out)
	assert.Contains(t, out, "Votre nom: Awa")
	assert.Contains(t, out, "https://wa.me/237679719340?text=Nouvelle%20commande")
}

func TestLink_Errors(t *testing.T) {
	factory := testFactory(t, sheet)

	_, err := execute(t, factory, "link", "--item", "item-1=two")
	assert.ErrorContains(t, err, "quantity must be a number")

	_, err = execute(t, factory, "link", "--item", "item-9=1")
	assert.ErrorContains(t, err, "invalid menu item")
}
