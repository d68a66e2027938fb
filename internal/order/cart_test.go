package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eatwithmaddie/menu-backend/internal/models"
)

func testMenu() []models.MenuRow {
	return []models.MenuRow{
		{ID: "item-1", Category: "Today", Dish: "Ndole", Price: 2500, SortOrder: 1},
		{ID: "item-2", Category: "Today", Dish: "Poulet DG", Price: 3500, SortOrder: 2},
		{ID: "item-3", Category: "Drinks", Dish: "Folere", Price: 1000, SortOrder: 3},
	}
}

func TestCart_Add(t *testing.T) {
	cart := NewCart()

	assert.Equal(t, 1, cart.Add("item-1", 1))
	assert.Equal(t, 3, cart.Add("item-1", 2))
	assert.Equal(t, 3, cart.Quantity("item-1"))
	assert.Equal(t, 0, cart.Quantity("item-2"))
	assert.Equal(t, 0, cart.Add("item-2", -1), "quantities never go negative")
	assert.Equal(t, 1, cart.Len())

	assert.Equal(t, 0, cart.Add("item-1", -5))
	assert.Equal(t, 0, cart.Len(), "zero quantity removes the item")
	assert.Equal(t, 0, cart.Count())
}

func TestCart_Lines(t *testing.T) {
	cart := NewCart()
	cart.Add("item-3", 2)
	cart.Add("item-1", 1)
	cart.Add("item-9", 4)

	lines := cart.Lines(testMenu())
	require.Len(t, lines, 2)

	assert.Equal(t, "item-1", lines[0].ItemID, "lines follow menu order")
	assert.Equal(t, 2500.0, lines[0].LineTotal)
	assert.Equal(t, "Folere", lines[1].Dish)
	assert.Equal(t, 2000.0, lines[1].LineTotal)

	assert.Equal(t, 7, cart.Count())
	assert.Equal(t, []string{"item-9"}, cart.Unknown(testMenu()))
}
