package menu

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eatwithmaddie/menu-backend/internal/models"
)

func TestNormalize_AssignsSequentialIDs(t *testing.T) {
	csv := "category,dish,price\nGrill,Soya,3000\nLunch,Ndole,2500\nDrinks,Folere,1000\nLunch,Eru,2000"

	raw, err := ParseCSV(csv, ParseOptions{})
	require.NoError(t, err)

	rows := Normalize(raw)
	require.Len(t, rows, 4)
	for i, row := range rows {
		assert.Equal(t, fmt.Sprintf("item-%d", i+1), row.ID)
		if i > 0 {
			assert.LessOrEqual(t, rows[i-1].SortOrder, row.SortOrder)
		}
	}
	assert.Equal(t, "Soya", rows[0].Dish)
	assert.Equal(t, "Eru", rows[3].Dish)
}

func TestNormalize_TieBreak(t *testing.T) {
	inputs := [][]models.RawMenuRow{
		{
			{Category: "B", Dish: "Soya", Price: 1, SortOrder: 1},
			{Category: "A", Dish: "Ndole", Price: 1, SortOrder: 1},
		},
		{
			{Category: "A", Dish: "Ndole", Price: 1, SortOrder: 1},
			{Category: "B", Dish: "Soya", Price: 1, SortOrder: 1},
		},
	}

	for _, input := range inputs {
		rows := Normalize(input)
		require.Len(t, rows, 2)
		assert.Equal(t, "A", rows[0].Category)
		assert.Equal(t, "item-1", rows[0].ID)
		assert.Equal(t, "B", rows[1].Category)
	}
}

func TestNormalize_DishTieBreakAndAccents(t *testing.T) {
	rows := Normalize([]models.RawMenuRow{
		{Category: "Lunch", Dish: "Poulet DG", Price: 1, SortOrder: 2},
		{Category: "Lunch", Dish: "Éru", Price: 1, SortOrder: 2},
		{Category: "Lunch", Dish: "Ndolé", Price: 1, SortOrder: 2},
		{Category: "Lunch", Dish: "Fish", Price: 1, SortOrder: 1},
	})

	var dishes []string
	for _, row := range rows {
		dishes = append(dishes, row.Dish)
	}
	assert.Equal(t, []string{"Fish", "Éru", "Ndolé", "Poulet DG"}, dishes)
}

func TestNormalize_DropsInvalidRows(t *testing.T) {
	rows := Normalize([]models.RawMenuRow{
		{Category: "", Dish: "Ndole", Price: 1},
		{Category: "Lunch", Dish: "  ", Price: 1},
		{Category: "Lunch", Dish: "Eru", Price: math.NaN()},
		{Category: "Lunch", Dish: "Koki", Price: math.Inf(1)},
		{Category: "Lunch", Dish: "Negative", Price: -5},
		{Category: "Lunch", Dish: "Soya", Price: 0},
	})

	require.Len(t, rows, 1)
	assert.Equal(t, "Soya", rows[0].Dish)
	assert.Equal(t, "item-1", rows[0].ID)
}

func TestNormalize_Empty(t *testing.T) {
	rows := Normalize(nil)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestGroupByCategory(t *testing.T) {
	rows := []models.MenuRow{
		{ID: "item-1", Category: "Lunch", Dish: "Ndole"},
		{ID: "item-2", Category: "Drinks", Dish: "Folere"},
		{ID: "item-3", Category: "Lunch", Dish: "Eru"},
	}

	groups := GroupByCategory(rows)
	require.Len(t, groups, 2)
	assert.Equal(t, "Lunch", groups[0].Category)
	assert.Len(t, groups[0].Rows, 2)
	assert.Equal(t, "Drinks", groups[1].Category)

	assert.Equal(t, []string{"Lunch", "Drinks"}, Categories(rows))
	assert.Empty(t, Categories(nil))
}
