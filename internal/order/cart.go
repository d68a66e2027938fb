package order

import "github.com/eatwithmaddie/menu-backend/internal/models"

// Cart maps menu item ids to quantities. Quantities never go below zero and
// an item whose quantity reaches zero leaves the cart.
type Cart struct {
	quantities map[string]int
}

// NewCart returns an empty cart
func NewCart() *Cart {
	return &Cart{quantities: make(map[string]int)}
}

// Add changes the quantity of itemID by delta and returns the new quantity
func (c *Cart) Add(itemID string, delta int) int {
	next := c.quantities[itemID] + delta
	if next <= 0 {
		delete(c.quantities, itemID)
		return 0
	}
	c.quantities[itemID] = next
	return next
}

// Quantity returns how many of itemID are in the cart
func (c *Cart) Quantity(itemID string) int {
	return c.quantities[itemID]
}

// Count is the total number of dishes in the cart
func (c *Cart) Count() int {
	total := 0
	for _, q := range c.quantities {
		total += q
	}
	return total
}

// Len is the number of distinct items in the cart
func (c *Cart) Len() int {
	return len(c.quantities)
}

// Lines resolves the cart against a menu snapshot, in menu order.
// Ids that are not on the menu are left out; see Unknown.
func (c *Cart) Lines(rows []models.MenuRow) []models.OrderLine {
	lines := make([]models.OrderLine, 0, len(c.quantities))
	for _, row := range rows {
		q := c.quantities[row.ID]
		if q <= 0 {
			continue
		}
		lines = append(lines, models.OrderLine{
			ItemID:    row.ID,
			Category:  row.Category,
			Dish:      row.Dish,
			UnitPrice: row.Price,
			Quantity:  q,
			LineTotal: row.Price * float64(q),
		})
	}
	return lines
}

// Unknown lists cart ids missing from rows
func (c *Cart) Unknown(rows []models.MenuRow) []string {
	known := make(map[string]bool, len(rows))
	for _, row := range rows {
		known[row.ID] = true
	}

	var unknown []string
	for id := range c.quantities {
		if !known[id] {
			unknown = append(unknown, id)
		}
	}
	return unknown
}
