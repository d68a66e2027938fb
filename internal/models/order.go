package models

// OrderRequest represents an incoming order request
type OrderRequest struct {
	Menu     MenuKind    `json:"menu"`
	Items    []OrderItem `json:"items"`
	ZoneID   string      `json:"zoneId,omitempty"`
	Customer Customer    `json:"customer"`
}

// OrderItem references a menu row of the current snapshot
type OrderItem struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
}

// Customer holds the free-text contact details copied into the order message
type Customer struct {
	Name    string `json:"name" validate:"max=120"`
	Phone   string `json:"phone" validate:"max=40"`
	Address string `json:"address" validate:"max=300"`
	Notes   string `json:"notes" validate:"max=1000"`
}

// OrderLine is a resolved cart entry
type OrderLine struct {
	ItemID    string  `json:"itemId"`
	Category  string  `json:"category"`
	Dish      string  `json:"dish"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"lineTotal"`
}

// Order is the prepared hand-off: the message text and the deep link carrying it
type Order struct {
	ID          string       `json:"id"`
	Menu        MenuKind     `json:"menu"`
	Language    string       `json:"language"`
	Items       []OrderLine  `json:"items"`
	ItemCount   int          `json:"itemCount"`
	Subtotal    float64      `json:"subtotal"`
	DeliveryFee float64      `json:"deliveryFee"`
	Total       float64      `json:"total"`
	Zone        DeliveryZone `json:"zone"`
	Message     string       `json:"message"`
	Link        string       `json:"link"`
}
