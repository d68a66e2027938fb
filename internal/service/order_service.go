package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/eatwithmaddie/menu-backend/internal/i18n"
	"github.com/eatwithmaddie/menu-backend/internal/metrics"
	"github.com/eatwithmaddie/menu-backend/internal/models"
	"github.com/eatwithmaddie/menu-backend/internal/order"
	"github.com/eatwithmaddie/menu-backend/internal/repository"
)

var (
	ErrInvalidItem     = errors.New("invalid menu item")
	ErrInvalidQuantity = errors.New("quantity must be between 1 and 99")
	ErrEmptyOrder      = errors.New("order must contain at least one item")
	ErrInvalidZone     = errors.New("unknown delivery zone")
	ErrInvalidCustomer = errors.New("invalid customer details")
)

// MaxQuantity caps how many of one item an order may hold
const MaxQuantity = 99

// MenuProvider returns the snapshot an order is priced against
type MenuProvider interface {
	Menu(ctx context.Context, kind models.MenuKind) (repository.Snapshot, error)
}

// OrderService turns a cart into a priced order with its WhatsApp hand-off
type OrderService struct {
	menus          MenuProvider
	zones          *order.Zones
	whatsAppNumber string
	validate       *validator.Validate
	metrics        *metrics.Metrics
	logger         *slog.Logger
}

// NewOrderService creates a new order service. zones defaults to the built-in
// delivery zones; metrics may be nil.
func NewOrderService(menus MenuProvider, zones *order.Zones, whatsAppNumber string, m *metrics.Metrics, logger *slog.Logger) *OrderService {
	if zones == nil {
		zones = order.DefaultZones()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &OrderService{
		menus:          menus,
		zones:          zones,
		whatsAppNumber: whatsAppNumber,
		validate:       validator.New(),
		metrics:        m,
		logger:         logger,
	}
}

// Zones returns the delivery zones orders can be sent to
func (s *OrderService) Zones() []models.DeliveryZone {
	return s.zones.All()
}

// CreateOrder prices req against the current menu snapshot and prepares the
// order message. An empty menu kind means the daily menu.
func (s *OrderService) CreateOrder(ctx context.Context, req models.OrderRequest, lang i18n.Language) (*models.Order, error) {
	if req.Menu == "" {
		req.Menu = models.MenuDaily
	}

	o, err := s.createOrder(ctx, req, lang)
	label := string(req.Menu)
	if !req.Menu.Valid() {
		label = "unknown"
	}
	s.metrics.ObserveOrder(label, orderStatus(err))
	return o, err
}

func (s *OrderService) createOrder(ctx context.Context, req models.OrderRequest, lang i18n.Language) (*models.Order, error) {
	if !req.Menu.Valid() {
		return nil, ErrInvalidMenu
	}
	if len(req.Items) == 0 {
		return nil, ErrEmptyOrder
	}
	cart := order.NewCart()
	for _, item := range req.Items {
		if item.ItemID == "" {
			return nil, ErrInvalidItem
		}
		// repeated ids merge, so the cap applies to the running total
		if item.Quantity <= 0 || cart.Quantity(item.ItemID)+item.Quantity > MaxQuantity {
			return nil, ErrInvalidQuantity
		}
		cart.Add(item.ItemID, item.Quantity)
	}
	if err := s.validate.Struct(req.Customer); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCustomer, err)
	}

	zone := s.zones.Default()
	if req.ZoneID != "" {
		z, ok := s.zones.Lookup(req.ZoneID)
		if !ok {
			return nil, ErrInvalidZone
		}
		zone = z
	}

	snap, err := s.menus.Menu(ctx, req.Menu)
	if err != nil {
		return nil, err
	}
	rows := snap.Result.Rows

	if unknown := cart.Unknown(rows); len(unknown) > 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidItem, unknown)
	}

	lines := cart.Lines(rows)
	var subtotal float64
	for _, line := range lines {
		subtotal += line.LineTotal
	}

	message := order.ComposeMessage(order.MessageInput{
		Menu:     req.Menu,
		Language: lang,
		Lines:    lines,
		Zone:     zone,
		Customer: req.Customer,
	})

	o := &models.Order{
		ID:          generateOrderID(),
		Menu:        req.Menu,
		Language:    string(lang),
		Items:       lines,
		ItemCount:   cart.Count(),
		Subtotal:    subtotal,
		DeliveryFee: zone.Fee,
		Total:       subtotal + zone.Fee,
		Zone:        zone,
		Message:     message,
		Link:        order.WhatsAppLink(s.whatsAppNumber, message),
	}

	s.logger.Info("order prepared",
		"order_id", o.ID,
		"menu", o.Menu,
		"items", o.ItemCount,
		"zone", zone.ID,
		"total", o.Total,
	)
	return o, nil
}

// IsValidationError reports whether err was caused by the request itself
func IsValidationError(err error) bool {
	for _, target := range []error{ErrInvalidMenu, ErrEmptyOrder, ErrInvalidQuantity, ErrInvalidItem, ErrInvalidZone, ErrInvalidCustomer} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func orderStatus(err error) string {
	switch {
	case err == nil:
		return "created"
	case IsValidationError(err):
		return "rejected"
	case errors.Is(err, ErrMenuUnavailable):
		return "unavailable"
	default:
		return "error"
	}
}

// generateOrderID generates a unique order ID using UUID
func generateOrderID() string {
	return uuid.New().String()
}
