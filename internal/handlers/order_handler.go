package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/eatwithmaddie/menu-backend/internal/i18n"
	"github.com/eatwithmaddie/menu-backend/internal/models"
	"github.com/eatwithmaddie/menu-backend/internal/service"
)

// maxOrderBody bounds the JSON body of an order request
const maxOrderBody = 64 << 10

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
	log          *slog.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService, log *slog.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		log:          log,
	}
}

// CreateOrder handles POST /api/order
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req models.OrderRequest

	// Parse request body
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxOrderBody))
	if err := dec.Decode(&req); err != nil {
		h.log.Error("failed to decode order request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	// Validate and create order
	order, err := h.orderService.CreateOrder(r.Context(), req, i18n.FromContext(r.Context()))
	if err != nil {
		h.log.Error("failed to create order", "error", err)

		switch {
		case errors.Is(err, service.ErrEmptyOrder):
			WriteError(w, http.StatusBadRequest, "Order must contain at least one item", h.log)
		case errors.Is(err, service.ErrInvalidQuantity):
			WriteError(w, http.StatusBadRequest, "Quantity must be between 1 and 99", h.log)
		case errors.Is(err, service.ErrInvalidItem):
			WriteError(w, http.StatusBadRequest, "Invalid menu item", h.log)
		case errors.Is(err, service.ErrInvalidZone):
			WriteError(w, http.StatusBadRequest, "Unknown delivery zone", h.log)
		case errors.Is(err, service.ErrInvalidCustomer):
			WriteError(w, http.StatusBadRequest, "Invalid customer details", h.log)
		case errors.Is(err, service.ErrInvalidMenu):
			WriteError(w, http.StatusBadRequest, "Unknown menu", h.log)
		case errors.Is(err, service.ErrMenuUnavailable):
			WriteError(w, http.StatusServiceUnavailable, "Menu is temporarily unavailable", h.log)
		default:
			WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		}
		return
	}

	// Return successful response
	WriteJSON(w, http.StatusOK, order, h.log)
	h.log.Info("order created successfully", "order_id", order.ID, "items_count", len(order.Items))
}
