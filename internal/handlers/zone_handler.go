package handlers

import (
	"log/slog"
	"net/http"

	"github.com/eatwithmaddie/menu-backend/internal/i18n"
	"github.com/eatwithmaddie/menu-backend/internal/order"
	"github.com/eatwithmaddie/menu-backend/internal/service"
)

// ZoneHandler lists the delivery zones
type ZoneHandler struct {
	orderService *service.OrderService
	log          *slog.Logger
}

// NewZoneHandler creates a new zone handler
func NewZoneHandler(orderService *service.OrderService, log *slog.Logger) *ZoneHandler {
	return &ZoneHandler{
		orderService: orderService,
		log:          log,
	}
}

// ZoneResponse is a delivery zone labelled in the request language
type ZoneResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Fee          float64 `json:"fee"`
	FeeFormatted string  `json:"feeFormatted"`
}

// ListZones handles GET /api/zones
func (h *ZoneHandler) ListZones(w http.ResponseWriter, r *http.Request) {
	lang := string(i18n.FromContext(r.Context()))

	zones := h.orderService.Zones()
	response := make([]ZoneResponse, 0, len(zones))
	for _, z := range zones {
		response = append(response, ZoneResponse{
			ID:           z.ID,
			Name:         z.LocalizedName(lang),
			Fee:          z.Fee,
			FeeFormatted: order.FormatFCFA(z.Fee),
		})
	}

	WriteJSON(w, http.StatusOK, response, h.log)
}
