package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/eatwithmaddie/menu-backend/internal/i18n"
	"github.com/eatwithmaddie/menu-backend/internal/menu"
	"github.com/eatwithmaddie/menu-backend/internal/models"
	"github.com/eatwithmaddie/menu-backend/internal/repository"
	"github.com/eatwithmaddie/menu-backend/internal/service"
)

// MenuHandler handles menu-related HTTP requests
type MenuHandler struct {
	menuService *service.MenuService
	log         *slog.Logger
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(menuService *service.MenuService, log *slog.Logger) *MenuHandler {
	return &MenuHandler{
		menuService: menuService,
		log:         log,
	}
}

// MenuResponse is a loaded menu as served to the front-end
type MenuResponse struct {
	Menu       models.MenuKind   `json:"menu"`
	Rows       []models.MenuRow  `json:"rows"`
	Source     models.MenuSource `json:"source"`
	Warning    string            `json:"warning,omitempty"`
	Notice     string            `json:"notice,omitempty"`
	Categories []string          `json:"categories"`
	Language   i18n.Language     `json:"language"`
	LoadedAt   time.Time         `json:"loadedAt"`
}

// Daily handles GET /api/menu/daily
func (h *MenuHandler) Daily(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, models.MenuDaily)
}

// Full handles GET /api/menu/full
func (h *MenuHandler) Full(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, models.MenuFull)
}

// GetItem handles GET /api/menu/{menu}/items/{itemId}
func (h *MenuHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	kind := models.MenuKind(chi.URLParam(r, "menu"))
	itemID := chi.URLParam(r, "itemId")

	row, err := h.menuService.Item(r.Context(), kind, itemID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidMenu):
			WriteError(w, http.StatusNotFound, "Menu not found", h.log)
		case errors.Is(err, repository.ErrItemNotFound):
			WriteError(w, http.StatusNotFound, "Menu item not found", h.log)
		default:
			h.writeLoadError(w, kind, err)
		}
		return
	}

	WriteJSON(w, http.StatusOK, row, h.log)
}

func (h *MenuHandler) serve(w http.ResponseWriter, r *http.Request, kind models.MenuKind) {
	snap, err := h.menuService.Menu(r.Context(), kind)
	if err != nil {
		h.writeLoadError(w, kind, err)
		return
	}

	lang := i18n.FromContext(r.Context())
	res := snap.Result
	response := MenuResponse{
		Menu:       kind,
		Rows:       res.Rows,
		Source:     res.Source,
		Warning:    res.Warning,
		Categories: menu.Categories(res.Rows),
		Language:   lang,
		LoadedAt:   snap.LoadedAt,
	}
	if response.Rows == nil {
		response.Rows = []models.MenuRow{}
	}
	if res.Warning != "" {
		response.Notice = i18n.For(lang).FallbackNotice + " " + res.Warning
	}

	WriteJSON(w, http.StatusOK, response, h.log)
}

func (h *MenuHandler) writeLoadError(w http.ResponseWriter, kind models.MenuKind, err error) {
	if errors.Is(err, service.ErrMenuUnavailable) {
		h.log.Warn("menu unavailable", "menu", kind, "error", err)
		WriteError(w, http.StatusServiceUnavailable, "Menu is temporarily unavailable", h.log)
		return
	}
	h.log.Error("failed to load menu", "menu", kind, "error", err)
	WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
}
