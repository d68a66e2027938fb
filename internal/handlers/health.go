package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/eatwithmaddie/menu-backend/internal/models"
	"github.com/eatwithmaddie/menu-backend/internal/repository"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

// HealthHandler provides health check endpoint
type HealthHandler struct {
	repo   repository.MenuRepository
	logger *slog.Logger
}

// NewHealthHandler creates a new health handler. repo may be nil, in which
// case no menu status is reported.
func NewHealthHandler(repo repository.MenuRepository, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		repo:   repo,
		logger: logger,
	}
}

// MenuStatus summarises the latest snapshot of one menu
type MenuStatus struct {
	Source   models.MenuSource `json:"source"`
	Rows     int               `json:"rows"`
	LoadedAt time.Time         `json:"loadedAt"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string                         `json:"status"`
	Timestamp time.Time                      `json:"timestamp"`
	Version   string                         `json:"version"`
	Menus     map[models.MenuKind]MenuStatus `json:"menus,omitempty"`
}

// ServeHTTP handles health check requests. Menus that were never loaded are
// simply absent; the service is healthy as long as it answers.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Version:   Version,
	}

	if h.repo != nil {
		response.Menus = make(map[models.MenuKind]MenuStatus)
		for _, kind := range []models.MenuKind{models.MenuDaily, models.MenuFull} {
			snap, err := h.repo.Get(r.Context(), kind)
			if err != nil {
				continue
			}
			response.Menus[kind] = MenuStatus{
				Source:   snap.Result.Source,
				Rows:     len(snap.Result.Rows),
				LoadedAt: snap.LoadedAt,
			}
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.logger.Error("failed to encode health response", "error", err)
	}
}
