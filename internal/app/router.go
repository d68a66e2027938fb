package app

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/eatwithmaddie/menu-backend/internal/handlers"
	"github.com/eatwithmaddie/menu-backend/internal/middleware"
)

// Router builds the HTTP routes. gatherer backs /metrics and may be nil.
func (a *App) Router(gatherer prometheus.Gatherer) http.Handler {
	healthHandler := handlers.NewHealthHandler(a.Repo, a.Logger)
	menuHandler := handlers.NewMenuHandler(a.Menus, a.Logger)
	zoneHandler := handlers.NewZoneHandler(a.Orders, a.Logger)
	orderHandler := handlers.NewOrderHandler(a.Orders, a.Logger)
	orderLimiter := middleware.NewRateLimiter(a.Config.Order.RateLimit, a.Config.Order.RateBurst)

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Language)
	r.Use(middleware.Logger(a.Logger, a.Metrics))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   a.Config.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Language", "Content-Type"},
		ExposedHeaders:   []string{"Content-Language"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", healthHandler.ServeHTTP)
	if gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/menu/daily", menuHandler.Daily)
		r.Get("/menu/full", menuHandler.Full)
		r.Get("/menu/{menu}/items/{itemId}", menuHandler.GetItem)

		r.Get("/zones", zoneHandler.ListZones)

		r.With(orderLimiter.Handler).Post("/order", orderHandler.CreateOrder)
	})

	return r
}
