// Package metrics holds the Prometheus instruments for menu loading,
// ordering and HTTP traffic. All operations are safe for concurrent use.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "eatwithmaddie"

// Metrics groups every instrument the service records
type Metrics struct {
	// MenuLoads counts completed loads. Labels: menu (daily, full), source (sheet, fallback, error)
	MenuLoads *prometheus.CounterVec

	// MenuLoadDuration measures how long a load took end to end. Labels: menu
	MenuLoadDuration *prometheus.HistogramVec

	// MenuRows is the row count of the latest snapshot. Labels: menu
	MenuRows *prometheus.GaugeVec

	// Orders counts order attempts. Labels: menu, status (created, rejected, unavailable, error)
	Orders *prometheus.CounterVec

	// HTTPRequests counts served requests. Labels: method, route, status
	HTTPRequests *prometheus.CounterVec

	// HTTPDuration measures request latency. Labels: method, route
	HTTPDuration *prometheus.HistogramVec
}

// New registers all instruments with reg. Pass prometheus.DefaultRegisterer
// in production and a fresh prometheus.NewRegistry() in tests.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		MenuLoads: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "menu",
			Name:      "loads_total",
			Help:      "Menu loads by menu and resolved source.",
		}, []string{"menu", "source"}),

		MenuLoadDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "menu",
			Name:      "load_duration_seconds",
			Help:      "Time to resolve a menu across feed, cache and fallback.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"menu"}),

		MenuRows: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "menu",
			Name:      "rows",
			Help:      "Rows in the most recent menu snapshot.",
		}, []string{"menu"}),

		Orders: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "order",
			Name:      "requests_total",
			Help:      "Order requests by menu and outcome.",
		}, []string{"menu", "status"}),

		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route pattern and status code.",
		}, []string{"method", "route", "status"}),

		HTTPDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by method and route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

// ObserveMenuLoad records one finished load
func (m *Metrics) ObserveMenuLoad(menu, source string, seconds float64, rows int) {
	if m == nil {
		return
	}
	m.MenuLoads.WithLabelValues(menu, source).Inc()
	m.MenuLoadDuration.WithLabelValues(menu).Observe(seconds)
	if source != "error" {
		m.MenuRows.WithLabelValues(menu).Set(float64(rows))
	}
}

// ObserveOrder records one order attempt
func (m *Metrics) ObserveOrder(menu, status string) {
	if m == nil {
		return
	}
	m.Orders.WithLabelValues(menu, status).Inc()
}

// ObserveHTTP records one served request
func (m *Metrics) ObserveHTTP(method, route, status string, seconds float64) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(method, route, status).Inc()
	m.HTTPDuration.WithLabelValues(method, route).Observe(seconds)
}
