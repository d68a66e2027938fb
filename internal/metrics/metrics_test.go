package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveMenuLoad(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveMenuLoad("daily", "sheet", 0.2, 12)
	m.ObserveMenuLoad("daily", "sheet", 0.1, 9)
	m.ObserveMenuLoad("daily", "error", 1, 0)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.MenuLoads.WithLabelValues("daily", "sheet")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.MenuLoads.WithLabelValues("daily", "error")))
	assert.Equal(t, 9.0, testutil.ToFloat64(m.MenuRows.WithLabelValues("daily")), "errors keep the last row count")
}

func TestObserveOrderAndHTTP(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveOrder("full", "created")
	m.ObserveHTTP("GET", "/api/menu/daily", "200", 0.01)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Orders.WithLabelValues("full", "created")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "/api/menu/daily", "200")))

	count, err := testutil.GatherAndCount(reg, "eatwithmaddie_http_request_duration_seconds")
	assert.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveMenuLoad("daily", "sheet", 0, 1)
		m.ObserveOrder("daily", "created")
		m.ObserveHTTP("GET", "/", "200", 0)
	})
}
