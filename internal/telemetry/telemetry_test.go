package telemetry

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware_CountsByRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := New(nil)

	router := gin.New()
	router.Use(m.Middleware())
	router.GET("/visitors", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/visitors", http.NoBody))
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nowhere", http.NoBody))

	assert.InDelta(t, 3, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/visitors", "200")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "unmatched", "404")), 0)
}

func TestObserve(t *testing.T) {
	m := New(nil)
	m.ObserveGenerated("visitors", 4)
	m.ObserveRejected("INVALID_FORMAT")

	assert.InDelta(t, 4, testutil.ToFloat64(m.DatesGenerated.WithLabelValues("visitors")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.RejectedTotal.WithLabelValues("INVALID_FORMAT")), 0)
}

func TestHandler_Exposes(t *testing.T) {
	m := New(nil)
	m.ObserveGenerated("cities", 1)

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `site_metrics_dates_generated_total{metric="cities"} 1`)
}

func TestObserve_NilMetrics(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveGenerated("visitors", 1)
		m.ObserveRejected("FORBIDDEN")
	})
}
