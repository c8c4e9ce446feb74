package monitoring

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordTransform(t *testing.T) {
	m := NewMetrics()

	m.RecordTransform("", 2*time.Millisecond, 2)
	m.RecordTransform("missing_base", time.Millisecond, 0)
	m.RecordTransform("missing_base", time.Millisecond, 0)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.TransformsTotal.WithLabelValues("ok", "")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.TransformsTotal.WithLabelValues("error", "missing_base")))
}

func TestRecordTransformNilReceiver(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RecordTransform("", time.Millisecond, 1)
	})
}

func TestNewMetricsIsolated(t *testing.T) {
	// Private registries must not collide.
	assert.NotPanics(t, func() {
		NewMetrics()
		NewMetrics()
	})
}

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := NewMetrics()

	router := gin.New()
	router.Use(Middleware(m))
	router.GET("/health", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	router.GET("/metrics", gin.WrapH(m.Handler()))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/health", "200")))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "sfcx_http_requests_total")
}
