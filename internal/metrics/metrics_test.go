package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/TheLeeJungYan/EINV-POS-API/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestHTTPMetrics_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reg := prometheus.NewRegistry()
	m := metrics.NewHTTPMetrics("pos-api", reg)

	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/products/:id", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/metrics", gin.WrapH(metrics.Handler(reg)))

	for _, id := range []string{"a", "b"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/products/"+id, nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}

	count, err := testutil.GatherAndCount(reg, "http_requests_total")
	assert.NoError(t, err)
	assert.Equal(t, 1, count, "route template keeps one series")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, w.Body.String(), `http_requests_total{method="GET",path="/products/:id",service="pos-api",status="200"} 2`)
}

func TestDomainMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewDomainMetrics(reg)

	m.TransactionsRecorded.WithLabelValues("CASH").Inc()
	m.TransactionAmount.WithLabelValues("CASH").Add(1199)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.TransactionsRecorded.WithLabelValues("CASH")))
	assert.Equal(t, float64(1199), testutil.ToFloat64(m.TransactionAmount.WithLabelValues("CASH")))
}
