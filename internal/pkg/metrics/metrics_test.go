package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyStatus(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2xx", classifyStatus(200))
	assert.Equal(t, "3xx", classifyStatus(304))
	assert.Equal(t, "4xx", classifyStatus(404))
	assert.Equal(t, "5xx", classifyStatus(503))
	assert.Equal(t, "unknown", classifyStatus(0))
	assert.Equal(t, "unknown", classifyStatus(600))
}

func TestMetrics_카운터(t *testing.T) {
	t.Parallel()

	m := New(prometheus.NewRegistry())

	m.RecordRequest(http.MethodGet, "/api/v1/search", 200, 15*time.Millisecond)
	m.RecordRequest(http.MethodGet, "/api/v1/search", 201, 5*time.Millisecond)
	m.ComparisonsCreated("catalog", 3)
	m.ComparisonsCreated("catalog", 0)
	m.SearchRecorded(2)
	m.PartialDataGap()
	m.ShopNameCacheLookup("hit")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("GET", "/api/v1/search", "2xx")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.comparisonsCreated.WithLabelValues("catalog")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.searchRecorded))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.partialDataGaps))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.shopNameCache.WithLabelValues("hit")))
}

func TestMetrics_nil_수신자(t *testing.T) {
	t.Parallel()

	var m *Metrics
	assert.NotPanics(t, func() {
		m.RecordRequest("GET", "/", 200, time.Second)
		m.ComparisonsCreated("history", 1)
		m.SearchRecorded(1)
		m.PartialDataGap()
		m.ShopNameCacheLookup("miss")
	})

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMetrics_Handler(t *testing.T) {
	t.Parallel()

	m := New(prometheus.NewRegistry())
	m.PartialDataGap()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "shopcmp_partial_data_gaps_total 1")
}
