// Package metrics Prometheus 지표를 정의하고 수집합니다.
//
// 모든 메서드는 nil 수신자에서도 안전하게 동작하므로, 지표가 필요 없는 테스트나
// 도구에서는 *Metrics 자리에 nil을 넘기면 됩니다.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "shopcmp"

// Metrics 애플리케이션 지표 모음입니다.
type Metrics struct {
	gatherer prometheus.Gatherer

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	comparisonsCreated *prometheus.CounterVec
	searchRecorded     prometheus.Counter
	partialDataGaps    prometheus.Counter
	shopNameCache      *prometheus.CounterVec
}

// New 지표를 생성하고 registry에 등록합니다.
// 운영에서는 prometheus.NewRegistry()를, 테스트에서는 테스트마다 새 registry를 넘깁니다.
func New(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		gatherer: registry,

		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests.",
			},
			[]string{"method", "endpoint", "status"},
		),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Histogram of HTTP request durations.",
				Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5},
			},
			[]string{"method", "endpoint", "status"},
		),
		comparisonsCreated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "comparison_records_created_total",
				Help:      "Number of comparison records persisted, by candidate source.",
			},
			[]string{"source"},
		),
		searchRecorded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_records_created_total",
			Help:      "Number of search history records persisted.",
		}),
		partialDataGaps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "partial_data_gaps_total",
			Help:      "Number of shop pairs skipped because a listing was missing.",
		}),
		shopNameCache: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "shop_name_cache_lookups_total",
				Help:      "Shop name cache lookups, by result.",
			},
			[]string{"result"},
		),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.comparisonsCreated,
		m.searchRecorded,
		m.partialDataGaps,
		m.shopNameCache,
	)

	return m
}

// RecordRequest HTTP 요청 하나의 결과를 기록합니다.
func (m *Metrics) RecordRequest(method, endpoint string, statusCode int, duration time.Duration) {
	if m == nil {
		return
	}
	status := classifyStatus(statusCode)
	m.httpRequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, endpoint, status).Observe(duration.Seconds())
}

// ComparisonsCreated 저장된 비교 레코드 수를 누적합니다. source는 "history" 또는 "catalog"입니다.
func (m *Metrics) ComparisonsCreated(source string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.comparisonsCreated.WithLabelValues(source).Add(float64(n))
}

// SearchRecorded 저장된 검색 이력 레코드 수를 누적합니다.
func (m *Metrics) SearchRecorded(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.searchRecorded.Add(float64(n))
}

// PartialDataGap 판매 정보 누락으로 건너뛴 쌍을 하나 기록합니다.
func (m *Metrics) PartialDataGap() {
	if m == nil {
		return
	}
	m.partialDataGaps.Inc()
}

// ShopNameCacheLookup 상점 이름 캐시 조회 결과(hit, miss, error)를 기록합니다.
func (m *Metrics) ShopNameCacheLookup(result string) {
	if m == nil {
		return
	}
	m.shopNameCache.WithLabelValues(result).Inc()
}

// Handler /metrics 엔드포인트용 http.Handler를 반환합니다.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

func classifyStatus(code int) string {
	if code < 100 || code > 599 {
		return "unknown"
	}
	return strconv.Itoa(code/100) + "xx"
}
