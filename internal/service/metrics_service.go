package service

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService encapsulates Prometheus instrumentation for the API.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	cacheLatency    prometheus.Observer
	cacheWrite      prometheus.Observer
	cacheLookups    *prometheus.CounterVec
	dbQueryDuration *prometheus.HistogramVec
	catalogRefresh  *prometheus.CounterVec
	catalogSize     prometheus.Gauge
	catalogInvalid  prometheus.Gauge
	matchTotal      prometheus.Counter
	matchResults    prometheus.Histogram
	assistantTotal  *prometheus.CounterVec
}

// NewMetricsService registers the service collectors on a private registry.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	cacheLatency := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "cache_latency_seconds",
		Help:    "Latency for cache lookups",
		Buckets: prometheus.DefBuckets,
	})

	cacheWrite := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "cache_write_seconds",
		Help:    "Latency for cache set operations",
		Buckets: prometheus.DefBuckets,
	})

	cacheLookups := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cache_lookups_total",
		Help: "Cache lookups by result",
	}, []string{"result"})

	dbQueryDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "db_query_duration_seconds",
		Help:    "Duration of database queries",
		Buckets: prometheus.DefBuckets,
	}, []string{"query"})

	catalogRefresh := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_refresh_total",
		Help: "Scholarship catalog fetches by outcome",
	}, []string{"outcome"})

	catalogSize := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "catalog_records",
		Help: "Scholarships currently held in memory",
	})

	catalogInvalid := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "catalog_invalid_records",
		Help: "Scholarships dropped during the last load because their eligibility rule was malformed",
	})

	matchTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "match_requests_total",
		Help: "Eligibility filter runs",
	})

	matchResults := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "match_results",
		Help:    "Number of scholarships returned per filter run",
		Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100},
	})

	assistantTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "assistant_requests_total",
		Help: "Assistant questions by outcome",
	}, []string{"outcome"})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(
		requestDuration, requestTotal,
		cacheLatency, cacheWrite, cacheLookups,
		dbQueryDuration,
		catalogRefresh, catalogSize, catalogInvalid,
		matchTotal, matchResults,
		assistantTotal,
		goroutines,
	)

	return &MetricsService{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		cacheLatency:    cacheLatency,
		cacheWrite:      cacheWrite,
		cacheLookups:    cacheLookups,
		dbQueryDuration: dbQueryDuration,
		catalogRefresh:  catalogRefresh,
		catalogSize:     catalogSize,
		catalogInvalid:  catalogInvalid,
		matchTotal:      matchTotal,
		matchResults:    matchResults,
		assistantTotal:  assistantTotal,
	}
}

// Handler exposes the Prometheus HTTP handler.
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// Registry returns the underlying registry.
func (m *MetricsService) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// ObserveHTTPRequest records request metrics.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labelStatus := fmt.Sprintf("%d", status)
	m.requestDuration.WithLabelValues(method, path, labelStatus).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, labelStatus).Inc()
}

// RecordCacheOperation records a cache lookup.
func (m *MetricsService) RecordCacheOperation(hit bool, duration time.Duration) {
	if m == nil {
		return
	}
	m.cacheLatency.Observe(duration.Seconds())
	if hit {
		m.cacheLookups.WithLabelValues("hit").Inc()
	} else {
		m.cacheLookups.WithLabelValues("miss").Inc()
	}
}

// ObserveCacheWrite tracks the duration for cache write operations.
func (m *MetricsService) ObserveCacheWrite(duration time.Duration) {
	if m == nil {
		return
	}
	m.cacheWrite.Observe(duration.Seconds())
}

// ObserveDBQuery records database query timing.
func (m *MetricsService) ObserveDBQuery(label string, duration time.Duration) {
	if m == nil {
		return
	}
	m.dbQueryDuration.WithLabelValues(label).Observe(duration.Seconds())
}

// RecordCatalogRefresh counts a catalog fetch and publishes the resulting sizes.
func (m *MetricsService) RecordCatalogRefresh(outcome string, records, invalid int) {
	if m == nil {
		return
	}
	m.catalogRefresh.WithLabelValues(outcome).Inc()
	m.catalogSize.Set(float64(records))
	m.catalogInvalid.Set(float64(invalid))
}

// RecordMatch counts one filter run.
func (m *MetricsService) RecordMatch(matching int) {
	if m == nil {
		return
	}
	m.matchTotal.Inc()
	m.matchResults.Observe(float64(matching))
}

// RecordAssistant counts one assistant question by outcome.
func (m *MetricsService) RecordAssistant(outcome string) {
	if m == nil {
		return
	}
	m.assistantTotal.WithLabelValues(outcome).Inc()
}
