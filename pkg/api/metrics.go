package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

// Metrics holds all Prometheus metrics for the API
type Metrics struct {
	// HTTP request metrics
	httpRequestsTotal    *prometheus.CounterVec
	httpRequestDuration  *prometheus.HistogramVec
	httpRequestsInFlight *prometheus.GaugeVec

	// Parser metrics
	parsesTotal       *prometheus.CounterVec
	parseDuration     *prometheus.HistogramVec
	pointsDecodedTotal prometheus.Counter
	bytesIngestedTotal prometheus.Counter

	// Asset store metrics
	storeAssetsTotal   prometheus.Gauge
	storeDataSizeBytes prometheus.Gauge

	// API key authentication metrics
	authRequestsTotal *prometheus.CounterVec
}

// NewMetrics creates and registers all Prometheus metrics
func NewMetrics() *Metrics {
	m := &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "splatvault_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status_code"},
		),

		httpRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "splatvault_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),

		httpRequestsInFlight: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "splatvault_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"method", "endpoint"},
		),

		parsesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "splatvault_ply_parses_total",
				Help: "Total number of PLY parse attempts",
			},
			[]string{"status"},
		),

		parseDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "splatvault_ply_parse_duration_seconds",
				Help:    "PLY parse duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"status"},
		),

		pointsDecodedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "splatvault_points_decoded_total",
				Help: "Total number of splat points decoded from PLY streams",
			},
		),

		bytesIngestedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "splatvault_bytes_ingested_total",
				Help: "Total number of PLY payload bytes ingested",
			},
		),

		storeAssetsTotal: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "splatvault_store_assets_total",
				Help: "Number of assets in the store",
			},
		),

		storeDataSizeBytes: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "splatvault_store_data_size_bytes",
				Help: "Total size of stored asset payloads in bytes",
			},
		),

		authRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "splatvault_auth_requests_total",
				Help: "Total number of authentication requests",
			},
			[]string{"status"},
		),
	}

	return m
}

// RecordHTTPRequest records an HTTP request
func (m *Metrics) RecordHTTPRequest(method, endpoint string, statusCode int, duration time.Duration) {
	statusCodeStr := strconv.Itoa(statusCode)

	m.httpRequestsTotal.WithLabelValues(method, endpoint, statusCodeStr).Inc()
	m.httpRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordParse records a PLY parse attempt with its decoded volume
func (m *Metrics) RecordParse(success bool, points int, bytes int64, duration time.Duration) {
	status := statusSuccess
	if !success {
		status = statusError
	}

	m.parsesTotal.WithLabelValues(status).Inc()
	m.parseDuration.WithLabelValues(status).Observe(duration.Seconds())
	if success {
		m.pointsDecodedTotal.Add(float64(points))
		m.bytesIngestedTotal.Add(float64(bytes))
	}
}

// UpdateStoreStats updates asset store statistics
func (m *Metrics) UpdateStoreStats(assets int, dataSize int64) {
	m.storeAssetsTotal.Set(float64(assets))
	m.storeDataSizeBytes.Set(float64(dataSize))
}

// RecordAuthRequest records an authentication request
func (m *Metrics) RecordAuthRequest(success bool) {
	status := statusSuccess
	if !success {
		status = statusError
	}
	m.authRequestsTotal.WithLabelValues(status).Inc()
}

// InstrumentHandler instruments an HTTP handler with metrics
func (m *Metrics) InstrumentHandler(method, endpoint string, handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		gauge := m.httpRequestsInFlight.WithLabelValues(method, endpoint)
		gauge.Inc()
		defer gauge.Dec()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		handler(rw, r)

		duration := time.Since(start)
		m.RecordHTTPRequest(method, endpoint, rw.statusCode, duration)
	}
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
