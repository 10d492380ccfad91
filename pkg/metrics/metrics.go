// Package metrics - Prometheus метрики сервиса
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор Prometheus коллекторов сервиса
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	dbQueriesTotal      *prometheus.CounterVec
	dbQueryDuration     *prometheus.HistogramVec
	dbPoolOpen          *prometheus.GaugeVec
	dbPoolIdle          *prometheus.GaugeVec
	dbPoolInUse         *prometheus.GaugeVec
}

// New регистрирует и возвращает коллекторы метрик
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests.",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency in seconds.",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: constLabels,
		}, []string{"method", "path"}),

		dbQueriesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_queries_total",
			Help:        "Total number of database queries.",
			ConstLabels: constLabels,
		}, []string{"operation", "status"}),

		dbQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency in seconds.",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: constLabels,
		}, []string{"operation"}),

		dbPoolOpen: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_pool_open_connections",
			Help:        "Number of open connections in the pool.",
			ConstLabels: constLabels,
		}, []string{}),

		dbPoolIdle: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_pool_idle_connections",
			Help:        "Number of idle connections in the pool.",
			ConstLabels: constLabels,
		}, []string{}),

		dbPoolInUse: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_pool_in_use_connections",
			Help:        "Number of connections currently in use.",
			ConstLabels: constLabels,
		}, []string{}),
	}
}

// ObserveHTTPRequest учитывает завершённый HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, path, status string, durationSeconds float64) {
	m.httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(durationSeconds)
}

// ObserveDBQuery учитывает выполненный запрос к БД
func (m *Metrics) ObserveDBQuery(operation, status string, durationSeconds float64) {
	m.dbQueriesTotal.WithLabelValues(operation, status).Inc()
	m.dbQueryDuration.WithLabelValues(operation).Observe(durationSeconds)
}

// SetDBPoolStats обновляет gauge-метрики connection pool
func (m *Metrics) SetDBPoolStats(open, idle, inUse int) {
	m.dbPoolOpen.WithLabelValues().Set(float64(open))
	m.dbPoolIdle.WithLabelValues().Set(float64(idle))
	m.dbPoolInUse.WithLabelValues().Set(float64(inUse))
}
