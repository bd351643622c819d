package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus-метрик сервиса: HTTP, база данных, кэш
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbQueriesTotal  *prometheus.CounterVec
	dbQueryDuration *prometheus.HistogramVec
	dbPoolStats     *prometheus.GaugeVec

	cacheOpsTotal *prometheus.CounterVec
}

// New создает и регистрирует метрики в дефолтном registry
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests processed",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency distribution",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		dbQueriesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_queries_total",
			Help:        "Total number of database queries executed",
			ConstLabels: constLabels,
		}, []string{"operation", "status"}),

		dbQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency distribution",
			ConstLabels: constLabels,
			Buckets:     []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"operation"}),

		dbPoolStats: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_pool_connections",
			Help:        "Database connection pool statistics",
			ConstLabels: constLabels,
		}, []string{"stat"}),

		cacheOpsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "cache_operations_total",
			Help:        "Total number of cache operations by result",
			ConstLabels: constLabels,
		}, []string{"operation", "result"}),
	}
}

// IncHTTPRequest увеличивает счетчик HTTP-запросов
func (m *Metrics) IncHTTPRequest(method, path string, status int) {
	m.httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
}

// ObserveHTTPRequestDuration записывает длительность HTTP-запроса в секундах
func (m *Metrics) ObserveHTTPRequestDuration(method, path string, seconds float64) {
	m.httpRequestDuration.WithLabelValues(method, path).Observe(seconds)
}

// IncDBQuery увеличивает счетчик запросов к БД (status: "ok" / "error")
func (m *Metrics) IncDBQuery(operation, status string) {
	m.dbQueriesTotal.WithLabelValues(operation, status).Inc()
}

// ObserveDBQueryDuration записывает длительность запроса к БД в секундах
func (m *Metrics) ObserveDBQueryDuration(operation string, seconds float64) {
	m.dbQueryDuration.WithLabelValues(operation).Observe(seconds)
}

// SetDBPoolStat выставляет значение gauge-метрики пула соединений
func (m *Metrics) SetDBPoolStat(stat string, value float64) {
	m.dbPoolStats.WithLabelValues(stat).Set(value)
}

// IncCacheOp увеличивает счетчик операций с кэшем (result: "hit" / "miss" / "error")
func (m *Metrics) IncCacheOp(operation, result string) {
	m.cacheOpsTotal.WithLabelValues(operation, result).Inc()
}
