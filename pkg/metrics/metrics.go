package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus-коллекторов сервиса
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	bookingEventsTotal *prometheus.CounterVec
	roomsAvailable     *prometheus.GaugeVec

	dbQueriesTotal  *prometheus.CounterVec
	dbQueryDuration *prometheus.HistogramVec
	dbPoolStats     *prometheus.GaugeVec
}

// New регистрирует коллекторы в default registry
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		bookingEventsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_events_total",
			Help:        "Booking lifecycle events by status",
			ConstLabels: constLabels,
		}, []string{"status"}),

		roomsAvailable: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "rooms_available",
			Help:        "Rooms currently available in the inventory ledger",
			ConstLabels: constLabels,
		}, []string{"category"}),

		dbQueriesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_queries_total",
			Help:        "Total number of database queries",
			ConstLabels: constLabels,
		}, []string{"operation", "result"}),

		dbQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: constLabels,
			Buckets:     []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}, []string{"operation"}),

		dbPoolStats: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_pool_connections",
			Help:        "Database connection pool state",
			ConstLabels: constLabels,
		}, []string{"state"}),
	}
}

// ObserveHTTPRequest учитывает завершённый HTTP-запрос
func (m *Metrics) ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// IncBookingEvent учитывает событие жизненного цикла бронирования
func (m *Metrics) IncBookingEvent(status string) {
	m.bookingEventsTotal.WithLabelValues(status).Inc()
}

// SetRoomsAvailable выставляет текущий остаток номеров категории
func (m *Metrics) SetRoomsAvailable(category string, available int) {
	m.roomsAvailable.WithLabelValues(category).Set(float64(available))
}

// ObserveDBQuery учитывает выполненный запрос к БД
func (m *Metrics) ObserveDBQuery(operation string, duration time.Duration, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.dbQueriesTotal.WithLabelValues(operation, result).Inc()
	m.dbQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// SetDBPoolStats выставляет состояние пула соединений с БД
func (m *Metrics) SetDBPoolStats(open, idle, inUse int) {
	m.dbPoolStats.WithLabelValues("open").Set(float64(open))
	m.dbPoolStats.WithLabelValues("idle").Set(float64(idle))
	m.dbPoolStats.WithLabelValues("in_use").Set(float64(inUse))
}
