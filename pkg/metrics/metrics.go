package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus-метрик сервиса
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	reservationsCreated prometheus.Counter
	conflictRejections  prometheus.Counter
	policyRejections    prometheus.Counter
}

// New создает и регистрирует метрики в default registry
func New(serviceName string) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "path", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		reservationsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "reservations_created_total",
			Help:        "Total number of accepted reservations",
			ConstLabels: labels,
		}),

		conflictRejections: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "reservation_conflict_rejections_total",
			Help:        "Total number of reservations rejected due to a venue/date/slot clash",
			ConstLabels: labels,
		}),

		policyRejections: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "reservation_policy_rejections_total",
			Help:        "Total number of reservations rejected by a closure policy",
			ConstLabels: labels,
		}),
	}
}

// ObserveHTTPRequest записывает метрики одного HTTP запроса
func (m *Metrics) ObserveHTTPRequest(method, path, status string, seconds float64) {
	m.httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(seconds)
}

// IncReservationCreated инкрементирует счетчик принятых бронирований
func (m *Metrics) IncReservationCreated() {
	m.reservationsCreated.Inc()
}

// IncConflictRejection инкрементирует счетчик отказов по конфликту слота
func (m *Metrics) IncConflictRejection() {
	m.conflictRejections.Inc()
}

// IncPolicyRejection инкрементирует счетчик отказов по политике закрытия площадки
func (m *Metrics) IncPolicyRejection() {
	m.policyRejections.Inc()
}

// Noop реализация доменных счетчиков, когда метрики выключены
type Noop struct{}

func (Noop) IncReservationCreated() {}
func (Noop) IncConflictRejection()  {}
func (Noop) IncPolicyRejection()    {}
