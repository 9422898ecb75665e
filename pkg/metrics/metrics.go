package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics контейнер всех prometheus-коллекторов сервиса
type Metrics struct {
	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Business
	BookingsCreatedTotal   prometheus.Counter
	BookingStatusChanges   *prometheus.CounterVec
	NotificationsTotal     *prometheus.CounterVec
	WizardSessionsActive   prometheus.Gauge
	StorageOperationsTotal *prometheus.CounterVec
}

// New создает и регистрирует коллекторы в default registry
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "http_requests_total",
				Help:        "Total number of HTTP requests",
				ConstLabels: constLabels,
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "http_request_duration_seconds",
				Help:        "HTTP request duration in seconds",
				ConstLabels: constLabels,
				Buckets:     prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		BookingsCreatedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name:        "bookings_created_total",
				Help:        "Total number of bookings created",
				ConstLabels: constLabels,
			},
		),
		BookingStatusChanges: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "booking_status_changes_total",
				Help:        "Total number of booking status transitions",
				ConstLabels: constLabels,
			},
			[]string{"status"},
		),
		NotificationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "notifications_total",
				Help:        "Total number of notification dispatches by kind and result",
				ConstLabels: constLabels,
			},
			[]string{"kind", "result"},
		),
		WizardSessionsActive: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name:        "wizard_sessions_active",
				Help:        "Number of live booking wizard sessions",
				ConstLabels: constLabels,
			},
		),
		StorageOperationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "storage_operations_total",
				Help:        "Total number of key-value storage operations by result",
				ConstLabels: constLabels,
			},
			[]string{"op", "result"},
		),
	}

	m.register()

	return m
}

func (m *Metrics) register() {
	prometheus.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.BookingsCreatedTotal,
		m.BookingStatusChanges,
		m.NotificationsTotal,
		m.WizardSessionsActive,
		m.StorageOperationsTotal,
	)
}

// RecordHTTPRequest учитывает завершенный HTTP запрос
func (m *Metrics) RecordHTTPRequest(method, path, status string, durationSeconds float64) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(durationSeconds)
}

// IncBookingsCreated учитывает созданное бронирование
func (m *Metrics) IncBookingsCreated() {
	m.BookingsCreatedTotal.Inc()
}

// RecordStatusChange учитывает переход статуса бронирования
func (m *Metrics) RecordStatusChange(status string) {
	m.BookingStatusChanges.WithLabelValues(status).Inc()
}

// RecordNotification учитывает результат отправки уведомления
func (m *Metrics) RecordNotification(kind, result string) {
	m.NotificationsTotal.WithLabelValues(kind, result).Inc()
}

// SetWizardSessions выставляет число живых wizard-сессий
func (m *Metrics) SetWizardSessions(n int) {
	m.WizardSessionsActive.Set(float64(n))
}

// RecordStorageOp учитывает операцию key-value хранилища
func (m *Metrics) RecordStorageOp(op, result string) {
	m.StorageOperationsTotal.WithLabelValues(op, result).Inc()
}
