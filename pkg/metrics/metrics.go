// Package metrics provides Prometheus metrics for the smart-todo service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "smart_todo"

// Metrics holds all service metrics. A nil *Metrics is valid and records nothing.
type Metrics struct {
	// HTTP
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Reminders
	NotificationsEmitted   *prometheus.CounterVec
	ScheduledNotifications prometheus.Gauge

	// Calendar mirror
	CalendarSyncs *prometheus.CounterVec

	// Categorization
	AgentCategorizations *prometheus.CounterVec

	// Uploads
	UploadBytes *prometheus.CounterVec
}

// New creates and registers all metrics on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		HTTPRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by route, method and status",
		}, []string{"route", "method", "status"}),
		HTTPDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~2.5s
		}, []string{"route", "method"}),
		NotificationsEmitted: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_emitted_total",
			Help:      "Total number of reminder notifications emitted by kind",
		}, []string{"kind"}),
		ScheduledNotifications: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "notifications_scheduled",
			Help:      "Number of notifications held in the de-duplication cache",
		}),
		CalendarSyncs: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "calendar_sync_total",
			Help:      "Total number of calendar mirror operations by action and result",
		}, []string{"action", "result"}),
		AgentCategorizations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "agent_categorizations_total",
			Help:      "Total number of categorization results by category and severity",
		}, []string{"category", "severity"}),
		UploadBytes: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upload_bytes_total",
			Help:      "Total bytes uploaded to object storage by kind",
		}, []string{"kind"}),
	}
}

// ObserveNotification counts an emitted notification.
func (m *Metrics) ObserveNotification(kind string) {
	if m == nil {
		return
	}
	m.NotificationsEmitted.WithLabelValues(kind).Inc()
}

// SetScheduled records the size of the de-duplication cache.
func (m *Metrics) SetScheduled(n int) {
	if m == nil {
		return
	}
	m.ScheduledNotifications.Set(float64(n))
}

// ObserveCalendarSync counts a calendar mirror call.
func (m *Metrics) ObserveCalendarSync(action string, err error) {
	if m == nil {
		return
	}
	result := "success"
	if err != nil {
		result = "error"
	}
	m.CalendarSyncs.WithLabelValues(action, result).Inc()
}

// ObserveCategorization counts a categorization result.
func (m *Metrics) ObserveCategorization(category, severity string) {
	if m == nil {
		return
	}
	m.AgentCategorizations.WithLabelValues(category, severity).Inc()
}

// ObserveUpload counts uploaded bytes.
func (m *Metrics) ObserveUpload(kind string, size int64) {
	if m == nil {
		return
	}
	m.UploadBytes.WithLabelValues(kind).Add(float64(size))
}
