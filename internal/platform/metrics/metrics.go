package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	AlertsCreated     prometheus.Counter
	NewsletterSignups prometheus.Counter
	RequestDuration   *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics on the default registry.
func New() *Metrics {
	return &Metrics{
		AlertsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "talentradar_alerts_created_total",
			Help: "Total number of job alerts created",
		}),
		NewsletterSignups: promauto.NewCounter(prometheus.CounterOpts{
			Name: "talentradar_newsletter_signups_total",
			Help: "Total number of newsletter subscriptions stored",
		}),
		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "talentradar_http_request_duration_seconds",
			Help:    "HTTP request latency by method and path pattern",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
	}
}

// IncrementAlertsCreated increments the alerts created counter by 1.
func (m *Metrics) IncrementAlertsCreated() {
	if m == nil {
		return
	}
	m.AlertsCreated.Inc()
}

// IncrementNewsletterSignups increments the newsletter signup counter by 1.
func (m *Metrics) IncrementNewsletterSignups() {
	if m == nil {
		return
	}
	m.NewsletterSignups.Inc()
}

// ObserveRequest records one HTTP request observation.
func (m *Metrics) ObserveRequest(method, path, status string, seconds float64) {
	if m == nil {
		return
	}
	m.RequestDuration.WithLabelValues(method, path, status).Observe(seconds)
}
