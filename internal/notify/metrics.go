package notify

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks notification delivery, by sink.
type Metrics struct {
	Sent     *prometheus.CounterVec
	Failures *prometheus.CounterVec
}

// NewMetrics creates a Metrics instance with notification metrics registered.
func NewMetrics() *Metrics {
	return &Metrics{
		Sent: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "regdesk_notifications_sent_total",
			Help: "Total notifications delivered, by sink",
		}, []string{"sink"}),

		Failures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "regdesk_notification_failures_total",
			Help: "Total notification delivery failures, by sink",
		}, []string{"sink"}),
	}
}

// IncSent records a delivered notification.
func (m *Metrics) IncSent(sink string) {
	if m != nil {
		m.Sent.WithLabelValues(sink).Inc()
	}
}

// IncFailure records a failed delivery.
func (m *Metrics) IncFailure(sink string) {
	if m != nil {
		m.Failures.WithLabelValues(sink).Inc()
	}
}
