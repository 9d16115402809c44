package metrics

import "github.com/prometheus/client_golang/prometheus"

// Prometheus metrics for webhook ingestion and dashboard auth.
var (
	WebhooksReceivedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shoppulse_webhooks_received_total",
			Help: "Total number of webhook deliveries received, by topic",
		},
		[]string{"topic"},
	)

	WebhooksRejectedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "shoppulse_webhooks_rejected_total",
			Help: "Total number of webhook deliveries rejected for a bad signature",
		},
	)

	WebhooksStoredTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shoppulse_webhooks_stored_total",
			Help: "Total number of webhook deliveries persisted, by target table",
		},
		[]string{"table"},
	)

	WebhooksIgnoredTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "shoppulse_webhooks_ignored_total",
			Help: "Total number of webhook deliveries acknowledged without storing (unknown topic)",
		},
	)

	WebhooksFailedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "shoppulse_webhooks_failed_total",
			Help: "Total number of webhook deliveries that failed downstream",
		},
	)

	LoginsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shoppulse_logins_total",
			Help: "Total number of dashboard login attempts, by outcome",
		},
		[]string{"outcome"},
	)
)

// Register registers all metrics with the default registry. Call once at boot.
func Register() {
	prometheus.MustRegister(
		WebhooksReceivedTotal,
		WebhooksRejectedTotal,
		WebhooksStoredTotal,
		WebhooksIgnoredTotal,
		WebhooksFailedTotal,
		LoginsTotal,
	)
}
