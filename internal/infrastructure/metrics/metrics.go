package metrics

import "github.com/prometheus/client_golang/prometheus"

// Prometheus counters for the webhook reconciliation pipeline. Labelled by
// provider so per-provider delivery problems stand out.
var (
	WebhookEventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webhook_events_total",
			Help: "Total number of webhook requests received",
		},
		[]string{"provider"},
	)

	WebhookEventsAppliedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webhook_events_applied_total",
			Help: "Webhook events that resulted in an order status transition",
		},
		[]string{"provider"},
	)

	WebhookEventsIgnoredTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webhook_events_ignored_total",
			Help: "Webhook events acknowledged without a state mutation (unknown event, missing reference or unmatched order)",
		},
		[]string{"provider"},
	)

	WebhookEventsRejectedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webhook_events_rejected_total",
			Help: "Webhook events rejected before processing (bad signature or unconfigured provider)",
		},
		[]string{"provider"},
	)

	CheckoutSessionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkout_sessions_total",
			Help: "Checkout sessions created, by outcome",
		},
		[]string{"outcome"},
	)
)

func init() {
	prometheus.MustRegister(
		WebhookEventsTotal,
		WebhookEventsAppliedTotal,
		WebhookEventsIgnoredTotal,
		WebhookEventsRejectedTotal,
		CheckoutSessionsTotal,
	)
}
