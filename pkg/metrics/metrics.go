// Package metrics holds the Prometheus instruments shared across the
// application.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

//nolint: gochecknoglobals
var (
	// BroadcastMessages counts broadcast deliveries by result (sent, failed).
	BroadcastMessages = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "eventbot_broadcast_messages_total",
		Help: "Broadcast messages delivered to users, by result.",
	}, []string{"result"})

	// ReminderMessages counts reminder deliveries by tier.
	ReminderMessages = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "eventbot_reminder_messages_total",
		Help: "Reminder messages delivered to users, by reminder tier.",
	}, []string{"tier"})

	// EventsCompleted counts events closed by the reminder sweep.
	EventsCompleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "eventbot_events_completed_total",
		Help: "Events closed after their start time passed.",
	})

	// Registrations counts completed registrations.
	Registrations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "eventbot_registrations_total",
		Help: "Completed event registrations.",
	})

	// HTTPRequestDuration observes the latency of the operational HTTP
	// endpoint by method and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "eventbot_http_request_duration_seconds",
		Help:    "Operational HTTP endpoint latency.",
		Buckets: DefaultBuckets,
	}, []string{"method", "status_code"})
)
