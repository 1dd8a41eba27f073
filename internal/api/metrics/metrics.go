// Package metrics defines and registers all custom Prometheus metrics for the
// booking API. It is the single source of truth for metric names, labels, and
// help strings. Metrics register with the default registry at import time via
// promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "booking"

// BookingsCreatedTotal counts newly created bookings.
// Label:
//   - package_type: "standard", "express", "fragile", or "large"
var BookingsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_created_total",
		Help:      "Total number of bookings created, by package type.",
	},
	[]string{"package_type"},
)

// TrackingNumberRetriesTotal counts tracking-number collisions that forced a
// regenerate-and-retry during booking creation. A non-zero rate is expected
// to be vanishingly rare given the 36^10 keyspace.
var TrackingNumberRetriesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tracking_number_retries_total",
		Help:      "Total number of tracking number collisions retried at insert time.",
	},
)

// TrackingLookupsTotal counts public tracking lookups.
// Label:
//   - result: "cache_hit", "found", or "not_found"
var TrackingLookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tracking_lookups_total",
		Help:      "Total number of public tracking lookups, by result.",
	},
	[]string{"result"},
)

// StatusUpdatesTotal counts admin lifecycle updates.
// Label:
//   - status: the new status applied (e.g. "picked_up")
var StatusUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "status_updates_total",
		Help:      "Total number of booking status updates applied, by new status.",
	},
	[]string{"status"},
)

// BookingCreateDuration measures how long booking creation takes end-to-end,
// including any tracking-number retries.
// Label:
//   - outcome: "success" or "error"
var BookingCreateDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "create_duration_seconds",
		Help:      "Duration of booking creation from validation to persistence.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"outcome"},
)

// ContactMessagesTotal counts contact-form submissions accepted for delivery.
var ContactMessagesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contact_messages_total",
		Help:      "Total number of contact messages queued for delivery.",
	},
)
