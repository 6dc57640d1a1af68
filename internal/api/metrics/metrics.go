// Package metrics defines and registers all custom Prometheus metrics for the
// newsroom API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register themselves with the default registry via
// promauto at package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "newsroom"

// ── Content metrics ───────────────────────────────────────────────────────────

// ArticlesCreatedTotal counts articles authored by journalists.
var ArticlesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "articles_created_total",
		Help:      "Total number of articles created.",
	},
)

// ArticlesApprovedTotal counts approval transitions, including re-approvals.
var ArticlesApprovedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "articles_approved_total",
		Help:      "Total number of article approval transitions.",
	},
)

// ── Feed metrics ──────────────────────────────────────────────────────────────

// FeedRequestsTotal counts personalized feed requests.
// Label:
//   - outcome: "ok", "forbidden", or "error"
var FeedRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "feed_requests_total",
		Help:      "Total number of subscription feed requests, by outcome.",
	},
	[]string{"outcome"},
)

// ── Notification metrics ──────────────────────────────────────────────────────

// NotificationsDispatchedTotal counts notification delivery attempts.
// Label:
//   - result: "sent" or "failed"
var NotificationsDispatchedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_dispatched_total",
		Help:      "Total number of subscriber notifications dispatched, by result.",
	},
	[]string{"result"},
)

// NotificationRecipients measures the fan-out size of delivered notifications.
var NotificationRecipients = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "notification_recipients",
		Help:      "Number of recipients per delivered notification.",
		Buckets:   []float64{1, 2, 5, 10, 25, 50, 100, 250},
	},
)
