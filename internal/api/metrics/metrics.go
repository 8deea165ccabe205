// Package metrics defines and registers all custom Prometheus metrics for the
// creator platform API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "creator_platform"

// ── Session metrics ───────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Labels:
//   - role: the role selected at login
//   - result: "ok" or "rejected"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by role and result.",
	},
	[]string{"role", "result"},
)

// SessionsExpiredTotal counts forced session endings.
// Label:
//   - cause: "deadline" (exact one-shot timer), "poll" (recurring check), or
//     "home_visit" (logout-on-home policy)
var SessionsExpiredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_expired_total",
		Help:      "Total number of sessions forcibly ended, by cause.",
	},
	[]string{"cause"},
)

// GuardDenialsTotal counts requests turned away by the access middleware.
// Label:
//   - reason: "unauthenticated" (no valid session) or "forbidden" (role not
//     in the route's allow-list)
var GuardDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_denials_total",
		Help:      "Total number of requests denied by auth or role guards.",
	},
	[]string{"reason"},
)

// ── Rating metrics ────────────────────────────────────────────────────────────

// RatingQueueDepth tracks assignments waiting in each dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var RatingQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "rating_queue_depth",
		Help:      "Current number of rating assignments pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// RatingApplyDuration measures how long one rating assignment takes to apply.
// Label:
//   - result: "ok" or "error"
var RatingApplyDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "rating_apply_duration_seconds",
		Help:      "Duration of rating application from dequeue to persistence.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"result"},
)
