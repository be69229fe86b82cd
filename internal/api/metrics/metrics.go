// Package metrics defines and registers all custom Prometheus metrics for the
// SkillShare API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics register with the default Prometheus registry at package init;
// the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "skillshare"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// RegistrationsTotal counts completed registrations.
// Label:
//   - role: "user" or "provider"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of completed account registrations, by role.",
	},
	[]string{"role"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ── CRUD metrics ──────────────────────────────────────────────────────────────

// SkillMutationsTotal counts successful skill mutations.
// Label:
//   - action: "create", "update", "delete"
var SkillMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "skill_mutations_total",
		Help:      "Total number of successful skill mutations, by action.",
	},
	[]string{"action"},
)

// TaskMutationsTotal counts successful task mutations.
// Label:
//   - action: "create", "update", "delete", "complete"
var TaskMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "task_mutations_total",
		Help:      "Total number of successful task mutations, by action.",
	},
	[]string{"action"},
)

// OfferTransitionsTotal counts offer state machine transitions that committed.
// Label:
//   - status: the resulting skill status (e.g. "accepted")
var OfferTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "offer_transitions_total",
		Help:      "Total number of committed skill offer transitions, by resulting status.",
	},
	[]string{"status"},
)

// ── Activity queue metrics ────────────────────────────────────────────────────

// ActivityQueueDepth tracks the current number of events waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var ActivityQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "activity_queue_depth",
		Help:      "Current number of activity events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// ActivityErrorsTotal counts activity events that failed persistence.
var ActivityErrorsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activity_errors_total",
		Help:      "Total number of activity events that failed to persist.",
	},
)
