// Package metrics defines and registers all custom Prometheus metrics for the
// job tracker API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics are registered with the default Prometheus registry on package
// init via promauto; HTTP request metrics come from the echoprometheus
// middleware wired in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "jobtracker"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// AuthRequestsTotal counts register and login attempts.
// Labels:
//   - action: "register" or "login"
//   - result: "success", "invalid", "conflict", "denied", "throttled", or "error"
var AuthRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_requests_total",
		Help:      "Total number of register and login attempts, by outcome.",
	},
	[]string{"action", "result"},
)

// ── Job metrics ───────────────────────────────────────────────────────────────

// JobsCreatedTotal counts newly created job applications.
// Label:
//   - status: the initial status (e.g. "Applied")
var JobsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "jobs_created_total",
		Help:      "Total number of job applications created, by initial status.",
	},
	[]string{"status"},
)

// JobsDeletedTotal counts deleted job applications.
var JobsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "jobs_deleted_total",
		Help:      "Total number of job applications deleted.",
	},
)
