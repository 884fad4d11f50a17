// Package metrics defines and registers all custom Prometheus metrics for
// the ESG platform services. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics register with the default Prometheus registry at package init via
// promauto; the echoprometheus /metrics route on each service exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "esgmate"

// ── Gateway metrics ───────────────────────────────────────────────────────────

// HealthProbesTotal counts completed health probes.
// Labels:
//   - service: the probed downstream service name (e.g. "auth")
//   - status: "healthy" or "unhealthy"
var HealthProbesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "health_probes_total",
		Help:      "Total number of health probes issued, by service and outcome.",
	},
	[]string{"service", "status"},
)

// HealthProbeDuration measures how long a single probe takes, including
// timeouts.
// Label:
//   - service: the probed downstream service name
var HealthProbeDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "health_probe_duration_seconds",
		Help:      "Duration of individual health probes.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"service"},
)

// ── Auth metrics ──────────────────────────────────────────────────────────────

// RegistrationsTotal counts registration attempts.
// Label:
//   - result: "created" or "duplicate"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
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

// TokenVerificationsTotal counts token verification outcomes.
// Label:
//   - result: "valid", "invalid", or "user_gone" (claims valid but the
//     subject no longer exists)
var TokenVerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_verifications_total",
		Help:      "Total number of token verifications, by result.",
	},
	[]string{"result"},
)
