// Package metrics defines the Prometheus metrics shared by the three
// clinical platform services. Metrics are registered with the default
// registry at import time via promauto; each service exposes them on its
// own /metrics endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "clinical"

// RequestsTotal counts handled HTTP requests.
// Labels:
//   - service: "auth", "users" or "appointments"
//   - method: HTTP method
//   - route: mux route template (e.g. "/api/v1/appointments/{id}")
//   - status: numeric HTTP status code
var RequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests handled, by service, method, route and status.",
	},
	[]string{"service", "method", "route", "status"},
)

// RequestDuration measures request latency end-to-end per route.
var RequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP request handling.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"service", "method", "route"},
)

// RegistrationsTotal counts registration saga outcomes.
// Label:
//   - outcome: "created", "conflict", "compensated" or "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by saga outcome.",
	},
	[]string{"outcome"},
)
