// Package metrics defines and registers all custom Prometheus metrics for the
// wellness API. It is the single source of truth for metric names, labels, and
// help strings. Metrics register with the default registry at import time via
// promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "wellness"

// ConsultationsTotal counts completed consultation turns.
// Labels:
//   - consultation_type: "psychological", "sports_advice", or "comprehensive"
//   - advice_source: "llm", "fallback", or "replay"
var ConsultationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "consultations_total",
		Help:      "Total number of consultation turns completed, by type and advice source.",
	},
	[]string{"consultation_type", "advice_source"},
)

// ConsultationDuration measures one consultation turn end-to-end, including
// the upstream model call when one is made.
var ConsultationDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "consultation_duration_seconds",
		Help:      "Duration of a consultation turn from request to response.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"advice_source"},
)

// LoginsTotal counts successful auth events.
// Label:
//   - login_type: "registered", "guest", or "admin"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of successful logins and guest session grants, by type.",
	},
	[]string{"login_type"},
)

// AssessmentsSubmittedTotal counts stored self-assessments.
// Label:
//   - kind: "psychological" or "physical"
var AssessmentsSubmittedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "assessments_submitted_total",
		Help:      "Total number of weekly self-assessments submitted, by kind.",
	},
	[]string{"kind"},
)
