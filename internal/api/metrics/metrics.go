// Package metrics defines and registers the custom Prometheus metrics for
// the league API. It is the single source of truth for metric names, labels
// and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "league"

// RegistrationsTotal counts user registrations by outcome.
// Label:
//   - result: "created", "duplicate_email" or "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success" or "rejected"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ResourceWritesTotal counts admin mutations per resource.
// Labels:
//   - resource: lowercase resource name (e.g. "club", "match")
//   - operation: "create", "update" or "delete"
var ResourceWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "resource_writes_total",
		Help:      "Total number of successful resource mutations, by resource and operation.",
	},
	[]string{"resource", "operation"},
)

// MatchListDuration measures the latency of the paginated match listing,
// the heaviest read path (data query plus count query).
var MatchListDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "match_list_duration_seconds",
		Help:      "Duration of the paginated match listing, both queries included.",
		Buckets:   prometheus.DefBuckets,
	},
)
