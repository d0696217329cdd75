// Package observability provides Prometheus metrics for monitoring.
package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	// Derivation metrics
	ProfilesDerived    prometheus.Counter
	DerivationFailures *prometheus.CounterVec
	DerivationDuration prometheus.Histogram
	BadgesEarned       prometheus.Counter

	// Indexer metrics
	IndexerCallLatency prometheus.Histogram
	IndexerCallErrors  prometheus.Counter

	// Curation metrics
	CurationLoads prometheus.Counter
	CurationSaves *prometheus.CounterVec

	// Storage metrics
	SnapshotsArchived    prometheus.Counter
	SnapshotArchiveError prometheus.Counter
	StoreErrors          *prometheus.CounterVec
}

// NewMetrics creates a new Metrics instance with all metrics registered.
func NewMetrics(namespace string) *Metrics {
	if namespace == "" {
		namespace = "creator_hub"
	}

	return &Metrics{
		ProfilesDerived: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "profile",
			Name:      "derivations_total",
			Help:      "Total number of profile derivation runs",
		}),
		DerivationFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "profile",
			Name:      "derivation_failures_total",
			Help:      "Total number of failed derivations by reason",
		}, []string{"reason"}),
		DerivationDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "profile",
			Name:      "derivation_duration_seconds",
			Help:      "Profile derivation duration including the indexer fetch",
			Buckets:   prometheus.DefBuckets,
		}),
		BadgesEarned: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "profile",
			Name:      "badges_earned_total",
			Help:      "Total number of derivations that earned the badge",
		}),

		IndexerCallLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "indexer",
			Name:      "call_latency_seconds",
			Help:      "Explorer accountTxs call latency",
			Buckets:   prometheus.DefBuckets,
		}),
		IndexerCallErrors: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "indexer",
			Name:      "call_errors_total",
			Help:      "Total number of failed explorer calls",
		}),

		CurationLoads: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "curation",
			Name:      "loads_total",
			Help:      "Total number of preference loads",
		}),
		CurationSaves: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "curation",
			Name:      "saves_total",
			Help:      "Total number of preference saves by operation",
		}, []string{"operation"}),

		SnapshotsArchived: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "storage",
			Name:      "snapshots_archived_total",
			Help:      "Total number of profile snapshots archived",
		}),
		SnapshotArchiveError: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "storage",
			Name:      "snapshot_archive_errors_total",
			Help:      "Total number of snapshot archive failures (best-effort writes)",
		}),
		StoreErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "storage",
			Name:      "errors_total",
			Help:      "Total number of storage errors by store",
		}, []string{"store"}),
	}
}

// Handler returns the HTTP handler serving the metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
