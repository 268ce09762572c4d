// Package metrics defines the custom Prometheus metrics for the Ondo Homes
// marketplace service. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "marketplace"

// ── Submission metrics ────────────────────────────────────────────────────────

// SubmissionsStartedTotal counts opened submission workflows.
// Label:
//   - mode: "new" or "edit"
var SubmissionsStartedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "submissions_started_total",
		Help:      "Total number of listing submission workflows started.",
	},
	[]string{"mode"},
)

// SubmissionsRefusedTotal counts submissions refused before a workflow was
// created.
// Label:
//   - reason: short refusal cause (e.g. "quota", "no_session")
var SubmissionsRefusedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "submissions_refused_total",
		Help:      "Total number of submission starts refused, by reason.",
	},
	[]string{"reason"},
)

// ListingsPublishedTotal counts listings written through a completed
// submission.
// Label:
//   - mode: "new" (created) or "edit" (updated in place)
var ListingsPublishedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "listings_published_total",
		Help:      "Total number of listings published via completed submissions.",
	},
	[]string{"mode"},
)

// PhotoUploadsTotal counts photo upload jobs handed to the pool.
var PhotoUploadsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "photo_uploads_total",
		Help:      "Total number of listing photo uploads enqueued.",
	},
)

// ── Catalog metrics ───────────────────────────────────────────────────────────

// SearchesTotal counts listing searches served.
var SearchesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "searches_total",
		Help:      "Total number of listing searches served.",
	},
)

// SavedTogglesTotal counts bookmark toggles.
// Label:
//   - result: "saved" or "unsaved"
var SavedTogglesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "saved_toggles_total",
		Help:      "Total number of saved-set toggles, by resulting state.",
	},
	[]string{"result"},
)

// ── Assist metrics ────────────────────────────────────────────────────────────

// AssistRequestsTotal counts assist calls served on the standalone assist
// routes. Description and image assistance run inside submission workflows
// and are not counted here.
// Labels:
//   - operation: "chat" or "nearby"
//   - outcome: "ok" or "fallback"
var AssistRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "assist_requests_total",
		Help:      "Total number of assist collaborator calls, by operation and outcome.",
	},
	[]string{"operation", "outcome"},
)

// AssistDuration measures how long one assist call takes end-to-end.
// Label:
//   - operation: "chat" or "nearby"
var AssistDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "assist_duration_seconds",
		Help:      "Duration of assist collaborator calls.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"operation"},
)
