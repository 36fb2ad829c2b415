package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Business Metrics
var (
	// JobSearches is labelled by whether the query carried any filter so
	// browse traffic can be told apart from filtered searches.
	JobSearches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameJobSearches,
			Help: HelpTextJobSearches,
		},
		[]string{LabelFiltered},
	)

	JobsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameJobsCreated,
			Help: HelpTextJobsCreated,
		},
	)

	JobsServed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameJobsServed,
			Help: HelpTextJobsServed,
		},
	)

	ReferenceCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameReferenceCreated,
			Help: HelpTextReferenceCreated,
		},
		[]string{LabelKind},
	)

	ReferenceCacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameReferenceCacheHit,
			Help: HelpTextReferenceCacheHit,
		},
		[]string{LabelKind},
	)

	SeedRuns = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSeedRuns,
			Help: HelpTextSeedRuns,
		},
	)
)
