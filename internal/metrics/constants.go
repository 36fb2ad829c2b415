package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Business metric names
const (
	MetricNameJobSearches       = "job_searches_total"
	MetricNameJobsCreated       = "jobs_created_total"
	MetricNameJobsServed        = "jobs_served_total"
	MetricNameReferenceCreated  = "reference_items_created_total"
	MetricNameReferenceCacheHit = "reference_cache_hits_total"
	MetricNameSeedRuns          = "seed_runs_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Business metric help text
const (
	HelpTextJobSearches       = "Total number of job listing queries served"
	HelpTextJobsCreated       = "Total number of jobs created"
	HelpTextJobsServed        = "Total number of job rows returned to clients"
	HelpTextReferenceCreated  = "Total number of reference records created"
	HelpTextReferenceCacheHit = "Total number of reference list cache hits"
	HelpTextSeedRuns          = "Total number of seed endpoint invocations"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelFiltered = "filtered"
	LabelKind     = "kind"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
