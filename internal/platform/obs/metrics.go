package obs

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	// Registry is the dedicated Prometheus registry for the service.
	Registry = prometheus.NewRegistry()

	// HTTPRequests counts requests by method, path, and status.
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests."},
		[]string{"method", "path", "status"},
	)
	// HTTPDuration records request durations in seconds.
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "HTTP request duration in seconds.", Buckets: prometheus.DefBuckets},
		[]string{"method", "path", "status"},
	)

	// PlanRuns counts planner runs by outcome (completed, failed, cache_hit).
	PlanRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "plan_runs_total", Help: "Planner runs by outcome."},
		[]string{"outcome"},
	)
	// PlanDuration records end-to-end planner run durations in seconds.
	PlanDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{Name: "plan_duration_seconds", Help: "Planner run duration in seconds.", Buckets: prometheus.DefBuckets},
	)
	// CandidateRoutes tracks how many candidate routes each run enumerated.
	// The count grows factorially with the order set, hence the wide buckets.
	CandidateRoutes = prometheus.NewHistogram(
		prometheus.HistogramOpts{Name: "plan_candidate_routes", Help: "Candidate routes enumerated per planner run.", Buckets: prometheus.ExponentialBuckets(1, 4, 12)},
	)
	// ValidAssignments tracks how many order-disjoint assignments survived
	// the cross-product filter per run.
	ValidAssignments = prometheus.NewHistogram(
		prometheus.HistogramOpts{Name: "plan_valid_assignments", Help: "Valid assignments per planner run.", Buckets: prometheus.ExponentialBuckets(1, 4, 12)},
	)

	// OpDuration records named internal operations (cache reads, seeds).
	OpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "op_duration_seconds", Help: "Internal operation duration in seconds.", Buckets: prometheus.DefBuckets},
		[]string{"op"},
	)
)

var regOnce sync.Once

// RegisterMetrics registers all collectors with the service registry.
func RegisterMetrics() {
	regOnce.Do(func() {
		Registry.MustRegister(HTTPRequests)
		Registry.MustRegister(HTTPDuration)
		Registry.MustRegister(PlanRuns)
		Registry.MustRegister(PlanDuration)
		Registry.MustRegister(CandidateRoutes)
		Registry.MustRegister(ValidAssignments)
		Registry.MustRegister(OpDuration)
		// Go/process collectors on our registry
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}
