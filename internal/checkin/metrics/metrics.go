package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Scan outcomes.
const (
	ScanExtracted = "extracted"
	ScanFailed    = "failed"
)

// Submission outcomes.
const (
	SubmissionSucceeded = "succeeded"
	SubmissionFailed    = "failed"
	SubmissionRejected  = "rejected"
)

// Cache lookup results.
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

// Metrics provides observability for the check-in flow.
type Metrics struct {
	ScanOutcome       *prometheus.CounterVec
	ExtractionLatency prometheus.Histogram
	MRZCheckFailures  *prometheus.CounterVec
	SubmissionOutcome *prometheus.CounterVec
	CacheLookups      *prometheus.CounterVec
}

// New creates the check-in metrics and registers them with reg. A nil reg uses
// the default registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Metrics{
		ScanOutcome: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "checkin_scans_total",
			Help: "Document scans by outcome",
		}, []string{"outcome"}),

		ExtractionLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "checkin_extraction_duration_seconds",
			Help:    "Duration of document extraction calls, cache hits excluded",
			Buckets: []float64{0.25, 0.5, 1, 2, 4, 8, 15, 30, 60},
		}),

		MRZCheckFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "checkin_mrz_check_failures_total",
			Help: "Fields flagged invalid by the MRZ check-digit validator",
		}, []string{"field"}),

		SubmissionOutcome: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "checkin_submissions_total",
			Help: "Guest data submissions by outcome",
		}, []string{"outcome"}),

		CacheLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "checkin_extraction_cache_lookups_total",
			Help: "Extraction cache lookups by result",
		}, []string{"result"}),
	}
}

// IncrementScan records a scan outcome.
func (m *Metrics) IncrementScan(outcome string) {
	if m != nil {
		m.ScanOutcome.WithLabelValues(outcome).Inc()
	}
}

// ObserveExtractionLatency records the duration of one extraction call.
func (m *Metrics) ObserveExtractionLatency(d time.Duration) {
	if m != nil {
		m.ExtractionLatency.Observe(d.Seconds())
	}
}

// IncrementMRZFailure records a field flagged invalid.
func (m *Metrics) IncrementMRZFailure(field string) {
	if m != nil {
		m.MRZCheckFailures.WithLabelValues(field).Inc()
	}
}

// IncrementSubmission records a submission outcome.
func (m *Metrics) IncrementSubmission(outcome string) {
	if m != nil {
		m.SubmissionOutcome.WithLabelValues(outcome).Inc()
	}
}

// IncrementCacheLookup records a cache lookup result.
func (m *Metrics) IncrementCacheLookup(result string) {
	if m != nil {
		m.CacheLookups.WithLabelValues(result).Inc()
	}
}
