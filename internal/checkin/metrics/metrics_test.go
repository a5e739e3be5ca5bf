package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.IncrementScan(ScanExtracted)
	m.IncrementScan(ScanExtracted)
	m.IncrementScan(ScanFailed)
	m.IncrementMRZFailure("numeroSoporte")
	m.IncrementSubmission(SubmissionRejected)
	m.IncrementCacheLookup(CacheHit)
	m.ObserveExtractionLatency(1500 * time.Millisecond)

	assert.InDelta(t, 2, testutil.ToFloat64(m.ScanOutcome.WithLabelValues(ScanExtracted)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.ScanOutcome.WithLabelValues(ScanFailed)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.MRZCheckFailures.WithLabelValues("numeroSoporte")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.SubmissionOutcome.WithLabelValues(SubmissionRejected)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.CacheLookups.WithLabelValues(CacheHit)), 0)
	assert.Equal(t, 1, testutil.CollectAndCount(m.ExtractionLatency))
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.IncrementScan(ScanFailed)
		m.ObserveExtractionLatency(time.Second)
		m.IncrementMRZFailure("fechaNacimiento")
		m.IncrementSubmission(SubmissionFailed)
		m.IncrementCacheLookup(CacheMiss)
	})
}
