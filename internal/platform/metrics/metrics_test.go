package metrics

import (
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveRequest(http.MethodPost, "/v1/checkin/scan", http.StatusOK, 120*time.Millisecond)
	m.ObserveRequest(http.MethodPost, "/v1/checkin/scan", http.StatusBadGateway, time.Second)
	m.ObserveRequest(http.MethodPost, "/v1/checkin/submit", http.StatusBadRequest, time.Millisecond)

	assert.Equal(t, 3, testutil.CollectAndCount(m.RequestLatency))

	families, err := reg.Gather()
	require.NoError(t, err)
	require.Len(t, families, 1)
	assert.Equal(t, "checkin_http_request_duration_seconds", families[0].GetName())
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveRequest(http.MethodGet, "/healthz", http.StatusOK, time.Millisecond)
	})
}

func TestStatusClass(t *testing.T) {
	cases := map[int]string{
		http.StatusOK:                   "2xx",
		http.StatusNoContent:            "2xx",
		http.StatusFound:                "3xx",
		http.StatusUnsupportedMediaType: "4xx",
		http.StatusServiceUnavailable:   "5xx",
	}
	for status, want := range cases {
		assert.Equal(t, want, statusClass(status), "status %d", status)
	}
}
