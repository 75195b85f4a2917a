package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveSync_CountsByOpAndOutcome(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveSync("save", "success", time.Now())
	m.ObserveSync("save", "success", time.Now())
	m.ObserveSync("save", "validation", time.Now())

	assert.Equal(t, 2.0, testutil.ToFloat64(m.SyncOperations.WithLabelValues("save", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SyncOperations.WithLabelValues("save", "validation")))
}

func TestNilMetrics_IsSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveSync("fetch", "success", time.Now())
		m.ObserveRequest("GET", "200")
	})
}
