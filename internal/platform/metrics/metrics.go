package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics agrupa los collectors del proceso. Se registra contra un Registerer
// propio para que tests y servidor no choquen con el registry global.
type Metrics struct {
	SyncOperations *prometheus.CounterVec
	SyncDuration   *prometheus.HistogramVec
	HTTPRequests   *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		SyncOperations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "petintake_sync_operations_total",
			Help: "Synchronizer operations by op and outcome",
		}, []string{"op", "outcome"}),
		SyncDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "petintake_sync_duration_seconds",
			Help:    "Duration of synchronizer operations against the directory service",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"op"}),
		HTTPRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "petintake_http_requests_total",
			Help: "Directory service HTTP requests by method and status",
		}, []string{"method", "status"}),
	}
}

// NewUnregistered sirve para tests y para el CLI, donde no se exponen métricas.
func NewUnregistered() *Metrics {
	return New(prometheus.NewRegistry())
}

func (m *Metrics) ObserveSync(op, outcome string, start time.Time) {
	if m == nil {
		return
	}
	m.SyncOperations.WithLabelValues(op, outcome).Inc()
	m.SyncDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

func (m *Metrics) ObserveRequest(method, status string) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(method, status).Inc()
}
