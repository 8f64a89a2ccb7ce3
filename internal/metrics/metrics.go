// Package metrics exposes query and view-session counters for Prometheus.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "dentalclinic"

// Outcome labels.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Recorder owns its registry so tests and multiple routers do not collide on
// the global default registerer.
type Recorder struct {
	registry *prometheus.Registry

	queries  *prometheus.CounterVec
	duration *prometheus.HistogramVec
	views    prometheus.Gauge
	stale    *prometheus.CounterVec
}

func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "queries_total",
			Help:      "Screen queries by outcome.",
		}, []string{"screen", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "query_duration_seconds",
			Help:      "Time spent fetching and querying a screen collection.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"screen"}),
		views: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "views_active",
			Help:      "Open view sessions.",
		}),
		stale: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stale_results_total",
			Help:      "Results dropped because a newer request superseded them.",
		}, []string{"screen"}),
	}
	r.registry.MustRegister(r.queries, r.duration, r.views, r.stale)
	return r
}

// ObserveQuery records one settled query. A nil Recorder is a no-op.
func (r *Recorder) ObserveQuery(screen string, took time.Duration, err error) {
	if r == nil {
		return
	}
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeError
	}
	r.queries.WithLabelValues(screen, outcome).Inc()
	r.duration.WithLabelValues(screen).Observe(took.Seconds())
}

func (r *Recorder) ObserveStale(screen string) {
	if r == nil {
		return
	}
	r.stale.WithLabelValues(screen).Inc()
}

func (r *Recorder) ViewOpened() {
	if r == nil {
		return
	}
	r.views.Inc()
}

func (r *Recorder) ViewClosed() {
	if r == nil {
		return
	}
	r.views.Dec()
}

// Registry returns the registry backing the recorder.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// Handler serves the recorder's metrics in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
