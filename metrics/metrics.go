// Package metrics exposes Prometheus counters for report uploads.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Upload outcomes
const (
	OutcomeOK        = "ok"
	OutcomeNoFile    = "no_file"
	OutcomeReadError = "read_error"
	OutcomeNoData    = "no_data"
)

// Metrics holds the collectors registered for the server
type Metrics struct {
	registry      *prometheus.Registry
	uploads       *prometheus.CounterVec
	students      prometheus.Histogram
	buildDuration prometheus.Histogram
}

// New creates collectors on a private registry
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		uploads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gradebook_uploads_total",
			Help: "Uploaded mark sheets by format and outcome.",
		}, []string{"format", "outcome"}),
		students: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "gradebook_report_students",
			Help:    "Number of students in each built report.",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500},
		}),
		buildDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "gradebook_report_build_seconds",
			Help:    "Time spent parsing an upload and building its report.",
			Buckets: prometheus.DefBuckets,
		}),
	}
	m.registry.MustRegister(
		m.uploads,
		m.students,
		m.buildDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveUpload counts one upload attempt
func (m *Metrics) ObserveUpload(format, outcome string) {
	if format == "" {
		format = "unknown"
	}
	m.uploads.WithLabelValues(format, outcome).Inc()
}

// ObserveReport records the size and build time of a successful report
func (m *Metrics) ObserveReport(students int, elapsed time.Duration) {
	m.students.Observe(float64(students))
	m.buildDuration.Observe(elapsed.Seconds())
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
