// Package metrics declares the prometheus collectors shared across the
// service. They register with the default registerer, so promhttp.Handler
// exposes them without further wiring.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30} //nolint: gochecknoglobals

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

//nolint: gochecknoglobals
var (
	// ProviderLatency measures single provider calls, labelled by provider name
	// (whois, dns, rdap, ...) and outcome.
	ProviderLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "domainintel",
		Name:      "provider_call_duration_seconds",
		Help:      "Duration of check provider calls.",
		Buckets:   DefaultBuckets,
	}, []string{"provider", "outcome"})

	// LivenessProbes counts poller probes by resulting label (Live, Down, Error).
	LivenessProbes = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "domainintel",
		Name:      "liveness_probes_total",
		Help:      "Number of liveness probes by result.",
	}, []string{"status"})

	// WatchedSessions is the number of sessions with an active poller task.
	WatchedSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "domainintel",
		Name:      "poller_watched_sessions",
		Help:      "Number of sessions with a running status poller.",
	})
)

// Outcome maps a provider failure message to an outcome label.
func Outcome(failure string) string {
	if failure != "" {
		return OutcomeFailure
	}

	return OutcomeSuccess
}

// ObserveProvider records the duration of a provider call that started at start.
func ObserveProvider(provider, outcome string, start time.Time) {
	ProviderLatency.WithLabelValues(provider, outcome).Observe(time.Since(start).Seconds())
}
