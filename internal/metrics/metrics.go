// Package metrics exposes the server's Prometheus instrumentation: a
// registry, a handful of gauges/counters/histograms, and an HTTP handler
// for scraping, following the same registry-plus-MustRegister shape used
// elsewhere in the example corpus.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles every counter the server updates during normal operation.
type Metrics struct {
	registry *prometheus.Registry

	SessionsOnline   prometheus.Gauge
	PacketsSentTotal prometheus.Counter
	ConnectionsTotal prometheus.Counter
	BroadcastSeconds prometheus.Histogram
}

// New builds a registered Metrics bundle.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		SessionsOnline: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "mc_sessions_online",
			Help: "Number of players currently connected and logged in.",
		}),
		PacketsSentTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mc_packets_sent_total",
			Help: "Total number of client-bound packets written to any socket.",
		}),
		ConnectionsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mc_connections_total",
			Help: "Total number of accepted TCP connections.",
		}),
		BroadcastSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "mc_broadcast_seconds",
			Help:    "Time spent holding the session manager's write lock during a broadcast.",
			Buckets: prometheus.DefBuckets,
		}),
	}

	reg.MustRegister(
		m.SessionsOnline,
		m.PacketsSentTotal,
		m.ConnectionsTotal,
		m.BroadcastSeconds,
	)
	return m
}

// Handler returns the HTTP handler serving this registry's /metrics page.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
