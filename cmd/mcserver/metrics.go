package main

import (
	"net/http"

	"github.com/mc754/server/internal/metrics"
)

func serveMetrics(addr string, m *metrics.Metrics) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	return http.ListenAndServe(addr, mux)
}
