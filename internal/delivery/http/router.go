package http

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// healthCheck is mounted on every service router.
func healthCheck(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}

// metricsHandler exposes the default Prometheus registry.
func metricsHandler() http.Handler {
	return promhttp.Handler()
}
