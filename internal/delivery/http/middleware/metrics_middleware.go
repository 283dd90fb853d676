package middleware

import (
	"net/http"
	"strconv"
	"time"

	"clinical-platform/internal/delivery/http/metrics"

	"github.com/gorilla/mux"
)

// MetricsMiddleware records per-request counters and latency for the
// owning service. The route label uses the mux template, not the raw
// path, to keep cardinality bounded.
type MetricsMiddleware struct {
	service string
}

func NewMetricsMiddleware(service string) *MetricsMiddleware {
	return &MetricsMiddleware{service: service}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (m *MetricsMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route := r.URL.Path
		if current := mux.CurrentRoute(r); current != nil {
			if tpl, err := current.GetPathTemplate(); err == nil {
				route = tpl
			}
		}

		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(recorder, r)

		metrics.RequestsTotal.WithLabelValues(m.service, r.Method, route, strconv.Itoa(recorder.status)).Inc()
		metrics.RequestDuration.WithLabelValues(m.service, r.Method, route).Observe(time.Since(start).Seconds())
	})
}
