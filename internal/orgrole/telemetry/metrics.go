// Package telemetry registers the Prometheus metrics exposed on /metrics.
//
// HTTP metrics are labelled by the ServeMux route pattern (for example
// "POST /v1/admin/restore-admin"), never the raw URL, so user-supplied path
// segments such as organization ids cannot blow up label cardinality.
package telemetry

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orgrole_http_requests_total",
			Help: "Total number of HTTP requests processed, by method, route pattern, and status code.",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "orgrole_http_request_duration_seconds",
			Help:    "Histogram of HTTP request latencies, by method and route pattern.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"method", "path"},
	)
)

// TokenVerificationsTotal counts bearer token checks by result: "ok",
// "untrusted_issuer", "wrong_audience", "invalid_signature", "expired"
// or "error".
var TokenVerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "orgrole_token_verifications_total",
		Help: "Total number of identity token verifications, by result.",
	},
	[]string{"result"},
)

// RoleRepairsTotal counts admin role repairs by outcome: "repaired",
// "not_found" or "store_unavailable".
var RoleRepairsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "orgrole_role_repairs_total",
		Help: "Total number of admin role repair attempts, by outcome.",
	},
	[]string{"outcome"},
)

// ProviderRoleSyncsTotal counts provider role set replacements by result.
var ProviderRoleSyncsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "orgrole_provider_role_syncs_total",
		Help: "Total number of provider role synchronizations, by result.",
	},
	[]string{"result"},
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Instrument records request count and latency. It must wrap the ServeMux
// so the matched route pattern is available once the request is served.
func Instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		path := r.Pattern
		if path == "" {
			path = "unmatched"
		}

		HTTPRequestsTotal.WithLabelValues(r.Method, path, strconv.Itoa(rec.status)).Inc()
		HTTPRequestDuration.WithLabelValues(r.Method, path).Observe(time.Since(start).Seconds())
	})
}
