// Package metrics declares the server's Prometheus collectors and an
// HTTP endpoint to expose them.
//
// Grounded on the packetd controller's metrics (controller/metrics.go):
// package-level promauto collectors under one namespace, served to the
// outside world via a dedicated listener.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
)

const namespace = "static2"

var (
	// ConnectionsAccepted counts every socket handed to the worker pool.
	ConnectionsAccepted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "connections_accepted_total",
		Help:      "Accepted connections handed to the worker pool",
	})

	// RequestsByStatus counts responses written, labeled by the standard
	// reason text of the status code (http.StatusText, e.g. "OK").
	RequestsByStatus = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_total",
		Help:      "Requests served, by response status code",
	}, []string{"status"})

	// WorkerJobsInFlight tracks how many worker pool jobs are currently
	// executing, wired to workerpool.WithMetrics.
	WorkerJobsInFlight = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "worker_jobs_in_flight",
		Help:      "Worker pool jobs currently executing",
	})
)

// ObserveStatus increments RequestsByStatus under the label
// http.StatusText(code) for the given HTTP status code.
func ObserveStatus(code int) {
	RequestsByStatus.WithLabelValues(http.StatusText(code)).Inc()
}

// Handler adapts promhttp's net/http handler to fasthttp, so the metrics
// endpoint is served by a fasthttp server; no other package in this
// module uses fasthttp.
func Handler() fasthttp.RequestHandler {
	return fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())
}

// ListenAndServe starts a dedicated fasthttp server exposing Handler at
// addr. It blocks until the server stops or errors.
func ListenAndServe(addr string) error {
	srv := &fasthttp.Server{Handler: Handler()}
	return srv.ListenAndServe(addr)
}
