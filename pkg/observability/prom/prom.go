// Package prom records observability events as Prometheus metrics.
package prom

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	errs "github.com/matzehuels/babelgallery/pkg/errors"
	"github.com/matzehuels/babelgallery/pkg/observability"
)

// MetricsPath is the endpoint serving the registry.
const MetricsPath = "/metrics"

var (
	_ observability.GenerateHooks = (*Metrics)(nil)
	_ observability.HTTPHooks     = (*Metrics)(nil)
)

// Metrics implements the observability hooks on a private registry.
type Metrics struct {
	reg *prometheus.Registry

	generated   *prometheus.CounterVec
	genLatency  prometheus.Histogram
	requests    *prometheus.CounterVec
	reqLatency  *prometheus.HistogramVec
	rateLimited *prometheus.CounterVec
}

// New creates the collectors and registers them, together with the Go
// runtime collectors, on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		reg: prometheus.NewRegistry(),
		generated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "babelgallery_generations_total",
			Help: "Artifacts generated, by outcome code.",
		}, []string{"code"}),
		genLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "babelgallery_generation_duration_seconds",
			Help:    "Time to synthesize and encode one artifact (seconds).",
			Buckets: []float64{.01, .025, .05, .1, .2, .4, .8, 1.6},
		}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "babelgallery_http_requests_total",
			Help: "HTTP requests served, by route and status.",
		}, []string{"method", "route", "status"}),
		reqLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "babelgallery_http_request_duration_seconds",
			Help:    "HTTP request latency (seconds).",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		rateLimited: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "babelgallery_http_rate_limited_total",
			Help: "Requests refused by the generation limiter.",
		}, []string{"route"}),
	}
	m.reg.MustRegister(
		m.generated, m.genLatency, m.requests, m.reqLatency, m.rateLimited,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry { return m.reg }

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{})
}

func (m *Metrics) OnGenerateStart(context.Context, int64, []string) {}

func (m *Metrics) OnGenerateComplete(_ context.Context, _ int64, _ []string, d time.Duration, err error) {
	code := "OK"
	if err != nil {
		code = string(errs.GetCode(err))
		if code == "" {
			code = string(errs.ErrCodeInternal)
		}
	}
	m.generated.WithLabelValues(code).Inc()
	m.genLatency.Observe(d.Seconds())
}

func (m *Metrics) OnResponse(_ context.Context, method, route string, status int, d time.Duration) {
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.reqLatency.WithLabelValues(route).Observe(d.Seconds())
}

func (m *Metrics) OnRateLimited(_ context.Context, route string) {
	m.rateLimited.WithLabelValues(route).Inc()
}
