package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome label values.
const (
	OutcomeSent    = "sent"
	OutcomeFailed  = "failed"
	OutcomeOK      = "ok"
	OutcomeSkipped = "skipped"
)

// Metrics holds the notification counters. A nil *Metrics is valid and
// records nothing.
type Metrics struct {
	namespace string
	subsystem string
	registry  *prometheus.Registry

	requests    *prometheus.CounterVec
	emails      *prometheus.CounterVec
	storeWrites *prometheus.CounterVec
	rateLimited prometheus.Counter
}

// Option configures Metrics.
type Option func(*Metrics)

// WithNamespace overrides the "hostcities" namespace.
func WithNamespace(ns string) Option {
	return func(m *Metrics) { m.namespace = ns }
}

// WithSubsystem overrides the "notify" subsystem.
func WithSubsystem(s string) Option {
	return func(m *Metrics) { m.subsystem = s }
}

// WithRegistry registers the counters on reg instead of a fresh registry
// with Go runtime and process collectors.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(m *Metrics) { m.registry = reg }
}

// New creates and registers the counters.
func New(opts ...Option) *Metrics {
	m := &Metrics{
		namespace: "hostcities",
		subsystem: "notify",
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.registry == nil {
		m.registry = prometheus.NewRegistry()
		m.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	auto := promauto.With(m.registry)

	m.requests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "requests_total",
		Help:      "Send-email requests by type and response status.",
	}, []string{"type", "status"})

	m.emails = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "emails_total",
		Help:      "Outbound emails by kind and outcome.",
	}, []string{"kind", "outcome"})

	m.storeWrites = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "store_writes_total",
		Help:      "Prediction upserts by outcome.",
	}, []string{"outcome"})

	m.rateLimited = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "rate_limited_total",
		Help:      "Requests rejected by the rate limiter.",
	})

	return m
}

// Registry returns the registry the counters live in.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Request counts one answered request. Callers pass "unknown" for
// unrecognized types so label cardinality stays bounded.
func (m *Metrics) Request(requestType string, status int) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(requestType, strconv.Itoa(status)).Inc()
}

// Email counts one send attempt.
func (m *Metrics) Email(kind, outcome string) {
	if m == nil {
		return
	}
	m.emails.WithLabelValues(kind, outcome).Inc()
}

// StoreWrite counts one upsert attempt.
func (m *Metrics) StoreWrite(outcome string) {
	if m == nil {
		return
	}
	m.storeWrites.WithLabelValues(outcome).Inc()
}

// RateLimited counts one request rejected with 429.
func (m *Metrics) RateLimited() {
	if m == nil {
		return
	}
	m.rateLimited.Inc()
}
