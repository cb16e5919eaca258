// Package metrics instruments the sexp core with Prometheus collectors on
// a private registry. The registry is never the global
// prometheus.DefaultRegisterer, so importing and using the sexp package
// from inside another service never risks a duplicate-registration panic.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds this package's collectors, isolated from any global
// Prometheus registry.
var Registry = prometheus.NewRegistry()

var (
	parseTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "sexp_parse_total",
		Help: "Total number of Parse calls, successful or not.",
	})
	parseErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "sexp_parse_errors_total",
		Help: "Total number of Parse failures by error kind.",
	}, []string{"kind"})
	parseDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "sexp_parse_duration_seconds",
		Help:    "Time spent in Parse.",
		Buckets: prometheus.DefBuckets,
	})
	serializeDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "sexp_serialize_duration_seconds",
		Help:    "Time spent serializing a Tree or Node.",
		Buckets: prometheus.DefBuckets,
	})
	mutationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "sexp_mutations_total",
		Help: "Total number of mutation operations, labeled by op.",
	}, []string{"op"})
)

func init() {
	Registry.MustRegister(parseTotal, parseErrors, parseDuration, serializeDuration, mutationsTotal)
}

// ObserveParse records the outcome and duration of one Parse call. errKind
// is the empty string on success.
func ObserveParse(d time.Duration, errKind string) {
	parseTotal.Inc()
	parseDuration.Observe(d.Seconds())
	if errKind != "" {
		parseErrors.WithLabelValues(errKind).Inc()
	}
}

// ObserveSerialize records the duration of one serialize call.
func ObserveSerialize(d time.Duration) {
	serializeDuration.Observe(d.Seconds())
}

// IncMutation records one occurrence of the named mutation operation
// (insert, which covers append, prepend and insert-after; remove;
// extract; clone).
func IncMutation(op string) {
	mutationsTotal.WithLabelValues(op).Inc()
}
