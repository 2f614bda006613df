// Package middleware provides cross-cutting concerns for the scoring engine.
package middleware

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/ahrav/go-compass/internal/ports"
)

// Metric names understood by PrometheusMetrics. Other names fall back to
// the generic operation counter, state gauge, or latency histogram.
const (
	MetricRankings       = "rankings_total"
	MetricAggregateScore = "aggregate_score"
	MetricScoredGroups   = "scored_groups"
	MetricScorable       = "scorable_candidates"
)

// PrometheusMetrics implements the MetricsCollector interface using Prometheus.
// It tracks ranking latency, ranking outcomes, and the distribution of
// aggregate group scores.
type PrometheusMetrics struct {
	executionLatency *prometheus.HistogramVec
	operationCounter *prometheus.CounterVec
	aggregateScore   *prometheus.HistogramVec
	systemGauges     *prometheus.GaugeVec
}

// NewPrometheusMetrics creates a PrometheusMetrics instance and registers
// its metrics with reg. A nil reg registers with the default registry.
func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		executionLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "compass",
				Name:      "scoring_duration_seconds",
				Help:      "Execution time of scoring operations.",
				Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
			},
			[]string{"operation", "scope"},
		),
		operationCounter: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "compass",
				Name:      "operations_total",
				Help:      "Total number of scoring operations by outcome.",
			},
			[]string{"operation", "status"},
		),
		aggregateScore: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "compass",
				Name:      "aggregate_score",
				Help:      "Aggregate match score of ranked groups.",
				Buckets:   prometheus.LinearBuckets(-4, 0.5, 17),
			},
			[]string{"group"},
		),
		systemGauges: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "compass",
				Name:      "engine_state",
				Help:      "Most recent engine state values.",
			},
			[]string{"metric", "scope"},
		),
	}
}

// RecordLatency implements the MetricsCollector interface by recording
// execution latency in a Prometheus histogram.
func (pm *PrometheusMetrics) RecordLatency(
	operation string,
	duration time.Duration,
	labels map[string]string,
) {
	pm.executionLatency.WithLabelValues(operation, labelOr(labels, "scope", "all")).Observe(duration.Seconds())
}

// RecordCounter implements the MetricsCollector interface by incrementing
// Prometheus counters.
func (pm *PrometheusMetrics) RecordCounter(
	metric string, value float64, labels map[string]string,
) {
	pm.operationCounter.WithLabelValues(metric, labelOr(labels, "status", "success")).Add(value)
}

// RecordGauge implements the MetricsCollector interface by setting
// Prometheus gauge values.
func (pm *PrometheusMetrics) RecordGauge(
	metric string, value float64, labels map[string]string,
) {
	pm.systemGauges.WithLabelValues(metric, labelOr(labels, "scope", "all")).Set(value)
}

// RecordHistogram implements the MetricsCollector interface. Aggregate
// scores go to their own histogram; every other value is treated as a
// duration in seconds.
func (pm *PrometheusMetrics) RecordHistogram(
	metric string, value float64, labels map[string]string,
) {
	if metric == MetricAggregateScore {
		pm.aggregateScore.WithLabelValues(labelOr(labels, "group", "unknown")).Observe(value)
		return
	}
	pm.executionLatency.WithLabelValues(metric, labelOr(labels, "scope", "all")).Observe(value)
}

func labelOr(labels map[string]string, key, fallback string) string {
	if v := labels[key]; v != "" {
		return v
	}
	return fallback
}

// Compile-time verification that PrometheusMetrics implements MetricsCollector.
var _ ports.MetricsCollector = (*PrometheusMetrics)(nil)
