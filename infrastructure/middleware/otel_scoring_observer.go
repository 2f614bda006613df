package middleware

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/ahrav/go-compass/internal/domain"
	"github.com/ahrav/go-compass/internal/ports"
)

var _ ports.ScoringObserver = (*OTelScoringObserver)(nil)

// TracerName is the instrumentation name used when no tracer is supplied.
const TracerName = "github.com/ahrav/go-compass"

// OTelScoringObserver implements observability for profile ranking using
// OpenTelemetry tracing. Each profile gets one span carried in the context
// between Start and Finish, so a single observer serves concurrent
// rankings.
type OTelScoringObserver struct {
	tracer  trace.Tracer
	metrics ports.MetricsCollector
}

// NewOTelScoringObserver creates an observer. A nil tracer uses the global
// tracer provider; a nil metrics collector disables metrics.
func NewOTelScoringObserver(tracer trace.Tracer, metrics ports.MetricsCollector) *OTelScoringObserver {
	if tracer == nil {
		tracer = otel.Tracer(TracerName)
	}
	return &OTelScoringObserver{tracer: tracer, metrics: metrics}
}

// Start implements the ScoringObserver interface. It starts a span
// describing the opinion set.
func (o *OTelScoringObserver) Start(ctx context.Context, profile string, opinions domain.Opinions) context.Context {
	ctx, _ = o.tracer.Start(ctx, "BatchRanker.Rank", trace.WithAttributes(
		attribute.String("profile.name", profile),
		attribute.Int("opinions.count", opinions.Len()),
		attribute.Int("opinions.expressed", opinions.Expressed()),
	))
	return ctx
}

// Finish implements the ScoringObserver interface. It records the ranking
// outcome on the span started by Start and reports metrics.
func (o *OTelScoringObserver) Finish(
	ctx context.Context,
	profile string,
	results []domain.GroupResult,
	elapsed time.Duration,
	err error,
) {
	span := trace.SpanFromContext(ctx)
	defer span.End()

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		if o.metrics != nil {
			o.metrics.RecordCounter(MetricRankings, 1, map[string]string{"status": "error"})
		}
		return
	}

	scored := 0
	for _, r := range results {
		if r.HasScore {
			scored++
		}
	}
	span.SetAttributes(
		attribute.Int("groups.count", len(results)),
		attribute.Int("groups.scored", scored),
	)
	if scored > 0 {
		span.AddEvent("ranking.top", trace.WithAttributes(
			attribute.String("group", results[0].Name),
			attribute.Float64("score", results[0].Score),
		))
	}
	span.SetStatus(codes.Ok, "ranking completed")

	o.updateMetrics(results, scored, elapsed)
}

func (o *OTelScoringObserver) updateMetrics(results []domain.GroupResult, scored int, elapsed time.Duration) {
	if o.metrics == nil {
		return
	}

	o.metrics.RecordLatency("rank", elapsed, map[string]string{"scope": "profile"})
	o.metrics.RecordCounter(MetricRankings, 1, map[string]string{"status": "success"})
	o.metrics.RecordGauge(MetricScoredGroups, float64(scored), nil)

	scorable := 0
	for _, r := range results {
		scorable += r.Scorable
		if r.HasScore {
			o.metrics.RecordHistogram(MetricAggregateScore, r.Score, map[string]string{"group": r.Name})
		}
	}
	o.metrics.RecordGauge(MetricScorable, float64(scorable), nil)
}
