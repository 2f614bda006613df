package ports

import (
	"context"
	"io"
	"time"

	"github.com/ahrav/go-compass/internal/domain"
)

// MetricsCollector defines the interface for collecting application metrics.
// Implementations might send metrics to Prometheus, StatsD, CloudWatch, etc.
type MetricsCollector interface {
	// RecordLatency records the execution time of an operation.
	// The labels map provides additional context for the metric.
	RecordLatency(operation string, duration time.Duration, labels map[string]string)

	// RecordCounter increments a counter metric.
	// This is useful for tracking events like completed rankings, errors, etc.
	RecordCounter(metric string, value float64, labels map[string]string)

	// RecordGauge sets the current value of a gauge metric.
	// This is useful for tracking values like corpus size.
	RecordGauge(metric string, value float64, labels map[string]string)

	// RecordHistogram records a value in a histogram.
	// This is useful for tracking distributions like aggregate scores.
	RecordHistogram(metric string, value float64, labels map[string]string)
}

// ScoringObserver receives notifications around the scoring of one opinion
// profile. Implementations add tracing, metrics, or logging without the
// scoring code depending on them.
type ScoringObserver interface {
	// Start is called before a profile is ranked. The returned context is
	// passed to Finish and may carry observer state such as a span.
	Start(ctx context.Context, profile string, opinions domain.Opinions) context.Context

	// Finish is called once the profile has been ranked or has failed.
	Finish(ctx context.Context, profile string, results []domain.GroupResult, elapsed time.Duration, err error)
}

// CorpusLoader defines the interface for reading and validating an answer
// corpus. Implementations could read from files, embedded assets, or remote
// storage owned by the collaborator.
type CorpusLoader interface {
	// LoadFromFile reads a corpus from the file at path.
	LoadFromFile(ctx context.Context, path string) (*domain.Corpus, error)

	// LoadFromReader reads a corpus from r.
	LoadFromReader(ctx context.Context, r io.Reader) (*domain.Corpus, error)
}
