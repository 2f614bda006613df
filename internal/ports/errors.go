package ports

import (
	"errors"
	"fmt"
)

// Common infrastructure errors.
var (
	// ErrConfigNotFound indicates that required configuration is missing.
	ErrConfigNotFound = errors.New("configuration not found")

	// ErrMalformedCorpus indicates that a corpus source could not be decoded.
	ErrMalformedCorpus = errors.New("malformed corpus")
)

// CorpusError represents an error from loading a corpus.
// It includes the source and, when known, the offending record index.
type CorpusError struct {
	// Source names the file or reader the corpus was read from.
	Source string

	// Record is the zero-based index of the offending record, or -1.
	Record int

	// Err is the underlying error.
	Err error
}

// Error implements the error interface for CorpusError.
func (e *CorpusError) Error() string {
	if e.Record >= 0 {
		return fmt.Sprintf("corpus error: source=%s, record=%d, err=%v", e.Source, e.Record, e.Err)
	}
	return fmt.Sprintf("corpus error: source=%s, err=%v", e.Source, e.Err)
}

// Unwrap returns the underlying error.
func (e *CorpusError) Unwrap() error { return e.Err }

// NewCorpusError creates a new CorpusError not tied to a specific record.
func NewCorpusError(source string, err error) *CorpusError {
	return &CorpusError{
		Source: source,
		Record: -1,
		Err:    err,
	}
}

// MetricsError represents an error from metrics collection operations.
type MetricsError struct {
	// Metric is the name of the metric that was being collected when the
	// error occurred.
	Metric string

	// Operation is the name of the metrics operation that failed.
	Operation string

	// Err is the underlying error that caused the metrics operation to fail.
	Err error
}

// Error implements the error interface for MetricsError.
func (e *MetricsError) Error() string {
	return fmt.Sprintf("metrics error: operation=%s, metric=%s, err=%v", e.Operation, e.Metric, e.Err)
}

// Unwrap returns the underlying error.
func (e *MetricsError) Unwrap() error { return e.Err }

// NewMetricsError creates a new MetricsError with the given details.
func NewMetricsError(metric, operation string, err error) *MetricsError {
	return &MetricsError{
		Metric:    metric,
		Operation: operation,
		Err:       err,
	}
}

// ConfigError represents an error from configuration operations.
type ConfigError struct {
	// ConfigKey is the configuration key that was involved in the failed
	// operation.
	ConfigKey string

	// Err is the underlying error that caused the configuration operation
	// to fail.
	Err error
}

// Error implements the error interface for ConfigError.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error: key=%s, err=%v", e.ConfigKey, e.Err)
}

// Unwrap returns the underlying error.
func (e *ConfigError) Unwrap() error { return e.Err }

// NewConfigError creates a new ConfigError with the given details.
func NewConfigError(key string, err error) *ConfigError {
	return &ConfigError{
		ConfigKey: key,
		Err:       err,
	}
}
