package ports

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestCorpusError tests message formatting with and without a record index.
func TestCorpusError(t *testing.T) {
	tests := []struct {
		name    string
		err     *CorpusError
		wantMsg string
	}{
		{
			name:    "source only",
			err:     NewCorpusError("answers.yaml", ErrMalformedCorpus),
			wantMsg: "corpus error: source=answers.yaml, err=malformed corpus",
		},
		{
			name:    "with record index",
			err:     &CorpusError{Source: "answers.json", Record: 4, Err: errors.New("missing name")},
			wantMsg: "corpus error: source=answers.json, record=4, err=missing name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantMsg, tt.err.Error())
		})
	}

	assert.True(t, errors.Is(NewCorpusError("x", ErrMalformedCorpus), ErrMalformedCorpus))
}

// TestMetricsError tests the functionality of the MetricsError error type.
func TestMetricsError(t *testing.T) {
	err := NewMetricsError("scoring_latency", "RecordHistogram", errors.New("registry closed"))

	assert.Equal(t, "metrics error: operation=RecordHistogram, metric=scoring_latency, err=registry closed", err.Error())
	assert.Equal(t, "scoring_latency", err.Metric)
	assert.Equal(t, "RecordHistogram", err.Operation)
}

// TestConfigError tests the functionality of the ConfigError error type.
func TestConfigError(t *testing.T) {
	err := NewConfigError("bin_precision", ErrConfigNotFound)

	assert.Equal(t, "config error: key=bin_precision, err=configuration not found", err.Error())
	assert.Equal(t, "bin_precision", err.ConfigKey)
	assert.True(t, errors.Is(err, ErrConfigNotFound))
}

func TestCommonInfrastructureErrors(t *testing.T) {
	tests := []struct {
		err     error
		message string
	}{
		{ErrConfigNotFound, "configuration not found"},
		{ErrMalformedCorpus, "malformed corpus"},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			assert.Equal(t, tt.message, tt.err.Error())
		})
	}
}

// TestErrorUnwrapping tests that all custom error types in the package support unwrapping.
func TestErrorUnwrapping(t *testing.T) {
	baseErr := errors.New("underlying error")

	errorList := []interface {
		error
		Unwrap() error
	}{
		NewCorpusError("source", baseErr),
		NewMetricsError("metric", "op", baseErr),
		NewConfigError("key", baseErr),
	}

	for _, err := range errorList {
		unwrapped := err.Unwrap()
		assert.Equal(t, baseErr, unwrapped, "%T should unwrap to base error", err)
		assert.True(t, errors.Is(err, baseErr), "%T should match base error with Is", err)
	}
}
