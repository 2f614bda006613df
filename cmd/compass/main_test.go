package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahrav/go-compass/infrastructure/middleware"
	"github.com/ahrav/go-compass/internal/application"
	"github.com/ahrav/go-compass/internal/domain"
	"github.com/ahrav/go-compass/internal/ports"
)

const testCorpus = `
questions:
  q1: Taxes should be lowered.
  q2: Public transport should be free.
records:
  - candidate: {name: A, party: X, city: Helsinki}
    answers: {q1: 5}
  - candidate: {name: B, party: X, city: Espoo}
    answers: {q1: 1}
  - candidate: {name: C, party: Y, city: Helsinki}
    answers: {q2: 3}
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// run executes the CLI with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestScaleCommand(t *testing.T) {
	corpus := writeFile(t, "corpus.yaml", testCorpus)

	out, _, err := run(t, "scale", "--corpus", corpus)
	require.NoError(t, err)

	var got scaleOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, domain.NewAnswerScale(1, 5), got.Scale)
	assert.Equal(t, 3, got.Candidates)
	assert.Equal(t, []string{"X", "Y"}, got.Parties)
	assert.Equal(t, []string{"Espoo", "Helsinki"}, got.Cities)
	assert.Equal(t, []domain.QuestionID{"q1", "q2"}, got.Questions)
}

func TestPartiesCommand(t *testing.T) {
	corpus := writeFile(t, "corpus.yaml", testCorpus)

	out, _, err := run(t, "parties", "--corpus", corpus, "-o", "q1=1")
	require.NoError(t, err)

	var got []domain.GroupResult
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "X", got[0].Name)
	assert.True(t, got[0].HasScore)
	assert.Len(t, got[0].Bins, 2)
	assert.Equal(t, "Y", got[1].Name)
	assert.False(t, got[1].HasScore)
}

func TestPartiesCommand_WithConfig(t *testing.T) {
	corpus := writeFile(t, "corpus.yaml", testCorpus)
	config := writeFile(t, "compass.yaml", "missing_answers: neutral\n")

	out, _, err := run(t, "parties", "--corpus", corpus, "--config", config, "-o", "q1=1")
	require.NoError(t, err)

	var got []domain.GroupResult
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 2)
	assert.True(t, got[1].HasScore)
}

func TestCandidatesCommand(t *testing.T) {
	corpus := writeFile(t, "corpus.yaml", testCorpus)

	out, _, err := run(t, "candidates", "x", "--corpus", corpus, "-o", "q1=-1", "--limit", "1")
	require.NoError(t, err)

	var got []domain.CandidateMatch
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "B", got[0].Candidate.Name)

	_, _, err = run(t, "candidates", "Z", "--corpus", corpus, "-o", "q1=1")
	assert.ErrorIs(t, err, domain.ErrUnknownGroup)
}

func TestQuestionCommand(t *testing.T) {
	corpus := writeFile(t, "corpus.yaml", testCorpus)

	out, _, err := run(t, "question", "q1", "--corpus", corpus)
	require.NoError(t, err)

	var got []domain.AnswerDistribution
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "X", got[0].Name)
	assert.InDelta(t, 3.0, got[0].Mean, 1e-12)
}

func TestQuestionsCommand(t *testing.T) {
	corpus := writeFile(t, "corpus.yaml", testCorpus)

	out, _, err := run(t, "questions", "x", "--corpus", corpus, "-o", "q2=1")
	require.NoError(t, err)
	var got []domain.QuestionMatch
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 2)
	assert.Equal(t, domain.QuestionMatch{ID: "q2", Opinionated: true}, got[0])
	assert.Equal(t, domain.QuestionMatch{ID: "q1", HasScore: true}, got[1])

	_, _, err = run(t, "questions", "Z", "--corpus", corpus)
	assert.ErrorIs(t, err, domain.ErrUnknownGroup)
}

func TestBatchCommand(t *testing.T) {
	corpus := writeFile(t, "corpus.yaml", testCorpus)
	profiles := writeFile(t, "profiles.yaml", `
- name: pro
  opinions: {q1: 1}
- name: helsinki
  city: Helsinki
  opinions: {q1: -1, q2: 1}
`)

	out, stderr, err := run(t, "batch", "--corpus", corpus, "--profiles", profiles, "--concurrency", "2", "--metrics")
	require.NoError(t, err)

	var got []application.ProfileResult
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "pro", got[0].Name)
	assert.Equal(t, "helsinki", got[1].Name)
	assert.Contains(t, stderr, "compass_operations_total")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("stderr closed") }

func TestDumpMetrics_Errors(t *testing.T) {
	reg := prometheus.NewRegistry()
	middleware.NewPrometheusMetrics(reg).RecordCounter(middleware.MetricRankings, 1, nil)

	err := dumpMetrics(failingWriter{}, reg)
	var metricsErr *ports.MetricsError
	require.True(t, errors.As(err, &metricsErr), "got %v", err)
	assert.Equal(t, "compass_operations_total", metricsErr.Metric)
	assert.Equal(t, "write", metricsErr.Operation)

	broken := prometheus.GathererFunc(func() ([]*dto.MetricFamily, error) {
		return nil, errors.New("collector panicked")
	})
	err = dumpMetrics(io.Discard, broken)
	require.True(t, errors.As(err, &metricsErr))
	assert.Equal(t, "gather", metricsErr.Operation)
}

func TestCommandErrors(t *testing.T) {
	corpus := writeFile(t, "corpus.yaml", testCorpus)

	tests := []struct {
		name string
		args []string
	}{
		{name: "missing corpus flag", args: []string{"scale"}},
		{name: "missing corpus file", args: []string{"scale", "--corpus", filepath.Join(t.TempDir(), "none.yaml")}},
		{name: "malformed opinion", args: []string{"parties", "--corpus", corpus, "-o", "q1"}},
		{name: "non numeric weight", args: []string{"parties", "--corpus", corpus, "-o", "q1=yes"}},
		{name: "bad log level", args: []string{"scale", "--corpus", corpus, "--log-level", "loud"}},
		{name: "question needs id", args: []string{"question", "--corpus", corpus}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestParseOpinions(t *testing.T) {
	got, err := parseOpinions([]string{"q1=1", "q2 = -0.5", "q3=1", "q3=1"})
	require.NoError(t, err)
	assert.Equal(t, domain.Opinions{"q1": 1, "q2": -0.5}, got)

	empty, err := parseOpinions(nil)
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = parseOpinions([]string{"q1=NaN"})
	assert.ErrorIs(t, err, domain.ErrInvalidOpinion)
}
