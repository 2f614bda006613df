package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahrav/go-compass/internal/domain"
)

func TestGenerateCorpus_Deterministic(t *testing.T) {
	spec := CorpusSpec{Candidates: 50, Questions: 8, AnswerRate: 0.7}

	first := GenerateCorpus(spec, 42)
	second := GenerateCorpus(spec, 42)

	assert.Equal(t, first, second, "Same seed must produce the same corpus")
	assert.Len(t, first.Records, 50)
	assert.Len(t, first.Questions, 8)
}

func TestGenerateCorpus_Shape(t *testing.T) {
	corpus := GenerateCorpus(CorpusSpec{Candidates: 100, Questions: 12, AnswerRate: 0.5}, 7)

	for _, r := range corpus.Records {
		assert.NotEmpty(t, r.Candidate.Name)
		assert.Contains(t, PartyNames, r.Candidate.Party)
		assert.Contains(t, CityNames, r.Candidate.City)
		for q, v := range r.Answers {
			assert.Contains(t, corpus.Questions, q)
			assert.Contains(t, AnswerOptions, v)
		}
	}

	stats := ComputeCorpusStatistics(corpus)
	assert.Equal(t, 100, stats.Candidates)
	assert.Equal(t, 12, stats.Questions)
	assert.Greater(t, stats.Answers, 0)
	assert.InDelta(t, 6.0, stats.AvgAnswersPerPerson, 2.0)
}

func TestGenerateCorpus_FullAnswerRate(t *testing.T) {
	corpus := GenerateCorpus(CorpusSpec{Candidates: 10, Questions: 5, AnswerRate: 1}, 1)
	for _, r := range corpus.Records {
		assert.Len(t, r.Answers, 5)
	}
}

func TestRandomOpinions(t *testing.T) {
	corpus := GenerateCorpus(CorpusSpec{Candidates: 5, Questions: 6, AnswerRate: 1}, 3)

	ops := RandomOpinions(corpus, 4, 9)
	assert.Equal(t, 4, ops.Len())
	for q, w := range ops {
		assert.Contains(t, corpus.Questions, q)
		assert.Contains(t, []float64{-1, 0, 1}, w)
	}

	assert.Equal(t, 6, RandomOpinions(corpus, 100, 9).Len(), "Capped at catalog size")
}

func TestSaveCorpus(t *testing.T) {
	corpus := &domain.Corpus{
		Questions: map[domain.QuestionID]string{"q1": "Question one"},
		Records: []domain.Record{{
			Candidate: domain.Candidate{Name: "A", Party: "X", City: "Oulu"},
			Answers:   domain.AnswerSet{"q1": 4},
		}},
	}
	path := filepath.Join(t.TempDir(), "nested", "corpus.json")

	require.NoError(t, SaveCorpus(corpus, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"party": "X"`)
	assert.Contains(t, string(data), `"q1": 4`)
}
