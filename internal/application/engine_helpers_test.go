package application

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ahrav/go-compass/internal/domain"
)

// testCorpus holds candidates A and B in party X answering q1 at the ends
// of a five point scale and candidate C in party Y who only answered q2.
func testCorpus() *domain.Corpus {
	return &domain.Corpus{
		Questions: map[domain.QuestionID]string{
			"q1": "Taxes should be lowered.",
			"q2": "Public transport should be free.",
		},
		Records: []domain.Record{
			{Candidate: domain.Candidate{Name: "A", Party: "X", City: "Helsinki"}, Answers: domain.AnswerSet{"q1": 5}},
			{Candidate: domain.Candidate{Name: "B", Party: "X", City: "Espoo"}, Answers: domain.AnswerSet{"q1": 1}},
			{Candidate: domain.Candidate{Name: "C", Party: "Y", City: "Helsinki"}, Answers: domain.AnswerSet{"q2": 3}},
		},
	}
}

func newTestEngine(t testing.TB, mutate ...func(*EngineConfig)) *Engine {
	t.Helper()
	cfg := DefaultEngineConfig()
	for _, m := range mutate {
		m(&cfg)
	}
	e, err := NewEngine(testCorpus(), cfg)
	require.NoError(t, err)
	return e
}
