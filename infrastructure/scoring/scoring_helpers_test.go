package scoring

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ahrav/go-compass/internal/domain"
)

// Shared fixture: a five point scale with candidates A and B in party X
// answering q1 at the extremes and candidate C in party Y who only
// answered q2.
var (
	candA = domain.Record{
		Candidate: domain.Candidate{ID: 0, Name: "A", Party: "X", City: "Helsinki"},
		Answers:   domain.AnswerSet{"q1": 5},
	}
	candB = domain.Record{
		Candidate: domain.Candidate{ID: 1, Name: "B", Party: "X", City: "Espoo"},
		Answers:   domain.AnswerSet{"q1": 1},
	}
	candC = domain.Record{
		Candidate: domain.Candidate{ID: 2, Name: "C", Party: "Y", City: "Helsinki"},
		Answers:   domain.AnswerSet{"q2": 3},
	}
	fivePoint = domain.NewAnswerScale(1, 5)
)

// newScorers wires a PersonScorer and AggregateScorer for tests.
func newScorers(t testing.TB, scale domain.AnswerScale, policy MissingAnswerPolicy) (*PersonScorer, *AggregateScorer) {
	t.Helper()
	person, err := NewPersonScorer(scale, policy)
	require.NoError(t, err)
	agg, err := NewAggregateScorer(person, DefaultBinPrecision)
	require.NoError(t, err)
	return person, agg
}

func newRanker(t testing.TB, agg domain.Scorer, scale domain.AnswerScale, positioning BinPositioning) *GroupRanker {
	t.Helper()
	gr, err := NewGroupRanker(agg, scale, positioning)
	require.NoError(t, err)
	return gr
}
