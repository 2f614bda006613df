package scoring

import (
	"fmt"

	"github.com/ahrav/go-compass/internal/domain"
)

var _ domain.Scorer = (*AggregateScorer)(nil)

// AggregateScorer computes the weighted score and the score distribution of
// a group of candidates.
//
// Every scorable candidate carries the same weight, 1/scorable. Candidates
// who answered none of the opinionated questions contribute nothing and do
// not count towards the weight denominator.
//
// The scorer is stateless and thread-safe.
type AggregateScorer struct {
	person    *PersonScorer
	precision int
}

// NewAggregateScorer creates an AggregateScorer that rounds bin keys to
// precision decimal places.
func NewAggregateScorer(person *PersonScorer, precision int) (*AggregateScorer, error) {
	if person == nil {
		return nil, fmt.Errorf("aggregate scorer: %w", ErrNilScorer)
	}
	if precision < 0 || precision > 12 {
		return nil, fmt.Errorf("bin precision %d out of range [0, 12]", precision)
	}
	return &AggregateScorer{person: person, precision: precision}, nil
}

// Person returns the underlying PersonScorer.
func (as *AggregateScorer) Person() *PersonScorer { return as.person }

// ScorePeople implements the domain.Scorer interface.
func (as *AggregateScorer) ScorePeople(opinions domain.Opinions, records []domain.Record) domain.AggregateResult {
	empty := domain.AggregateResult{Bins: []domain.Bin{}}
	if opinions.Len() == 0 || len(records) == 0 {
		return empty
	}

	scores := make([]float64, 0, len(records))
	for _, r := range records {
		if s, ok := as.person.PersonScore(r.Answers, opinions); ok {
			scores = append(scores, s)
		}
	}
	if len(scores) == 0 {
		return empty
	}

	personWeight := 1.0 / float64(len(scores))
	acc := newBinAccumulator(as.precision)
	var score float64
	for _, s := range scores {
		acc.add(s, personWeight)
		score += s * personWeight
	}

	return domain.AggregateResult{
		Score:    score,
		HasScore: true,
		Bins:     acc.bins(),
		Scorable: len(scores),
	}
}
