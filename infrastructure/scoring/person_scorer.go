package scoring

import (
	"fmt"
	"math"

	"github.com/ahrav/go-compass/internal/domain"
)

// PersonScorer compares one candidate's answers with a voter's opinions.
// It is stateless apart from the immutable scale and is safe for concurrent use.
type PersonScorer struct {
	scale   domain.AnswerScale
	missing MissingAnswerPolicy
}

// NewPersonScorer creates a PersonScorer for the given scale and missing
// answer policy.
func NewPersonScorer(scale domain.AnswerScale, missing MissingAnswerPolicy) (*PersonScorer, error) {
	switch missing {
	case MissingExclude, MissingNeutral:
	default:
		return nil, fmt.Errorf("unsupported missing answer policy %q", missing)
	}
	return &PersonScorer{scale: scale, missing: missing}, nil
}

// Scale returns the answer scale the scorer normalizes against.
func (ps *PersonScorer) Scale() domain.AnswerScale { return ps.scale }

// Score returns one MatchDetail per question in the opinion set, in
// ascending question order. The opinion set defines the domain: questions
// the candidate answered but the voter has no opinion on are ignored.
func (ps *PersonScorer) Score(answers domain.AnswerSet, opinions domain.Opinions) []domain.MatchDetail {
	details := make([]domain.MatchDetail, 0, len(opinions))
	for _, q := range opinions.Questions() {
		d := domain.MatchDetail{ID: q}
		if raw, ok := answers.Answer(q); ok {
			d.DidAnswer = true
			d.AnswerScore = ps.scale.Score(raw)
			d.MatchScore = d.AnswerScore * opinions[q]
		}
		details = append(details, d)
	}
	return details
}

// PersonScore returns the candidate's normalized score: the sum of match
// scores over answered questions divided by the width of the opinion set.
// Unanswered questions dilute the score rather than being renormalized away.
// The boolean is false when the candidate cannot be scored, which includes
// a sum made non-finite by a NaN or infinite opinion weight.
func (ps *PersonScorer) PersonScore(answers domain.AnswerSet, opinions domain.Opinions) (float64, bool) {
	return ps.aggregate(ps.Score(answers, opinions))
}

// aggregate folds a detail list into a person score.
func (ps *PersonScorer) aggregate(details []domain.MatchDetail) (float64, bool) {
	if len(details) == 0 {
		return 0, false
	}
	var sum float64
	var answered int
	for _, d := range details {
		if !d.DidAnswer {
			continue
		}
		sum += d.MatchScore
		answered++
	}
	if answered == 0 && ps.missing == MissingExclude {
		return 0, false
	}
	if math.IsNaN(sum) || math.IsInf(sum, 0) {
		return 0, false
	}
	return sum / float64(len(details)), true
}
