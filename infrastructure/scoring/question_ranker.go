package scoring

import (
	"cmp"
	"slices"

	"github.com/ahrav/go-compass/internal/domain"
)

// RankQuestions scores every question against members alone with a single
// +1 opinion and orders the results: questions the voter holds a non-zero
// opinion on come first, then scored before unscored, then by descending
// score. Ties keep the order of questions.
func (as *AggregateScorer) RankQuestions(
	questions []domain.QuestionID,
	members []domain.Record,
	opinions domain.Opinions,
) []domain.QuestionMatch {
	matches := make([]domain.QuestionMatch, len(questions))
	for i, q := range questions {
		agg := as.ScorePeople(domain.Opinions{q: 1}, members)
		matches[i] = domain.QuestionMatch{
			ID:          q,
			Score:       agg.Score,
			HasScore:    agg.HasScore,
			Opinionated: opinions[q] != 0,
		}
	}

	slices.SortStableFunc(matches, func(a, b domain.QuestionMatch) int {
		if c := compareFirst(a.Opinionated, b.Opinionated); c != 0 {
			return c
		}
		if c := compareFirst(a.HasScore, b.HasScore); c != 0 {
			return c
		}
		return cmp.Compare(b.Score, a.Score)
	})
	return matches
}

// compareFirst orders true before false.
func compareFirst(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return -1
	}
	return 1
}
