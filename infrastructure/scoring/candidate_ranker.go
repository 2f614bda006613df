package scoring

import (
	"cmp"
	"slices"

	"github.com/ahrav/go-compass/internal/domain"
)

// RankCandidates scores every record individually and returns the matches
// ordered with scorable candidates first, by descending score. Ties keep
// the input order.
func (ps *PersonScorer) RankCandidates(records []domain.Record, opinions domain.Opinions) []domain.CandidateMatch {
	matches := make([]domain.CandidateMatch, len(records))
	for i, r := range records {
		details := ps.Score(r.Answers, opinions)
		score, ok := ps.aggregate(details)
		matches[i] = domain.CandidateMatch{
			Candidate: r.Candidate,
			Score:     score,
			HasScore:  ok,
			Details:   details,
		}
	}

	slices.SortStableFunc(matches, func(a, b domain.CandidateMatch) int {
		if c := compareFirst(a.HasScore, b.HasScore); c != 0 {
			return c
		}
		return cmp.Compare(b.Score, a.Score)
	})
	return matches
}
