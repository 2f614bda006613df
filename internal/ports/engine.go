// Package ports defines the core interfaces that form the contract between
// the domain/application layers, the infrastructure layer, and the
// rendering collaborator that drives the engine.
// These interfaces enable dependency inversion and make the system testable.
package ports

import (
	"github.com/ahrav/go-compass/internal/domain"
)

// MatchEngine is the contract the rendering layer calls into. An engine is
// built once from a corpus and then queried repeatedly with a changing
// opinion set; every method is a pure recomputation over the immutable
// corpus and is safe for concurrent use.
//
// Methods that return an error reject opinion sets holding a NaN or
// infinite weight with domain.ErrInvalidOpinion. SortedGroups cannot fail;
// callers should check Opinions.Validate first, otherwise every candidate
// a non-finite weight touches is left unscored.
type MatchEngine interface {
	// Scale returns the answer scale derived from the corpus.
	Scale() domain.AnswerScale

	// Candidates returns every candidate in id order.
	Candidates() []domain.Candidate

	// Candidate returns the candidate with the given id or an
	// *domain.UnknownCandidateError.
	Candidate(id int) (domain.Candidate, error)

	// PersonScores returns the per-question breakdown for one candidate.
	//
	// Example:
	//
	//	details, err := engine.PersonScores(3, domain.Opinions{"q1": 1})
	//	if err != nil {
	//	    return fmt.Errorf("breakdown failed: %w", err)
	//	}
	PersonScores(id int, opinions domain.Opinions) ([]domain.MatchDetail, error)

	// ScorePeople aggregates the given candidates against the opinion set.
	// Candidates are resolved through the index by id.
	ScorePeople(opinions domain.Opinions, candidates []domain.Candidate) (domain.AggregateResult, error)

	// SortedGroups scores each named group and returns the results ranked
	// by descending aggregate score, unscored groups last, ties stable.
	SortedGroups(names []string, opinions domain.Opinions) []domain.GroupResult
}
