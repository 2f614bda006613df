package application

import (
	"fmt"
	"log/slog"
	"maps"
	"math"
	"slices"

	"github.com/ahrav/go-compass/infrastructure/scoring"
	"github.com/ahrav/go-compass/internal/domain"
	"github.com/ahrav/go-compass/internal/logging"
	"github.com/ahrav/go-compass/internal/ports"
)

var _ ports.MatchEngine = (*Engine)(nil)

// RankOptions narrows a ranking call.
type RankOptions struct {
	// City restricts the candidates considered to one municipality.
	// An empty City considers every candidate.
	City string
}

// Engine is the immutable candidate index and scoring pipeline built once
// from a corpus. Every query method recomputes its result from the index and
// the opinions passed in, so an Engine is safe for concurrent use and calls
// with identical inputs return identical results.
type Engine struct {
	cfg EngineConfig

	records    []domain.Record
	candidates []domain.Candidate
	questions  []domain.QuestionID

	scale     domain.AnswerScale
	person    *scoring.PersonScorer
	aggregate *scoring.AggregateScorer
	ranker    *scoring.GroupRanker
	key       scoring.GroupKey

	parties []string
	cities  []string
	groups  []string

	logger *slog.Logger
}

// NewEngine indexes the corpus and derives the answer scale.
// Candidate ids are assigned densely from zero in corpus order. The corpus
// is copied; later changes to it do not affect the engine.
//
// NewEngine returns an error wrapping domain.ErrInvalidConfiguration for a
// bad configuration, domain.ErrEmptyCorpus when the corpus holds no answers,
// and scoring.ErrNonFiniteAnswer when an answer is NaN or infinite.
func NewEngine(corpus *domain.Corpus, cfg EngineConfig) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidConfiguration, err)
	}
	if corpus == nil {
		return nil, domain.ErrEmptyCorpus
	}

	records := make([]domain.Record, len(corpus.Records))
	candidates := make([]domain.Candidate, len(corpus.Records))
	for i, r := range corpus.Records {
		c := r.Candidate
		c.ID = i

		answers := make(domain.AnswerSet, len(r.Answers))
		for q, v := range r.Answers {
			if cfg.RoundAnswers {
				v = math.Round(v)
			}
			answers[q] = v
		}

		records[i] = domain.Record{Candidate: c, Answers: answers}
		candidates[i] = c
	}

	sets := make([]domain.AnswerSet, len(records))
	for i, r := range records {
		sets[i] = r.Answers
	}
	scale, err := scoring.BuildAnswerScale(sets)
	if err != nil {
		return nil, fmt.Errorf("failed to build answer scale: %w", err)
	}

	person, err := scoring.NewPersonScorer(scale, cfg.MissingAnswers)
	if err != nil {
		return nil, fmt.Errorf("failed to create person scorer: %w", err)
	}
	aggregate, err := scoring.NewAggregateScorer(person, cfg.BinPrecision)
	if err != nil {
		return nil, fmt.Errorf("failed to create aggregate scorer: %w", err)
	}
	ranker, err := scoring.NewGroupRanker(aggregate, scale, cfg.Positioning)
	if err != nil {
		return nil, fmt.Errorf("failed to create group ranker: %w", err)
	}

	e := &Engine{
		cfg:        cfg,
		records:    records,
		candidates: candidates,
		questions:  questionIDs(corpus, records),
		scale:      scale,
		person:     person,
		aggregate:  aggregate,
		ranker:     ranker,
		key:        cfg.groupKey(),
		parties:    collatedSet(candidates, scoring.ByParty, cfg.Locale),
		cities:     collatedSet(candidates, scoring.ByCity, cfg.Locale),
		logger:     logging.New("engine"),
	}
	e.groups = e.parties
	if cfg.GroupBy == GroupByCity {
		e.groups = e.cities
	}

	e.logger.Debug("engine built",
		"candidates", len(candidates),
		"questions", len(e.questions),
		"parties", len(e.parties),
		"cities", len(e.cities),
		"scale_min", scale.Min,
		"scale_max", scale.Max,
		"missing_answers", cfg.MissingAnswers)

	return e, nil
}

// questionIDs returns the catalog ids, or the answered ids when the corpus
// carries no catalog.
func questionIDs(corpus *domain.Corpus, records []domain.Record) []domain.QuestionID {
	if len(corpus.Questions) > 0 {
		return corpus.QuestionIDs()
	}
	seen := make(map[domain.QuestionID]struct{})
	for _, r := range records {
		for q := range r.Answers {
			seen[q] = struct{}{}
		}
	}
	return slices.Sorted(maps.Keys(seen))
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() EngineConfig { return e.cfg }

// Scale returns the answer scale derived from the corpus.
func (e *Engine) Scale() domain.AnswerScale { return e.scale }

// Candidates returns every candidate in id order.
func (e *Engine) Candidates() []domain.Candidate { return slices.Clone(e.candidates) }

// Candidate returns the candidate with the given id.
func (e *Engine) Candidate(id int) (domain.Candidate, error) {
	if id < 0 || id >= len(e.candidates) {
		return domain.Candidate{}, &domain.UnknownCandidateError{ID: id, Size: len(e.candidates)}
	}
	return e.candidates[id], nil
}

// Parties returns the distinct party names in locale order.
func (e *Engine) Parties() []string { return slices.Clone(e.parties) }

// Cities returns the distinct city names in locale order.
func (e *Engine) Cities() []string { return slices.Clone(e.cities) }

// Groups returns the names of the configured grouping in locale order.
func (e *Engine) Groups() []string { return slices.Clone(e.groups) }

// QuestionIDs returns the question ids known to the engine in ascending
// order.
func (e *Engine) QuestionIDs() []domain.QuestionID { return slices.Clone(e.questions) }

// CandidatesIn returns the candidates running in city, in id order. An empty
// city returns every candidate.
func (e *Engine) CandidatesIn(city string) []domain.Candidate {
	if city == "" {
		return e.Candidates()
	}
	var out []domain.Candidate
	for _, c := range e.candidates {
		if c.City == city {
			out = append(out, c)
		}
	}
	return out
}

// QuestionsIn returns the known question ids answered by at least one
// candidate in city. An empty city considers every candidate.
func (e *Engine) QuestionsIn(city string) []domain.QuestionID {
	scope := e.scope(city)
	var out []domain.QuestionID
	for _, q := range e.questions {
		for _, r := range scope {
			if _, ok := r.Answers.Answer(q); ok {
				out = append(out, q)
				break
			}
		}
	}
	return out
}

// PersonScores returns the per-question breakdown of one candidate against
// the opinion set, one entry per opinion in ascending question order.
func (e *Engine) PersonScores(id int, opinions domain.Opinions) ([]domain.MatchDetail, error) {
	if err := opinions.Validate(); err != nil {
		return nil, err
	}
	if _, err := e.Candidate(id); err != nil {
		return nil, err
	}
	return e.person.Score(e.records[id].Answers, opinions), nil
}

// ScorePeople aggregates the given candidates. Candidates are resolved by id
// so only identity matters; an id outside the index fails the whole call,
// as does a non-finite opinion weight.
func (e *Engine) ScorePeople(opinions domain.Opinions, candidates []domain.Candidate) (domain.AggregateResult, error) {
	if err := opinions.Validate(); err != nil {
		return domain.AggregateResult{}, err
	}
	records := make([]domain.Record, 0, len(candidates))
	for _, c := range candidates {
		if _, err := e.Candidate(c.ID); err != nil {
			return domain.AggregateResult{}, err
		}
		records = append(records, e.records[c.ID])
	}
	return e.aggregate.ScorePeople(opinions, records), nil
}

// ScoreAll aggregates every candidate in the index. Candidates whose score
// a non-finite weight would poison are left unscored.
func (e *Engine) ScoreAll(opinions domain.Opinions) domain.AggregateResult {
	return e.aggregate.ScorePeople(opinions, e.records)
}

// SortedGroups scores each named group of the configured grouping and ranks
// them: scored groups first, then by descending score, ties in the order of
// names. Opinions are not validated; a non-finite weight leaves every
// affected candidate unscored.
func (e *Engine) SortedGroups(names []string, opinions domain.Opinions) []domain.GroupResult {
	return e.SortedGroupsWith(names, opinions, RankOptions{})
}

// SortedGroupsWith is SortedGroups restricted by opts.
func (e *Engine) SortedGroupsWith(names []string, opinions domain.Opinions, opts RankOptions) []domain.GroupResult {
	return e.ranker.SortedGroups(names, e.scope(opts.City), e.key, opinions)
}

// Rank ranks every group that has at least one candidate in scope.
func (e *Engine) Rank(opinions domain.Opinions, opts RankOptions) []domain.GroupResult {
	scope := e.scope(opts.City)
	present := make(map[string]struct{})
	for _, r := range scope {
		present[e.key(r.Candidate)] = struct{}{}
	}

	names := make([]string, 0, len(present))
	for _, g := range e.groups {
		if _, ok := present[g]; ok {
			names = append(names, g)
		}
	}
	return e.ranker.SortedGroups(names, scope, e.key, opinions)
}

// RankCandidates ranks the members of group by their individual score.
// An empty group ranks every candidate in scope.
func (e *Engine) RankCandidates(group string, opinions domain.Opinions, opts RankOptions) ([]domain.CandidateMatch, error) {
	if err := opinions.Validate(); err != nil {
		return nil, err
	}
	if group == "" {
		return e.person.RankCandidates(e.scope(opts.City), opinions), nil
	}

	members, err := e.members(group, opts.City)
	if err != nil {
		return nil, err
	}
	return e.person.RankCandidates(members, opinions), nil
}

// RankQuestions shows where the members of group stand on every known
// question. Each question is scored for the group alone as if the voter
// agreed with it, so a high score means the group agrees. Questions the
// voter holds a non-zero opinion on are listed first; within each part
// scored questions precede unscored ones, then descending score, ties in
// question order.
func (e *Engine) RankQuestions(group string, opinions domain.Opinions, opts RankOptions) ([]domain.QuestionMatch, error) {
	if err := opinions.Validate(); err != nil {
		return nil, err
	}
	members, err := e.members(group, opts.City)
	if err != nil {
		return nil, err
	}
	return e.aggregate.RankQuestions(e.questions, members, opinions), nil
}

// AnswerDistribution returns how each group answered q, ordered by
// descending mean answer. Groups with no answers to q are omitted.
func (e *Engine) AnswerDistribution(q domain.QuestionID, opts RankOptions) []domain.AnswerDistribution {
	return scoring.AnswerDistributions(q, e.groups, e.scope(opts.City), e.key)
}

// ResolveGroup maps a user supplied group name onto a known group of the
// configured grouping. Matching is exact first, then case-insensitive.
// An unmatched name yields a *domain.UnknownGroupError that may suggest the
// closest known name.
func (e *Engine) ResolveGroup(name string) (string, error) {
	return resolveName(name, e.groups)
}

// members resolves group and returns its records in city.
func (e *Engine) members(group, city string) ([]domain.Record, error) {
	name, err := e.ResolveGroup(group)
	if err != nil {
		return nil, err
	}
	scope := e.scope(city)
	out := make([]domain.Record, 0, len(scope))
	for _, r := range scope {
		if e.key(r.Candidate) == name {
			out = append(out, r)
		}
	}
	return out, nil
}

// scope returns the records in city, or every record when city is empty.
// The returned slice must not be modified.
func (e *Engine) scope(city string) []domain.Record {
	if city == "" {
		return e.records
	}
	out := make([]domain.Record, 0, len(e.records))
	for _, r := range e.records {
		if r.Candidate.City == city {
			out = append(out, r)
		}
	}
	return out
}
