package domain

// MatchDetail describes how one candidate's answer to one opinionated
// question compares with the voter's opinion.
type MatchDetail struct {
	// ID is the question this detail refers to.
	ID QuestionID `json:"id"`

	// DidAnswer reports whether the candidate answered the question.
	DidAnswer bool `json:"did_answer"`

	// AnswerScore is the raw answer minus the neutral value.
	// It is zero and meaningless when DidAnswer is false.
	AnswerScore float64 `json:"answer_score"`

	// MatchScore is AnswerScore multiplied by the opinion weight.
	// Unanswered entries are excluded from every downstream sum.
	MatchScore float64 `json:"match_score"`
}

// Bin is one bucket of a score distribution.
type Bin struct {
	// Score is the quantized person score this bin collects.
	Score float64 `json:"score"`

	// Weight is the accumulated weight of candidates with this score.
	Weight float64 `json:"weight"`

	// Position is the normalized display x-position in [0, 1]. It is only
	// populated on bins returned by group ranking.
	Position float64 `json:"position"`
}

// AggregateResult is the weighted score of a group of candidates along with
// the distribution of their individual scores.
type AggregateResult struct {
	// Score is the weighted mean person score of the scorable candidates.
	Score float64 `json:"score"`

	// HasScore is false when nobody in the group could be scored, either
	// because the opinion set is empty or because no candidate answered an
	// opinionated question.
	HasScore bool `json:"has_score"`

	// Bins holds the score distribution ordered by ascending score.
	Bins []Bin `json:"bins"`

	// Scorable is the number of candidates that contributed to Score.
	Scorable int `json:"scorable"`
}

// Weight returns the accumulated weight for the bin with the given
// quantized score, or zero when no such bin exists.
func (r AggregateResult) Weight(score float64) float64 {
	for _, b := range r.Bins {
		if b.Score == score {
			return b.Weight
		}
	}
	return 0
}

// GroupResult is the aggregate result of one named group of candidates.
type GroupResult struct {
	Name     string  `json:"name"`
	Score    float64 `json:"score"`
	HasScore bool    `json:"has_score"`
	Bins     []Bin   `json:"bins"`
	Scorable int     `json:"scorable"`
}

// CandidateMatch is a single candidate's compatibility with an opinion set.
type CandidateMatch struct {
	Candidate Candidate     `json:"candidate"`
	Score     float64       `json:"score"`
	HasScore  bool          `json:"has_score"`
	Details   []MatchDetail `json:"details"`
}

// AnswerCount is the number of candidates that gave one raw answer.
type AnswerCount struct {
	Answer float64 `json:"answer"`
	Count  int     `json:"count"`
}

// AnswerDistribution is the histogram of raw answers a group gave to a
// single question.
type AnswerDistribution struct {
	Name   string        `json:"name"`
	Mean   float64       `json:"mean"`
	Counts []AnswerCount `json:"counts"`
	Total  int           `json:"total"`
}

// QuestionMatch is how a group of candidates leans on a single question,
// scored as if the voter agreed with it.
type QuestionMatch struct {
	ID       QuestionID `json:"id"`
	Score    float64    `json:"score"`
	HasScore bool       `json:"has_score"`

	// Opinionated reports whether the voter holds a non-zero weight on
	// the question.
	Opinionated bool `json:"opinionated"`
}
