// Package scoring implements the match scoring engine: answer scale
// derivation, per-person match computation, weighted aggregation into score
// distributions, and ranking of candidate groups.
//
// Every function in this package is pure. Values built here hold no mutable
// state and are safe for concurrent use.
package scoring

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// MissingAnswerPolicy controls how a question the candidate did not answer
// contributes to their score.
type MissingAnswerPolicy string

// Supported missing answer policies.
const (
	// MissingExclude leaves unanswered questions out of every sum. A
	// candidate who answered none of the opinionated questions is not
	// scorable.
	MissingExclude MissingAnswerPolicy = "exclude"

	// MissingNeutral substitutes the neutral value for unanswered
	// questions, which contributes zero to the sum. Every candidate is
	// scorable against a non-empty opinion set.
	MissingNeutral MissingAnswerPolicy = "neutral"
)

// BinPositioning selects how display positions are assigned to bins
// returned from group ranking.
type BinPositioning string

// Supported bin positioning modes.
const (
	// PositionFixed places a bin by its score on the fixed
	// [MinScore, MaxScore] scale so positions are comparable across groups
	// and across calls.
	PositionFixed BinPositioning = "fixed"

	// PositionUnion spaces bins evenly over the union of distinct scores
	// observed across every ranked group.
	PositionUnion BinPositioning = "union"
)

// DefaultBinPrecision is the number of decimal places bin keys are rounded to.
const DefaultBinPrecision = 6

// Common errors returned by the scoring package.
var (
	// ErrNonFiniteAnswer is returned when a raw answer is NaN or infinite.
	ErrNonFiniteAnswer = errors.New("answer is not a finite number")

	// ErrNilScorer is returned when a component is wired without the scorer
	// it depends on.
	ErrNilScorer = errors.New("scorer cannot be nil")
)

// Options configures the scoring components.
// All fields are validated when a component is created.
type Options struct {
	// MissingAnswers selects the treatment of unanswered questions.
	MissingAnswers MissingAnswerPolicy `yaml:"missing_answers" json:"missing_answers" validate:"required,oneof=exclude neutral"`

	// BinPrecision is the number of decimal places person scores are
	// rounded to before being used as bin keys.
	BinPrecision int `yaml:"bin_precision" json:"bin_precision" validate:"min=0,max=12"`

	// Positioning selects how bin display positions are computed.
	Positioning BinPositioning `yaml:"bin_positioning" json:"bin_positioning" validate:"required,oneof=fixed union"`
}

// DefaultOptions returns Options with the exclusion policy, six decimal
// bin keys, and fixed-scale positioning.
func DefaultOptions() Options {
	return Options{
		MissingAnswers: MissingExclude,
		BinPrecision:   DefaultBinPrecision,
		Positioning:    PositionFixed,
	}
}

// Validate checks the options against their constraints.
func (o Options) Validate() error {
	if err := validate.Struct(o); err != nil {
		return fmt.Errorf("scoring options validation failed: %w", err)
	}
	return nil
}

// Package-level validator instance for option validation.
var validate = validator.New()
