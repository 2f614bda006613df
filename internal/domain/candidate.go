// Package domain contains pure, dependency-free domain models and types
// for the match scoring engine.
package domain

import (
	"fmt"
	"maps"
	"math"
	"slices"
)

// QuestionID identifies a question in the question catalog.
// Keys are opaque to the engine and are only compared for equality.
type QuestionID string

// Candidate is the identity record of a person with recorded answers.
// ID is assigned once when the engine is built, as a dense zero-based
// sequence over the corpus input order.
type Candidate struct {
	// ID is the engine-assigned index of this candidate.
	ID int `json:"id" yaml:"-"`

	// Name is the display name of the candidate.
	Name string `json:"name" yaml:"name"`

	// Party is the political party the candidate represents.
	Party string `json:"party" yaml:"party"`

	// City is the municipality the candidate is running in.
	City string `json:"city" yaml:"city"`
}

// AnswerSet maps question ids to raw numeric answers.
// A question absent from the set means the candidate did not answer it,
// which is distinct from an answer equal to the neutral value.
type AnswerSet map[QuestionID]float64

// Answer returns the raw answer for q and whether the candidate answered it.
func (a AnswerSet) Answer(q QuestionID) (float64, bool) {
	v, ok := a[q]
	return v, ok
}

// Record is one corpus entry: a candidate and the answers they recorded.
type Record struct {
	Candidate Candidate `json:"candidate" yaml:"candidate"`
	Answers   AnswerSet `json:"answers" yaml:"answers"`
}

// Opinions maps question ids to a signed weight supplied by the voter.
// Weights are commonly -1, 0 or +1 but any finite real value is accepted.
// A zero weight means the voter has not expressed an opinion on the question.
type Opinions map[QuestionID]float64

// Len returns the width of the opinion set, including zero-weight entries.
func (o Opinions) Len() int { return len(o) }

// Expressed returns the number of entries with a non-zero weight.
func (o Opinions) Expressed() int {
	n := 0
	for _, w := range o {
		if w != 0 {
			n++
		}
	}
	return n
}

// Questions returns the question ids of the set in ascending order.
func (o Opinions) Questions() []QuestionID {
	return slices.Sorted(maps.Keys(o))
}

// Toggle returns a copy of o where selecting the weight already stored for q
// clears the opinion and any other weight replaces it. The receiver is not
// modified.
func (o Opinions) Toggle(q QuestionID, weight float64) Opinions {
	next := maps.Clone(o)
	if next == nil {
		next = make(Opinions, 1)
	}
	if cur, ok := next[q]; ok && cur == weight {
		delete(next, q)
		return next
	}
	next[q] = weight
	return next
}

// Validate reports an error wrapping ErrInvalidOpinion if any weight is
// NaN or infinite.
func (o Opinions) Validate() error {
	for _, q := range o.Questions() {
		w := o[q]
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return fmt.Errorf("%w: question %q has weight %v", ErrInvalidOpinion, q, w)
		}
	}
	return nil
}
