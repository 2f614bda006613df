package domain

import (
	"maps"
	"slices"
)

// Corpus is the input an engine is built from: an optional question catalog
// and the answer records of every candidate in input order.
type Corpus struct {
	// Questions maps question ids to display text. The engine only uses it
	// to enumerate ids.
	Questions map[QuestionID]string `json:"questions,omitempty" yaml:"questions,omitempty"`

	// Records holds one entry per candidate.
	Records []Record `json:"records" yaml:"records"`
}

// AnswerSets returns the answer set of every record in input order.
func (c *Corpus) AnswerSets() []AnswerSet {
	sets := make([]AnswerSet, len(c.Records))
	for i, r := range c.Records {
		sets[i] = r.Answers
	}
	return sets
}

// QuestionIDs returns the catalog ids in ascending order.
func (c *Corpus) QuestionIDs() []QuestionID {
	return slices.Sorted(maps.Keys(c.Questions))
}
