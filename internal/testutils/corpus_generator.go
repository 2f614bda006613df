// Package testutils provides utilities for testing, including synthetic
// corpus generators. These components are intended for internal use within
// the project's test suites and are not part of the public API.
package testutils

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/ahrav/go-compass/internal/domain"
)

// CorpusSpec controls the shape of a generated corpus.
type CorpusSpec struct {
	// Candidates is the number of records to generate.
	Candidates int

	// Questions is the size of the question catalog.
	Questions int

	// AnswerRate is the probability in [0, 1] that a candidate answered a
	// given question.
	AnswerRate float64
}

// DefaultCorpusSpec returns a spec for a small municipal election.
func DefaultCorpusSpec() CorpusSpec {
	return CorpusSpec{Candidates: 200, Questions: 20, AnswerRate: 0.8}
}

// GenerateCorpus creates a synthetic corpus. The seed parameter controls
// randomization; use a fixed value for reproducible tests.
// Each party leans consistently towards one end of every question so that
// aggregate scores differ meaningfully between parties.
func GenerateCorpus(spec CorpusSpec, seed int64) *domain.Corpus {
	rng := rand.New(rand.NewSource(seed))

	corpus := &domain.Corpus{
		Questions: make(map[domain.QuestionID]string, spec.Questions),
		Records:   make([]domain.Record, 0, spec.Candidates),
	}
	ids := make([]domain.QuestionID, spec.Questions)
	for i := range spec.Questions {
		ids[i] = QuestionID(i)
		corpus.Questions[ids[i]] = QuestionTexts[i%len(QuestionTexts)]
	}

	leanings := make(map[string][]float64, len(PartyNames))
	for _, party := range PartyNames {
		lean := make([]float64, spec.Questions)
		for i := range lean {
			lean[i] = rng.Float64()*2 - 1
		}
		leanings[party] = lean
	}

	for i := range spec.Candidates {
		party := PartyNames[rng.Intn(len(PartyNames))]
		rec := domain.Record{
			Candidate: domain.Candidate{
				Name:  fmt.Sprintf("Candidate %03d", i+1),
				Party: party,
				City:  CityNames[rng.Intn(len(CityNames))],
			},
			Answers: make(domain.AnswerSet, spec.Questions),
		}
		for qi, q := range ids {
			if rng.Float64() >= spec.AnswerRate {
				continue
			}
			rec.Answers[q] = generateAnswer(rng, leanings[party][qi])
		}
		corpus.Records = append(corpus.Records, rec)
	}

	return corpus
}

// GenerateCorpusDefault creates a default-sized corpus with a time-based seed.
func GenerateCorpusDefault() *domain.Corpus {
	return GenerateCorpus(DefaultCorpusSpec(), time.Now().UnixNano())
}

// QuestionID returns the id used for the i-th generated question.
func QuestionID(i int) domain.QuestionID {
	return domain.QuestionID(fmt.Sprintf("q%02d", i+1))
}

// generateAnswer draws an answer around the party leaning in [-1, 1].
func generateAnswer(rng *rand.Rand, lean float64) float64 {
	centre := float64(len(AnswerOptions)-1) * (lean + 1) / 2
	idx := int(centre + rng.NormFloat64() + 0.5)
	idx = min(max(idx, 0), len(AnswerOptions)-1)
	return AnswerOptions[idx]
}

// RandomOpinions draws an opinion set of n questions with weights in {-1, 0, 1}.
func RandomOpinions(corpus *domain.Corpus, n int, seed int64) domain.Opinions {
	rng := rand.New(rand.NewSource(seed))
	ids := corpus.QuestionIDs()
	rng.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })

	opinions := make(domain.Opinions, n)
	for _, q := range ids[:min(n, len(ids))] {
		opinions[q] = float64(rng.Intn(3) - 1)
	}
	return opinions
}
