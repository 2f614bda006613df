package testutils

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ahrav/go-compass/internal/domain"
)

// CorpusStatistics summarizes a corpus.
type CorpusStatistics struct {
	Candidates          int            `json:"candidates"`
	Questions           int            `json:"questions"`
	Answers             int            `json:"answers"`
	PartyCount          map[string]int `json:"party_count"`
	CityCount           map[string]int `json:"city_count"`
	AvgAnswersPerPerson float64        `json:"avg_answers_per_person"`
}

// ComputeCorpusStatistics counts candidates, answers, and group sizes.
func ComputeCorpusStatistics(corpus *domain.Corpus) *CorpusStatistics {
	stats := &CorpusStatistics{
		Candidates: len(corpus.Records),
		Questions:  len(corpus.Questions),
		PartyCount: make(map[string]int),
		CityCount:  make(map[string]int),
	}
	for _, r := range corpus.Records {
		stats.Answers += len(r.Answers)
		stats.PartyCount[r.Candidate.Party]++
		stats.CityCount[r.Candidate.City]++
	}
	if stats.Candidates > 0 {
		stats.AvgAnswersPerPerson = float64(stats.Answers) / float64(stats.Candidates)
	}
	return stats
}

// SaveCorpus writes the corpus as indented JSON, creating parent
// directories as needed.
func SaveCorpus(corpus *domain.Corpus, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	data, err := json.MarshalIndent(corpus, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal corpus: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write corpus file: %w", err)
	}

	return nil
}
