package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/ahrav/go-compass/internal/testutils"
)

func main() {
	var (
		candidates = flag.Int("candidates", 200, "Number of candidates to generate")
		questions  = flag.Int("questions", 20, "Number of questions in the catalog")
		answerRate = flag.Float64("answer-rate", 0.8, "Probability that a candidate answered a question")
		seed       = flag.Int64("seed", 0, "Random seed; 0 uses the current time")
		outputPath = flag.String("output", "testdata/corpus/sample_corpus.json", "Output file path")
	)
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	corpus := testutils.GenerateCorpus(testutils.CorpusSpec{
		Candidates: *candidates,
		Questions:  *questions,
		AnswerRate: *answerRate,
	}, *seed)

	if err := testutils.SaveCorpus(corpus, *outputPath); err != nil {
		log.Fatalf("Failed to save corpus: %v", err)
	}

	stats := testutils.ComputeCorpusStatistics(corpus)

	fmt.Printf("Generated synthetic corpus:\n")
	fmt.Printf("- Path: %s\n", *outputPath)
	fmt.Printf("- Seed: %d\n", *seed)
	fmt.Printf("- Candidates: %d\n", stats.Candidates)
	fmt.Printf("- Questions: %d\n", stats.Questions)
	fmt.Printf("- Parties: %v\n", stats.PartyCount)
	fmt.Printf("- Cities: %v\n", stats.CityCount)
	fmt.Printf("- Average answers per candidate: %.2f\n", stats.AvgAnswersPerPerson)
}
