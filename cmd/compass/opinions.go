package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ahrav/go-compass/internal/domain"
)

// parseOpinions turns "question=weight" pairs into an opinion set. Repeating
// a question with the weight it already has clears it, the same way the
// voter toggles an answer off.
func parseOpinions(pairs []string) (domain.Opinions, error) {
	opinions := domain.Opinions{}
	for _, pair := range pairs {
		q, w, ok := strings.Cut(pair, "=")
		q = strings.TrimSpace(q)
		if !ok || q == "" {
			return nil, fmt.Errorf("opinion %q: want question=weight", pair)
		}
		weight, err := strconv.ParseFloat(strings.TrimSpace(w), 64)
		if err != nil {
			return nil, fmt.Errorf("opinion %q: %w", pair, err)
		}
		opinions = opinions.Toggle(domain.QuestionID(q), weight)
	}
	if err := opinions.Validate(); err != nil {
		return nil, err
	}
	return opinions, nil
}
