package scoring

import (
	"cmp"
	"maps"
	"slices"

	"github.com/ahrav/go-compass/internal/domain"
)

// AnswerDistributions returns, for every named group that has at least one
// answer to q, the histogram of raw answers and their mean. Groups are
// ordered by descending mean; ties keep the order of names.
func AnswerDistributions(
	q domain.QuestionID,
	names []string,
	records []domain.Record,
	key GroupKey,
) []domain.AnswerDistribution {
	members := partition(records, key)

	out := make([]domain.AnswerDistribution, 0, len(names))
	for _, name := range names {
		counts := make(map[float64]int)
		var sum float64
		var total int
		for _, r := range members[name] {
			raw, ok := r.Answers.Answer(q)
			if !ok {
				continue
			}
			counts[raw]++
			sum += raw
			total++
		}
		if total == 0 {
			continue
		}

		dist := domain.AnswerDistribution{
			Name:   name,
			Mean:   sum / float64(total),
			Counts: make([]domain.AnswerCount, 0, len(counts)),
			Total:  total,
		}
		for _, answer := range slices.Sorted(maps.Keys(counts)) {
			dist.Counts = append(dist.Counts, domain.AnswerCount{Answer: answer, Count: counts[answer]})
		}
		out = append(out, dist)
	}

	slices.SortStableFunc(out, func(a, b domain.AnswerDistribution) int {
		return cmp.Compare(b.Mean, a.Mean)
	})
	return out
}
