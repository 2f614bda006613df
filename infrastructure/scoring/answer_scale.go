package scoring

import (
	"fmt"
	"math"

	"github.com/ahrav/go-compass/internal/domain"
)

// BuildAnswerScale scans every answer of every answer set and derives the
// global normalization constants from the observed minimum and maximum.
// Missing entries are ignored. It returns domain.ErrEmptyCorpus when the
// corpus holds no answers at all and ErrNonFiniteAnswer when an answer is
// NaN or infinite.
func BuildAnswerScale(corpus []domain.AnswerSet) (domain.AnswerScale, error) {
	lo, hi := math.Inf(1), math.Inf(-1)
	var n int
	for i, answers := range corpus {
		for q, v := range answers {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return domain.AnswerScale{}, fmt.Errorf("%w: record %d, question %q", ErrNonFiniteAnswer, i, q)
			}
			lo = min(lo, v)
			hi = max(hi, v)
			n++
		}
	}
	if n == 0 {
		return domain.AnswerScale{}, domain.ErrEmptyCorpus
	}
	return domain.NewAnswerScale(lo, hi), nil
}
