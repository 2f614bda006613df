package scoring

import (
	"math"
	"slices"

	"github.com/ahrav/go-compass/internal/domain"
)

// QuantizeScore rounds score to the given number of decimal places so that
// scores differing only by floating point noise share one bin key. Negative
// zero is normalized to zero. A negative precision returns score unchanged.
func QuantizeScore(score float64, precision int) float64 {
	if precision < 0 {
		return score
	}
	p := math.Pow10(precision)
	q := math.Round(score*p) / p
	if math.IsNaN(q) || math.IsInf(q, 0) {
		return score
	}
	if q == 0 {
		return 0
	}
	return q
}

// binAccumulator merges weights by quantized score.
type binAccumulator struct {
	precision int
	weights   map[float64]float64
}

func newBinAccumulator(precision int) *binAccumulator {
	return &binAccumulator{
		precision: precision,
		weights:   make(map[float64]float64),
	}
}

func (b *binAccumulator) add(score, weight float64) {
	b.weights[QuantizeScore(score, b.precision)] += weight
}

// bins returns the accumulated bins in ascending score order.
func (b *binAccumulator) bins() []domain.Bin {
	out := make([]domain.Bin, 0, len(b.weights))
	for score, weight := range b.weights {
		out = append(out, domain.Bin{Score: score, Weight: weight})
	}
	slices.SortFunc(out, func(x, y domain.Bin) int {
		switch {
		case x.Score < y.Score:
			return -1
		case x.Score > y.Score:
			return 1
		}
		return 0
	})
	return out
}
