package scoring

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/ahrav/go-compass/internal/domain"
)

// GroupKey extracts the grouping key of a candidate.
type GroupKey func(domain.Candidate) string

// ByParty groups candidates by party.
func ByParty(c domain.Candidate) string { return c.Party }

// ByCity groups candidates by city.
func ByCity(c domain.Candidate) string { return c.City }

// GroupRanker partitions candidates into named groups, scores each group and
// orders the groups by aggregate score.
type GroupRanker struct {
	scorer      domain.Scorer
	scale       domain.AnswerScale
	positioning BinPositioning
}

// NewGroupRanker creates a GroupRanker. The scale is used for fixed bin
// positioning.
func NewGroupRanker(scorer domain.Scorer, scale domain.AnswerScale, positioning BinPositioning) (*GroupRanker, error) {
	if scorer == nil {
		return nil, fmt.Errorf("group ranker: %w", ErrNilScorer)
	}
	switch positioning {
	case PositionFixed, PositionUnion:
	default:
		return nil, fmt.Errorf("unsupported bin positioning %q", positioning)
	}
	return &GroupRanker{scorer: scorer, scale: scale, positioning: positioning}, nil
}

// SortedGroups scores one group per name and returns the results ordered
// so that scored groups precede unscored ones and, within each class, by
// descending score. Ties keep the order of names. A name with no members
// yields an unscored result.
func (gr *GroupRanker) SortedGroups(
	names []string,
	records []domain.Record,
	key GroupKey,
	opinions domain.Opinions,
) []domain.GroupResult {
	members := partition(records, key)

	results := make([]domain.GroupResult, len(names))
	for i, name := range names {
		agg := gr.scorer.ScorePeople(opinions, members[name])
		results[i] = domain.GroupResult{
			Name:     name,
			Score:    agg.Score,
			HasScore: agg.HasScore,
			Bins:     dropEmptyBins(agg.Bins),
			Scorable: agg.Scorable,
		}
	}

	slices.SortStableFunc(results, compareGroups)
	gr.position(results)
	return results
}

// compareGroups orders scored groups before unscored ones, then by
// descending score.
func compareGroups(a, b domain.GroupResult) int {
	if c := compareFirst(a.HasScore, b.HasScore); c != 0 {
		return c
	}
	return cmp.Compare(b.Score, a.Score)
}

func partition(records []domain.Record, key GroupKey) map[string][]domain.Record {
	members := make(map[string][]domain.Record)
	for _, r := range records {
		k := key(r.Candidate)
		members[k] = append(members[k], r)
	}
	return members
}

func dropEmptyBins(bins []domain.Bin) []domain.Bin {
	return slices.DeleteFunc(slices.Clone(bins), func(b domain.Bin) bool { return b.Weight <= 0 })
}

// position assigns a display position to every bin of every result.
func (gr *GroupRanker) position(results []domain.GroupResult) {
	switch gr.positioning {
	case PositionUnion:
		var all []float64
		for _, r := range results {
			for _, b := range r.Bins {
				all = append(all, b.Score)
			}
		}
		slices.Sort(all)
		all = slices.Compact(all)
		n := float64(len(all))
		for _, r := range results {
			for i := range r.Bins {
				idx, _ := slices.BinarySearch(all, r.Bins[i].Score)
				r.Bins[i].Position = (float64(idx) + 0.5) / n
			}
		}
	default:
		for _, r := range results {
			for i := range r.Bins {
				r.Bins[i].Position = FixedPosition(r.Bins[i].Score, gr.scale)
			}
		}
	}
}

// FixedPosition maps a score onto [0, 1] using the scale's score range.
// Scores outside the range are clamped; a zero-width scale maps everything
// to the centre.
func FixedPosition(score float64, scale domain.AnswerScale) float64 {
	width := scale.Width()
	if width <= 0 {
		return 0.5
	}
	return min(max((score-scale.MinScore)/width, 0), 1)
}
