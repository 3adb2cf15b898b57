package stats

import (
	"sort"

	"github.com/verte-zerg/dictype/internal/model"
)

// minAttempts filters out words seen too rarely to rank meaningfully.
const minAttempts = 2

// MissRate is the share of a word's reference occurrences the user got
// wrong, weighting near misses at half.
func MissRate(agg model.WordAggregate) float64 {
	total := agg.Correct + agg.Mistake + agg.Missing
	if total == 0 {
		return 0
	}
	return (float64(agg.Missing) + 0.5*float64(agg.Mistake)) / float64(total)
}

// TopTroubleWords ranks words by miss rate, worst first.
func TopTroubleWords(aggs []model.WordAggregate, top int) []model.WordAggregate {
	candidates := make([]model.WordAggregate, 0, len(aggs))
	for _, agg := range aggs {
		if agg.Correct+agg.Mistake+agg.Missing < minAttempts {
			continue
		}
		if MissRate(agg) == 0 {
			continue
		}
		candidates = append(candidates, agg)
	}
	sort.Slice(candidates, func(i, j int) bool {
		ri := MissRate(candidates[i])
		rj := MissRate(candidates[j])
		if ri == rj {
			return candidates[i].Word < candidates[j].Word
		}
		return ri > rj
	})
	if top > 0 && top < len(candidates) {
		candidates = candidates[:top]
	}
	return candidates
}
