package core

import (
	"sort"

	"github.com/renderlab/pagetrend/schema"
)

// BestScores reduces repeated samples to the best observed score per case.
// The reduction is a pure max fold, independent of sample order, so the
// result is deterministic for a fixed input. Best-ever rather than latest
// is deliberate: re-runs are noisy, and the showcase answers "has this
// case ever passed", not "is it passing right now".
func BestScores(series schema.MetricSeries) map[string]float64 {
	best := make(map[string]float64, len(series))
	for name, pts := range series {
		for i, pt := range pts {
			if i == 0 || pt.Value > best[name] {
				best[name] = pt.Value
			}
		}
	}
	return best
}

// SelectPassing returns the cases whose best score meets the threshold,
// boundary inclusive, sorted ascending by case name.
func SelectPassing(series schema.MetricSeries, threshold float64) []schema.CaseScore {
	best := BestScores(series)

	passing := make([]schema.CaseScore, 0, len(best))
	for name, score := range best {
		if score >= threshold {
			passing = append(passing, schema.CaseScore{Case: name, Score: score})
		}
	}
	sort.Slice(passing, func(i, j int) bool {
		return passing[i].Case < passing[j].Case
	})
	return passing
}
