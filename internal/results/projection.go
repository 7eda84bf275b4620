package results

import (
	"sort"

	"github.com/debaite/podium/internal/api"
)

// Pair is one category/value point for a textual chart.
type Pair struct {
	Name  string
	Value float64
}

// sortPairs orders pairs by descending value, name ascending on ties,
// so charts render deterministically.
func sortPairs(pairs []Pair) {
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Value != pairs[j].Value {
			return pairs[i].Value > pairs[j].Value
		}
		return pairs[i].Name < pairs[j].Name
	})
}

// AverageScores projects the aggregated per-participant scores of a
// detail into ordered chart pairs. Nil when no global outcome exists.
func AverageScores(detail *api.ResultDetail) []Pair {
	if detail == nil || detail.Evaluation.GlobalOutcome == nil {
		return nil
	}
	out := make([]Pair, 0, len(detail.Evaluation.GlobalOutcome.AverageScores))
	for name, score := range detail.Evaluation.GlobalOutcome.AverageScores {
		out = append(out, Pair{Name: name, Value: score})
	}
	sortPairs(out)
	return out
}

// VoteDistribution projects the vote counts of a detail into ordered
// chart pairs. Nil when no global outcome exists.
func VoteDistribution(detail *api.ResultDetail) []Pair {
	if detail == nil || detail.Evaluation.GlobalOutcome == nil {
		return nil
	}
	out := make([]Pair, 0, len(detail.Evaluation.GlobalOutcome.VoteDistribution))
	for name, votes := range detail.Evaluation.GlobalOutcome.VoteDistribution {
		out = append(out, Pair{Name: name, Value: float64(votes)})
	}
	sortPairs(out)
	return out
}

// MaxValue returns the largest value among pairs, or zero for none.
// Used to scale bar widths.
func MaxValue(pairs []Pair) float64 {
	var max float64
	for _, p := range pairs {
		if p.Value > max {
			max = p.Value
		}
	}
	return max
}
