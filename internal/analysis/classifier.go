// Package analysis implements the ABC/VEN classification and aggregation
// engine. Every function here is a pure transform: inputs are never mutated,
// outputs are freshly allocated, and no state survives between calls.
package analysis

import (
	"sort"

	"github.com/apothecary-tools/apothecary/internal/model"
)

// Cumulative-share thresholds, evaluated against the share of all items
// strictly preceding the current one in descending-amount order. Both bounds
// are exclusive: a preceding cumulative of exactly 80 lands in B, exactly 95
// lands in C.
const (
	tierAUpperBound = 80.0
	tierBUpperBound = 95.0
)

// Classify sorts items by amount descending and assigns each an ABC tier by
// cumulative share of the batch total. Equal amounts keep their input order.
// The input slice and its elements are left untouched.
func Classify(items []model.Item) []model.ClassifiedItem {
	if len(items) == 0 {
		return []model.ClassifiedItem{}
	}

	sorted := make([]model.Item, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Amount > sorted[j].Amount
	})

	var total float64
	for _, item := range sorted {
		total += item.Amount
	}

	classified := make([]model.ClassifiedItem, 0, len(sorted))
	cumulative := 0.0
	for _, item := range sorted {
		share := percent(item.Amount, total)

		// The tier is decided by the cumulative share *before* this item,
		// so the single largest item is always tier A even when it alone
		// carries the whole batch.
		var tier model.Tier
		switch {
		case cumulative < tierAUpperBound:
			tier = model.TierA
		case cumulative < tierBUpperBound:
			tier = model.TierB
		default:
			tier = model.TierC
		}

		cumulative += share
		classified = append(classified, model.ClassifiedItem{
			Item:              item,
			Tier:              tier,
			PercentOfTotal:    share,
			CumulativePercent: cumulative,
		})
	}

	return classified
}

// percent computes part/whole as a percentage, with the zero-denominator
// case defined as 0 rather than NaN or Inf. Every percentage in this package
// goes through here so the rule holds uniformly.
func percent(part, whole float64) float64 {
	if whole == 0 {
		return 0
	}
	return part / whole * 100
}
