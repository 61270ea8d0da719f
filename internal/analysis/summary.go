package analysis

import (
	"github.com/apothecary-tools/apothecary/internal/model"
)

// SummarizeByTier rolls classified items up into one bucket per ABC tier.
// All three tiers are always present, in A, B, C order, even when empty.
// Percentages are relative to the grand totals.
func SummarizeByTier(items []model.ClassifiedItem) []model.TierStat {
	counts := make(map[model.Tier]int, 3)
	amounts := make(map[model.Tier]float64, 3)
	for _, item := range items {
		counts[item.Tier]++
		amounts[item.Tier] += item.Amount
	}

	totalCount, totalAmount := totals(items)

	stats := make([]model.TierStat, 0, 3)
	for _, tier := range model.Tiers() {
		stats = append(stats, model.TierStat{
			Tier: tier,
			CategoryStat: model.CategoryStat{
				Count:         counts[tier],
				Amount:        amounts[tier],
				PercentCount:  percent(float64(counts[tier]), float64(totalCount)),
				PercentAmount: percent(amounts[tier], totalAmount),
			},
		})
	}
	return stats
}

// SummarizeByCriticality rolls classified items up into one bucket per VEN
// tag, in V, E, N order. Otherwise identical to SummarizeByTier.
func SummarizeByCriticality(items []model.ClassifiedItem) []model.CriticalityStat {
	counts := make(map[model.Criticality]int, 3)
	amounts := make(map[model.Criticality]float64, 3)
	for _, item := range items {
		counts[item.Criticality]++
		amounts[item.Criticality] += item.Amount
	}

	totalCount, totalAmount := totals(items)

	stats := make([]model.CriticalityStat, 0, 3)
	for _, crit := range model.Criticalities() {
		stats = append(stats, model.CriticalityStat{
			Criticality: crit,
			CategoryStat: model.CategoryStat{
				Count:         counts[crit],
				Amount:        amounts[crit],
				PercentCount:  percent(float64(counts[crit]), float64(totalCount)),
				PercentAmount: percent(amounts[crit], totalAmount),
			},
		})
	}
	return stats
}

func totals(items []model.ClassifiedItem) (count int, amount float64) {
	for _, item := range items {
		count++
		amount += item.Amount
	}
	return count, amount
}
