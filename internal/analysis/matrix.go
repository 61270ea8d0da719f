package analysis

import (
	"github.com/apothecary-tools/apothecary/internal/model"
)

// BuildMatrix cross-tabulates classified items over all nine
// (tier, criticality) pairs. Percentages are relative to the grand totals,
// so the nine cells together sum to 100% of count and amount. Empty cells
// are materialized as zero stats, never omitted.
func BuildMatrix(items []model.ClassifiedItem) model.Matrix {
	matrix := make(model.Matrix, 9)
	for _, tier := range model.Tiers() {
		for _, crit := range model.Criticalities() {
			matrix[model.CellKey{Tier: tier, Criticality: crit}] = model.CategoryStat{}
		}
	}

	for _, item := range items {
		key := model.CellKey{Tier: item.Tier, Criticality: item.Criticality}
		cell := matrix[key]
		cell.Count++
		cell.Amount += item.Amount
		matrix[key] = cell
	}

	totalCount, totalAmount := totals(items)
	for key, cell := range matrix {
		cell.PercentCount = percent(float64(cell.Count), float64(totalCount))
		cell.PercentAmount = percent(cell.Amount, totalAmount)
		matrix[key] = cell
	}

	return matrix
}

// BuildConditionalDistribution produces the row-normalized view of the
// matrix: each tier's three criticality cells carry percentages relative to
// that tier's own subtotal, so every non-empty tier row sums to 100%. A tier
// with no items yields three all-zero cells.
func BuildConditionalDistribution(items []model.ClassifiedItem) model.ConditionalDistribution {
	dist := make(model.ConditionalDistribution, 9)

	for _, tier := range model.Tiers() {
		var groupCount int
		var groupAmount float64
		for _, item := range items {
			if item.Tier == tier {
				groupCount++
				groupAmount += item.Amount
			}
		}

		for _, crit := range model.Criticalities() {
			var cell model.CategoryStat
			for _, item := range items {
				if item.Tier == tier && item.Criticality == crit {
					cell.Count++
					cell.Amount += item.Amount
				}
			}
			cell.PercentCount = percent(float64(cell.Count), float64(groupCount))
			cell.PercentAmount = percent(cell.Amount, groupAmount)
			dist[model.CellKey{Tier: tier, Criticality: crit}] = cell
		}
	}

	return dist
}
