package analysis

import (
	"github.com/apothecary-tools/apothecary/internal/model"
)

// Result bundles everything one analysis run produces. All fields are owned
// by the caller; running the engine again allocates a fresh Result.
type Result struct {
	Matrix       model.Matrix
	Distribution model.ConditionalDistribution
	Items        []model.ClassifiedItem
	ByTier       []model.TierStat
	ByCritical   []model.CriticalityStat
	TotalAmount  float64
}

// Run classifies the items and computes all four aggregations. An empty
// input is valid and yields zero-valued summaries.
func Run(items []model.Item) *Result {
	classified := Classify(items)
	_, totalAmount := totals(classified)

	return &Result{
		Items:        classified,
		ByTier:       SummarizeByTier(classified),
		ByCritical:   SummarizeByCriticality(classified),
		Matrix:       BuildMatrix(classified),
		Distribution: BuildConditionalDistribution(classified),
		TotalAmount:  totalAmount,
	}
}
