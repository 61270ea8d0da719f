package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apothecary-tools/apothecary/internal/model"
)

func TestBuildMatrix_AllNineCellsAlwaysPresent(t *testing.T) {
	tests := []struct {
		name  string
		items []model.ClassifiedItem
	}{
		{name: "empty input", items: nil},
		{name: "single item", items: Classify(amountsToItems([]float64{100}))},
		{name: "mixed batch", items: classifiedFixture()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matrix := BuildMatrix(tt.items)
			require.Len(t, matrix, 9)
			for _, tier := range model.Tiers() {
				for _, crit := range model.Criticalities() {
					_, ok := matrix[model.CellKey{Tier: tier, Criticality: crit}]
					assert.True(t, ok, "missing cell (%s, %s)", tier, crit)
				}
			}
		})
	}
}

func TestBuildMatrix_Additivity(t *testing.T) {
	classified := classifiedFixture()
	matrix := BuildMatrix(classified)

	var countSum int
	var amountSum, percentCountSum, percentAmountSum float64
	for _, cell := range matrix {
		countSum += cell.Count
		amountSum += cell.Amount
		percentCountSum += cell.PercentCount
		percentAmountSum += cell.PercentAmount
	}

	assert.Equal(t, len(classified), countSum)
	assert.InDelta(t, 1000.0, amountSum, tolerance)
	assert.InDelta(t, 100.0, percentCountSum, tolerance)
	assert.InDelta(t, 100.0, percentAmountSum, tolerance)
}

func TestBuildMatrix_PercentagesRelativeToGrandTotal(t *testing.T) {
	classified := classifiedFixture()
	matrix := BuildMatrix(classified)

	// Item 1 (700, Vital) is the only tier-A Vital item: 1 of 4 items, 70%
	// of the grand total.
	cell := matrix[model.CellKey{Tier: model.TierA, Criticality: model.CriticalityVital}]
	assert.Equal(t, 1, cell.Count)
	assert.InDelta(t, 700.0, cell.Amount, tolerance)
	assert.InDelta(t, 25.0, cell.PercentCount, tolerance)
	assert.InDelta(t, 70.0, cell.PercentAmount, tolerance)
}

func TestBuildMatrix_EmptyInputIsAllZeros(t *testing.T) {
	matrix := BuildMatrix(nil)
	for key, cell := range matrix {
		assert.Zero(t, cell.Count, "cell %v", key)
		assert.Zero(t, cell.Amount, "cell %v", key)
		assert.Zero(t, cell.PercentCount, "cell %v", key)
		assert.Zero(t, cell.PercentAmount, "cell %v", key)
	}
}

func TestBuildConditionalDistribution_RowNormalization(t *testing.T) {
	classified := classifiedFixture()
	dist := BuildConditionalDistribution(classified)
	require.Len(t, dist, 9)

	for _, tier := range model.Tiers() {
		var rowCount int
		var percentCountSum, percentAmountSum float64
		for _, crit := range model.Criticalities() {
			cell := dist[model.CellKey{Tier: tier, Criticality: crit}]
			rowCount += cell.Count
			percentCountSum += cell.PercentCount
			percentAmountSum += cell.PercentAmount
		}
		if rowCount == 0 {
			assert.Zero(t, percentCountSum, "empty tier %s must be all zeros", tier)
			assert.Zero(t, percentAmountSum, "empty tier %s must be all zeros", tier)
			continue
		}
		assert.InDelta(t, 100.0, percentCountSum, tolerance, "tier %s counts", tier)
		assert.InDelta(t, 100.0, percentAmountSum, tolerance, "tier %s amounts", tier)
	}
}

func TestBuildConditionalDistribution_EmptyTierYieldsZeroCellsNotFaults(t *testing.T) {
	// A single tier-A item leaves the B and C rows empty.
	dist := BuildConditionalDistribution(Classify(amountsToItems([]float64{100})))

	for _, tier := range []model.Tier{model.TierB, model.TierC} {
		for _, crit := range model.Criticalities() {
			cell := dist[model.CellKey{Tier: tier, Criticality: crit}]
			assert.Zero(t, cell.Count)
			assert.Zero(t, cell.PercentCount)
			assert.Zero(t, cell.PercentAmount)
		}
	}
}

func TestBuildConditionalDistribution_ContrastsWithMatrixNormalization(t *testing.T) {
	// The matrix cell is relative to the grand total, the distribution cell
	// to the tier-A subtotal.
	items := []model.Item{
		testItem(1, 500, model.CriticalityVital),
		testItem(2, 300, model.CriticalityEssential),
		testItem(3, 150, model.CriticalityEssential),
		testItem(4, 50, model.CriticalityNonEssential),
	}
	classified := Classify(items)

	key := model.CellKey{Tier: model.TierA, Criticality: model.CriticalityVital}
	matrixCell := BuildMatrix(classified)[key]
	distCell := BuildConditionalDistribution(classified)[key]

	assert.Equal(t, matrixCell.Count, distCell.Count)
	assert.InDelta(t, matrixCell.Amount, distCell.Amount, tolerance)
	assert.InDelta(t, 50.0, matrixCell.PercentAmount, tolerance)
	assert.InDelta(t, 62.5, distCell.PercentAmount, tolerance) // 500 of tier A's 800
}

func TestRun_ProducesConsistentBundle(t *testing.T) {
	items := []model.Item{
		testItem(1, 700, model.CriticalityVital),
		testItem(2, 150, model.CriticalityEssential),
		testItem(3, 100, model.CriticalityNonEssential),
		testItem(4, 50, model.CriticalityEssential),
	}

	result := Run(items)
	require.NotNil(t, result)

	assert.Len(t, result.Items, 4)
	assert.Len(t, result.ByTier, 3)
	assert.Len(t, result.ByCritical, 3)
	assert.Len(t, result.Matrix, 9)
	assert.Len(t, result.Distribution, 9)
	assert.InDelta(t, 1000.0, result.TotalAmount, tolerance)
}

func TestRun_EmptyInput(t *testing.T) {
	result := Run(nil)
	require.NotNil(t, result)

	assert.Empty(t, result.Items)
	assert.Len(t, result.ByTier, 3)
	assert.Len(t, result.ByCritical, 3)
	assert.Len(t, result.Matrix, 9)
	assert.Len(t, result.Distribution, 9)
	assert.Zero(t, result.TotalAmount)
}
