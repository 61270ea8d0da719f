package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apothecary-tools/apothecary/internal/model"
)

const tolerance = 1e-5

func testItem(id int, amount float64, crit model.Criticality) model.Item {
	return model.Item{
		ID:          id,
		Name:        "item",
		Unit:        "pack",
		Quantity:    1,
		Amount:      amount,
		Criticality: crit,
	}
}

func amountsToItems(amounts []float64) []model.Item {
	items := make([]model.Item, len(amounts))
	for i, amount := range amounts {
		items[i] = testItem(i+1, amount, model.CriticalityVital)
	}
	return items
}

func TestClassify_ThresholdBoundaries(t *testing.T) {
	tests := []struct {
		name      string
		amounts   []float64
		wantTiers []model.Tier
	}{
		{
			name:      "preceding cumulative of exactly 80 escalates to B, exactly 95 to C",
			amounts:   []float64{70, 15, 10, 5},
			wantTiers: []model.Tier{model.TierA, model.TierA, model.TierB, model.TierC},
		},
		{
			name:      "boundary at 80 falls into B",
			amounts:   []float64{50, 30, 20},
			wantTiers: []model.Tier{model.TierA, model.TierA, model.TierB},
		},
		{
			name:      "dominant first item stays A",
			amounts:   []float64{90, 10},
			wantTiers: []model.Tier{model.TierA, model.TierB},
		},
		{
			name:      "single item carrying the whole batch is A",
			amounts:   []float64{100},
			wantTiers: []model.Tier{model.TierA},
		},
		{
			name:      "long tail lands in C",
			amounts:   []float64{60, 25, 5, 4, 3, 2, 1},
			wantTiers: []model.Tier{model.TierA, model.TierA, model.TierB, model.TierB, model.TierB, model.TierC, model.TierC},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			classified := Classify(amountsToItems(tt.amounts))
			require.Len(t, classified, len(tt.wantTiers))
			for i, want := range tt.wantTiers {
				assert.Equal(t, want, classified[i].Tier, "item at sorted position %d", i)
			}
		})
	}
}

func TestClassify_ConcreteScenario(t *testing.T) {
	classified := Classify(amountsToItems([]float64{50, 30, 20}))
	require.Len(t, classified, 3)

	wantShares := []float64{50, 30, 20}
	wantCumulative := []float64{50, 80, 100}
	for i := range classified {
		assert.InDelta(t, wantShares[i], classified[i].PercentOfTotal, tolerance)
		assert.InDelta(t, wantCumulative[i], classified[i].CumulativePercent, tolerance)
	}
}

func TestClassify_SingleItem(t *testing.T) {
	classified := Classify(amountsToItems([]float64{100}))
	require.Len(t, classified, 1)

	assert.Equal(t, model.TierA, classified[0].Tier)
	assert.InDelta(t, 100.0, classified[0].PercentOfTotal, tolerance)
	assert.InDelta(t, 100.0, classified[0].CumulativePercent, tolerance)
}

func TestClassify_EmptyInput(t *testing.T) {
	classified := Classify(nil)
	require.NotNil(t, classified)
	assert.Empty(t, classified)
}

func TestClassify_ZeroTotal(t *testing.T) {
	classified := Classify(amountsToItems([]float64{0, 0, 0}))
	require.Len(t, classified, 3)

	for _, item := range classified {
		// Zero denominator yields zero shares, and with the cumulative share
		// pinned at 0 everything classifies as A.
		assert.Equal(t, model.TierA, item.Tier)
		assert.Zero(t, item.PercentOfTotal)
		assert.Zero(t, item.CumulativePercent)
	}
}

func TestClassify_SortsDescendingAndPreservesInput(t *testing.T) {
	input := amountsToItems([]float64{5, 100, 20, 60})
	original := make([]model.Item, len(input))
	copy(original, input)

	classified := Classify(input)
	require.Len(t, classified, 4)

	for i := 1; i < len(classified); i++ {
		assert.GreaterOrEqual(t, classified[i-1].Amount, classified[i].Amount)
	}
	assert.Equal(t, original, input, "input slice must not be mutated")
}

func TestClassify_StableForEqualAmounts(t *testing.T) {
	items := []model.Item{
		testItem(1, 25, model.CriticalityVital),
		testItem(2, 25, model.CriticalityEssential),
		testItem(3, 25, model.CriticalityNonEssential),
		testItem(4, 25, model.CriticalityVital),
	}

	classified := Classify(items)
	require.Len(t, classified, 4)
	for i, item := range classified {
		assert.Equal(t, i+1, item.ID, "equal amounts must keep input order")
	}
}

func TestClassify_CumulativeShareIsNonDecreasingAndEndsAtHundred(t *testing.T) {
	classified := Classify(amountsToItems([]float64{13.37, 2.5, 99.99, 0.01, 42, 7, 7}))
	require.NotEmpty(t, classified)

	previous := 0.0
	for _, item := range classified {
		assert.GreaterOrEqual(t, item.CumulativePercent, previous-tolerance)
		previous = item.CumulativePercent
	}
	assert.InDelta(t, 100.0, classified[len(classified)-1].CumulativePercent, tolerance)
}
