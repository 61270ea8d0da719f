package model

// CategoryStat is one aggregate bucket: how many items landed in a category,
// how much money they represent, and the bucket's share of the relevant
// totals. Which totals the percentages are relative to depends on the
// aggregation that produced the stat.
type CategoryStat struct {
	Count         int
	Amount        float64
	PercentCount  float64
	PercentAmount float64
}

// TierStat is a CategoryStat keyed by ABC tier.
type TierStat struct {
	Tier Tier
	CategoryStat
}

// CriticalityStat is a CategoryStat keyed by VEN criticality tag.
type CriticalityStat struct {
	Criticality Criticality
	CategoryStat
}

// CellKey addresses one cell of a tier-by-criticality grid.
type CellKey struct {
	Tier        Tier
	Criticality Criticality
}

// Matrix is the full 3x3 ABC-by-VEN cross-tabulation. Percentages are
// relative to the grand totals. All nine cells are always present.
type Matrix map[CellKey]CategoryStat

// ConditionalDistribution is the 3x3 grid with percentages relative to each
// tier's own subtotal, so every non-empty tier's three cells sum to 100%.
// All nine cells are always present.
type ConditionalDistribution map[CellKey]CategoryStat
