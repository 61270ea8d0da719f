package model

// Tier is the ABC consumption-value class assigned by cumulative share of
// total amount, highest-value items first.
type Tier string

// Tier constants.
const (
	TierA Tier = "A"
	TierB Tier = "B"
	TierC Tier = "C"
)

// Tiers returns all tiers in canonical A, B, C order.
func Tiers() []Tier {
	return []Tier{TierA, TierB, TierC}
}

// IsValid reports whether the tier is one of A, B, C.
func (t Tier) IsValid() bool {
	switch t {
	case TierA, TierB, TierC:
		return true
	default:
		return false
	}
}

// ClassifiedItem is an Item after ABC classification. The percentage fields
// are computed once per analysis run and never mutated afterward.
type ClassifiedItem struct {
	Item
	Tier              Tier
	PercentOfTotal    float64 // This item's amount as a share of the batch total
	CumulativePercent float64 // Running share in descending-amount order, inclusive of this item
}
