package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCriticality(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		want    Criticality
		wantErr bool
	}{
		{name: "uppercase V", code: "V", want: CriticalityVital},
		{name: "lowercase e", code: "e", want: CriticalityEssential},
		{name: "whitespace around n", code: " n ", want: CriticalityNonEssential},
		{name: "unknown letter", code: "X", wantErr: true},
		{name: "full word is rejected", code: "Vital", wantErr: true},
		{name: "empty", code: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCriticality(tt.code)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCriticality_Label(t *testing.T) {
	assert.Equal(t, "Vital", CriticalityVital.Label())
	assert.Equal(t, "Essential", CriticalityEssential.Label())
	assert.Equal(t, "Non-essential", CriticalityNonEssential.Label())
}

func TestCanonicalOrders(t *testing.T) {
	assert.Equal(t, []Criticality{CriticalityVital, CriticalityEssential, CriticalityNonEssential}, Criticalities())
	assert.Equal(t, []Tier{TierA, TierB, TierC}, Tiers())
}

func TestItem_Validate(t *testing.T) {
	tests := []struct {
		name    string
		item    Item
		wantErr bool
	}{
		{
			name: "valid item",
			item: Item{ID: 1, Name: "Gauze", Unit: "roll", Quantity: 5, Amount: 50, Criticality: CriticalityVital},
		},
		{
			name: "negative amount is accepted",
			item: Item{ID: 2, Name: "Refund", Amount: -10, Criticality: CriticalityNonEssential},
		},
		{
			name:    "missing name",
			item:    Item{ID: 3, Criticality: CriticalityVital},
			wantErr: true,
		},
		{
			name:    "invalid criticality",
			item:    Item{ID: 4, Name: "Gloves", Criticality: "Q"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.item.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestTier_IsValid(t *testing.T) {
	assert.True(t, TierA.IsValid())
	assert.True(t, TierB.IsValid())
	assert.True(t, TierC.IsValid())
	assert.False(t, Tier("D").IsValid())
}
