// Package model defines the core domain models used throughout the application.
package model

import (
	"fmt"
	"strings"
)

// Criticality is the externally assigned VEN tag describing how important an
// item is operationally, independent of its monetary value.
type Criticality string

// Criticality constants.
const (
	CriticalityVital        Criticality = "V"
	CriticalityEssential    Criticality = "E"
	CriticalityNonEssential Criticality = "N"
)

// Criticalities returns all criticality tags in canonical V, E, N order.
func Criticalities() []Criticality {
	return []Criticality{CriticalityVital, CriticalityEssential, CriticalityNonEssential}
}

// ParseCriticality normalizes a one-letter criticality code. It accepts any
// casing and surrounding whitespace.
func ParseCriticality(code string) (Criticality, error) {
	switch strings.ToUpper(strings.TrimSpace(code)) {
	case "V":
		return CriticalityVital, nil
	case "E":
		return CriticalityEssential, nil
	case "N":
		return CriticalityNonEssential, nil
	default:
		return "", fmt.Errorf("invalid criticality code: %q", code)
	}
}

// IsValid reports whether the criticality is one of V, E, N.
func (c Criticality) IsValid() bool {
	switch c {
	case CriticalityVital, CriticalityEssential, CriticalityNonEssential:
		return true
	default:
		return false
	}
}

// Label returns the human-readable name of the criticality tag.
func (c Criticality) Label() string {
	switch c {
	case CriticalityVital:
		return "Vital"
	case CriticalityEssential:
		return "Essential"
	case CriticalityNonEssential:
		return "Non-essential"
	default:
		return string(c)
	}
}

// Item represents a single priced inventory record from any source.
type Item struct {
	Name        string
	Unit        string
	Criticality Criticality
	ID          int
	Quantity    float64
	Amount      float64 // Total monetary consumption value
}

// Validate checks that the item is well-formed enough to persist or analyze.
// Amounts are deliberately not range-checked; negative and zero values are
// accepted and classified mechanically.
func (i *Item) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return fmt.Errorf("item %d: name is required", i.ID)
	}
	if !i.Criticality.IsValid() {
		return fmt.Errorf("item %d: invalid criticality %q", i.ID, i.Criticality)
	}
	return nil
}
