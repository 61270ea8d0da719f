package render

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/apothecary-tools/apothecary/internal/analysis"
	"github.com/apothecary-tools/apothecary/internal/model"
)

// Export file names, one per report section.
const (
	ItemsFile        = "items.csv"
	TierSummaryFile  = "abc_summary.csv"
	CritSummaryFile  = "ven_summary.csv"
	MatrixFile       = "matrix.csv"
	DistributionFile = "distribution.csv"
)

// CSVExporter writes the five report sections as delimited files into an
// output directory.
type CSVExporter struct {
	Dir       string
	Delimiter rune
}

// NewCSVExporter creates an exporter for the given directory. A zero
// delimiter means comma.
func NewCSVExporter(dir string, delimiter rune) *CSVExporter {
	return &CSVExporter{Dir: dir, Delimiter: delimiter}
}

// Export writes all five files. The directory is created when missing.
func (e *CSVExporter) Export(result *analysis.Result) error {
	if result == nil {
		return fmt.Errorf("result cannot be nil")
	}
	if err := os.MkdirAll(e.Dir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	files := []struct {
		name string
		rows [][]string
	}{
		{ItemsFile, itemRows(result.Items)},
		{TierSummaryFile, tierRows(result.ByTier)},
		{CritSummaryFile, criticalityRows(result.ByCritical)},
		{MatrixFile, gridRows(result.Matrix)},
		{DistributionFile, gridRows(result.Distribution)},
	}
	for _, f := range files {
		if err := e.writeFile(f.name, f.rows); err != nil {
			return err
		}
	}
	return nil
}

func (e *CSVExporter) writeFile(name string, rows [][]string) error {
	path := filepath.Join(e.Dir, name)
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	writer := csv.NewWriter(file)
	if e.Delimiter != 0 {
		writer.Comma = e.Delimiter
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func itemRows(items []model.ClassifiedItem) [][]string {
	rows := [][]string{{"id", "name", "unit", "quantity", "amount", "percent_of_total", "cumulative_percent", "tier", "criticality"}}
	for _, item := range items {
		rows = append(rows, []string{
			strconv.Itoa(item.ID),
			item.Name,
			item.Unit,
			formatFloat(item.Quantity),
			formatFloat(item.Amount),
			formatFloat(item.PercentOfTotal),
			formatFloat(item.CumulativePercent),
			string(item.Tier),
			string(item.Criticality),
		})
	}
	return rows
}

func tierRows(stats []model.TierStat) [][]string {
	rows := [][]string{{"tier", "count", "amount", "percent_count", "percent_amount"}}
	for _, s := range stats {
		rows = append(rows, append([]string{string(s.Tier)}, statColumns(s.CategoryStat)...))
	}
	return rows
}

func criticalityRows(stats []model.CriticalityStat) [][]string {
	rows := [][]string{{"criticality", "count", "amount", "percent_count", "percent_amount"}}
	for _, s := range stats {
		rows = append(rows, append([]string{string(s.Criticality)}, statColumns(s.CategoryStat)...))
	}
	return rows
}

func gridRows(cells map[model.CellKey]model.CategoryStat) [][]string {
	rows := [][]string{{"tier", "criticality", "count", "amount", "percent_count", "percent_amount"}}
	for _, tier := range model.Tiers() {
		for _, crit := range model.Criticalities() {
			cell := cells[model.CellKey{Tier: tier, Criticality: crit}]
			rows = append(rows, append([]string{string(tier), string(crit)}, statColumns(cell)...))
		}
	}
	return rows
}

func statColumns(s model.CategoryStat) []string {
	return []string{
		strconv.Itoa(s.Count),
		formatFloat(s.Amount),
		formatFloat(s.PercentCount),
		formatFloat(s.PercentAmount),
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
