// Package render turns analysis results into report output. It formats the
// engine's structures only; no statistic is ever recomputed here.
package render

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/apothecary-tools/apothecary/internal/analysis"
	"github.com/apothecary-tools/apothecary/internal/model"
)

// WriteText renders the full five-section report as fixed-width text.
func WriteText(w io.Writer, result *analysis.Result) error {
	if result == nil {
		return fmt.Errorf("result cannot be nil")
	}

	if _, err := fmt.Fprintf(w, "Items: %d    Total amount: %.2f\n\n", len(result.Items), result.TotalAmount); err != nil {
		return fmt.Errorf("failed to write report header: %w", err)
	}

	sections := []func(io.Writer, *analysis.Result) error{
		writeItems,
		writeTierSummary,
		writeCriticalitySummary,
		writeMatrix,
		writeDistribution,
	}
	for _, section := range sections {
		if err := section(w, result); err != nil {
			return err
		}
	}
	return nil
}

func writeItems(w io.Writer, result *analysis.Result) error {
	if _, err := fmt.Fprintln(w, "CLASSIFIED ITEMS"); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	io.WriteString(tw, "ID\tNAME\tUNIT\tQTY\tAMOUNT\t%TOTAL\tCUM%\tABC\tVEN\n")
	for _, item := range result.Items {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%.2f\t%.2f\t%.2f\t%.2f\t%s\t%s\n",
			item.ID, item.Name, item.Unit, item.Quantity, item.Amount,
			item.PercentOfTotal, item.CumulativePercent, item.Tier, item.Criticality)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush items section: %w", err)
	}
	_, err := fmt.Fprintln(w)
	return err
}

func writeTierSummary(w io.Writer, result *analysis.Result) error {
	if _, err := fmt.Fprintln(w, "ABC SUMMARY"); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TIER\tCOUNT\tAMOUNT\t%COUNT\t%AMOUNT")
	for _, s := range result.ByTier {
		fmt.Fprintf(tw, "%s\t%d\t%.2f\t%.2f\t%.2f\n",
			s.Tier, s.Count, s.Amount, s.PercentCount, s.PercentAmount)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush tier summary: %w", err)
	}
	_, err := fmt.Fprintln(w)
	return err
}

func writeCriticalitySummary(w io.Writer, result *analysis.Result) error {
	if _, err := fmt.Fprintln(w, "VEN SUMMARY"); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "VEN\tCOUNT\tAMOUNT\t%COUNT\t%AMOUNT")
	for _, s := range result.ByCritical {
		fmt.Fprintf(tw, "%s\t%d\t%.2f\t%.2f\t%.2f\n",
			s.Criticality.Label(), s.Count, s.Amount, s.PercentCount, s.PercentAmount)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush criticality summary: %w", err)
	}
	_, err := fmt.Fprintln(w)
	return err
}

func writeMatrix(w io.Writer, result *analysis.Result) error {
	if _, err := fmt.Fprintln(w, "ABC x VEN MATRIX (relative to grand total)"); err != nil {
		return err
	}
	return writeGrid(w, result.Matrix)
}

func writeDistribution(w io.Writer, result *analysis.Result) error {
	if _, err := fmt.Fprintln(w, "ABC x VEN DISTRIBUTION (relative to each tier)"); err != nil {
		return err
	}
	return writeGrid(w, result.Distribution)
}

// writeGrid renders all nine (tier, criticality) cells in fixed A,B,C x
// V,E,N order.
func writeGrid(w io.Writer, cells map[model.CellKey]model.CategoryStat) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TIER\tVEN\tCOUNT\tAMOUNT\t%COUNT\t%AMOUNT")
	for _, tier := range model.Tiers() {
		for _, crit := range model.Criticalities() {
			cell := cells[model.CellKey{Tier: tier, Criticality: crit}]
			fmt.Fprintf(tw, "%s\t%s\t%d\t%.2f\t%.2f\t%.2f\n",
				tier, crit, cell.Count, cell.Amount, cell.PercentCount, cell.PercentAmount)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush grid section: %w", err)
	}
	_, err := fmt.Fprintln(w)
	return err
}
