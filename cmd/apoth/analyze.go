package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/apothecary-tools/apothecary/internal/analysis"
	"github.com/apothecary-tools/apothecary/internal/cli"
	"github.com/apothecary-tools/apothecary/internal/common"
	"github.com/apothecary-tools/apothecary/internal/config"
	"github.com/apothecary-tools/apothecary/internal/csvfile"
	"github.com/apothecary-tools/apothecary/internal/model"
	"github.com/apothecary-tools/apothecary/internal/render"
	"github.com/apothecary-tools/apothecary/internal/storage"
	"github.com/apothecary-tools/apothecary/internal/tui"
)

func analyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze <file>",
		Short: "Run ABC/VEN analysis on a delimited inventory file",
		Long: `Parse a delimited inventory file, classify the items into ABC tiers by
cumulative share of total value, cross-tabulate against VEN criticality
tags, and render the report.`,
		Args: cobra.ExactArgs(1),
		RunE: runAnalyze,
	}

	cmd.Flags().StringP("format", "f", "table", "Output format (table, csv)")
	cmd.Flags().StringP("output", "o", "reports", "Output directory for csv format")
	cmd.Flags().String("delimiter", ",", "Input field delimiter")
	cmd.Flags().Bool("save", false, "Persist the classification snapshot")
	cmd.Flags().BoolP("interactive", "i", false, "Browse the classified items interactively")

	_ = viper.BindPFlag("analyze.format", cmd.Flags().Lookup("format"))
	_ = viper.BindPFlag("analyze.output", cmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("analyze.delimiter", cmd.Flags().Lookup("delimiter"))
	_ = viper.BindPFlag("analyze.save", cmd.Flags().Lookup("save"))
	_ = viper.BindPFlag("analyze.interactive", cmd.Flags().Lookup("interactive"))

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	path := args[0]

	items, err := parseInventoryFile(ctx, path, viper.GetString("analyze.delimiter"))
	if err != nil {
		return err
	}
	slog.Info("Parsed inventory file", "path", path, "items", len(items))

	result := analysis.Run(items)

	if viper.GetBool("analyze.save") {
		store, err := storage.NewSQLiteStorage(databasePath())
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer func() { _ = store.Close() }()

		if err := store.Migrate(ctx); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
		runID, err := store.SaveRun(ctx, result.Items)
		if err != nil {
			return fmt.Errorf("failed to save run: %w", err)
		}
		fmt.Println(cli.FormatSuccess(fmt.Sprintf("Saved classification snapshot as run %d", runID)))
	}

	switch format := viper.GetString("analyze.format"); format {
	case "table":
		fmt.Println(cli.FormatTitle("ABC/VEN Analysis"))
		if err := render.WriteText(os.Stdout, result); err != nil {
			return fmt.Errorf("failed to render report: %w", err)
		}
	case "csv":
		dir := viper.GetString("analyze.output")
		exporter := render.NewCSVExporter(dir, delimiterRune(viper.GetString("analyze.delimiter")))
		if err := exporter.Export(result); err != nil {
			return fmt.Errorf("failed to export reports: %w", err)
		}
		fmt.Println(cli.FormatSuccess(fmt.Sprintf("Wrote reports to %s/", dir)))
	default:
		return fmt.Errorf("invalid output format: %s", format)
	}

	if viper.GetBool("analyze.interactive") {
		return tui.Browse(result.Items)
	}
	return nil
}

func parseInventoryFile(ctx context.Context, path, delimiter string) ([]model.Item, error) {
	file, err := os.Open(config.ExpandPath(path))
	if err != nil {
		return nil, common.NewUserError(fmt.Sprintf("cannot open inventory file %s", path), err)
	}
	defer func() { _ = file.Close() }()

	parser := csvfile.NewParser(delimiterRune(delimiter))
	return parser.Parse(ctx, file)
}

// delimiterRune maps the flag value to a rune, defaulting to comma.
func delimiterRune(s string) rune {
	if s == "" {
		return ','
	}
	return []rune(s)[0]
}
