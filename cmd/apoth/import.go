package main

import (
	"fmt"
	"log/slog"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/apothecary-tools/apothecary/internal/cli"
	"github.com/apothecary-tools/apothecary/internal/storage"
)

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import inventory records into the database",
		Long: `Parse a delimited inventory file and persist its records. Existing items
with the same id are updated; use --replace to start from a clean slate.`,
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}

	cmd.Flags().String("delimiter", ",", "Input field delimiter")
	cmd.Flags().Bool("replace", false, "Delete stored items before importing")

	_ = viper.BindPFlag("import.delimiter", cmd.Flags().Lookup("delimiter"))
	_ = viper.BindPFlag("import.replace", cmd.Flags().Lookup("replace"))

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	path := args[0]

	items, err := parseInventoryFile(ctx, path, viper.GetString("import.delimiter"))
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Println(cli.FormatWarning("No well-formed records found, nothing to import"))
		return nil
	}

	store, err := storage.NewSQLiteStorage(databasePath())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() { _ = store.Close() }()

	if err := store.Migrate(ctx); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	// Save in small batches so the bar tracks real progress.
	bar := progressbar.Default(int64(len(items)), "Importing items")
	replace := viper.GetBool("import.replace")
	const batchSize = 50
	for start := 0; start < len(items); start += batchSize {
		end := min(start+batchSize, len(items))
		batch := items[start:end]

		if replace && start == 0 {
			err = store.ReplaceItems(ctx, batch)
		} else {
			err = store.SaveItems(ctx, batch)
		}
		if err != nil {
			return fmt.Errorf("failed to import items: %w", err)
		}
		_ = bar.Add(len(batch))
	}

	slog.Info("Import complete", "path", path, "items", len(items))
	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Imported %d items", len(items))))
	return nil
}
