package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/apothecary-tools/apothecary/internal/cli"
	"github.com/apothecary-tools/apothecary/internal/common"
	"github.com/apothecary-tools/apothecary/internal/storage"
	"github.com/apothecary-tools/apothecary/internal/tui"
)

func browseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse the latest saved classification interactively",
		RunE:  runBrowse,
	}
}

func runBrowse(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	store, err := storage.NewSQLiteStorage(databasePath())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() { _ = store.Close() }()

	if err := store.Migrate(ctx); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	run, err := store.GetLatestRun(ctx)
	if errors.Is(err, common.ErrNotFound) {
		fmt.Println(cli.FormatWarning("No saved runs yet. Run 'apoth analyze --save' first."))
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load latest run: %w", err)
	}

	return tui.Browse(run.Items)
}
