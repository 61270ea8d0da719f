package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/apothecary-tools/apothecary/internal/cli"
	"github.com/apothecary-tools/apothecary/internal/storage"
)

func itemsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "items",
		Short: "List stored inventory items",
		RunE:  runItems,
	}
}

func runItems(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	store, err := storage.NewSQLiteStorage(databasePath())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() { _ = store.Close() }()

	if err := store.Migrate(ctx); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	items, err := store.ListItems(ctx)
	if err != nil {
		return fmt.Errorf("failed to list items: %w", err)
	}
	if len(items) == 0 {
		fmt.Println(cli.FormatWarning("No items stored yet. Run 'apoth import' first."))
		return nil
	}

	fmt.Println(cli.FormatTitle(fmt.Sprintf("Stored items (%d)", len(items))))
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tUNIT\tQTY\tAMOUNT\tVEN")
	for _, item := range items {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%.2f\t%.2f\t%s\n",
			item.ID, item.Name, item.Unit, item.Quantity, item.Amount, item.Criticality)
	}
	return tw.Flush()
}
