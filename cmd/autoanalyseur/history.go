package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/venatus57/autoanalyseur/internal/model"
	"github.com/venatus57/autoanalyseur/internal/report"
)

func historyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Manage the listing history",
		Long: `List, export, import and clear the stored listing history.

Saved listings feed the crowd-sourced price estimation: when a vehicle
is not in the reference table, similar stored listings supply a price.`,
		Example: `  autoanalyseur history list
  autoanalyseur history stats
  autoanalyseur history export > listings.json
  autoanalyseur history import listings.json
  autoanalyseur history clear --force`,
	}

	cmd.AddCommand(historyListCmd())
	cmd.AddCommand(historyStatsCmd())
	cmd.AddCommand(historyExportCmd())
	cmd.AddCommand(historyImportCmd())
	cmd.AddCommand(historyClearCmd())

	return cmd
}

func historyListCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored listings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStore()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			entries, err := store.All(ctx)
			if err != nil {
				return fmt.Errorf("failed to load history: %w", err)
			}
			if len(entries) == 0 {
				fmt.Println(report.SubtleStyle.Render("No listings recorded yet."))
				return nil
			}
			if limit > 0 && len(entries) > limit {
				entries = entries[len(entries)-limit:]
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, strings.Join([]string{
				report.BoldStyle.Render("SAVED"),
				report.BoldStyle.Render("MAKE"),
				report.BoldStyle.Render("MODEL"),
				report.BoldStyle.Render("YEAR"),
				report.BoldStyle.Render("KM"),
				report.BoldStyle.Render("PRICE"),
			}, "\t"))
			for _, e := range entries {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d€\n",
					e.SavedAt.Format("2006-01-02"),
					e.Make, e.Model, e.Year, e.MileageKm, e.PriceEUR)
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "only show the most recent N listings")

	return cmd
}

func historyStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show history statistics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStore()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			stats, err := store.Stats(ctx)
			if err != nil {
				return fmt.Errorf("failed to compute stats: %w", err)
			}

			fmt.Printf("Listings : %d\n", stats.Total)
			fmt.Printf("Makes    : %d\n", stats.DistinctMakes)
			for _, mc := range stats.TopMakes {
				fmt.Printf("  %-15s %d\n", mc.Make, mc.Count)
			}
			return nil
		},
	}
}

func historyExportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the history as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStore()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			entries, err := store.All(ctx)
			if err != nil {
				return fmt.Errorf("failed to load history: %w", err)
			}

			data, err := json.MarshalIndent(entries, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode history: %w", err)
			}

			if output == "" || output == "-" {
				fmt.Println(string(data))
				return nil
			}
			if err := os.WriteFile(output, data, 0600); err != nil {
				return fmt.Errorf("failed to write export: %w", err)
			}
			fmt.Printf("%s Exported %d listings to %s\n",
				report.SuccessStyle.Render("✓"), len(entries), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file ('-' for stdout)")

	return cmd
}

func historyImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.json>",
		Short: "Replace the history with a JSON export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read import file: %w", err)
			}
			var entries []model.HistoricalListing
			if err := json.Unmarshal(data, &entries); err != nil {
				return fmt.Errorf("failed to parse import file: %w", err)
			}

			store, err := initStore()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.Replace(ctx, entries); err != nil {
				return fmt.Errorf("failed to import history: %w", err)
			}

			fmt.Printf("%s Imported %d listings\n",
				report.SuccessStyle.Render("✓"), len(entries))
			return nil
		},
	}
}

func historyClearCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every stored listing",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStore()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if !force {
				stats, err := store.Stats(ctx)
				if err != nil {
					return fmt.Errorf("failed to compute stats: %w", err)
				}
				fmt.Printf("%s This will permanently delete %d listings.\n",
					report.WarningStyle.Render("⚠️"), stats.Total)
				fmt.Printf("\nContinue? (y/N) ")

				var response string
				_, _ = fmt.Scanln(&response)
				if !strings.HasPrefix(strings.ToLower(response), "y") {
					fmt.Println(report.SubtleStyle.Render("Clear cancelled."))
					return nil
				}
			}

			if err := store.Clear(ctx); err != nil {
				return fmt.Errorf("failed to clear history: %w", err)
			}

			fmt.Printf("%s History cleared\n", report.SuccessStyle.Render("✓"))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation prompt")

	return cmd
}
