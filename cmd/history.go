package cmd

import (
	"fmt"

	"github.com/pdewey/pburn/internal/cli"
	"github.com/pdewey/pburn/internal/store"

	"github.com/spf13/cobra"
)

var flagHistoryLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Previously recorded analyses",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		h, err := store.Open(store.DefaultPath())
		if err != nil {
			return fmt.Errorf("opening history: %w", err)
		}
		defer func() { _ = h.Close() }()

		runs, err := h.ListRuns(flagHistoryLimit)
		if err != nil {
			return fmt.Errorf("listing runs: %w", err)
		}
		if len(runs) == 0 {
			fmt.Println()
			fmt.Println("  No recorded analyses yet.")
			fmt.Println()
			return nil
		}

		rows := make([][]string, 0, len(runs))
		for _, r := range runs {
			report := r.ReportPath
			if r.CapacityOnly {
				report = "(capacity only)"
			}
			rows = append(rows, []string{
				r.AnalyzedAt.Local().Format("2006-01-02 15:04"),
				report,
				cli.FormatNumber(int64(r.TotalSeats)),
				cli.FormatQuantity(r.TotalRequests),
				cli.FormatPercent(r.AdoptionRate),
				cli.FormatPercent(r.QuotaUsagePercent),
			})
		}

		fmt.Println()
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "Analysis History",
			Headers: []string{"Analyzed", "Report", "Seats", "Requests", "Adoption", "Utilization"},
			Rows:    rows,
		}))
		fmt.Println()
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&flagHistoryLimit, "limit", "n", 20, "Maximum number of runs to show")
	rootCmd.AddCommand(historyCmd)
}
