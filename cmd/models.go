package cmd

import (
	"fmt"

	"github.com/pdewey/pburn/internal/cli"
	"github.com/pdewey/pburn/internal/pipeline"

	"github.com/spf13/cobra"
)

var modelsCmd = &cobra.Command{
	Use:   "models [report.csv]",
	Short: "Usage breakdown by model",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		a, err := runAnalysis(args)
		if err != nil {
			return err
		}
		if a.noData() {
			printNoData()
			return nil
		}

		ranked := pipeline.RankedModels(a.Metrics)

		var maxRequests float64
		for _, r := range ranked {
			if r.Requests > maxRequests {
				maxRequests = r.Requests
			}
		}

		rows := make([][]string, 0, len(ranked))
		for _, r := range ranked {
			rows = append(rows, []string{
				r.Model,
				cli.FormatQuantity(r.Requests),
				"$" + cli.FormatMoney2(r.Cost),
				cli.FormatPercent(r.Share),
				cli.RenderHorizontalBar(r.Requests, maxRequests, 20),
			})
		}

		fmt.Println()
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "Model Usage",
			Headers: []string{"Model", "Requests", "Cost", "Share", ""},
			Rows:    rows,
		}))

		if top, ok := pipeline.TopModel(a.Metrics); ok {
			fmt.Printf("\n  Most used: %s\n", top)
		}
		fmt.Println()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(modelsCmd)
}
