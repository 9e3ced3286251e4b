package cmd

import (
	"fmt"
	"time"

	"github.com/pdewey/pburn/internal/cli"
	"github.com/pdewey/pburn/internal/pipeline"

	"github.com/spf13/cobra"
)

var dailyCmd = &cobra.Command{
	Use:   "daily [report.csv]",
	Short: "Daily usage time series",
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

		series := pipeline.DailySeries(a.Metrics)

		var maxRequests float64
		values := make([]float64, 0, len(series))
		for _, p := range series {
			values = append(values, p.Requests)
			if p.Requests > maxRequests {
				maxRequests = p.Requests
			}
		}

		rows := make([][]string, 0, len(series))
		for _, p := range series {
			day := p.Date
			if t, err := time.Parse("2006-01-02", p.Date); err == nil {
				day = fmt.Sprintf("%s %s", p.Date, cli.FormatDayOfWeek(int(t.Weekday())))
			}
			rows = append(rows, []string{
				day,
				cli.FormatQuantity(p.Requests),
				"$" + cli.FormatMoney2(p.Cost),
				cli.RenderHorizontalBar(p.Requests, maxRequests, 20),
			})
		}

		fmt.Println()
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "Daily Usage",
			Headers: []string{"Date", "Requests", "Cost", ""},
			Rows:    rows,
		}))
		fmt.Printf("\n  Trend: %s\n\n", cli.RenderSparkline(values))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dailyCmd)
}
