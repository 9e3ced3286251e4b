package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var insightsCmd = &cobra.Command{
	Use:   "insights [report.csv]",
	Short: "Actionable insights only",
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

		fmt.Println()
		renderInsights(a.Insights)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(insightsCmd)
}
