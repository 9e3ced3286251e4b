package cmd

import (
	"fmt"

	"github.com/pdewey/pburn/internal/cli"
	"github.com/pdewey/pburn/internal/pipeline"

	"github.com/spf13/cobra"
)

var usersCmd = &cobra.Command{
	Use:   "users [report.csv]",
	Short: "Per-user usage breakdown",
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

		users := pipeline.RankedUsers(a.Metrics)
		rows := make([][]string, 0, len(users))
		for _, u := range users {
			rows = append(rows, []string{
				u.Username,
				cli.FormatQuantity(u.Requests),
				"$" + cli.FormatMoney2(u.Cost),
				cli.FormatNumber(int64(u.Models)),
				cli.FormatPercent(u.Share),
			})
		}

		fmt.Println()
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "User Activity",
			Headers: []string{"User", "AI Tokens Used", "Cost", "Models Used", "% of Total Usage"},
			Rows:    rows,
		}))
		fmt.Println()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(usersCmd)
}
