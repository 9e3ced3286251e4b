package cmd

import (
	"github.com/spf13/cobra"
)

var capacityCmd = &cobra.Command{
	Use:   "capacity",
	Short: "Seat capacity analysis without a usage report",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		flagCapacityOnly = true
		return runReport(cmd, nil)
	},
}

func init() {
	rootCmd.AddCommand(capacityCmd)
}
