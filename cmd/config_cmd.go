// Package cmd implements the pburn CLI commands.
package cmd

import (
	"fmt"

	"github.com/pdewey/pburn/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	if cfg.General.DefaultSeats > 0 {
		fmt.Printf("    Default seats: %d\n", cfg.General.DefaultSeats)
	} else {
		fmt.Println("    Default seats: not set (pass --seats)")
	}
	fmt.Printf("    Hourly rate:   $%.2f\n", cfg.General.HourlyRate)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  Run `pburn setup` to reconfigure.")
	return nil
}
