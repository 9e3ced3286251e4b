package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pdewey/pburn/internal/config"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	// Load existing config or defaults
	cfg, _ := config.Load()

	fmt.Println()
	fmt.Println("  Welcome to pburn!")
	fmt.Println()

	// 1. Default seat count
	fmt.Println("  1. Default seat count")
	fmt.Println("     Number of Copilot licenses your organization pays for.")
	if cfg.General.DefaultSeats > 0 {
		fmt.Printf("     Current: %d\n", cfg.General.DefaultSeats)
	}
	fmt.Print("     > ")
	seatInput, _ := reader.ReadString('\n')
	seatInput = strings.TrimSpace(seatInput)
	if seatInput != "" {
		seats, err := strconv.Atoi(seatInput)
		if err != nil || seats <= 0 {
			fmt.Println("     Not a positive number, keeping previous value.")
		} else {
			cfg.General.DefaultSeats = seats
		}
	}
	fmt.Println()

	// 2. Developer hourly rate
	fmt.Printf("  2. Developer hourly rate [current: $%.2f]\n", cfg.General.HourlyRate)
	fmt.Println("     Used to price capacity and productivity value.")
	fmt.Print("     > ")
	rateInput, _ := reader.ReadString('\n')
	rateInput = strings.TrimSpace(rateInput)
	if rateInput != "" {
		rate, err := strconv.ParseFloat(strings.TrimPrefix(rateInput, "$"), 64)
		if err != nil || rate <= 0 {
			fmt.Println("     Not a positive number, keeping previous value.")
		} else {
			cfg.General.HourlyRate = rate
		}
	}
	fmt.Println()

	// 3. Theme
	fmt.Println("  3. Color theme")
	fmt.Println("     (1) Flexoki Dark [default]")
	fmt.Println("     (2) Terminal (ANSI 16)")
	fmt.Print("     > ")
	themeChoice, _ := reader.ReadString('\n')
	switch strings.TrimSpace(themeChoice) {
	case "2":
		cfg.Appearance.Theme = "terminal"
	default:
		cfg.Appearance.Theme = "flexoki-dark"
	}

	// Save
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `pburn setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
