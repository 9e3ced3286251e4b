package cmd

import (
	"errors"
	"fmt"

	"github.com/pdewey/pburn/internal/config"
	"github.com/pdewey/pburn/internal/tui"
	"github.com/pdewey/pburn/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui <report.csv>",
	Short: "Launch interactive TUI dashboard",
	Args:  cobra.ExactArgs(1),
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, args []string) error {
	if flagCapacityOnly {
		return errors.New("--capacity-only is not supported in the TUI; use `pburn capacity`")
	}

	// Load config for theme and defaults
	cfg, _ := config.Load()
	theme.SetActive(cfg.Appearance.Theme)

	// Force TrueColor profile so all background styling produces ANSI codes
	// Without this, lipgloss may default to Ascii profile (no colors)
	lipgloss.SetColorProfile(termenv.TrueColor)

	seats := flagSeats
	if seats == 0 {
		seats = cfg.General.DefaultSeats
	}
	rate := flagRate
	if rate <= 0 {
		rate = cfg.General.HourlyRate
	}

	app := tui.NewApp(args[0], seats, rate)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
