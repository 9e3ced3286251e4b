package tui

import (
	"github.com/pdewey/pburn/internal/tui/components"
	"github.com/pdewey/pburn/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderInsightsTab(cw int) string {
	t := theme.Active

	if len(a.insights) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextMuted).Render("\n  No insights for this report.")
	}

	textStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	wrapW := cw - 6
	if wrapW < 20 {
		wrapW = 20
	}

	var out string
	for i, in := range a.insights {
		if i > 0 {
			out += "\n"
		}
		out += components.ContentCard(in.Title, textStyle.Render(wrapPlain(in.Text, wrapW)), cw)
	}
	return out
}
