package tui

import (
	"fmt"
	"strings"

	"github.com/pdewey/pburn/internal/cli"
	"github.com/pdewey/pburn/internal/pipeline"
	"github.com/pdewey/pburn/internal/tui/components"
	"github.com/pdewey/pburn/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderModelsTab(cw int) string {
	t := theme.Active

	if len(a.models) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextMuted).Render("\n  No usage rows in this report.")
	}

	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	numStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	nameW := 28
	barW := cw - nameW - 32
	if barW > 30 {
		barW = 30
	}
	if barW < 8 {
		barW = 8
	}

	var maxRequests float64
	for _, r := range a.models {
		if r.Requests > maxRequests {
			maxRequests = r.Requests
		}
	}

	var b strings.Builder
	for i, r := range a.models {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(fmt.Sprintf("%s %s %s %s",
			nameStyle.Render(fmt.Sprintf("%-*s", nameW, truncStr(r.Model, nameW))),
			components.HBar(r.Requests, maxRequests, barW, t.Blue),
			numStyle.Render(fmt.Sprintf("%12s", cli.FormatQuantity(r.Requests))),
			numStyle.Render(fmt.Sprintf("%7s", cli.FormatPercent(r.Share))),
		))
	}

	out := components.ContentCard("Model Usage", b.String(), cw)

	if top, ok := pipeline.TopModel(a.metrics); ok {
		topStyle := lipgloss.NewStyle().Foreground(t.Accent)
		out += "\n " + topStyle.Render("Most used: "+top)
	}
	return out
}
