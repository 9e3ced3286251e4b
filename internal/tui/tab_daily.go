package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/pdewey/pburn/internal/cli"
	"github.com/pdewey/pburn/internal/tui/components"
	"github.com/pdewey/pburn/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderDailyTab(cw int) string {
	t := theme.Active

	if len(a.daily) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextMuted).Render("\n  No usage rows in this report.")
	}

	dateStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	numStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var maxRequests float64
	values := make([]float64, 0, len(a.daily))
	for _, p := range a.daily {
		values = append(values, p.Requests)
		if p.Requests > maxRequests {
			maxRequests = p.Requests
		}
	}

	barW := cw - 44
	if barW > 30 {
		barW = 30
	}
	if barW < 8 {
		barW = 8
	}

	var b strings.Builder
	for i, p := range a.daily {
		if i > 0 {
			b.WriteString("\n")
		}
		day := "   "
		if parsed, err := time.Parse("2006-01-02", p.Date); err == nil {
			day = cli.FormatDayOfWeek(int(parsed.Weekday()))
		}
		b.WriteString(fmt.Sprintf("%s %s %s %s",
			dateStyle.Render(fmt.Sprintf("%-10s %s", p.Date, day)),
			components.HBar(p.Requests, maxRequests, barW, t.Green),
			numStyle.Render(fmt.Sprintf("%12s", cli.FormatQuantity(p.Requests))),
			numStyle.Render(fmt.Sprintf("%10s", "$"+cli.FormatMoney2(p.Cost))),
		))
	}

	trendStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	out := components.ContentCard("Daily Usage", b.String(), cw)
	out += "\n " + trendStyle.Render("Trend: ") + components.Sparkline(values, t.Green)
	return out
}
