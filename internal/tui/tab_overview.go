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

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active
	m := a.metrics

	cards := components.MetricCardRow([]struct{ Label, Value, Subtitle string }{
		{
			Label:    "Premium Tokens Used",
			Value:    cli.FormatQuantity(m.TotalRequests),
			Subtitle: fmt.Sprintf("avg %.1f per active user", m.AvgRequestsPerActiveUser),
		},
		{
			Label:    "Adoption",
			Value:    cli.FormatPercent(m.AdoptionRate),
			Subtitle: fmt.Sprintf("%d of %d licenses active", m.ActiveUsers, m.TotalSeats),
		},
		{
			Label:    "Utilization",
			Value:    cli.FormatPercent(m.QuotaUsagePercent),
			Subtitle: fmt.Sprintf("of %d available tokens", m.TotalSeats*pipeline.MonthlyQuotaPerSeat),
		},
	}, cw)

	barW := cw - 24
	if barW > 50 {
		barW = 50
	}
	if barW < 10 {
		barW = 10
	}
	gauges := " " + components.GaugeBar("Adoption", m.AdoptionRate/100, 12, barW) + "\n" +
		" " + components.GaugeBar("Utilization", m.QuotaUsagePercent/100, 12, barW)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	line := func(label, hours, value string) string {
		return fmt.Sprintf("%s %s  %s",
			labelStyle.Render(fmt.Sprintf("%-18s", label)),
			valueStyle.Render(fmt.Sprintf("%9s hrs", hours)),
			valueStyle.Render("$"+value))
	}

	c := a.capacity
	productivity := strings.Join([]string{
		line("Total Opportunity", cli.FormatHours0(c.TotalHours), cli.FormatQuantity(c.TotalValue)),
		line("Time Saved", cli.FormatHours0(c.UsedHours), cli.FormatQuantity(c.UsedValue)),
		line("Unused Potential", cli.FormatHours0(c.LostHours), cli.FormatQuantity(c.LostValue)),
	}, "\n")

	out := cards + "\n" +
		gauges + "\n\n" +
		components.ContentCard("Productivity Opportunity", productivity, cw)

	if top := pipeline.TopUsers(m, 5); len(top) > 0 {
		barW := cw - 40
		if barW > 24 {
			barW = 24
		}
		if barW < 8 {
			barW = 8
		}
		var rows []string
		for _, u := range top {
			rows = append(rows, fmt.Sprintf("%s %s %s",
				labelStyle.Render(fmt.Sprintf("%-20s", truncStr(u.Username, 20))),
				components.HBar(u.Requests, top[0].Requests, barW, t.Blue),
				valueStyle.Render(fmt.Sprintf("%10s", cli.FormatQuantity(u.Requests)))))
		}
		out += "\n" + components.ContentCard("Top Users", strings.Join(rows, "\n"), cw)
	}

	return out
}
