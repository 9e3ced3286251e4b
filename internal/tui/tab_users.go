package tui

import (
	"fmt"
	"strings"

	"github.com/pdewey/pburn/internal/cli"
	"github.com/pdewey/pburn/internal/tui/components"
	"github.com/pdewey/pburn/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderUsersTab(cw, contentH int) string {
	t := theme.Active

	if len(a.users) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextMuted).Render("\n  No usage rows in this report.")
	}

	headerStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover)

	nameW := cw - 50
	if nameW < 12 {
		nameW = 12
	}
	if nameW > 32 {
		nameW = 32
	}

	format := func(name, requests, cost, models, share string) string {
		return fmt.Sprintf(" %-*s %14s %12s %8s %8s", nameW, name, requests, cost, models, share)
	}

	// Card chrome plus header eat into the visible row budget.
	visible := contentH - 6
	if visible < 3 {
		visible = 3
	}
	start := a.scroll
	if start > len(a.users)-visible {
		start = len(a.users) - visible
	}
	if start < 0 {
		start = 0
	}
	end := start + visible
	if end > len(a.users) {
		end = len(a.users)
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(format("User", "AI Tokens Used", "Cost", "Models", "Share")))
	for i := start; i < end; i++ {
		u := a.users[i]
		line := format(
			truncStr(u.Username, nameW),
			cli.FormatQuantity(u.Requests),
			"$"+cli.FormatMoney2(u.Cost),
			cli.FormatNumber(int64(u.Models)),
			cli.FormatPercent(u.Share),
		)
		b.WriteString("\n")
		if i == a.scroll {
			b.WriteString(selStyle.Render(line))
		} else {
			b.WriteString(rowStyle.Render(line))
		}
	}

	title := fmt.Sprintf("User Activity (%d)", len(a.users))
	return components.ContentCard(title, b.String(), cw)
}

func truncStr(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	if limit <= 3 {
		return s[:limit]
	}
	return s[:limit-3] + "..."
}
