// Package tui provides the interactive Bubble Tea dashboard for pburn.
package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pdewey/pburn/internal/config"
	"github.com/pdewey/pburn/internal/model"
	"github.com/pdewey/pburn/internal/pipeline"
	"github.com/pdewey/pburn/internal/source"
	"github.com/pdewey/pburn/internal/tui/components"
	"github.com/pdewey/pburn/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// DataLoadedMsg is sent when the report finishes parsing.
type DataLoadedMsg struct {
	Rows     []model.UsageRow
	LoadTime time.Duration
}

// LoadErrMsg is sent when the report cannot be read.
type LoadErrMsg struct {
	Err error
}

// setupValues holds the first-run form inputs before parsing.
type setupValues struct {
	seats string
	rate  string
}

// App is the root Bubble Tea model.
type App struct {
	// Inputs
	reportPath string
	seats      int
	rate       float64

	// Data
	rows     []model.UsageRow
	loaded   bool
	loadErr  error
	loadTime time.Duration

	// Derived once seats are known
	metrics  model.Metrics
	capacity model.Capacity
	insights []model.Insight
	users    []pipeline.UserRank
	models   []pipeline.ModelRank
	daily    []pipeline.DailyPoint

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool
	scroll    int // row offset for the users tab

	// First-run setup (huh form) when no seat count is available
	setupForm *huh.Form
	setupVals setupValues
	needSetup bool

	spinner spinner.Model
}

const (
	minTerminalWidth = 70
	maxContentWidth  = 140
	minContentHeight = 5
)

// NewApp creates a new TUI app model. seats may be zero, in which case the
// first-run form asks for it before computing metrics.
func NewApp(reportPath string, seats int, rate float64) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent)

	a := App{
		reportPath: reportPath,
		seats:      seats,
		rate:       rate,
		needSetup:  seats <= 0,
		spinner:    sp,
	}
	if a.needSetup {
		a.setupForm = a.newSetupForm()
	}
	return a
}

func (a *App) newSetupForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Seat licenses").
				Description("Number of Copilot seats your organization pays for.").
				Value(&a.setupVals.seats).
				Validate(func(s string) error {
					n, err := strconv.Atoi(strings.TrimSpace(s))
					if err != nil || n <= 0 {
						return fmt.Errorf("enter a positive whole number")
					}
					return nil
				}),
			huh.NewInput().
				Title("Developer hourly rate").
				Description("Used to price capacity and productivity value. Blank keeps the current rate.").
				Value(&a.setupVals.rate).
				Validate(func(s string) error {
					s = strings.TrimSpace(strings.TrimPrefix(s, "$"))
					if s == "" {
						return nil
					}
					v, err := strconv.ParseFloat(s, 64)
					if err != nil || v <= 0 {
						return fmt.Errorf("enter a positive number")
					}
					return nil
				}),
		),
	)
}

func (a App) Init() tea.Cmd {
	return tea.Batch(
		loadReportCmd(a.reportPath),
		a.spinner.Tick,
	)
}

// recompute derives all display data from the loaded rows. Seat validation
// happens here so an undersized seat count surfaces in the dashboard rather
// than crashing it.
func (a *App) recompute() {
	if err := pipeline.ValidateSeats(a.rows, a.seats); err != nil {
		a.loadErr = err
		return
	}
	a.loadErr = nil

	a.metrics = pipeline.Compute(a.rows, a.seats)
	a.capacity = pipeline.ComputeCapacity(a.metrics, a.rate)
	a.insights = pipeline.Generate(a.metrics, a.rate, false)
	a.users = pipeline.RankedUsers(a.metrics)
	a.models = pipeline.RankedModels(a.metrics)
	a.daily = pipeline.DailySeries(a.metrics)

	if a.scroll >= len(a.users) {
		a.scroll = 0
	}
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width)
		}
		return a, nil

	case spinner.TickMsg:
		if a.loaded {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case DataLoadedMsg:
		a.rows = msg.Rows
		a.loadTime = msg.LoadTime
		a.loaded = true
		if !a.needSetup {
			a.recompute()
		}
		return a, nil

	case LoadErrMsg:
		a.loadErr = msg.Err
		a.loaded = true
		a.needSetup = false
		a.setupForm = nil
		return a, nil

	case tea.KeyMsg:
		if a.needSetup && a.setupForm != nil && a.loaded && a.loadErr == nil {
			return a.updateSetupForm(msg)
		}
		return a.handleKey(msg)
	}

	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}
	return a, nil
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	if a.setupForm.State == huh.StateCompleted {
		a.applySetup()
		a.needSetup = false
		a.setupForm = nil
		a.recompute()
		return a, nil
	}

	if a.setupForm.State == huh.StateAborted {
		return a, tea.Quit
	}

	return a, cmd
}

// applySetup parses the form inputs and persists them as new defaults.
// Inputs already passed field validation.
func (a *App) applySetup() {
	if n, err := strconv.Atoi(strings.TrimSpace(a.setupVals.seats)); err == nil && n > 0 {
		a.seats = n
	}
	rateIn := strings.TrimSpace(strings.TrimPrefix(a.setupVals.rate, "$"))
	if rateIn != "" {
		if v, err := strconv.ParseFloat(rateIn, 64); err == nil && v > 0 {
			a.rate = v
		}
	}

	cfg, _ := config.Load()
	cfg.General.DefaultSeats = a.seats
	cfg.General.HourlyRate = a.rate
	_ = config.Save(cfg)
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit

	case "?":
		a.showHelp = !a.showHelp
		return a, nil

	case "esc":
		a.showHelp = false
		return a, nil

	case "tab", "right", "l":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		a.scroll = 0
		return a, nil

	case "shift+tab", "left", "h":
		a.activeTab = (a.activeTab + len(components.Tabs) - 1) % len(components.Tabs)
		a.scroll = 0
		return a, nil

	case "j", "down":
		if a.activeTab == 1 && a.scroll < len(a.users)-1 {
			a.scroll++
		}
		return a, nil

	case "k", "up":
		if a.activeTab == 1 && a.scroll > 0 {
			a.scroll--
		}
		return a, nil
	}

	if len(msg.Runes) == 1 {
		if r := msg.Runes[0]; r >= '1' && r <= '5' {
			a.activeTab = int(r - '1')
			a.scroll = 0
			return a, nil
		}
		if idx := components.TabIdxByKey(msg.Runes[0]); idx >= 0 {
			a.activeTab = idx
			a.scroll = 0
			return a, nil
		}
	}

	return a, nil
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return fmt.Sprintf("\n  Terminal too narrow (%d cols)\n\n  pburn needs at least %d columns.\n",
			a.width, minTerminalWidth)
	}

	if !a.loaded {
		return a.viewLoading()
	}

	if a.loadErr != nil {
		return a.viewError()
	}

	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewLoading() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3)

	logoStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	subtitleStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var b strings.Builder
	b.WriteString(logoStyle.Render("◈ pburn"))
	b.WriteString(subtitleStyle.Render(" · Copilot Premium Usage"))
	b.WriteString("\n\n")
	b.WriteString(a.spinner.View())
	b.WriteString(subtitleStyle.Render(" Parsing report..."))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center,
		cardStyle.Render(b.String()))
}

func (a App) viewError() string {
	t := theme.Active

	errStyle := lipgloss.NewStyle().Foreground(t.Red).Bold(true)
	hintStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	body := errStyle.Render("Cannot analyze report") + "\n\n" +
		wrapPlain(a.loadErr.Error(), 60) + "\n\n" +
		hintStyle.Render("[q]uit")

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center,
		components.ContentCard("", body, 66))
}

func (a App) viewHelp() string {
	t := theme.Active

	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	row := func(key, desc string) string {
		return fmt.Sprintf("  %s  %s", keyStyle.Render(fmt.Sprintf("%-12s", key)), descStyle.Render(desc))
	}

	body := strings.Join([]string{
		row("tab / l", "next tab"),
		row("shift+tab / h", "previous tab"),
		row("1-5", "jump to tab"),
		row("o u m d i", "jump to tab by name"),
		row("j / k", "scroll users"),
		row("?", "toggle this help"),
		row("q", "quit"),
	}, "\n")

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center,
		components.ContentCard("Keys", body, 50))
}

func (a App) viewMain() string {
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab) + "\n"
	statusBar := components.RenderStatusBar(w, a.reportPath)

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case 0:
		content = a.renderOverviewTab(cw)
	case 1:
		content = a.renderUsersTab(cw, contentH)
	case 2:
		content = a.renderModelsTab(cw)
	case 3:
		content = a.renderDailyTab(cw)
	case 4:
		content = a.renderInsightsTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

func loadReportCmd(path string) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		rows, err := source.ReadFile(path)
		if err != nil {
			return LoadErrMsg{Err: err}
		}
		return DataLoadedMsg{Rows: rows, LoadTime: time.Since(start)}
	}
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Count(s, "\n") + 1
	if lines >= h {
		return s
	}
	return s + strings.Repeat("\n", h-lines)
}

// wrapPlain greedily wraps unstyled text to width.
func wrapPlain(text string, width int) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}

	var b strings.Builder
	lineLen := 0
	for i, word := range words {
		if i > 0 {
			if lineLen+1+len(word) > width {
				b.WriteString("\n")
				lineLen = 0
			} else {
				b.WriteString(" ")
				lineLen++
			}
		}
		b.WriteString(word)
		lineLen += len(word)
	}
	return b.String()
}
