package tui

import (
	"testing"

	"github.com/pdewey/pburn/internal/model"

	tea "github.com/charmbracelet/bubbletea"
)

func keyMsg(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	}
	return tea.KeyMsg{}
}

func loadedApp(t *testing.T) App {
	t.Helper()

	a := NewApp("report.csv", 4, 100)
	m, _ := a.Update(DataLoadedMsg{Rows: []model.UsageRow{
		{Username: "alice", Model: "gpt-4", Date: "2024-01-01", Quantity: 10, NetAmount: 1},
		{Username: "bob", Model: "claude", Date: "2024-01-02", Quantity: 5, NetAmount: 2},
	}})
	return m.(App)
}

func TestTabCycling(t *testing.T) {
	a := loadedApp(t)

	m, _ := a.Update(keyMsg("tab"))
	a = m.(App)
	if a.activeTab != 1 {
		t.Fatalf("after tab, activeTab = %d, want 1", a.activeTab)
	}

	m, _ = a.Update(keyMsg("shift+tab"))
	a = m.(App)
	if a.activeTab != 0 {
		t.Fatalf("after shift+tab, activeTab = %d, want 0", a.activeTab)
	}

	// Wrap backwards from the first tab
	m, _ = a.Update(keyMsg("shift+tab"))
	a = m.(App)
	if a.activeTab != 4 {
		t.Fatalf("backwards wrap, activeTab = %d, want 4", a.activeTab)
	}
}

func TestTabShortcutKeys(t *testing.T) {
	a := loadedApp(t)

	m, _ := a.Update(keyMsg("m"))
	a = m.(App)
	if a.activeTab != 2 {
		t.Fatalf("after 'm', activeTab = %d, want 2", a.activeTab)
	}

	m, _ = a.Update(keyMsg("5"))
	a = m.(App)
	if a.activeTab != 4 {
		t.Fatalf("after '5', activeTab = %d, want 4", a.activeTab)
	}
}

func TestUsersScrollClamped(t *testing.T) {
	a := loadedApp(t)
	a.activeTab = 1

	// Two users; cursor must not run past the last row or above zero.
	for i := 0; i < 5; i++ {
		m, _ := a.Update(keyMsg("j"))
		a = m.(App)
	}
	if a.scroll != 1 {
		t.Fatalf("scroll = %d, want 1", a.scroll)
	}

	for i := 0; i < 5; i++ {
		m, _ := a.Update(keyMsg("k"))
		a = m.(App)
	}
	if a.scroll != 0 {
		t.Fatalf("scroll = %d, want 0", a.scroll)
	}
}

func TestUndersizedSeatsSurfacesError(t *testing.T) {
	a := NewApp("report.csv", 1, 100)
	m, _ := a.Update(DataLoadedMsg{Rows: []model.UsageRow{
		{Username: "alice", Model: "gpt-4", Date: "2024-01-01", Quantity: 10},
		{Username: "bob", Model: "gpt-4", Date: "2024-01-01", Quantity: 5},
	}})
	a = m.(App)

	if a.loadErr == nil {
		t.Fatal("expected seat validation error, got nil")
	}
}
