package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/litescript/ls-almanac/internal/state"
)

func TestModelViewSwitching(t *testing.T) {
	m := New(state.NewManager(state.DefaultConfig()))
	if m.viewMode != ViewDashboard {
		t.Fatalf("initial view = %v, want dashboard", m.viewMode)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}})
	m = next.(Model)
	if m.viewMode != ViewSky {
		t.Errorf("view after '2' = %v, want sky", m.viewMode)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(Model)
	if m.viewMode != ViewDashboard {
		t.Errorf("view after tab = %v, want dashboard", m.viewMode)
	}
}

func TestModelQuit(t *testing.T) {
	m := New(state.NewManager(state.DefaultConfig()))
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("no command on quit key")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit key did not produce tea.Quit")
	}
}

func TestModelViewBeforeResize(t *testing.T) {
	m := New(state.NewManager(state.DefaultConfig()))
	if !strings.Contains(m.View(), "Initializing") {
		t.Error("unsized model should show the initializing screen")
	}
}

func TestModelDataUpdate(t *testing.T) {
	m := New(state.NewManager(state.DefaultConfig()))

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(Model)

	next, _ = m.Update(DataUpdateMsg{Snapshot: state.Snapshot{Report: testReport()}})
	m = next.(Model)

	out := m.View()
	if !strings.Contains(out, "ls-almanac") {
		t.Error("view missing header")
	}
	if !strings.Contains(out, "SUN") {
		t.Error("dashboard content missing after data update")
	}
}
