package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-almanac/internal/astrotime"
	"github.com/litescript/ls-almanac/internal/state"
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("60")).
			Padding(0, 1)

	panelTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9D4EDD")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#E84A27"))
)

var quarterNames = [4]string{"New Moon", "First Quarter", "Full Moon", "Third Quarter"}

// DashboardModel renders the main almanac panels: Sun, Moon and seasons.
type DashboardModel struct {
	width    int
	height   int
	snapshot state.Snapshot
	err      error
}

// NewDashboardModel creates an empty dashboard model.
func NewDashboardModel() DashboardModel {
	return DashboardModel{}
}

// SetSize updates the layout dimensions.
func (m DashboardModel) SetSize(width, height int) DashboardModel {
	m.width = width
	m.height = height
	return m
}

// UpdateData replaces the displayed snapshot.
func (m DashboardModel) UpdateData(snap state.Snapshot) DashboardModel {
	m.snapshot = snap
	if snap.LastError == nil {
		m.err = nil
	}
	return m
}

// SetError records a compute error for display.
func (m DashboardModel) SetError(err error) DashboardModel {
	m.err = err
	return m
}

// Update implements the sub-model update contract.
func (m DashboardModel) Update(msg tea.Msg) (DashboardModel, tea.Cmd) {
	return m, nil
}

func eventTime(t *astrotime.Time) string {
	if t == nil {
		return "none"
	}
	return t.String()
}

func row(label, value string) string {
	return labelStyle.Render(fmt.Sprintf("%-12s", label)) + valueStyle.Render(value)
}

// View renders the dashboard.
func (m DashboardModel) View() string {
	if m.err != nil {
		return "\n  " + errStyle.Render("compute failed: "+m.err.Error())
	}
	r := m.snapshot.Report
	if r == nil {
		return "\n  " + labelStyle.Render("waiting for first almanac...")
	}

	sun := []string{
		panelTitleStyle.Render("SUN"),
		row("rise", eventTime(r.Sun.Rise)),
		row("set", eventTime(r.Sun.Set)),
	}
	if r.SolarNoon != nil {
		sun = append(sun, row("noon alt", fmt.Sprintf("%+.1f°", r.SolarNoon.Hor.Altitude)))
	}

	moon := []string{
		panelTitleStyle.Render("MOON"),
		row("rise", eventTime(r.Moon.Rise)),
		row("set", eventTime(r.Moon.Set)),
		row("phase", fmt.Sprintf("%.1f° (%.0f%%)", r.MoonPhase.PhaseAngle, 100*r.MoonPhase.PhaseFraction)),
		row("distance", fmt.Sprintf("%.0f km", r.MoonPhase.DistanceKm)),
		row("next "+r.NextApsis.Kind.String(), r.NextApsis.Time.String()),
	}

	quarters := []string{panelTitleStyle.Render("LUNAR QUARTERS")}
	for _, q := range r.Quarters {
		quarters = append(quarters, row(quarterNames[q.Quarter], q.Time.String()))
	}

	seasons := []string{
		panelTitleStyle.Render("SEASONS"),
		row("Mar equinox", r.Seasons.MarEquinox.String()),
		row("Jun solstice", r.Seasons.JunSolstice.String()),
		row("Sep equinox", r.Seasons.SepEquinox.String()),
		row("Dec solstice", r.Seasons.DecSolstice.String()),
	}

	left := lipgloss.JoinVertical(lipgloss.Left,
		panelStyle.Render(strings.Join(sun, "\n")),
		panelStyle.Render(strings.Join(moon, "\n")),
	)
	right := lipgloss.JoinVertical(lipgloss.Left,
		panelStyle.Render(strings.Join(quarters, "\n")),
		panelStyle.Render(strings.Join(seasons, "\n")),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
}
