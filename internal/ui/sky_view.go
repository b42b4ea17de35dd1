package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-almanac/internal/state"
)

var (
	aboveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#3B82F6"))
	belowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
)

// SkyViewModel renders the planet visibility table: altitude, azimuth,
// magnitude and elongation for each planet at the report time.
type SkyViewModel struct {
	width    int
	height   int
	snapshot state.Snapshot
}

// NewSkyViewModel creates an empty sky view model.
func NewSkyViewModel() SkyViewModel {
	return SkyViewModel{}
}

// SetSize updates the layout dimensions.
func (m SkyViewModel) SetSize(width, height int) SkyViewModel {
	m.width = width
	m.height = height
	return m
}

// UpdateData replaces the displayed snapshot.
func (m SkyViewModel) UpdateData(snap state.Snapshot) SkyViewModel {
	m.snapshot = snap
	return m
}

// Update implements the sub-model update contract.
func (m SkyViewModel) Update(msg tea.Msg) (SkyViewModel, tea.Cmd) {
	return m, nil
}

// altBar renders a small horizontal gauge for altitude in [-90, +90].
func altBar(alt float64) string {
	const cells = 18
	filled := int((alt + 90.0) / 180.0 * cells)
	if filled < 0 {
		filled = 0
	}
	if filled > cells {
		filled = cells
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", cells-filled)
	if alt > 0 {
		return aboveStyle.Render(bar)
	}
	return belowStyle.Render(bar)
}

// View renders the sky table.
func (m SkyViewModel) View() string {
	r := m.snapshot.Report
	if r == nil {
		return "\n  " + labelStyle.Render("waiting for first almanac...")
	}

	var b strings.Builder
	b.WriteString("\n  ")
	b.WriteString(panelTitleStyle.Render("PLANETS"))
	b.WriteString("\n\n")
	b.WriteString("  " + labelStyle.Render(fmt.Sprintf(
		"%-9s %8s %8s %6s %7s  %-7s %s", "body", "alt", "az", "mag", "elong", "sky", "")))
	b.WriteString("\n")

	for _, p := range r.Planets {
		style := belowStyle
		if p.Hor.Altitude > 0 {
			style = valueStyle
		}
		line := fmt.Sprintf("%-9s %+7.1f° %7.1f° %6.1f %6.1f°  %-7s ",
			p.Body, p.Hor.Altitude, p.Hor.Azimuth, p.Mag, p.Elongation, p.Visibility)
		b.WriteString("  " + style.Render(line) + altBar(p.Hor.Altitude) + "\n")
	}

	b.WriteString("\n  ")
	b.WriteString(labelStyle.Render(fmt.Sprintf("as of %s for lat %+.2f lon %+.2f",
		r.Time, r.Observer.Latitude, r.Observer.Longitude)))
	b.WriteString("\n")
	return b.String()
}
