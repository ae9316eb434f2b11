package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/scalekit/internal/color"
)

// Swatches renders one scale as a row of colored cells.
type Swatches struct {
	Name     string
	Colors   []color.Color
	Labels   []string
	Selected int
	Active   bool
}

var (
	cellWidth     = 6
	nameStyle     = lipgloss.NewStyle().Width(14)
	activeName    = nameStyle.Bold(true).Foreground(lipgloss.Color("205"))
	labelStyle    = lipgloss.NewStyle().Width(cellWidth).Align(lipgloss.Center).Foreground(lipgloss.Color("244"))
	cursorStyle   = lipgloss.NewStyle().Width(cellWidth).Align(lipgloss.Center).Foreground(lipgloss.Color("205"))
	indentPadding = strings.Repeat(" ", 14)
)

// View renders the row, with labels and a cursor line when the row is active.
func (s Swatches) View() string {
	name := nameStyle.Render(s.Name)
	if s.Active {
		name = activeName.Render(s.Name)
	}

	cells := make([]string, len(s.Colors))
	for i, c := range s.Colors {
		cells[i] = lipgloss.NewStyle().
			Width(cellWidth).
			Background(lipgloss.Color(c.Hex())).
			Render("")
	}
	lines := []string{name + lipgloss.JoinHorizontal(lipgloss.Top, cells...)}

	if len(s.Labels) > 0 {
		labels := make([]string, len(s.Colors))
		for i := range s.Colors {
			text := ""
			if i < len(s.Labels) {
				text = s.Labels[i]
			}
			labels[i] = labelStyle.Render(text)
		}
		lines = append(lines, indentPadding+lipgloss.JoinHorizontal(lipgloss.Top, labels...))
	}

	if s.Active && s.Selected >= 0 && s.Selected < len(s.Colors) {
		marks := make([]string, len(s.Colors))
		for i := range s.Colors {
			mark := ""
			if i == s.Selected {
				mark = "▲"
			}
			marks[i] = cursorStyle.Render(mark)
		}
		lines = append(lines, indentPadding+lipgloss.JoinHorizontal(lipgloss.Top, marks...))
	}
	return strings.Join(lines, "\n")
}
