package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/scalekit/internal/color"
	"github.com/alexisbeaulieu97/scalekit/internal/curve"
	"github.com/alexisbeaulieu97/scalekit/internal/model"
	"github.com/alexisbeaulieu97/scalekit/internal/tui/components"
)

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	p, ok := m.palette()
	if !ok {
		return lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render("scalekit"),
			mutedStyle.Render("No palettes yet. Press p to create one."),
			m.help.View(m.keys),
		)
	}

	sections := []string{titleStyle.Render(fmt.Sprintf("scalekit • %s", p.Name))}

	scales := p.OrderedScales()
	if len(scales) == 0 {
		sections = append(sections, mutedStyle.Render("No scales. Press s to add one."))
	} else {
		sections = append(sections, sectionStyle.Render("Scales"))
		for i, s := range scales {
			sections = append(sections, components.Swatches{
				Name:     s.Name,
				Colors:   curve.ResolveAll(p.Curves, s),
				Labels:   labelsFor(p, s),
				Selected: m.color,
				Active:   i == m.scale,
			}.View())
		}
	}

	if _, s, ok := m.currentScale(); ok && m.color < len(s.Colors) {
		sections = append(sections, sectionStyle.Render("Color"), m.colorDetail(p, s))
	}

	summary := components.NewSummary(components.SummaryData{
		State:   m.editor.State().String(),
		Past:    len(m.editor.Past()),
		Future:  len(m.editor.Future()),
		Message: m.message,
	}).View()
	sections = append(sections, summaryStyle.Render(summary), m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) colorDetail(p model.Palette, s model.Scale) string {
	resolved := curve.Resolve(p.Curves, s, m.color)
	lines := []string{fmt.Sprintf("%s  %s", resolved.Hex(), resolved)}
	for i, ch := range color.Channels {
		marker := "  "
		if i == m.channel {
			marker = "› "
		}
		line := marker + components.NewGauge(ch).View(s.Colors[m.color].Get(ch), resolved.Get(ch))
		if id, driven := s.CurveFor(ch); driven {
			line += " " + curveStyle.Render("~ "+p.Curves[id].Name)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func labelsFor(p model.Palette, s model.Scale) []string {
	if s.NamingSchemeID == "" {
		return nil
	}
	return p.NamingSchemes[s.NamingSchemeID].Names
}
