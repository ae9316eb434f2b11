package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/scalekit/internal/color"
	"github.com/alexisbeaulieu97/scalekit/internal/curve"
	"github.com/alexisbeaulieu97/scalekit/internal/document"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.message = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Left):
		m.color--
	case key.Matches(msg, m.keys.Right):
		m.color++
	case key.Matches(msg, m.keys.Up):
		m.scale--
	case key.Matches(msg, m.keys.Down):
		m.scale++
	case key.Matches(msg, m.keys.Channel):
		m.channel = (m.channel + 1) % len(color.Channels)
	case key.Matches(msg, m.keys.Inc):
		m.adjust(1)
	case key.Matches(msg, m.keys.Dec):
		m.adjust(-1)
	case key.Matches(msg, m.keys.IncLarge):
		m.adjust(10)
	case key.Matches(msg, m.keys.DecLarge):
		m.adjust(-10)
	case key.Matches(msg, m.keys.NewColor):
		m.newColor()
	case key.Matches(msg, m.keys.DeleteColor):
		m.deleteColor()
	case key.Matches(msg, m.keys.NewScale):
		m.newScale()
	case key.Matches(msg, m.keys.Curve):
		m.curveFromScale()
	case key.Matches(msg, m.keys.Easing):
		m.cycleEasing()
	case key.Matches(msg, m.keys.NewPalette):
		m.dispatch(document.CreatePalette{})
	case key.Matches(msg, m.keys.NextPalette):
		m.nextPalette()
	case key.Matches(msg, m.keys.Undo):
		if !m.dispatch(document.Undo{}) {
			m.message = "nothing to undo"
		}
	case key.Matches(msg, m.keys.Redo):
		if !m.dispatch(document.Redo{}) {
			m.message = "nothing to redo"
		}
	}

	m.clampCursor()
	return m, nil
}

func (m *Model) dispatch(cmd document.Command) bool {
	changed := m.editor.Dispatch(cmd)
	m.syncRoute()
	return changed
}

// adjust nudges the selected channel. Channels driven by a curve store an
// offset, so only free channels are clamped to their range.
func (m *Model) adjust(delta float64) {
	p, s, ok := m.currentScale()
	if !ok || m.color >= len(s.Colors) {
		return
	}
	ch := m.Channel()
	stored := s.Colors[m.color].Get(ch)
	next := color.Round(stored + delta)
	if _, driven := s.CurveFor(ch); !driven {
		next = s.Colors[m.color].With(ch, next).Clamped().Get(ch)
	}
	if next == stored {
		return
	}
	m.dispatch(document.ChangeColorValue{PaletteID: p.ID, ScaleID: s.ID, Index: m.color, Channel: ch, Value: next})
}

func (m *Model) newColor() {
	p, s, ok := m.currentScale()
	if !ok {
		return
	}
	after := m.color
	if m.dispatch(document.CreateColor{PaletteID: p.ID, ScaleID: s.ID, AfterIndex: &after}) {
		m.color = after + 1
		return
	}
	if s.NamingSchemeID != "" {
		m.message = "scale size is fixed by its naming scheme"
	}
}

func (m *Model) deleteColor() {
	p, s, ok := m.currentScale()
	if !ok {
		return
	}
	if !m.dispatch(document.DeleteColor{PaletteID: p.ID, ScaleID: s.ID, Index: m.color}) {
		m.message = "cannot delete this color"
	}
}

func (m *Model) newScale() {
	p, ok := m.palette()
	if !ok {
		return
	}
	if m.dispatch(document.CreateScale{PaletteID: p.ID}) {
		updated, _ := m.palette()
		newID := updated.ScaleOrder[len(updated.ScaleOrder)-1]
		for i, id := range updated.OrderedScaleIDs() {
			if id == newID {
				m.scale, m.color = i, 0
			}
		}
	}
}

func (m *Model) curveFromScale() {
	p, s, ok := m.currentScale()
	if !ok {
		return
	}
	ch := m.Channel()
	if _, driven := s.CurveFor(ch); driven {
		m.message = fmt.Sprintf("%s already follows a curve", ch)
		return
	}
	if m.dispatch(document.CreateCurveFromScale{PaletteID: p.ID, ScaleID: s.ID, Channel: ch}) {
		m.message = fmt.Sprintf("%s now follows a curve", ch)
	}
}

func (m *Model) cycleEasing() {
	p, s, ok := m.currentScale()
	if !ok {
		return
	}
	ch := m.Channel()
	curveID, driven := s.CurveFor(ch)
	if !driven {
		m.message = fmt.Sprintf("no curve on %s", ch)
		return
	}
	names := curve.EasingNames()
	m.easing = (m.easing + 1) % len(names)
	if m.dispatch(document.ApplyEasingFunction{PaletteID: p.ID, CurveID: curveID, Easing: names[m.easing]}) {
		m.message = "eased with " + names[m.easing]
	}
}

func (m *Model) nextPalette() {
	ids := m.editor.Current().IDs()
	if len(ids) == 0 {
		return
	}
	next := 0
	for i, id := range ids {
		if id == m.paletteID {
			next = (i + 1) % len(ids)
			break
		}
	}
	m.paletteID = ids[next]
	m.scale, m.color = 0, 0
}
