// Package tui is the interactive palette editor. Every edit is sent to the
// history manager as a document command; the model itself only tracks the
// cursor.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/scalekit/internal/color"
	"github.com/alexisbeaulieu97/scalekit/internal/document"
	"github.com/alexisbeaulieu97/scalekit/internal/history"
	"github.com/alexisbeaulieu97/scalekit/internal/model"
)

// Editor is the part of the history manager the editor drives.
type Editor interface {
	Dispatch(cmd document.Command) bool
	Current() model.Document
	State() history.State
	Past() []model.Document
	Future() []model.Document
}

// Model contains the Bubbletea state for the palette editor.
type Model struct {
	editor Editor
	router *Router
	keys   KeyMap
	help   help.Model

	paletteID string
	scale     int
	color     int
	channel   int
	easing    int
	message   string

	width    int
	quitting bool
}

// NewModel opens the editor on paletteID, or on the first palette when empty.
func NewModel(editor Editor, router *Router, paletteID string) Model {
	m := Model{
		editor:    editor,
		router:    router,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		paletteID: paletteID,
		easing:    -1,
	}
	m.clampCursor()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// PaletteID returns the palette being edited.
func (m Model) PaletteID() string {
	return m.paletteID
}

// Cursor returns the selected scale and color positions.
func (m Model) Cursor() (scaleIndex, colorIndex int) {
	return m.scale, m.color
}

// Channel returns the channel +/- adjusts.
func (m Model) Channel() color.Channel {
	return color.Channels[m.channel]
}

// Message returns the last status message.
func (m Model) Message() string {
	return m.message
}

func (m Model) palette() (model.Palette, bool) {
	p, ok := m.editor.Current()[m.paletteID]
	return p, ok
}

func (m Model) currentScale() (model.Palette, model.Scale, bool) {
	p, ok := m.palette()
	if !ok {
		return p, model.Scale{}, false
	}
	scales := p.OrderedScales()
	if m.scale < 0 || m.scale >= len(scales) {
		return p, model.Scale{}, false
	}
	return p, scales[m.scale], true
}

// clampCursor keeps the selection inside the current document. A palette
// that disappeared (undo, delete) falls back to the first remaining one.
func (m *Model) clampCursor() {
	doc := m.editor.Current()
	if _, ok := doc[m.paletteID]; !ok {
		m.paletteID = ""
		if ids := doc.IDs(); len(ids) > 0 {
			m.paletteID = ids[0]
		}
		m.scale, m.color = 0, 0
	}
	p, ok := doc[m.paletteID]
	if !ok {
		m.scale, m.color = 0, 0
		return
	}
	scales := p.OrderedScales()
	m.scale = clampIndex(m.scale, len(scales))
	if len(scales) == 0 {
		m.color = 0
		return
	}
	m.color = clampIndex(m.color, len(scales[m.scale].Colors))
}

// syncRoute moves the cursor to the location the last command navigated to.
func (m *Model) syncRoute() {
	route, ok := m.router.Take()
	if !ok || route.PaletteID == "" {
		return
	}
	m.paletteID = route.PaletteID
	m.scale, m.color = 0, 0
	if route.ScaleID == "" {
		return
	}
	if p, exists := m.editor.Current()[route.PaletteID]; exists {
		for i, id := range p.OrderedScaleIDs() {
			if id == route.ScaleID {
				m.scale = i
				break
			}
		}
	}
}

func clampIndex(i, n int) int {
	if n == 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
