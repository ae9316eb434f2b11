package tui

import (
	"fmt"
	"math/rand/v2"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/scalekit/internal/color"
	"github.com/alexisbeaulieu97/scalekit/internal/curve"
	"github.com/alexisbeaulieu97/scalekit/internal/document"
	"github.com/alexisbeaulieu97/scalekit/internal/history"
	"github.com/alexisbeaulieu97/scalekit/internal/persistence"
)

type sequentialIDs struct{ next int }

func (s *sequentialIDs) NewID() string {
	s.next++
	return fmt.Sprintf("id-%d", s.next)
}

// newTestModel returns an editor whose debounce window never closes on its
// own; undo and redo settle it explicitly.
func newTestModel(t *testing.T) (Model, *history.Manager) {
	t.Helper()
	router := NewRouter()
	manager := history.New(persistence.Empty(), history.Options{
		Scheduler: history.SchedulerFunc(func(time.Duration, func()) history.CancelFunc { return func() {} }),
		Navigator: router,
		Reducer: document.NewReducer(
			document.WithIDGenerator(&sequentialIDs{}),
			document.WithRand(rand.New(rand.NewPCG(3, 4))),
		),
	})
	return NewModel(manager, router, ""), manager
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		updated, _ := m.Update(keyMsg(k))
		var ok bool
		m, ok = updated.(Model)
		require.True(t, ok)
	}
	return m
}

func TestEmptyEditorOffersPaletteCreation(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t)
	require.Empty(t, m.PaletteID())
	require.Contains(t, m.View(), "No palettes yet")

	m = press(t, m, "p")
	require.Equal(t, "id-1", m.PaletteID())

	view := m.View()
	require.Contains(t, view, "scalekit • Untitled")
	require.Contains(t, view, "Gray")
	require.Contains(t, view, "Blue")
	require.Contains(t, view, "history: idle")
}

func TestCursorMovementIsClamped(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t)
	m = press(t, m, "p", "right", "right")
	s, c := m.Cursor()
	require.Equal(t, 0, s)
	require.Equal(t, 2, c)

	m = press(t, m, "left", "left", "left", "left", "left")
	_, c = m.Cursor()
	require.Zero(t, c)

	m = press(t, m, "down", "down", "down")
	s, _ = m.Cursor()
	require.Equal(t, 1, s)

	m = press(t, m, "up", "up")
	s, _ = m.Cursor()
	require.Zero(t, s)
}

func TestAdjustUndoRedo(t *testing.T) {
	t.Parallel()

	m, manager := newTestModel(t)
	m = press(t, m, "p", "tab", "tab")
	require.Equal(t, color.Lightness, m.Channel())

	lightnessAt := func() float64 {
		p := manager.Current()[m.PaletteID()]
		return p.OrderedScales()[0].Colors[0].Lightness
	}
	require.Equal(t, 96.0, lightnessAt())

	m = press(t, m, "+")
	require.Equal(t, 97.0, lightnessAt())
	require.Equal(t, history.Debouncing, manager.State())

	m = press(t, m, "]")
	require.Equal(t, 100.0, lightnessAt(), "free channels clamp to their range")

	m = press(t, m, "]")
	require.Equal(t, 100.0, lightnessAt())

	m = press(t, m, "u")
	require.Equal(t, 96.0, lightnessAt(), "one undo reverts the whole burst")
	require.Contains(t, m.View(), "redo 1")

	m = press(t, m, "r")
	require.Equal(t, 100.0, lightnessAt())

	m = press(t, m, "r")
	require.Equal(t, "nothing to redo", m.Message())
}

func TestUndoWithEmptyHistory(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t)
	m = press(t, m, "u")
	require.Equal(t, "nothing to undo", m.Message())
}

func TestNewAndDeleteColor(t *testing.T) {
	t.Parallel()

	m, manager := newTestModel(t)
	m = press(t, m, "p", "n")

	scale := manager.Current()[m.PaletteID()].OrderedScales()[0]
	require.Len(t, scale.Colors, 10)
	_, c := m.Cursor()
	require.Equal(t, 1, c)
	require.Equal(t, scale.Colors[0], scale.Colors[1])

	m = press(t, m, "x")
	scale = manager.Current()[m.PaletteID()].OrderedScales()[0]
	require.Len(t, scale.Colors, 9)
}

func TestNewScaleMovesCursor(t *testing.T) {
	t.Parallel()

	m, manager := newTestModel(t)
	m = press(t, m, "p", "s")

	s, c := m.Cursor()
	require.Equal(t, 2, s)
	require.Zero(t, c)
	require.Len(t, manager.Current()[m.PaletteID()].Scales, 3)
}

func TestCurveAndEasing(t *testing.T) {
	t.Parallel()

	m, manager := newTestModel(t)
	m = press(t, m, "p", "e")
	require.Equal(t, "no curve on hue", m.Message())

	m = press(t, m, "tab", "tab", "c")
	require.Equal(t, "lightness now follows a curve", m.Message())
	require.Contains(t, m.View(), "~ Gray lightness")

	m = press(t, m, "c")
	require.Equal(t, "lightness already follows a curve", m.Message())

	m = press(t, m, "e")
	require.Equal(t, "eased with "+curve.EasingNames()[0], m.Message())

	p := manager.Current()[m.PaletteID()]
	scale := p.OrderedScales()[0]
	curveID, ok := scale.CurveFor(color.Lightness)
	require.True(t, ok)
	values := p.Curves[curveID].Values
	require.Equal(t, 96.0, values[0])
	require.Equal(t, 14.0, values[len(values)-1])
}

func TestCurveDrivenChannelIsNotClamped(t *testing.T) {
	t.Parallel()

	m, manager := newTestModel(t)
	m = press(t, m, "p", "tab", "tab", "c", "-")

	stored := manager.Current()[m.PaletteID()].OrderedScales()[0].Colors[0].Lightness
	require.Equal(t, -1.0, stored)
}

func TestNextPaletteCycles(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t)
	m = press(t, m, "p", "p")
	require.Equal(t, "id-4", m.PaletteID())

	m = press(t, m, "P")
	require.Equal(t, "id-1", m.PaletteID())
	m = press(t, m, "P")
	require.Equal(t, "id-4", m.PaletteID())
}

func TestUndoRemovingPaletteFallsBack(t *testing.T) {
	t.Parallel()

	m, manager := newTestModel(t)
	m = press(t, m, "p")
	manager.Dispatch(document.DeletePalette{PaletteID: "id-1"})

	m = press(t, m, "right")
	require.Empty(t, m.PaletteID())
	require.Contains(t, m.View(), "No palettes yet")
}

func TestQuit(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t)
	updated, cmd := m.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
	require.Empty(t, updated.View())
}

func TestWindowSize(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	require.Equal(t, 120, updated.(Model).width)
}
