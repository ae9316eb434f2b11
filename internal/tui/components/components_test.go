package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/scalekit/internal/color"
)

func TestGaugeView(t *testing.T) {
	t.Parallel()

	t.Run("plain value", func(t *testing.T) {
		t.Parallel()
		view := NewGauge(color.Lightness).View(40, 40)
		require.Contains(t, view, "lightness")
		require.Contains(t, view, "40.0")
		require.NotContains(t, view, "(")
	})

	t.Run("offset shows effective value", func(t *testing.T) {
		t.Parallel()
		view := NewGauge(color.Hue).View(-5, 175)
		require.Contains(t, view, "-5.0")
		require.Contains(t, view, "(175.0)")
	})

	t.Run("out of range values do not panic", func(t *testing.T) {
		t.Parallel()
		require.NotPanics(t, func() {
			NewGauge(color.Saturation).View(150, 150)
			NewGauge(color.Saturation).View(-20, -20)
		})
	})
}

func TestSwatchesView(t *testing.T) {
	t.Parallel()

	colors := []color.Color{{Hue: 0, Saturation: 100, Lightness: 50}, {Hue: 240, Saturation: 100, Lightness: 50}}

	t.Run("inactive row has no cursor", func(t *testing.T) {
		t.Parallel()
		view := Swatches{Name: "Reds", Colors: colors, Selected: 1}.View()
		require.Contains(t, view, "Reds")
		require.NotContains(t, view, "▲")
		require.Equal(t, 1, strings.Count(view, "\n")+1)
	})

	t.Run("active row shows labels and cursor", func(t *testing.T) {
		t.Parallel()
		view := Swatches{Name: "Reds", Colors: colors, Labels: []string{"100", "200"}, Selected: 1, Active: true}.View()
		require.Contains(t, view, "100")
		require.Contains(t, view, "200")
		require.Contains(t, view, "▲")
		require.Equal(t, 3, strings.Count(view, "\n")+1)
	})
}

func TestSummaryView(t *testing.T) {
	t.Parallel()

	view := NewSummary(SummaryData{State: "idle", Past: 3, Future: 1, Message: "undone"}).View()
	require.Equal(t, "history: idle · undo 3 · redo 1 · undone", view)

	view = NewSummary(SummaryData{State: "debouncing"}).View()
	require.Equal(t, "history: debouncing · undo 0 · redo 0", view)
}
