package curve

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplyEasingLinearKeepsLinearValues(t *testing.T) {
	t.Parallel()

	linear, ok := Easing("linear")
	require.True(t, ok)
	require.Equal(t, []float64{0, 10, 20}, ApplyEasing([]float64{0, 10, 20}, linear))
}

func TestApplyEasingRewritesInteriorValues(t *testing.T) {
	t.Parallel()

	quad, ok := Easing("easeInQuad")
	require.True(t, ok)

	got := ApplyEasing([]float64{0, 99, 99, 100}, quad)
	require.Equal(t, []float64{0, 11.1, 44.4, 100}, got)
}

func TestApplyEasingRoundsToOneDecimal(t *testing.T) {
	t.Parallel()

	linear, _ := Easing("linear")
	got := ApplyEasing([]float64{0, 0, 0, 10}, linear)
	require.Equal(t, []float64{0, 3.3, 6.7, 10}, got)
}

func TestApplyEasingNeedsTwoValues(t *testing.T) {
	t.Parallel()

	linear, _ := Easing("linear")
	require.Equal(t, []float64{42}, ApplyEasing([]float64{42}, linear))
	require.Empty(t, ApplyEasing(nil, linear))
}

func TestEasingEndpoints(t *testing.T) {
	t.Parallel()

	for _, name := range EasingNames() {
		fn, ok := Easing(name)
		require.True(t, ok)
		require.InDelta(t, 0, fn(0), 1e-3, name)
		require.InDelta(t, 1, fn(1), 1e-3, name)
	}

	_, ok := Easing("bogus")
	require.False(t, ok)
}
