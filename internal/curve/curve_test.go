package curve

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/scalekit/internal/color"
	"github.com/alexisbeaulieu97/scalekit/internal/model"
)

func lightnessScale(values ...float64) model.Scale {
	colors := make([]color.Color, len(values))
	for i, v := range values {
		colors[i] = color.Color{Hue: 210, Saturation: 60, Lightness: v}
	}
	return model.NewScale("scale", "Blue", colors)
}

func TestResolveWithoutCurvesReturnsStoredColor(t *testing.T) {
	t.Parallel()

	scale := lightnessScale(10, 20)
	require.Equal(t, scale.Colors[1], Resolve(nil, scale, 1))
}

func TestResolveAddsCurveValueToOffset(t *testing.T) {
	t.Parallel()

	scale := lightnessScale(1, -2, 0)
	scale.Curves[color.Lightness] = "c"
	curves := map[string]model.Curve{"c": {ID: "c", Type: color.Lightness, Values: []float64{10, 20, 30}}}

	got := ResolveAll(curves, scale)
	require.Equal(t, []float64{11, 18, 30}, []float64{got[0].Lightness, got[1].Lightness, got[2].Lightness})
	require.Equal(t, 210.0, got[0].Hue)
}

func TestAttachFreshCurvePreservesColors(t *testing.T) {
	t.Parallel()

	for _, ch := range color.Channels {
		ch := ch
		t.Run(ch.String(), func(t *testing.T) {
			t.Parallel()

			scale := model.NewScale("s", "Mixed", []color.Color{
				{Hue: 10, Saturation: 20, Lightness: 90},
				{Hue: 40, Saturation: 50, Lightness: 60},
				{Hue: 80, Saturation: 70, Lightness: 30},
			})
			before := ResolveAll(nil, scale)

			c := FromScale("c", "Curve", nil, scale, ch)
			attached := Attach(scale, ch, c.ID)
			curves := map[string]model.Curve{c.ID: c}

			require.Equal(t, before, ResolveAll(curves, attached))
			for _, stored := range attached.Colors {
				require.Zero(t, stored.Get(ch))
			}
			require.NotZero(t, scale.Colors[0].Get(ch), "source scale must stay untouched")
		})
	}
}

func TestDetachPreservesColors(t *testing.T) {
	t.Parallel()

	scale := lightnessScale(1, 2, 3)
	scale.Curves[color.Lightness] = "c"
	curves := map[string]model.Curve{"c": {ID: "c", Type: color.Lightness, Values: []float64{10, 20, 30}}}
	before := ResolveAll(curves, scale)

	detached := Detach(curves, scale, color.Lightness)

	require.Equal(t, before, ResolveAll(curves, detached))
	require.Empty(t, detached.Curves)
	require.Equal(t, 22.0, detached.Colors[1].Lightness)
	require.Equal(t, "c", scale.Curves[color.Lightness])
}

func TestDetachAllMatchesEveryChannel(t *testing.T) {
	t.Parallel()

	scale := lightnessScale(0, 0)
	scale.Curves[color.Lightness] = "shared"
	scale.Curves[color.Saturation] = "shared"
	scale.Curves[color.Hue] = "other"
	curves := map[string]model.Curve{
		"shared": {ID: "shared", Type: color.Lightness, Values: []float64{5, 6}},
		"other":  {ID: "other", Type: color.Hue, Values: []float64{1, 2}},
	}

	detached := DetachAll(curves, scale, "shared")
	require.Equal(t, map[color.Channel]string{color.Hue: "other"}, detached.Curves)
	require.Equal(t, 66.0, detached.Colors[1].Saturation)
	require.Equal(t, 6.0, detached.Colors[1].Lightness)
}

func TestValueHelpers(t *testing.T) {
	t.Parallel()

	require.Equal(t, []float64{1, 2, 2, 3}, InsertValue([]float64{1, 2, 3}, 1))
	require.Equal(t, []float64{1, 2, 3, 3}, InsertValue([]float64{1, 2, 3}, 2))
	require.Equal(t, []float64{1, 3}, RemoveValue([]float64{1, 2, 3}, 1))
	require.Equal(t, []float64{1, 2, 2, 2}, Resize([]float64{1, 2}, 4))
	require.Equal(t, []float64{1}, Resize([]float64{1, 2}, 1))
	require.Equal(t, 0.0, ValueAt(model.Curve{Values: []float64{1}}, 3))
}
