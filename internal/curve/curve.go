// Package curve derives effective colors from a scale's stored colors and the
// curves attached to its channels.
package curve

import (
	"slices"

	"github.com/alexisbeaulieu97/scalekit/internal/color"
	"github.com/alexisbeaulieu97/scalekit/internal/model"
)

// Resolve returns the effective color at index. A channel driven by a curve
// adds the curve value to the stored offset; other channels use the stored
// value as is. index must be within the scale's colors.
func Resolve(curves map[string]model.Curve, scale model.Scale, index int) color.Color {
	stored := scale.Colors[index]
	out := stored
	for _, ch := range color.Channels {
		id, ok := scale.CurveFor(ch)
		if !ok {
			continue
		}
		out = out.With(ch, ValueAt(curves[id], index)+stored.Get(ch))
	}
	return out
}

// ResolveAll resolves every color of the scale.
func ResolveAll(curves map[string]model.Curve, scale model.Scale) []color.Color {
	out := make([]color.Color, len(scale.Colors))
	for i := range scale.Colors {
		out[i] = Resolve(curves, scale, i)
	}
	return out
}

// ValueAt returns the curve value at index, or 0 when the curve is shorter.
func ValueAt(c model.Curve, index int) float64 {
	if index < 0 || index >= len(c.Values) {
		return 0
	}
	return c.Values[index]
}

// FromScale builds a curve whose values are the scale's current effective
// values for ch.
func FromScale(id, name string, curves map[string]model.Curve, scale model.Scale, ch color.Channel) model.Curve {
	values := make([]float64, len(scale.Colors))
	for i := range scale.Colors {
		values[i] = Resolve(curves, scale, i).Get(ch)
	}
	return model.Curve{ID: id, Name: name, Type: ch, Values: values}
}

// Attach drives ch of the scale with curveID and resets every stored value of
// that channel to a zero offset. When the curve was built with FromScale from
// the same scale the rendered colors are unchanged.
func Attach(scale model.Scale, ch color.Channel, curveID string) model.Scale {
	scale = scale.Clone()
	for i, c := range scale.Colors {
		scale.Colors[i] = c.With(ch, 0)
	}
	scale.Curves[ch] = curveID
	return scale
}

// Detach folds the curve driving ch back into the stored values and removes
// the mapping. Rendered colors are unchanged.
func Detach(curves map[string]model.Curve, scale model.Scale, ch color.Channel) model.Scale {
	id, ok := scale.CurveFor(ch)
	if !ok {
		return scale
	}
	c := curves[id]
	scale = scale.Clone()
	for i, stored := range scale.Colors {
		scale.Colors[i] = stored.Add(ch, ValueAt(c, i))
	}
	delete(scale.Curves, ch)
	return scale
}

// DetachAll detaches every channel of the scale that references curveID.
func DetachAll(curves map[string]model.Curve, scale model.Scale, curveID string) model.Scale {
	for _, ch := range color.Channels {
		if id, ok := scale.CurveFor(ch); ok && id == curveID {
			scale = Detach(curves, scale, ch)
		}
	}
	return scale
}

// InsertValue returns a copy of values with a duplicate of values[index]
// inserted at index+1.
func InsertValue(values []float64, index int) []float64 {
	v := 0.0
	if index >= 0 && index < len(values) {
		v = values[index]
	}
	return slices.Insert(slices.Clone(values), min(index+1, len(values)), v)
}

// RemoveValue returns a copy of values without values[index].
func RemoveValue(values []float64, index int) []float64 {
	if index < 0 || index >= len(values) {
		return values
	}
	return slices.Delete(slices.Clone(values), index, index+1)
}

// Resize pads values with copies of the last value, or truncates, to n.
func Resize(values []float64, n int) []float64 {
	if len(values) >= n {
		return slices.Clone(values[:n])
	}
	out := slices.Clone(values)
	last := 0.0
	if len(values) > 0 {
		last = values[len(values)-1]
	}
	for len(out) < n {
		out = append(out, last)
	}
	return out
}
