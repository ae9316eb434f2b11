package document

import (
	"github.com/alexisbeaulieu97/scalekit/internal/curve"
	"github.com/alexisbeaulieu97/scalekit/internal/model"
)

func (r *Reducer) createCurveFromScale(doc model.Document, c CreateCurveFromScale) Result {
	return editScale(doc, c.PaletteID, c.ScaleID, func(p model.Palette, s model.Scale) (model.Palette, bool) {
		if !c.Channel.Valid() {
			return p, false
		}
		name := s.Name + " " + c.Channel.String()
		cv := curve.FromScale(r.ids.NewID(), name, p.Curves, s, c.Channel)
		return p.WithCurve(cv).WithScale(curve.Attach(s, c.Channel, cv.ID)), true
	})
}

// changeScaleCurve swaps the curve driving a channel. The previous curve, if
// any, is detached first so its contribution is folded into the colors; the
// new curve starts with zero offsets.
func changeScaleCurve(doc model.Document, c ChangeScaleCurve) Result {
	return editScale(doc, c.PaletteID, c.ScaleID, func(p model.Palette, s model.Scale) (model.Palette, bool) {
		if !c.Channel.Valid() {
			return p, false
		}
		current, attached := s.CurveFor(c.Channel)
		if c.CurveID == "" {
			if !attached {
				return p, false
			}
			return p.WithScale(curve.Detach(p.Curves, s, c.Channel)), true
		}
		if attached && current == c.CurveID {
			return p, false
		}
		cv, ok := p.Curves[c.CurveID]
		if !ok || len(cv.Values) != len(s.Colors) {
			return p, false
		}
		s = curve.Detach(p.Curves, s, c.Channel)
		return p.WithScale(curve.Attach(s, c.Channel, cv.ID)), true
	})
}

func changeCurveValue(doc model.Document, c ChangeCurveValue) Result {
	return editCurve(doc, c.PaletteID, c.CurveID, func(cv model.Curve) (model.Curve, bool) {
		if c.Index < 0 || c.Index >= len(cv.Values) {
			return cv, false
		}
		cv = cv.Clone()
		cv.Values[c.Index] = c.Value
		return cv, true
	})
}

// deleteCurve detaches the curve from every scale referencing it on any
// channel, then drops it from the palette.
func deleteCurve(doc model.Document, c DeleteCurve) Result {
	return editPalette(doc, c.PaletteID, func(p model.Palette) (model.Palette, bool) {
		if _, ok := p.Curves[c.CurveID]; !ok {
			return p, false
		}
		for _, id := range p.ScalesUsingCurve(c.CurveID) {
			p = p.WithScale(curve.DetachAll(p.Curves, p.Scales[id], c.CurveID))
		}
		return p.WithoutCurve(c.CurveID), true
	})
}

func applyEasing(doc model.Document, c ApplyEasingFunction) Result {
	fn, ok := curve.Easing(c.Easing)
	if !ok {
		return unchanged(doc)
	}
	return editCurve(doc, c.PaletteID, c.CurveID, func(cv model.Curve) (model.Curve, bool) {
		if len(cv.Values) < 2 {
			return cv, false
		}
		cv.Values = curve.ApplyEasing(cv.Values, fn)
		return cv, true
	})
}
