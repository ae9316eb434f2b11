package document

import (
	"slices"

	"github.com/alexisbeaulieu97/scalekit/internal/color"
	"github.com/alexisbeaulieu97/scalekit/internal/curve"
	"github.com/alexisbeaulieu97/scalekit/internal/model"
)

const defaultScaleName = "Untitled"

func (r *Reducer) createScale(doc model.Document, c CreateScale) Result {
	return editPalette(doc, c.PaletteID, func(p model.Palette) (model.Palette, bool) {
		_, seed := color.RandomNamed(r.rng)
		return p.WithScale(model.NewScale(r.ids.NewID(), defaultScaleName, []color.Color{seed})), true
	})
}

func (r *Reducer) duplicateScale(doc model.Document, c DuplicateScale) Result {
	var newID string
	res := editScale(doc, c.PaletteID, c.ScaleID, func(p model.Palette, s model.Scale) (model.Palette, bool) {
		dup := s.Clone()
		dup.ID = r.ids.NewID()
		dup.Name = s.Name + copySuffix
		newID = dup.ID
		return p.WithScaleAfter(dup, s.ID), true
	})
	if res.Changed {
		res.Navigate = "/" + c.PaletteID + "/scale/" + newID
	}
	return res
}

func moveScale(doc model.Document, c MoveScale) Result {
	return editScale(doc, c.PaletteID, c.ScaleID, func(p model.Palette, s model.Scale) (model.Palette, bool) {
		order := p.OrderedScaleIDs()
		from := slices.Index(order, s.ID)
		to := max(0, min(c.ToIndex, len(order)-1))
		if from == to {
			return p, false
		}
		order = slices.Delete(order, from, from+1)
		p.ScaleOrder = slices.Insert(order, to, s.ID)
		return p, true
	})
}

// createColor duplicates the color at AfterIndex into the next slot. A color
// appended at the end is darkened by 10 lightness, measured on the effective
// value. Scales governed by a naming scheme keep their size.
func (r *Reducer) createColor(doc model.Document, c CreateColor) Result {
	return editScale(doc, c.PaletteID, c.ScaleID, func(p model.Palette, s model.Scale) (model.Palette, bool) {
		if s.NamingSchemeID != "" {
			return p, false
		}
		if len(s.Colors) == 0 {
			_, seed := color.RandomNamed(r.rng)
			p, s = r.ownCurves(p, s)
			s.Colors = []color.Color{seed}
			return growCurves(p, s, -1), true
		}

		index := len(s.Colors) - 1
		if c.AfterIndex != nil {
			index = *c.AfterIndex
		}
		if index < 0 || index >= len(s.Colors) {
			return p, false
		}

		next := s.Colors[index]
		if index == len(s.Colors)-1 {
			effective := curve.Resolve(p.Curves, s, index).Lightness
			offset := effective - next.Lightness
			next.Lightness = color.Color{Lightness: effective}.Darken(10).Lightness - offset
		}

		p, s = r.ownCurves(p, s)
		s.Colors = slices.Insert(s.Colors, index+1, next)
		return growCurves(p, s, index), true
	})
}

// ownCurves gives s a private copy of every driving curve another scale also
// references, so resizing s never changes the length seen by other scales.
// The returned scale is a clone.
func (r *Reducer) ownCurves(p model.Palette, s model.Scale) (model.Palette, model.Scale) {
	s = s.Clone()
	for _, id := range drivingCurves(s) {
		cv, exists := p.Curves[id]
		if !exists || !sharedWithOthers(p, id, s.ID) {
			continue
		}
		fork := cv.Clone()
		fork.ID = r.ids.NewID()
		p = p.WithCurve(fork)
		for ch, ref := range s.Curves {
			if ref == id {
				s.Curves[ch] = fork.ID
			}
		}
	}
	return p, s
}

func sharedWithOthers(p model.Palette, curveID, scaleID string) bool {
	for _, id := range p.ScalesUsingCurve(curveID) {
		if id != scaleID {
			return true
		}
	}
	return false
}

// growCurves stores s and duplicates the value at index in every curve
// driving it, keeping curve lengths aligned with the colors.
func growCurves(p model.Palette, s model.Scale, index int) model.Palette {
	for _, id := range drivingCurves(s) {
		if cv, exists := p.Curves[id]; exists {
			cv.Values = curve.InsertValue(cv.Values, index)
			p = p.WithCurve(cv)
		}
	}
	return p.WithScale(s)
}

// removeColor drops the color at index unless that would leave the scale
// empty or the scale is governed by a naming scheme.
func (r *Reducer) removeColor(p model.Palette, s model.Scale, index int) (model.Palette, bool) {
	if s.NamingSchemeID != "" || len(s.Colors) <= 1 {
		return p, false
	}
	if index < 0 || index >= len(s.Colors) {
		return p, false
	}
	p, s = r.ownCurves(p, s)
	s.Colors = slices.Delete(s.Colors, index, index+1)
	for _, id := range drivingCurves(s) {
		if cv, exists := p.Curves[id]; exists {
			cv.Values = curve.RemoveValue(cv.Values, index)
			p = p.WithCurve(cv)
		}
	}
	return p.WithScale(s), true
}

func changeColorValue(doc model.Document, c ChangeColorValue) Result {
	return editScale(doc, c.PaletteID, c.ScaleID, func(p model.Palette, s model.Scale) (model.Palette, bool) {
		if !c.Channel.Valid() || c.Index < 0 || c.Index >= len(s.Colors) {
			return p, false
		}
		s = s.Clone()
		s.Colors[c.Index] = s.Colors[c.Index].With(c.Channel, c.Value)
		return p.WithScale(s), true
	})
}

// drivingCurves returns the distinct curve ids attached to s, in channel order.
func drivingCurves(s model.Scale) []string {
	var ids []string
	for _, ch := range color.Channels {
		if id, ok := s.CurveFor(ch); ok && !slices.Contains(ids, id) {
			ids = append(ids, id)
		}
	}
	return ids
}
