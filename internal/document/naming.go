package document

import (
	"slices"
	"strconv"

	"github.com/alexisbeaulieu97/scalekit/internal/curve"
	"github.com/alexisbeaulieu97/scalekit/internal/model"
)

// createNamingScheme labels the scale's positions 100, 200, ... and attaches
// the new scheme to it.
func (r *Reducer) createNamingScheme(doc model.Document, c CreateNamingSchemeFromScale) Result {
	return editScale(doc, c.PaletteID, c.ScaleID, func(p model.Palette, s model.Scale) (model.Palette, bool) {
		names := make([]string, len(s.Colors))
		for i := range names {
			names[i] = strconv.Itoa((i + 1) * 100)
		}
		scheme := model.NamingScheme{ID: r.ids.NewID(), Name: s.Name + " names", Names: names}
		s = s.Clone()
		s.NamingSchemeID = scheme.ID
		return p.WithNamingScheme(scheme).WithScale(s), true
	})
}

func deleteNamingScheme(doc model.Document, c DeleteNamingScheme) Result {
	return editPalette(doc, c.PaletteID, func(p model.Palette) (model.Palette, bool) {
		if _, ok := p.NamingSchemes[c.NamingSchemeID]; !ok {
			return p, false
		}
		for _, s := range p.OrderedScales() {
			if s.NamingSchemeID == c.NamingSchemeID {
				s.NamingSchemeID = ""
				p = p.WithScale(s)
			}
		}
		return p.WithoutNamingScheme(c.NamingSchemeID), true
	})
}

// changeScaleNamingScheme attaches a scheme and resizes the scale to its name
// count, padding with copies of the last color. Driving curves are resized
// the same way.
func (r *Reducer) changeScaleNamingScheme(doc model.Document, c ChangeScaleNamingScheme) Result {
	return editScale(doc, c.PaletteID, c.ScaleID, func(p model.Palette, s model.Scale) (model.Palette, bool) {
		if c.NamingSchemeID == "" {
			if s.NamingSchemeID == "" {
				return p, false
			}
			s.NamingSchemeID = ""
			return p.WithScale(s), true
		}
		if s.NamingSchemeID == c.NamingSchemeID {
			return p, false
		}
		scheme, ok := p.NamingSchemes[c.NamingSchemeID]
		if !ok || len(scheme.Names) == 0 || len(s.Colors) == 0 {
			return p, false
		}

		n := len(scheme.Names)
		if n != len(s.Colors) {
			p, s = r.ownCurves(p, s)
		} else {
			s = s.Clone()
		}
		s.NamingSchemeID = scheme.ID
		if len(s.Colors) > n {
			s.Colors = s.Colors[:n]
		}
		last := s.Colors[len(s.Colors)-1]
		for len(s.Colors) < n {
			s.Colors = append(s.Colors, last)
		}
		s.Colors = slices.Clip(s.Colors)

		for _, id := range drivingCurves(s) {
			if cv, exists := p.Curves[id]; exists {
				cv.Values = curve.Resize(cv.Values, n)
				p = p.WithCurve(cv)
			}
		}
		return p.WithScale(s), true
	})
}
