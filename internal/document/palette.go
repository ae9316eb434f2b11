package document

import (
	"strings"

	"github.com/alexisbeaulieu97/scalekit/internal/color"
	"github.com/alexisbeaulieu97/scalekit/internal/model"
)

const (
	defaultPaletteName = "Untitled"
	copySuffix         = " (copy)"
)

var exampleLightness = []float64{96, 88, 78, 66, 54, 44, 34, 24, 14}

// exampleScales seeds a new palette with a neutral and an accent ramp.
var exampleScales = []struct {
	name       string
	hue        float64
	saturation float64
}{
	{name: "Gray", hue: 210, saturation: 10},
	{name: "Blue", hue: 215, saturation: 85},
}

func (r *Reducer) createPalette(doc model.Document, c CreatePalette) Result {
	name := strings.TrimSpace(c.Name)
	if name == "" {
		name = defaultPaletteName
	}
	p := model.NewPalette(r.ids.NewID(), name)
	for _, example := range exampleScales {
		colors := make([]color.Color, len(exampleLightness))
		for i, l := range exampleLightness {
			colors[i] = color.Color{Hue: example.hue, Saturation: example.saturation, Lightness: l}
		}
		p = p.WithScale(model.NewScale(r.ids.NewID(), example.name, colors))
	}
	return Result{Document: doc.With(p), Navigate: "/" + p.ID, Changed: true}
}

// duplicatePalette deep-copies a palette. Nested scales, curves and naming
// schemes get fresh ids and references between them are remapped.
func (r *Reducer) duplicatePalette(doc model.Document, c DuplicatePalette) Result {
	src, ok := doc[c.PaletteID]
	if !ok {
		return unchanged(doc)
	}

	dup := model.NewPalette(r.ids.NewID(), src.Name+copySuffix)
	dup.BackgroundColor = src.BackgroundColor

	curveIDs := make(map[string]string, len(src.Curves))
	for id, cv := range src.Curves {
		next := cv.Clone()
		next.ID = r.ids.NewID()
		curveIDs[id] = next.ID
		dup.Curves[next.ID] = next
	}
	schemeIDs := make(map[string]string, len(src.NamingSchemes))
	for id, n := range src.NamingSchemes {
		next := n.Clone()
		next.ID = r.ids.NewID()
		schemeIDs[id] = next.ID
		dup.NamingSchemes[next.ID] = next
	}
	for _, s := range src.OrderedScales() {
		next := s.Clone()
		next.ID = r.ids.NewID()
		for ch, ref := range next.Curves {
			next.Curves[ch] = curveIDs[ref]
		}
		if next.NamingSchemeID != "" {
			next.NamingSchemeID = schemeIDs[next.NamingSchemeID]
		}
		dup = dup.WithScale(next)
	}

	return Result{Document: doc.With(dup), Navigate: "/" + dup.ID, Changed: true}
}

func deletePalette(doc model.Document, c DeletePalette) Result {
	if _, ok := doc[c.PaletteID]; !ok {
		return unchanged(doc)
	}
	return Result{Document: doc.Without(c.PaletteID), Changed: true}
}
