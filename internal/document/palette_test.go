package document

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/scalekit/internal/color"
	"github.com/alexisbeaulieu97/scalekit/internal/model"
)

func TestCreatePaletteSeedsExampleScales(t *testing.T) {
	t.Parallel()

	r := newTestReducer()
	res := r.Apply(model.Document{}, CreatePalette{Name: "Brand"})

	require.True(t, res.Changed)
	require.Len(t, res.Document, 1)
	p := res.Document["id-1"]
	require.Equal(t, "Brand", p.Name)
	require.Equal(t, "/id-1", res.Navigate)

	scales := p.OrderedScales()
	require.Len(t, scales, 2)
	require.Equal(t, "Gray", scales[0].Name)
	require.Equal(t, "Blue", scales[1].Name)
	require.Len(t, scales[0].Colors, len(exampleLightness))
}

func TestCreatePaletteDefaultsName(t *testing.T) {
	t.Parallel()

	res := newTestReducer().Apply(nil, CreatePalette{Name: "   "})
	require.Equal(t, defaultPaletteName, res.Document["id-1"].Name)
}

func TestDuplicatePaletteRemapsNestedIDs(t *testing.T) {
	t.Parallel()

	r := newTestReducer()
	doc := docWithScale(lightness(10, 20, 30)...)
	doc = apply(t, r, doc, CreateCurveFromScale{PaletteID: "p", ScaleID: "s", Channel: color.Lightness})
	doc = apply(t, r, doc, CreateNamingSchemeFromScale{PaletteID: "p", ScaleID: "s"})

	res := r.Apply(doc, DuplicatePalette{PaletteID: "p"})
	require.True(t, res.Changed)
	require.Len(t, res.Document, 2)

	var dup model.Palette
	for id, p := range res.Document {
		if id != "p" {
			dup = p
		}
	}
	require.Equal(t, "Palette (copy)", dup.Name)
	require.Equal(t, "/"+dup.ID, res.Navigate)
	require.Len(t, dup.Scales, 1)
	require.Len(t, dup.Curves, 1)
	require.Len(t, dup.NamingSchemes, 1)

	s := dup.OrderedScales()[0]
	require.NotEqual(t, "s", s.ID)
	curveID := s.Curves[color.Lightness]
	require.Contains(t, dup.Curves, curveID)
	require.NotContains(t, doc["p"].Curves, curveID)
	require.Contains(t, dup.NamingSchemes, s.NamingSchemeID)

	require.Equal(t, doc["p"], res.Document["p"], "source palette must be untouched")
}

func TestDeletePalette(t *testing.T) {
	t.Parallel()

	r := newTestReducer()
	doc := docWithScale(lightness(50)...)

	res := r.Apply(doc, DeletePalette{PaletteID: "p"})
	require.True(t, res.Changed)
	require.Empty(t, res.Document)
	require.Len(t, doc, 1)

	requireNoop(t, r, doc, DeletePalette{PaletteID: "missing"})
}

func TestChangePaletteFields(t *testing.T) {
	t.Parallel()

	r := newTestReducer()
	doc := docWithScale(lightness(50)...)

	doc = apply(t, r, doc, ChangePaletteName{PaletteID: "p", Name: "Renamed"})
	doc = apply(t, r, doc, ChangePaletteBackgroundColor{PaletteID: "p", BackgroundColor: "#101010"})

	require.Equal(t, "Renamed", doc["p"].Name)
	require.Equal(t, "#101010", doc["p"].BackgroundColor)

	requireNoop(t, r, doc, ChangePaletteName{PaletteID: "nope", Name: "x"})
	requireNoop(t, r, doc, ChangePaletteName{PaletteID: "p", Name: "Renamed"})
	requireNoop(t, r, doc, ChangePaletteBackgroundColor{PaletteID: "p", BackgroundColor: "#101010"})
}

func TestImmediateCommands(t *testing.T) {
	t.Parallel()

	require.True(t, Immediate(CreatePalette{}))
	require.True(t, Immediate(DuplicatePalette{}))
	require.True(t, Immediate(DeletePalette{}))
	require.False(t, Immediate(ChangePaletteName{}))
	require.False(t, Immediate(Undo{}))
	require.True(t, IsHistory(Undo{}))
	require.True(t, IsHistory(Redo{}))
	require.False(t, IsHistory(CreateScale{}))
}
