package document

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/scalekit/internal/color"
	"github.com/alexisbeaulieu97/scalekit/internal/curve"
	"github.com/alexisbeaulieu97/scalekit/internal/model"
)

func withScheme(doc model.Document, names ...string) model.Document {
	return doc.With(doc["p"].WithNamingScheme(model.NamingScheme{ID: "n", Name: "Steps", Names: names}))
}

func TestCreateNamingSchemeFromScale(t *testing.T) {
	t.Parallel()

	r := newTestReducer()
	doc := apply(t, r, docWithScale(lightness(90, 50, 10)...), CreateNamingSchemeFromScale{PaletteID: "p", ScaleID: "s"})

	s := scaleOf(doc)
	require.Equal(t, "id-1", s.NamingSchemeID)
	require.Equal(t, model.NamingScheme{ID: "id-1", Name: "Scale names", Names: []string{"100", "200", "300"}}, doc["p"].NamingSchemes["id-1"])
}

func TestAttachNamingSchemePadsWithLastColor(t *testing.T) {
	t.Parallel()

	r := newTestReducer()
	doc := withScheme(docWithScale(lightness(90, 50)...), "a", "b", "c", "d")

	doc = apply(t, r, doc, ChangeScaleNamingScheme{PaletteID: "p", ScaleID: "s", NamingSchemeID: "n"})
	require.Equal(t, lightness(90, 50, 50, 50), scaleOf(doc).Colors)
	require.Equal(t, "n", scaleOf(doc).NamingSchemeID)
}

func TestAttachNamingSchemeTruncates(t *testing.T) {
	t.Parallel()

	r := newTestReducer()
	doc := withScheme(docWithScale(lightness(90, 70, 50, 30)...), "a", "b")

	doc = apply(t, r, doc, ChangeScaleNamingScheme{PaletteID: "p", ScaleID: "s", NamingSchemeID: "n"})
	require.Equal(t, lightness(90, 70), scaleOf(doc).Colors)
}

func TestAttachNamingSchemeResizesDrivingCurves(t *testing.T) {
	t.Parallel()

	r := newTestReducer()
	doc := apply(t, r, docWithScale(lightness(90, 50)...), CreateCurveFromScale{PaletteID: "p", ScaleID: "s", Channel: color.Lightness})
	doc = withScheme(doc, "a", "b", "c")

	doc = apply(t, r, doc, ChangeScaleNamingScheme{PaletteID: "p", ScaleID: "s", NamingSchemeID: "n"})
	p := doc["p"]
	s := scaleOf(doc)
	require.Equal(t, []float64{90, 50, 50}, p.Curves[s.Curves[color.Lightness]].Values)
	require.Equal(t, 50.0, curve.Resolve(p.Curves, s, 2).Lightness)
}

func TestDetachNamingScheme(t *testing.T) {
	t.Parallel()

	r := newTestReducer()
	doc := withScheme(docWithScale(lightness(90)...), "a", "b")
	doc = apply(t, r, doc, ChangeScaleNamingScheme{PaletteID: "p", ScaleID: "s", NamingSchemeID: "n"})

	requireNoop(t, r, doc, ChangeScaleNamingScheme{PaletteID: "p", ScaleID: "s", NamingSchemeID: "n"})

	doc = apply(t, r, doc, ChangeScaleNamingScheme{PaletteID: "p", ScaleID: "s"})
	require.Empty(t, scaleOf(doc).NamingSchemeID)
	require.Len(t, scaleOf(doc).Colors, 2)
	require.Contains(t, doc["p"].NamingSchemes, "n")
}

func TestAttachEmptyOrMissingSchemeIsNoop(t *testing.T) {
	t.Parallel()

	r := newTestReducer()
	doc := withScheme(docWithScale(lightness(90)...))
	requireNoop(t, r, doc, ChangeScaleNamingScheme{PaletteID: "p", ScaleID: "s", NamingSchemeID: "n"})
	requireNoop(t, r, doc, ChangeScaleNamingScheme{PaletteID: "p", ScaleID: "s", NamingSchemeID: "ghost"})
}

func TestEditNamingScheme(t *testing.T) {
	t.Parallel()

	r := newTestReducer()
	doc := withScheme(docWithScale(lightness(90)...), "a", "b")

	doc = apply(t, r, doc, ChangeNamingSchemeName{PaletteID: "p", NamingSchemeID: "n", Name: "Tailwind"})
	doc = apply(t, r, doc, ChangeNameInNamingScheme{PaletteID: "p", NamingSchemeID: "n", Index: 1, Value: "accent"})

	require.Equal(t, model.NamingScheme{ID: "n", Name: "Tailwind", Names: []string{"a", "accent"}}, doc["p"].NamingSchemes["n"])
	requireNoop(t, r, doc, ChangeNameInNamingScheme{PaletteID: "p", NamingSchemeID: "n", Index: 2, Value: "x"})
}

func TestDeleteNamingSchemeReleasesScales(t *testing.T) {
	t.Parallel()

	r := newTestReducer()
	doc := apply(t, r, docWithScale(lightness(90, 10)...), CreateNamingSchemeFromScale{PaletteID: "p", ScaleID: "s"})
	schemeID := scaleOf(doc).NamingSchemeID

	doc = apply(t, r, doc, DeleteNamingScheme{PaletteID: "p", NamingSchemeID: schemeID})
	require.Empty(t, doc["p"].NamingSchemes)
	require.Empty(t, scaleOf(doc).NamingSchemeID)

	doc = apply(t, r, doc, PopColor{PaletteID: "p", ScaleID: "s"})
	require.Len(t, scaleOf(doc).Colors, 1)
}
