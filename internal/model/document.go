// Package model defines the palette document tree. Every value in the tree is
// treated as immutable once it is reachable from a Document: the With/Without
// helpers return copies that share untouched branches with their source.
package model

import (
	"sort"

	"github.com/alexisbeaulieu97/scalekit/internal/color"
)

// Document is the root of the editor state, keyed by palette id.
type Document map[string]Palette

// Palette is a named collection of scales, curves and naming schemes.
type Palette struct {
	ID              string                  `json:"id" validate:"required"`
	Name            string                  `json:"name"`
	BackgroundColor string                  `json:"backgroundColor"`
	Scales          map[string]Scale        `json:"scales" validate:"dive"`
	ScaleOrder      []string                `json:"scaleOrder,omitempty"`
	Curves          map[string]Curve        `json:"curves" validate:"dive"`
	NamingSchemes   map[string]NamingScheme `json:"namingSchemes" validate:"dive"`
}

// Scale is an ordered ramp of colors. Curves maps a channel to the id of the
// curve driving it; NamingSchemeID, when set, fixes the color count.
type Scale struct {
	ID             string                   `json:"id" validate:"required"`
	Name           string                   `json:"name"`
	Colors         []color.Color            `json:"colors"`
	Curves         map[color.Channel]string `json:"curves" validate:"dive,keys,oneof=hue saturation lightness,endkeys,required"`
	NamingSchemeID string                   `json:"namingSchemeId,omitempty"`
}

// Curve is a reusable sequence of channel values indexed by color position.
type Curve struct {
	ID     string        `json:"id" validate:"required"`
	Name   string        `json:"name"`
	Type   color.Channel `json:"type" validate:"required,oneof=hue saturation lightness"`
	Values []float64     `json:"values"`
}

// NamingScheme labels the positions of the scales that reference it.
type NamingScheme struct {
	ID    string   `json:"id" validate:"required"`
	Name  string   `json:"name"`
	Names []string `json:"names"`
}

// NewPalette returns an empty palette with initialised maps.
func NewPalette(id, name string) Palette {
	return Palette{
		ID:              id,
		Name:            name,
		BackgroundColor: "#ffffff",
		Scales:          map[string]Scale{},
		Curves:          map[string]Curve{},
		NamingSchemes:   map[string]NamingScheme{},
	}
}

// NewScale returns a scale without curves or naming scheme.
func NewScale(id, name string, colors []color.Color) Scale {
	return Scale{ID: id, Name: name, Colors: colors, Curves: map[color.Channel]string{}}
}

// With returns a copy of d containing p.
func (d Document) With(p Palette) Document {
	next := make(Document, len(d)+1)
	for id, existing := range d {
		next[id] = existing
	}
	next[p.ID] = p
	return next
}

// Without returns a copy of d lacking the palette id.
func (d Document) Without(id string) Document {
	next := make(Document, len(d))
	for key, existing := range d {
		if key != id {
			next[key] = existing
		}
	}
	return next
}

// IDs returns palette ids sorted by name, then id.
func (d Document) IDs() []string {
	ids := make([]string, 0, len(d))
	for id := range d {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, b := d[ids[i]], d[ids[j]]
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.ID < b.ID
	})
	return ids
}
