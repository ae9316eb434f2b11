package model

import (
	"slices"
	"sort"

	"github.com/alexisbeaulieu97/scalekit/internal/color"
)

// WithScale returns a copy of p with s stored. New scales are appended to the
// display order.
func (p Palette) WithScale(s Scale) Palette {
	_, exists := p.Scales[s.ID]
	p.Scales = cloneMap(p.Scales)
	p.Scales[s.ID] = s
	if !exists && !slices.Contains(p.ScaleOrder, s.ID) {
		p.ScaleOrder = append(slices.Clone(p.ScaleOrder), s.ID)
	}
	return p
}

// WithScaleAfter stores s and places it right after the scale afterID.
func (p Palette) WithScaleAfter(s Scale, afterID string) Palette {
	p = p.WithScale(s)
	order := slices.DeleteFunc(slices.Clone(p.OrderedScaleIDs()), func(id string) bool { return id == s.ID })
	pos := slices.Index(order, afterID)
	if pos < 0 {
		pos = len(order) - 1
	}
	p.ScaleOrder = slices.Insert(order, pos+1, s.ID)
	return p
}

// WithoutScale returns a copy of p lacking the scale id.
func (p Palette) WithoutScale(id string) Palette {
	p.Scales = cloneMap(p.Scales)
	delete(p.Scales, id)
	p.ScaleOrder = slices.DeleteFunc(slices.Clone(p.ScaleOrder), func(s string) bool { return s == id })
	return p
}

// WithCurve returns a copy of p with c stored.
func (p Palette) WithCurve(c Curve) Palette {
	p.Curves = cloneMap(p.Curves)
	p.Curves[c.ID] = c
	return p
}

// WithoutCurve returns a copy of p lacking the curve id.
func (p Palette) WithoutCurve(id string) Palette {
	p.Curves = cloneMap(p.Curves)
	delete(p.Curves, id)
	return p
}

// WithNamingScheme returns a copy of p with n stored.
func (p Palette) WithNamingScheme(n NamingScheme) Palette {
	p.NamingSchemes = cloneMap(p.NamingSchemes)
	p.NamingSchemes[n.ID] = n
	return p
}

// WithoutNamingScheme returns a copy of p lacking the naming scheme id.
func (p Palette) WithoutNamingScheme(id string) Palette {
	p.NamingSchemes = cloneMap(p.NamingSchemes)
	delete(p.NamingSchemes, id)
	return p
}

// OrderedScaleIDs returns scale ids in display order. Scales missing from
// ScaleOrder (for example in hand-edited snapshots) follow, sorted by id.
func (p Palette) OrderedScaleIDs() []string {
	ids := make([]string, 0, len(p.Scales))
	seen := make(map[string]struct{}, len(p.Scales))
	for _, id := range p.ScaleOrder {
		if _, ok := p.Scales[id]; !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	var rest []string
	for id := range p.Scales {
		if _, ok := seen[id]; !ok {
			rest = append(rest, id)
		}
	}
	sort.Strings(rest)
	return append(ids, rest...)
}

// OrderedScales returns the palette's scales in display order.
func (p Palette) OrderedScales() []Scale {
	ids := p.OrderedScaleIDs()
	out := make([]Scale, len(ids))
	for i, id := range ids {
		out[i] = p.Scales[id]
	}
	return out
}

// ScalesUsingCurve returns ids of scales referencing the curve on any channel.
func (p Palette) ScalesUsingCurve(curveID string) []string {
	var ids []string
	for _, id := range p.OrderedScaleIDs() {
		for _, ref := range p.Scales[id].Curves {
			if ref == curveID {
				ids = append(ids, id)
				break
			}
		}
	}
	return ids
}

// Clone deep-copies a scale.
func (s Scale) Clone() Scale {
	s.Colors = slices.Clone(s.Colors)
	s.Curves = cloneMap(s.Curves)
	return s
}

// CurveFor returns the curve id driving ch, if any.
func (s Scale) CurveFor(ch color.Channel) (string, bool) {
	id, ok := s.Curves[ch]
	return id, ok && id != ""
}

// Clone deep-copies a curve.
func (c Curve) Clone() Curve {
	c.Values = slices.Clone(c.Values)
	return c
}

// Clone deep-copies a naming scheme.
func (n NamingScheme) Clone() NamingScheme {
	n.Names = slices.Clone(n.Names)
	return n
}

func cloneMap[K comparable, V any](src map[K]V) map[K]V {
	dst := make(map[K]V, len(src)+1)
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
