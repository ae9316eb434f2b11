// Package document implements the palette document store: a closed set of
// typed commands and a pure reducer applying them to a model.Document.
package document

import (
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/alexisbeaulieu97/scalekit/internal/model"
)

// IDGenerator produces globally unique identifiers for new entities.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator issues random UUIDv4 strings.
type UUIDGenerator struct{}

// NewID implements IDGenerator.
func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// Result is the outcome of applying one command.
type Result struct {
	Document model.Document
	// Navigate names the path the UI should move to, if any.
	Navigate string
	// Changed is false when the command was a no-op by policy.
	Changed bool
}

// Option configures a Reducer.
type Option func(*Reducer)

// WithIDGenerator overrides the identifier source.
func WithIDGenerator(ids IDGenerator) Option {
	return func(r *Reducer) {
		if ids != nil {
			r.ids = ids
		}
	}
}

// WithRand overrides the random source used to pick CSS colors.
func WithRand(rng *rand.Rand) Option {
	return func(r *Reducer) {
		if rng != nil {
			r.rng = rng
		}
	}
}

// Reducer applies commands to documents. It never mutates its input; edited
// branches are copied and the rest of the tree is shared.
type Reducer struct {
	ids IDGenerator
	rng *rand.Rand
}

// NewReducer constructs a Reducer with UUID ids and a time-seeded random source.
func NewReducer(opts ...Option) *Reducer {
	seed := uint64(time.Now().UnixNano())
	r := &Reducer{
		ids: UUIDGenerator{},
		rng: rand.New(rand.NewPCG(seed, seed>>1)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Apply runs cmd against doc. Commands that reference unknown entities or
// violate a count policy leave the document unchanged.
func (r *Reducer) Apply(doc model.Document, cmd Command) Result {
	if doc == nil {
		doc = model.Document{}
	}
	switch c := cmd.(type) {
	case CreatePalette:
		return r.createPalette(doc, c)
	case DuplicatePalette:
		return r.duplicatePalette(doc, c)
	case DeletePalette:
		return deletePalette(doc, c)
	case ChangePaletteName:
		return editPalette(doc, c.PaletteID, func(p model.Palette) (model.Palette, bool) {
			changed := p.Name != c.Name
			p.Name = c.Name
			return p, changed
		})
	case ChangePaletteBackgroundColor:
		return editPalette(doc, c.PaletteID, func(p model.Palette) (model.Palette, bool) {
			changed := p.BackgroundColor != c.BackgroundColor
			p.BackgroundColor = c.BackgroundColor
			return p, changed
		})
	case CreateScale:
		return r.createScale(doc, c)
	case DuplicateScale:
		return r.duplicateScale(doc, c)
	case DeleteScale:
		return editPalette(doc, c.PaletteID, func(p model.Palette) (model.Palette, bool) {
			if _, ok := p.Scales[c.ScaleID]; !ok {
				return p, false
			}
			return p.WithoutScale(c.ScaleID), true
		})
	case ChangeScaleName:
		return editScale(doc, c.PaletteID, c.ScaleID, func(p model.Palette, s model.Scale) (model.Palette, bool) {
			changed := s.Name != c.Name
			s.Name = c.Name
			return p.WithScale(s), changed
		})
	case MoveScale:
		return moveScale(doc, c)
	case CreateColor:
		return r.createColor(doc, c)
	case PopColor:
		return editScale(doc, c.PaletteID, c.ScaleID, func(p model.Palette, s model.Scale) (model.Palette, bool) {
			return r.removeColor(p, s, len(s.Colors)-1)
		})
	case DeleteColor:
		return editScale(doc, c.PaletteID, c.ScaleID, func(p model.Palette, s model.Scale) (model.Palette, bool) {
			return r.removeColor(p, s, c.Index)
		})
	case ChangeColorValue:
		return changeColorValue(doc, c)
	case CreateCurveFromScale:
		return r.createCurveFromScale(doc, c)
	case ChangeScaleCurve:
		return changeScaleCurve(doc, c)
	case ChangeCurveName:
		return editCurve(doc, c.PaletteID, c.CurveID, func(cv model.Curve) (model.Curve, bool) {
			changed := cv.Name != c.Name
			cv.Name = c.Name
			return cv, changed
		})
	case ChangeCurveValue:
		return changeCurveValue(doc, c)
	case DeleteCurve:
		return deleteCurve(doc, c)
	case ApplyEasingFunction:
		return applyEasing(doc, c)
	case CreateNamingSchemeFromScale:
		return r.createNamingScheme(doc, c)
	case ChangeNamingSchemeName:
		return editNamingScheme(doc, c.PaletteID, c.NamingSchemeID, func(n model.NamingScheme) (model.NamingScheme, bool) {
			changed := n.Name != c.Name
			n.Name = c.Name
			return n, changed
		})
	case ChangeNameInNamingScheme:
		return editNamingScheme(doc, c.PaletteID, c.NamingSchemeID, func(n model.NamingScheme) (model.NamingScheme, bool) {
			if c.Index < 0 || c.Index >= len(n.Names) {
				return n, false
			}
			n = n.Clone()
			n.Names[c.Index] = c.Value
			return n, true
		})
	case DeleteNamingScheme:
		return deleteNamingScheme(doc, c)
	case ChangeScaleNamingScheme:
		return r.changeScaleNamingScheme(doc, c)
	default:
		return unchanged(doc)
	}
}

func unchanged(doc model.Document) Result {
	return Result{Document: doc}
}

func editPalette(doc model.Document, paletteID string, fn func(model.Palette) (model.Palette, bool)) Result {
	p, ok := doc[paletteID]
	if !ok {
		return unchanged(doc)
	}
	next, changed := fn(p)
	if !changed {
		return unchanged(doc)
	}
	return Result{Document: doc.With(next), Changed: true}
}

func editScale(doc model.Document, paletteID, scaleID string, fn func(model.Palette, model.Scale) (model.Palette, bool)) Result {
	return editPalette(doc, paletteID, func(p model.Palette) (model.Palette, bool) {
		s, ok := p.Scales[scaleID]
		if !ok {
			return p, false
		}
		return fn(p, s)
	})
}

func editCurve(doc model.Document, paletteID, curveID string, fn func(model.Curve) (model.Curve, bool)) Result {
	return editPalette(doc, paletteID, func(p model.Palette) (model.Palette, bool) {
		c, ok := p.Curves[curveID]
		if !ok {
			return p, false
		}
		next, changed := fn(c)
		if !changed {
			return p, false
		}
		return p.WithCurve(next), true
	})
}

func editNamingScheme(doc model.Document, paletteID, schemeID string, fn func(model.NamingScheme) (model.NamingScheme, bool)) Result {
	return editPalette(doc, paletteID, func(p model.Palette) (model.Palette, bool) {
		n, ok := p.NamingSchemes[schemeID]
		if !ok {
			return p, false
		}
		next, changed := fn(n)
		if !changed {
			return p, false
		}
		return p.WithNamingScheme(next), true
	})
}
