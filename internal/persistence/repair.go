package persistence

import (
	"github.com/google/uuid"

	"github.com/alexisbeaulieu97/scalekit/internal/color"
	"github.com/alexisbeaulieu97/scalekit/internal/model"
)

// Repair realigns curves whose length no longer matches a scale driven by
// them. The scale gets its own copy of the curve, truncated or padded with
// zeros, which leaves its rendered colors unchanged. It returns the number of
// curve references rewritten across the document and both history stacks.
func Repair(s Snapshot) (Snapshot, int) {
	fixed := 0
	s.Context.Palettes, fixed = repairDocument(s.Context.Palettes)
	s.Context.Past, fixed = repairStack(s.Context.Past, fixed)
	s.Context.Future, fixed = repairStack(s.Context.Future, fixed)
	return s, fixed
}

func repairStack(stack []model.Document, fixed int) ([]model.Document, int) {
	if len(stack) == 0 {
		return stack, fixed
	}
	out := make([]model.Document, len(stack))
	for i, doc := range stack {
		var n int
		out[i], n = repairDocument(doc)
		fixed += n
	}
	return out, fixed
}

func repairDocument(doc model.Document) (model.Document, int) {
	fixed := 0
	for _, id := range doc.IDs() {
		p, n := repairPalette(doc[id])
		if n > 0 {
			doc = doc.With(p)
			fixed += n
		}
	}
	return doc, fixed
}

func repairPalette(p model.Palette) (model.Palette, int) {
	fixed := 0
	for _, scaleID := range p.OrderedScaleIDs() {
		s := p.Scales[scaleID]
		forks := map[string]string{}
		for _, ch := range color.Channels {
			curveID, ok := s.CurveFor(ch)
			if !ok {
				continue
			}
			if forkID, done := forks[curveID]; done {
				s.Curves[ch] = forkID
				continue
			}
			cv, exists := p.Curves[curveID]
			if !exists || len(cv.Values) == len(s.Colors) {
				continue
			}

			fork := cv.Clone()
			fork.ID = uuid.NewString()
			fork.Values = make([]float64, len(s.Colors))
			copy(fork.Values, cv.Values)
			p = p.WithCurve(fork)

			if len(forks) == 0 {
				s = s.Clone()
			}
			forks[curveID] = fork.ID
			s.Curves[ch] = fork.ID
			fixed++
		}
		if len(forks) > 0 {
			p = p.WithScale(s)
		}
	}
	return p, fixed
}
