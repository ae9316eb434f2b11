package document

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/scalekit/internal/color"
	"github.com/alexisbeaulieu97/scalekit/internal/model"
)

type sequentialIDs struct {
	next int
}

func (s *sequentialIDs) NewID() string {
	s.next++
	return fmt.Sprintf("id-%d", s.next)
}

func newTestReducer() *Reducer {
	return NewReducer(WithIDGenerator(&sequentialIDs{}), WithRand(rand.New(rand.NewPCG(7, 11))))
}

// docWithScale builds a document holding palette "p" with a single scale "s".
func docWithScale(colors ...color.Color) model.Document {
	p := model.NewPalette("p", "Palette").WithScale(model.NewScale("s", "Scale", colors))
	return model.Document{}.With(p)
}

func lightness(values ...float64) []color.Color {
	out := make([]color.Color, len(values))
	for i, v := range values {
		out[i] = color.Color{Hue: 200, Saturation: 50, Lightness: v}
	}
	return out
}

func apply(t *testing.T, r *Reducer, doc model.Document, cmd Command) model.Document {
	t.Helper()
	res := r.Apply(doc, cmd)
	require.True(t, res.Changed, "expected %s to change the document", cmd.Type())
	return res.Document
}

func requireNoop(t *testing.T, r *Reducer, doc model.Document, cmd Command) {
	t.Helper()
	res := r.Apply(doc, cmd)
	require.False(t, res.Changed, "expected %s to be a no-op", cmd.Type())
	require.Equal(t, doc, res.Document)
}

func scaleOf(doc model.Document) model.Scale {
	return doc["p"].Scales["s"]
}

func intPtr(v int) *int {
	return &v
}
