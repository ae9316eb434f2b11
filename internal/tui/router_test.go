package tui

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseRoute(t *testing.T) {
	t.Parallel()

	cases := map[string]Route{
		"/p1":          {PaletteID: "p1"},
		"/p1/scale/s1": {PaletteID: "p1", ScaleID: "s1"},
		"/":            {},
		"":             {},
		"/p1/curve/c1": {},
		"/p1/scale/":   {},
		"/a/b/c/d":     {},
	}
	for path, want := range cases {
		require.Equal(t, want, ParseRoute(path), path)
	}
}

func TestRouteString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "/", Route{}.String())
	require.Equal(t, "/p1", Route{PaletteID: "p1"}.String())
	require.Equal(t, "/p1/scale/s1", Route{PaletteID: "p1", ScaleID: "s1"}.String())
}

func TestRouterTakeClears(t *testing.T) {
	t.Parallel()

	r := NewRouter()
	_, ok := r.Take()
	require.False(t, ok)

	r.Navigate("/a")
	r.Navigate("/b/scale/c")
	route, ok := r.Take()
	require.True(t, ok)
	require.Equal(t, Route{PaletteID: "b", ScaleID: "c"}, route)

	_, ok = r.Take()
	require.False(t, ok)

	var nilRouter *Router
	_, ok = nilRouter.Take()
	require.False(t, ok)
}
