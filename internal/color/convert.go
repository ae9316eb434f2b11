package color

import (
	stdcolor "image/color"
	"math/rand/v2"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Hex renders c as a #rrggbb string. Out-of-range channels are clamped first.
func (c Color) Hex() string {
	c = c.Clamped()
	return colorful.Hsl(c.Hue, c.Saturation/100, c.Lightness/100).Clamped().Hex()
}

// FromHex parses a #rgb or #rrggbb string.
func FromHex(s string) (Color, error) {
	parsed, err := colorful.Hex(normalizeHex(s))
	if err != nil {
		return Color{}, err
	}
	return fromColorful(parsed), nil
}

// FromRGBA converts any image/color value to HSL.
func FromRGBA(c stdcolor.Color) Color {
	parsed, _ := colorful.MakeColor(c)
	return fromColorful(parsed)
}

// Named looks up a CSS named color such as "rebeccapurple".
func Named(name string) (Color, bool) {
	rgba, ok := colornames.Map[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Color{}, false
	}
	return FromRGBA(rgba), true
}

// RandomNamed picks a CSS named color uniformly at random.
func RandomNamed(r *rand.Rand) (string, Color) {
	name := colornames.Names[r.IntN(len(colornames.Names))]
	return name, FromRGBA(colornames.Map[name])
}

func fromColorful(c colorful.Color) Color {
	h, s, l := c.Hsl()
	if s == 0 {
		h = 0
	}
	return Color{Hue: Round(h), Saturation: Round(s * 100), Lightness: Round(l * 100)}
}

func normalizeHex(s string) string {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	return "#" + strings.ToLower(s)
}
